package domain

import "errors"

var (
	// ErrInvalidStatus is returned for a status token outside the lifecycle enum.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrForbidden is returned when a role or ownership rule denies the request.
	ErrForbidden = errors.New("access denied")
	// ErrInvalidTransition is returned for an edge the lifecycle does not have.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotFound is returned by stores when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a lost race on a conditional update.
	ErrConflict = errors.New("order state changed concurrently")

	ErrMissingFields      = errors.New("missing required fields")
	ErrAmountNegative     = errors.New("amount cannot be negative")
	ErrAmountInvalid      = errors.New("amount must have at most two decimal places and fewer than eleven integer digits")
	ErrInvalidRole        = errors.New("invalid user type")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPartner     = errors.New("invalid delivery partner")
	ErrInvalidListType    = errors.New("invalid order list type")
)

// Kind returns a stable snake_case name for the sentinel err wraps, or
// "internal" when it wraps none of them.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidStatus):
		return "invalid_status"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, ErrAmountNegative):
		return "amount_negative"
	case errors.Is(err, ErrAmountInvalid):
		return "amount_invalid"
	case errors.Is(err, ErrInvalidRole):
		return "invalid_role"
	case errors.Is(err, ErrEmailTaken):
		return "email_taken"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrInvalidPartner):
		return "invalid_partner"
	case errors.Is(err, ErrInvalidListType):
		return "invalid_list_type"
	default:
		return "internal"
	}
}
