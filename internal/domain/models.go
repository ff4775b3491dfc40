// internal/domain/models.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Role is the account type a user registers with.
type Role string

const (
	RoleSender          Role = "sender"
	RoleDeliveryPartner Role = "delivery_partner"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleSender, RoleDeliveryPartner:
		return true
	default:
		return false
	}
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	Role         Role
	CreatedAt    time.Time
}

// Order is a single delivery request. DeliveryPartnerID is empty until the
// order is assigned.
type Order struct {
	ID                 int64
	SenderID           string
	DeliveryPartnerID  string
	PackageDescription string
	PickupAddress      string
	DeliveryAddress    string
	Amount             decimal.Decimal
	Status             OrderStatus
	CreatedAt          time.Time
}

// Requester is the authenticated caller as extracted from a verified token.
type Requester struct {
	ID   string
	Role Role
}

func (r Requester) IsSender() bool  { return r.Role == RoleSender }
func (r Requester) IsPartner() bool { return r.Role == RoleDeliveryPartner }

// maxAmount bounds amounts to what NUMERIC(12,2) stores exactly.
var maxAmount = decimal.New(1, 10)

// NewOrder builds a pending order owned by senderID. The amount must not be
// negative, and must fit two decimal places below 10^10.
func NewOrder(senderID, description, pickup, delivery string, amount decimal.Decimal, now time.Time) (*Order, error) {
	if senderID == "" || pickup == "" || delivery == "" {
		return nil, ErrMissingFields
	}
	if amount.IsNegative() {
		return nil, ErrAmountNegative
	}
	if !amount.Equal(amount.Truncate(2)) || amount.GreaterThanOrEqual(maxAmount) {
		return nil, fmt.Errorf("%w: %s", ErrAmountInvalid, amount)
	}
	return &Order{
		SenderID:           senderID,
		PackageDescription: description,
		PickupAddress:      pickup,
		DeliveryAddress:    delivery,
		Amount:             amount,
		Status:             StatusPending,
		CreatedAt:          now.UTC(),
	}, nil
}
