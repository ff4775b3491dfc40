package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
)

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type"`
	Token    string `json:"token"`
	Message  string `json:"message,omitempty"`
}

// money renders an amount with exactly two decimal places, matching the
// NUMERIC(12,2) column.
type money decimal.Decimal

func (m money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + decimal.Decimal(m).StringFixed(2) + `"`), nil
}

type orderResponse struct {
	ID                 int64     `json:"id"`
	SenderID           string    `json:"sender_id"`
	DeliveryPartnerID  *string   `json:"delivery_partner_id"`
	PackageDescription string    `json:"package_description"`
	PickupAddress      string    `json:"pickup_address"`
	DeliveryAddress    string    `json:"delivery_address"`
	Amount             money     `json:"amount"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type dailyEarningResponse struct {
	Date  string `json:"date"`
	Total money  `json:"total"`
}

type earningsResponse struct {
	Total money                  `json:"total"`
	Daily []dailyEarningResponse `json:"daily"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		UserType:  u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

func toOrderResponse(o *domain.Order) orderResponse {
	resp := orderResponse{
		ID:                 o.ID,
		SenderID:           o.SenderID,
		PackageDescription: o.PackageDescription,
		PickupAddress:      o.PickupAddress,
		DeliveryAddress:    o.DeliveryAddress,
		Amount:             money(o.Amount),
		Status:             o.Status.String(),
		CreatedAt:          o.CreatedAt,
	}
	if o.DeliveryPartnerID != "" {
		partner := o.DeliveryPartnerID
		resp.DeliveryPartnerID = &partner
	}
	return resp
}

func toEarningsResponse(e *domain.Earnings) earningsResponse {
	resp := earningsResponse{Total: money(e.Total), Daily: make([]dailyEarningResponse, 0, len(e.Daily))}
	for _, d := range e.Daily {
		resp.Daily = append(resp.Daily, dailyEarningResponse{Date: d.Date.Format("2006-01-02"), Total: money(d.Total)})
	}
	return resp
}

var errorMessages = map[string]string{
	"invalid_status":      "Invalid status",
	"forbidden":           "Access denied",
	"invalid_transition":  "Invalid status transition",
	"not_found":           "Not found",
	"conflict":            "Order was modified concurrently or is no longer in the expected state",
	"missing_fields":      "Missing required fields",
	"amount_negative":     "Amount cannot be negative",
	"amount_invalid":      "Amount must have at most two decimal places",
	"invalid_role":        "Invalid user type",
	"email_taken":         "Email already exists",
	"invalid_credentials": "Invalid email or password",
	"invalid_partner":     "Invalid delivery partner",
	"invalid_list_type":   "Invalid list type",
}

func statusForKind(kind string) int {
	switch kind {
	case "invalid_status", "missing_fields", "amount_negative", "amount_invalid", "invalid_role", "invalid_partner", "invalid_list_type":
		return http.StatusBadRequest
	case "invalid_credentials":
		return http.StatusUnauthorized
	case "forbidden":
		return http.StatusForbidden
	case "not_found":
		return http.StatusNotFound
	case "email_taken", "conflict", "invalid_transition":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err onto a status code and a {message, error} body.
// Internal failures only reach the log.
func writeError(c *gin.Context, logger *log.Entry, err error) {
	kind := domain.Kind(err)
	code := statusForKind(kind)
	if code == http.StatusInternalServerError {
		logger.WithError(err).WithFields(log.Fields{
			"path":       c.FullPath(),
			"request_id": c.GetString(requestIDKey),
		}).Error("request failed")
		c.AbortWithStatusJSON(code, gin.H{"message": "Server error", "error": "internal"})
		return
	}

	message := errorMessages[kind]
	if errors.Is(err, domain.ErrNotFound) && c.Param("id") != "" {
		message = "Order not found"
	}
	c.AbortWithStatusJSON(code, gin.H{"message": message, "error": kind})
}
