package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type" validate:"omitempty,oneof=sender delivery_partner"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type createOrderRequest struct {
	PackageDescription string           `json:"package_description"`
	PickupAddress      string           `json:"pickup_address" validate:"required"`
	DeliveryAddress    string           `json:"delivery_address" validate:"required"`
	Amount             *decimal.Decimal `json:"amount" validate:"required"`
}

// Status is not validated here; unknown tokens are reported by the
// lifecycle as invalid_status.
type updateStatusRequest struct {
	Status            string `json:"status"`
	DeliveryPartnerID string `json:"delivery_partner_id"`
}

// A non-positive limit means unlimited.
type listOrdersQuery struct {
	Type      string `form:"type"`
	Status    string `form:"status"`
	Limit     int    `form:"limit"`
	PartnerID string `form:"partner_id"`
}

func newValidator() *validatorv10.Validate {
	return validatorv10.New()
}

// bindAndValidate binds the JSON body into out and validates it. On failure
// it writes a 400 and the handler should return.
func bindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   "invalid_request_body",
		})
		return false
	}
	return validate(c, out, v)
}

func bindQuery(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindQuery(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid query parameters",
			"error":   "invalid_query",
		})
		return false
	}
	return true
}

func validate(c *gin.Context, out interface{}, v *validatorv10.Validate) bool {
	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Missing required fields",
			"error":   "validation_failed",
			"fields":  validationErrorsToMap(err),
		})
		return false
	}
	return true
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}
