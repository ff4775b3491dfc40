package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/application"
)

func (h *handler) register(c *gin.Context) {
	var req registerRequest
	if !bindAndValidate(c, &req, h.validate) {
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     req.UserType,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Phone:    user.Phone,
		UserType: user.Role.String(),
		Token:    token,
		Message:  "User registered successfully",
	})
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if !bindAndValidate(c, &req, h.validate) {
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Phone:    user.Phone,
		UserType: user.Role.String(),
		Token:    token,
	})
}

func (h *handler) profile(c *gin.Context) {
	req, _ := requesterFrom(c)
	user, err := h.auth.Profile(c.Request.Context(), req.ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *handler) updateProfile(c *gin.Context) {
	var body updateProfileRequest
	if !bindAndValidate(c, &body, h.validate) {
		return
	}

	req, _ := requesterFrom(c)
	user, err := h.auth.UpdateProfile(c.Request.Context(), req.ID, body.Name, body.Phone)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}
