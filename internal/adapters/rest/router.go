// Package rest exposes the auth and order operations over HTTP with gin.
package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/application"
	"github.com/mahabubulhasibshawon/delivery-hub/pkg/auth"
)

type Config struct {
	Auth    *application.AuthService
	Orders  *application.OrderService
	Tokens  *auth.Manager
	Health  *HealthHandler
	Metrics HTTPObserver
	Logger  *log.Entry
}

type handler struct {
	auth     *application.AuthService
	orders   *application.OrderService
	validate *validatorv10.Validate
	logger   *log.Entry
}

func NewRouter(cfg Config) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.WithField("layer", "http")
	}
	h := &handler{
		auth:     cfg.Auth,
		orders:   cfg.Orders,
		validate: newValidator(),
		logger:   logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(logger))
	if cfg.Metrics != nil {
		r.Use(observe(cfg.Metrics))
	}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Delivery Hub API is running")
	})
	if cfg.Health != nil {
		r.GET("/health", cfg.Health.Handle)
	}

	requireAuth := authenticate(cfg.Tokens)

	authGroup := r.Group("/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
	authGroup.GET("/profile", requireAuth, h.profile)
	authGroup.PUT("/profile", requireAuth, h.updateProfile)

	orders := r.Group("/orders", requireAuth)
	orders.POST("/create", h.createOrder)
	orders.GET("", h.listOrders)
	orders.GET("/partner/earnings", h.earnings)
	orders.GET("/:id", h.getOrder)
	orders.PUT("/:id/status", h.updateStatus)
	orders.PUT("/:id/cancel", h.cancelOrder)

	return r
}
