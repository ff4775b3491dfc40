package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
	"github.com/mahabubulhasibshawon/delivery-hub/pkg/auth"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
	requesterKey    = "requester"
)

// HTTPObserver records per-request metrics.
type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, code int, elapsed time.Duration)
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *log.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := log.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"request_id": c.GetString(requestIDKey),
		}
		if req, ok := requesterFrom(c); ok {
			fields["user_id"] = req.ID
		}
		entry := logger.WithFields(fields)
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request completed")
			return
		}
		entry.Info("request completed")
	}
}

func observe(o HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		o.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// authenticate verifies the bearer token and stores the requester on the
// context.
func authenticate(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied", "error": "unauthorized"})
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid", "error": "unauthorized"})
			return
		}
		c.Set(requesterKey, domain.Requester{ID: claims.UserID, Role: domain.Role(claims.UserType)})
		c.Next()
	}
}

func requesterFrom(c *gin.Context) (domain.Requester, bool) {
	v, ok := c.Get(requesterKey)
	if !ok {
		return domain.Requester{}, false
	}
	req, ok := v.(domain.Requester)
	return req, ok
}
