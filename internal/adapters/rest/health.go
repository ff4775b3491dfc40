package rest

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthDegraded  HealthStatus = "degraded"
	HealthUnhealthy HealthStatus = "unhealthy"
)

const healthCheckTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCheck struct {
	Name       string       `json:"name"`
	Status     HealthStatus `json:"status"`
	Message    string       `json:"message,omitempty"`
	DurationMs int64        `json:"duration_ms"`
}

type healthResponse struct {
	Status        HealthStatus  `json:"status"`
	Timestamp     time.Time     `json:"timestamp"`
	Checks        []HealthCheck `json:"checks"`
	UptimeSeconds int64         `json:"uptime_seconds"`
}

type dependency struct {
	pinger   Pinger
	critical bool
}

// HealthHandler pings registered dependencies. A failing critical
// dependency makes the service unhealthy (503); any other failure only
// degrades it.
type HealthHandler struct {
	mu        sync.RWMutex
	deps      map[string]dependency
	startTime time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{deps: make(map[string]dependency), startTime: time.Now()}
}

func (h *HealthHandler) Register(name string, p Pinger, critical bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deps[name] = dependency{pinger: p, critical: critical}
}

func (h *HealthHandler) Handle(c *gin.Context) {
	h.mu.RLock()
	names := make([]string, 0, len(h.deps))
	deps := make(map[string]dependency, len(h.deps))
	for name, d := range h.deps {
		names = append(names, name)
		deps[name] = d
	}
	h.mu.RUnlock()
	sort.Strings(names)

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	overall := HealthHealthy
	checks := make([]HealthCheck, 0, len(names))
	for _, name := range names {
		d := deps[name]
		start := time.Now()
		err := d.pinger.Ping(ctx)
		check := HealthCheck{Name: name, Status: HealthHealthy, DurationMs: time.Since(start).Milliseconds()}
		if err != nil {
			check.Message = err.Error()
			check.Status = HealthDegraded
			if d.critical {
				check.Status = HealthUnhealthy
			}
		}
		if check.Status == HealthUnhealthy {
			overall = HealthUnhealthy
		} else if check.Status == HealthDegraded && overall == HealthHealthy {
			overall = HealthDegraded
		}
		checks = append(checks, check)
	}

	code := http.StatusOK
	if overall == HealthUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, healthResponse{
		Status:        overall,
		Timestamp:     time.Now().UTC(),
		Checks:        checks,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	})
}
