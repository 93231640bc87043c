package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nebulanotes/internal/logger"
	"nebulanotes/internal/responses"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the database and session store answer.
type HealthHandler struct {
	checks map[string]Pinger
	log    *logger.Logger
}

func NewHealthHandler(checks map[string]Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{checks: checks, log: log}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{}
	healthy := true
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			h.log.Warn("Health check failed", "component", name, "error", err)
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}

	if !healthy {
		responses.JSON(c, http.StatusServiceUnavailable, "error", status, "unhealthy", nil)
		return
	}
	responses.Success(c, http.StatusOK, status, "ok")
}
