package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"survey-backend/application/ports"
	"survey-backend/pkg/common"
)

const (
	APIName    = "Survey Management API"
	APIVersion = "1.0.0"
)

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	checker ports.HealthChecker
	timeout time.Duration
	logger  *zap.Logger
}

func NewHealthHandler(checker ports.HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{checker: checker, timeout: 5 * time.Second, logger: logger}
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"message": APIName,
		"version": APIVersion,
	})
}

// Health handles GET /health; the process is alive.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Ready handles GET /ready: 503 while the store cannot be reached.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.checker.Check(ctx); err != nil {
		h.logger.Warn("Readiness check failed", zap.Error(err))
		common.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
