package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

// Readiness and per-check statuses.
const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
	statusFailing  = "failing"
)

// checkResult is one dependency's entry in the readiness body.
type checkResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// readinessResponse is the body of GET /health/ready.
type readinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]checkResult `json:"checks"`
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It answers 200 while the process serves.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Any failing dependency makes it 503
// not_ready. Degraded dependencies alone answer 200 degraded so traffic keeps
// flowing while a downstream recovers.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.registry.CheckAll(ctx)

	resp := readinessResponse{Status: statusReady, Checks: make(map[string]checkResult, len(results))}
	failing := false
	for name, err := range results {
		switch {
		case err == nil:
			resp.Checks[name] = checkResult{Status: statusOK}
		case errors.Is(err, ports.ErrDegraded):
			resp.Checks[name] = checkResult{Status: statusDegraded, Error: err.Error()}
			if resp.Status == statusReady {
				resp.Status = statusDegraded
			}
		default:
			resp.Checks[name] = checkResult{Status: statusFailing, Error: err.Error()}
			failing = true
		}
	}

	code := http.StatusOK
	if failing {
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}
	if resp.Status != statusReady {
		logging.FromContext(ctx).WarnContext(ctx, "readiness check",
			slog.String("status", resp.Status),
			slog.Any("checks", resp.Checks),
		)
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
