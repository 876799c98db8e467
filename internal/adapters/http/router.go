// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	reportHandler *handlers.ReportHandler,
	conversationHandler *handlers.ConversationHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Report requests.
		r.Post("/report-requests/encrypt", reportHandler.EncryptReportRequest)
		r.Post("/report-requests/decrypt", reportHandler.DecryptReportRequest)

		// Report content.
		r.Post("/reports/{reportId}/content/decrypt", reportHandler.DecryptReportContent)
		r.Post("/reports/{reportId}/content/decrypt-batch", reportHandler.DecryptReportContentBatch)
		r.Post("/containers/decrypt", reportHandler.DecryptContainer)

		// Conversation objects.
		r.Post("/activities/decrypt", conversationHandler.DecryptActivity)
		r.Post("/objects/decrypt", conversationHandler.DecryptObject)
	})

	return r
}
