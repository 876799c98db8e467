// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/ediscovery"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

// ReportHandler handles HTTP requests for eDiscovery report requests,
// report content and content containers.
type ReportHandler struct {
	svc ports.ReportTransformer
}

// NewReportHandler creates a new ReportHandler with the given service port.
func NewReportHandler(svc ports.ReportTransformer) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// EncryptReportRequest handles POST /api/v1/report-requests/encrypt.
func (h *ReportHandler) EncryptReportRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.ReportRequestEnvelope
	if !decodeAndValidate(w, r, &req) {
		return
	}

	env, err := h.svc.EncryptReportRequest(r.Context(), &ports.Envelope[*ediscovery.ReportRequest]{Body: req.Body})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEnvelopeResponse(env))
}

// DecryptReportRequest handles POST /api/v1/report-requests/decrypt.
func (h *ReportHandler) DecryptReportRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.ReportRequestEnvelope
	if !decodeAndValidate(w, r, &req) {
		return
	}

	env, err := h.svc.DecryptReportRequest(r.Context(), &ports.Envelope[*ediscovery.ReportRequest]{Body: req.Body})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEnvelopeResponse(env))
}

// DecryptReportContent handles POST /api/v1/reports/{reportId}/content/decrypt.
func (h *ReportHandler) DecryptReportContent(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathParam(w, r, "reportId")
	if !ok {
		return
	}

	var req dto.ActivityEnvelope
	if !decodeAndValidate(w, r, &req) {
		return
	}

	env, err := h.svc.DecryptReportContent(r.Context(), &ports.Envelope[*ediscovery.Activity]{Body: req.Body}, reportID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEnvelopeResponse(env))
}

// DecryptReportContentBatch handles
// POST /api/v1/reports/{reportId}/content/decrypt-batch.
func (h *ReportHandler) DecryptReportContentBatch(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathParam(w, r, "reportId")
	if !ok {
		return
	}

	var req dto.ActivityBatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	envs, err := h.svc.DecryptReportContentBatch(r.Context(), reportID, req.Body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActivityBatchResponse(envs))
}

// DecryptContainer handles POST /api/v1/containers/decrypt.
func (h *ReportHandler) DecryptContainer(w http.ResponseWriter, r *http.Request) {
	var req dto.ContainerEnvelope
	if !decodeAndValidate(w, r, &req) {
		return
	}

	env, err := h.svc.DecryptReportContentContainer(r.Context(), &ports.Envelope[*ediscovery.ContentContainer]{Body: req.Body})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEnvelopeResponse(env))
}
