package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
)

// problemTypePrefix namespaces the type URI of every problem this service
// returns.
const problemTypePrefix = "urn:ediscovery-transforms:problem:"

// Problem codes carried in the code member of an ErrorResponse.
const (
	CodeInvalidRequest        = "invalid_request"
	CodeNotFound              = "not_found"
	CodeForbidden             = "forbidden"
	CodeConflict              = "conflict"
	CodeEncryptionFailed      = "encryption_failed"
	CodeDependencyUnavailable = "dependency_unavailable"
	CodeDeadlineExceeded      = "deadline_exceeded"
	CodeInternal              = "internal"
)

// internalDetail replaces the message of errors that map to no problem.
const internalDetail = "the request could not be processed"

// ErrorResponse represents an RFC 9457 Problem Details response. Code is an
// extension member naming the problem for programmatic clients.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

type problem struct {
	target error
	status int
	code   string
}

// problems is matched in order against errors that are not encryption
// failures.
var problems = []problem{
	{domain.ErrValidation, http.StatusBadRequest, CodeInvalidRequest},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{domain.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{domain.ErrConflict, http.StatusConflict, CodeConflict},
	{domain.ErrUnavailable, http.StatusBadGateway, CodeDependencyUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, CodeDeadlineExceeded},
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
// Errors outside the domain vocabulary are reported without their message.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	p := classify(err)

	resp := ErrorResponse{
		Type:     problemTypePrefix + p.code,
		Title:    http.StatusText(p.status),
		Status:   p.status,
		Code:     p.code,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if p.code == CodeInternal {
		resp.Detail = internalDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error with Content-Type application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// classify picks the problem for err. An encryption failure is a 502 only
// when the key service was unreachable; its other causes do not leak into
// the status.
func classify(err error) problem {
	if errors.Is(err, domain.ErrEncryption) {
		if errors.Is(err, domain.ErrUnavailable) {
			return problem{status: http.StatusBadGateway, code: CodeEncryptionFailed}
		}
		return problem{status: http.StatusInternalServerError, code: CodeEncryptionFailed}
	}
	for _, p := range problems {
		if errors.Is(err, p.target) {
			return p
		}
	}
	return problem{status: http.StatusInternalServerError, code: CodeInternal}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
