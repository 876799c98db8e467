// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/ediscovery"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

// AnnotationResponse describes one failure recorded while transforming a
// payload.
type AnnotationResponse struct {
	Path     string `json:"path"`
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
}

// EnvelopeResponse is a transformed payload with its annotations. The
// annotations list is always present, empty when nothing failed.
type EnvelopeResponse[T any] struct {
	Body        T                    `json:"body"`
	Annotations []AnnotationResponse `json:"annotations"`
}

// ActivityBatchResponse is a decrypted page of report content in request
// order.
type ActivityBatchResponse struct {
	Results []EnvelopeResponse[*ediscovery.Activity] `json:"results"`
	Count   int                                      `json:"count"`
}

// ToAnnotationResponse converts a domain Annotation to its HTTP form.
func ToAnnotationResponse(a domain.Annotation) AnnotationResponse {
	return AnnotationResponse{
		Path:     a.Path.String(),
		Severity: string(a.Severity),
		Kind:     string(a.Kind),
		Message:  a.Message,
	}
}

// ToEnvelopeResponse converts a service envelope to an HTTP response DTO.
// A nil envelope yields a zero body with no annotations.
func ToEnvelopeResponse[T any](env *ports.Envelope[T]) EnvelopeResponse[T] {
	resp := EnvelopeResponse[T]{Annotations: []AnnotationResponse{}}
	if env == nil {
		return resp
	}

	resp.Body = env.Body
	for _, a := range env.Annotations {
		resp.Annotations = append(resp.Annotations, ToAnnotationResponse(a))
	}
	return resp
}

// ToActivityBatchResponse converts a decrypted page of activities.
func ToActivityBatchResponse(envs []*ports.Envelope[*ediscovery.Activity]) ActivityBatchResponse {
	results := make([]EnvelopeResponse[*ediscovery.Activity], 0, len(envs))
	for _, env := range envs {
		results = append(results, ToEnvelopeResponse(env))
	}
	return ActivityBatchResponse{Results: results, Count: len(results)}
}
