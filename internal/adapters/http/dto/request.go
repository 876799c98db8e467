package dto

import (
	"strings"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/ediscovery"
)

const (
	msgRequired     = domain.MsgRequired
	msgMustNotEmpty = "must not be empty"
)

// EnvelopeRequest is the JSON body of every single-payload transform
// endpoint: {"body": {...}}.
type EnvelopeRequest[T any] struct {
	Body *T `json:"body"`
}

// Validate checks that a payload is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *EnvelopeRequest[T]) Validate() error {
	if r.Body == nil {
		return &domain.ValidationError{Fields: map[string]string{"body": msgRequired}}
	}
	return nil
}

// ReportRequestEnvelope carries a report request to encrypt or decrypt.
type ReportRequestEnvelope = EnvelopeRequest[ediscovery.ReportRequest]

// ActivityEnvelope carries one activity of report content.
type ActivityEnvelope = EnvelopeRequest[ediscovery.Activity]

// ContainerEnvelope carries a content container.
type ContainerEnvelope = EnvelopeRequest[ediscovery.ContentContainer]

// ObjectEnvelope carries a conversation activity or object.
type ObjectEnvelope = EnvelopeRequest[conversation.Object]

// ActivityBatchRequest is the JSON body of the batch content endpoint. An
// empty page is valid; a missing one is not.
type ActivityBatchRequest struct {
	Body []*ediscovery.Activity `json:"body"`
}

// Validate checks that the page is present and holds no null entries.
// Returns a *domain.ValidationError if any checks fail.
func (r *ActivityBatchRequest) Validate() error {
	fields := make(map[string]string)

	if r.Body == nil {
		fields["body"] = msgRequired
	}
	for _, a := range r.Body {
		if a == nil {
			fields["body"] = "must not contain null activities"
			break
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ValidatePathParam checks a required URL path segment.
func ValidatePathParam(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return &domain.ValidationError{Fields: map[string]string{name: msgMustNotEmpty}}
	}
	return nil
}
