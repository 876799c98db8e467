package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/ediscovery"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestEnvelopeRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("report request present", func(t *testing.T) {
		t.Parallel()
		req := dto.ReportRequestEnvelope{Body: &ediscovery.ReportRequest{Name: "Audit"}}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("object present", func(t *testing.T) {
		t.Parallel()
		req := dto.ObjectEnvelope{Body: &conversation.Object{ObjectType: conversation.TypeComment}}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("missing activity", func(t *testing.T) {
		t.Parallel()
		req := dto.ActivityEnvelope{}
		requireValidationField(t, req.Validate(), "body")
	})

	t.Run("missing container", func(t *testing.T) {
		t.Parallel()
		req := dto.ContainerEnvelope{}
		requireValidationField(t, req.Validate(), "body")
	})
}

func TestActivityBatchRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.ActivityBatchRequest
		wantField string
	}{
		{
			name: "page of activities passes",
			req:  dto.ActivityBatchRequest{Body: []*ediscovery.Activity{{ActivityID: "a1"}}},
		},
		{
			name: "empty page passes",
			req:  dto.ActivityBatchRequest{Body: []*ediscovery.Activity{}},
		},
		{
			name:      "missing page",
			req:       dto.ActivityBatchRequest{},
			wantField: "body",
		},
		{
			name:      "null entry",
			req:       dto.ActivityBatchRequest{Body: []*ediscovery.Activity{{ActivityID: "a1"}, nil}},
			wantField: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestValidatePathParam(t *testing.T) {
	t.Parallel()

	if err := dto.ValidatePathParam("reportId", "r-1"); err != nil {
		t.Errorf("ValidatePathParam(r-1) = %v, want nil", err)
	}
	requireValidationField(t, dto.ValidatePathParam("reportId", "  "), "reportId")
}
