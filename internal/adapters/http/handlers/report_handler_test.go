package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/ediscovery"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
	"github.com/jsamuelsen11/go-ediscovery-transforms/mocks"
)

const testReportID = "report-1"

func newReportHandler(t *testing.T) (*handlers.ReportHandler, *mocks.MockReportTransformer) {
	t.Helper()
	svc := mocks.NewMockReportTransformer(t)
	return handlers.NewReportHandler(svc), svc
}

// --- EncryptReportRequest ---

func TestEncryptReportRequest_Success(t *testing.T) {
	t.Parallel()
	h, svc := newReportHandler(t)

	svc.EXPECT().EncryptReportRequest(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, env *ports.Envelope[*ediscovery.ReportRequest]) (*ports.Envelope[*ediscovery.ReportRequest], error) {
			out := env.Body.Clone()
			out.Name = "cipher:" + out.Name
			out.EncryptionKeyURL = "kms://keys/1"
			return &ports.Envelope[*ediscovery.ReportRequest]{Body: out}, nil
		})

	body := jsonBody(t, dto.ReportRequestEnvelope{Body: &ediscovery.ReportRequest{Name: "Audit"}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/report-requests/encrypt", body)
	h.EncryptReportRequest(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EnvelopeResponse[*ediscovery.ReportRequest]](t, rec)
	if resp.Body.Name != "cipher:Audit" {
		t.Errorf("Name = %q, want %q", resp.Body.Name, "cipher:Audit")
	}
	if resp.Body.EncryptionKeyURL != "kms://keys/1" {
		t.Errorf("EncryptionKeyURL = %q, want %q", resp.Body.EncryptionKeyURL, "kms://keys/1")
	}
}

func TestEncryptReportRequest_UnnamedRequestReachesService(t *testing.T) {
	t.Parallel()
	h, svc := newReportHandler(t)

	svc.EXPECT().EncryptReportRequest(mock.Anything, mock.MatchedBy(func(env *ports.Envelope[*ediscovery.ReportRequest]) bool {
		return env.Body != nil && env.Body.Name == ""
	})).RunAndReturn(func(_ context.Context, env *ports.Envelope[*ediscovery.ReportRequest]) (*ports.Envelope[*ediscovery.ReportRequest], error) {
		out := env.Body.Clone()
		out.EncryptionKeyURL = "kms://keys/1"
		return &ports.Envelope[*ediscovery.ReportRequest]{Body: out}, nil
	})

	body := jsonBody(t, dto.ReportRequestEnvelope{Body: &ediscovery.ReportRequest{Description: "custodian mail"}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/report-requests/encrypt", body)
	h.EncryptReportRequest(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EnvelopeResponse[*ediscovery.ReportRequest]](t, rec)
	if resp.Body.Name != "" {
		t.Errorf("Name = %q, want it left empty", resp.Body.Name)
	}
}

func TestEncryptReportRequest_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newReportHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/report-requests/encrypt", bytes.NewBufferString("{"))
	h.EncryptReportRequest(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestEncryptReportRequest_MissingBody(t *testing.T) {
	t.Parallel()
	h, _ := newReportHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/report-requests/encrypt", bytes.NewBufferString(`{}`))
	h.EncryptReportRequest(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.body" {
		t.Errorf("Errors = %+v, want one error at body.body", resp.Errors)
	}
}

func TestEncryptReportRequest_Failure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"key service down", fmt.Errorf("%w: %w", domain.ErrEncryption, domain.ErrUnavailable), http.StatusBadGateway},
		{"key service refused", fmt.Errorf("%w: %w", domain.ErrEncryption, domain.ErrForbidden), http.StatusInternalServerError},
		{"invalid request", &domain.ValidationError{Fields: map[string]string{"name": "is required"}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newReportHandler(t)
			svc.EXPECT().EncryptReportRequest(mock.Anything, mock.Anything).Return(nil, tt.err)

			body := jsonBody(t, dto.ReportRequestEnvelope{Body: &ediscovery.ReportRequest{Name: "Audit"}})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/report-requests/encrypt", body)
			h.EncryptReportRequest(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
		})
	}
}

// --- DecryptReportRequest ---

func TestDecryptReportRequest_AnnotationsReturned(t *testing.T) {
	t.Parallel()
	h, svc := newReportHandler(t)

	svc.EXPECT().DecryptReportRequest(mock.Anything, mock.Anything).
		Return(&ports.Envelope[*ediscovery.ReportRequest]{
			Body: &ediscovery.ReportRequest{Name: "Audit", Keywords: []string{"cipher"}},
			Annotations: []domain.Annotation{{
				Path:     "reportRequest.keywords[0]",
				Severity: domain.SeverityError,
				Kind:     domain.KindCryptoFailure,
				Message:  "forbidden",
			}},
		}, nil)

	body := jsonBody(t, dto.ReportRequestEnvelope{Body: &ediscovery.ReportRequest{Name: "cipher"}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/report-requests/decrypt", body)
	h.DecryptReportRequest(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EnvelopeResponse[*ediscovery.ReportRequest]](t, rec)
	if resp.Body.Name != "Audit" {
		t.Errorf("Name = %q, want %q", resp.Body.Name, "Audit")
	}
	if len(resp.Annotations) != 1 || resp.Annotations[0].Path != "reportRequest.keywords[0]" {
		t.Errorf("Annotations = %+v, want one at reportRequest.keywords[0]", resp.Annotations)
	}
}

// --- DecryptReportContent ---

func TestDecryptReportContent_Success(t *testing.T) {
	t.Parallel()
	h, svc := newReportHandler(t)

	svc.EXPECT().DecryptReportContent(mock.Anything, mock.Anything, testReportID).
		RunAndReturn(func(_ context.Context, env *ports.Envelope[*ediscovery.Activity], _ string) (*ports.Envelope[*ediscovery.Activity], error) {
			env.Body.ObjectDisplayName = "hello"
			return env, nil
		})

	body := jsonBody(t, dto.ActivityEnvelope{Body: &ediscovery.Activity{ActivityID: "a1", Verb: ediscovery.VerbPost}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/report-1/content/decrypt", body)
	req = withChiParams(req, map[string]string{"reportId": testReportID})
	h.DecryptReportContent(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EnvelopeResponse[*ediscovery.Activity]](t, rec)
	if resp.Body.ObjectDisplayName != "hello" {
		t.Errorf("ObjectDisplayName = %q, want %q", resp.Body.ObjectDisplayName, "hello")
	}
	if resp.Annotations == nil {
		t.Error("Annotations = nil, want empty list")
	}
}

func TestDecryptReportContent_MissingReportID(t *testing.T) {
	t.Parallel()
	h, _ := newReportHandler(t)

	body := jsonBody(t, dto.ActivityEnvelope{Body: &ediscovery.Activity{ActivityID: "a1"}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports//content/decrypt", body)
	req = withChiParams(req, map[string]string{})
	h.DecryptReportContent(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestDecryptReportContent_MissingBody(t *testing.T) {
	t.Parallel()
	h, _ := newReportHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/report-1/content/decrypt", bytes.NewBufferString(`{"body":null}`))
	req = withChiParams(req, map[string]string{"reportId": testReportID})
	h.DecryptReportContent(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- DecryptReportContentBatch ---

func TestDecryptReportContentBatch_Success(t *testing.T) {
	t.Parallel()
	h, svc := newReportHandler(t)

	svc.EXPECT().DecryptReportContentBatch(mock.Anything, testReportID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, activities []*ediscovery.Activity) ([]*ports.Envelope[*ediscovery.Activity], error) {
			out := make([]*ports.Envelope[*ediscovery.Activity], 0, len(activities))
			for _, a := range activities {
				out = append(out, &ports.Envelope[*ediscovery.Activity]{Body: a})
			}
			out[1].Annotations = []domain.Annotation{{Path: "activity", Kind: domain.KindLookupFailure}}
			return out, nil
		})

	body := jsonBody(t, dto.ActivityBatchRequest{Body: []*ediscovery.Activity{{ActivityID: "a1"}, {ActivityID: "a2"}}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/report-1/content/decrypt-batch", body)
	req = withChiParams(req, map[string]string{"reportId": testReportID})
	h.DecryptReportContentBatch(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ActivityBatchResponse](t, rec)
	if resp.Count != 2 {
		t.Fatalf("Count = %d, want 2", resp.Count)
	}
	if resp.Results[0].Body.ActivityID != "a1" || resp.Results[1].Body.ActivityID != "a2" {
		t.Errorf("Results out of order: %+v", resp.Results)
	}
	if len(resp.Results[1].Annotations) != 1 {
		t.Errorf("Results[1].Annotations = %+v, want one", resp.Results[1].Annotations)
	}
}

func TestDecryptReportContentBatch_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newReportHandler(t)

	svc.EXPECT().DecryptReportContentBatch(mock.Anything, testReportID, mock.Anything).
		Return(nil, context.Canceled)

	body := jsonBody(t, dto.ActivityBatchRequest{Body: []*ediscovery.Activity{{ActivityID: "a1"}}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/report-1/content/decrypt-batch", body)
	req = withChiParams(req, map[string]string{"reportId": testReportID})
	h.DecryptReportContentBatch(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}

func TestDecryptReportContentBatch_MissingPage(t *testing.T) {
	t.Parallel()
	h, _ := newReportHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/report-1/content/decrypt-batch", bytes.NewBufferString(`{}`))
	req = withChiParams(req, map[string]string{"reportId": testReportID})
	h.DecryptReportContentBatch(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- DecryptContainer ---

func TestDecryptContainer_Success(t *testing.T) {
	t.Parallel()
	h, svc := newReportHandler(t)

	svc.EXPECT().DecryptReportContentContainer(mock.Anything, mock.Anything).
		Return(&ports.Envelope[*ediscovery.ContentContainer]{
			Body: &ediscovery.ContentContainer{ContainerID: "c1", ContainerName: "Legal", Description: "Hold"},
		}, nil)

	body := jsonBody(t, dto.ContainerEnvelope{Body: &ediscovery.ContentContainer{ContainerID: "c1", ContainerName: "cipher"}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/containers/decrypt", body)
	h.DecryptContainer(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EnvelopeResponse[*ediscovery.ContentContainer]](t, rec)
	if resp.Body.ContainerName != "Legal" || resp.Body.Description != "Hold" {
		t.Errorf("Body = %+v, want decrypted name and description", resp.Body)
	}
}

func TestDecryptContainer_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newReportHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/containers/decrypt", bytes.NewBufferString("not json"))
	h.DecryptContainer(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
