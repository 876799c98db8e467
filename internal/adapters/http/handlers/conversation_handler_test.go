package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
	"github.com/jsamuelsen11/go-ediscovery-transforms/mocks"
)

const (
	testKeyURL   = "kms://keys/activity"
	testDelegate = "compliance-officer"
)

func newConversationHandler(t *testing.T) (*handlers.ConversationHandler, *mocks.MockConversationTransformer) {
	t.Helper()
	svc := mocks.NewMockConversationTransformer(t)
	return handlers.NewConversationHandler(svc), svc
}

// --- DecryptActivity ---

func TestDecryptActivity_PassesHeaders(t *testing.T) {
	t.Parallel()
	h, svc := newConversationHandler(t)

	svc.EXPECT().DecryptActivity(mock.Anything, testKeyURL, testDelegate, mock.AnythingOfType("*conversation.Object")).
		Return(&ports.Envelope[*conversation.Object]{
			Body: &conversation.Object{ID: "a1", ObjectType: conversation.TypeActivity, DisplayName: "hi"},
		}, nil)

	body := jsonBody(t, dto.ObjectEnvelope{Body: &conversation.Object{ID: "a1", ObjectType: conversation.TypeActivity}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities/decrypt", body)
	req.Header.Set(handlers.HeaderEncryptionKeyURL, testKeyURL)
	req.Header.Set(handlers.HeaderOnBehalfOf, testDelegate)
	h.DecryptActivity(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EnvelopeResponse[*conversation.Object]](t, rec)
	if resp.Body.DisplayName != "hi" {
		t.Errorf("DisplayName = %q, want %q", resp.Body.DisplayName, "hi")
	}
}

func TestDecryptActivity_WithoutHeaders(t *testing.T) {
	t.Parallel()
	h, svc := newConversationHandler(t)

	svc.EXPECT().DecryptActivity(mock.Anything, "", "", mock.Anything).
		Return(&ports.Envelope[*conversation.Object]{
			Body: &conversation.Object{ID: "a1"},
			Annotations: []domain.Annotation{{
				Path:     "activity.object.content",
				Severity: domain.SeverityError,
				Kind:     domain.KindMissingDelegate,
				Message:  "missing delegate identity",
			}},
		}, nil)

	body := jsonBody(t, dto.ObjectEnvelope{Body: &conversation.Object{ID: "a1"}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities/decrypt", body)
	h.DecryptActivity(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EnvelopeResponse[*conversation.Object]](t, rec)
	if len(resp.Annotations) != 1 || resp.Annotations[0].Severity != "error" {
		t.Errorf("Annotations = %+v, want one error", resp.Annotations)
	}
}

func TestDecryptActivity_MissingBody(t *testing.T) {
	t.Parallel()
	h, _ := newConversationHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities/decrypt", bytes.NewBufferString(`{}`))
	h.DecryptActivity(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- DecryptObject ---

func TestDecryptObject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newConversationHandler(t)

	svc.EXPECT().DecryptObject(mock.Anything, testKeyURL, testDelegate, mock.Anything).
		Return(&ports.Envelope[*conversation.Object]{
			Body: &conversation.Object{ObjectType: conversation.TypeConversation, DisplayName: "Project X"},
		}, nil)

	body := jsonBody(t, dto.ObjectEnvelope{Body: &conversation.Object{ObjectType: conversation.TypeConversation}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/objects/decrypt", body)
	req.Header.Set(handlers.HeaderEncryptionKeyURL, testKeyURL)
	req.Header.Set(handlers.HeaderOnBehalfOf, testDelegate)
	h.DecryptObject(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EnvelopeResponse[*conversation.Object]](t, rec)
	if resp.Body.DisplayName != "Project X" {
		t.Errorf("DisplayName = %q, want %q", resp.Body.DisplayName, "Project X")
	}
}

func TestDecryptObject_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newConversationHandler(t)

	svc.EXPECT().DecryptObject(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrUnavailable)

	body := jsonBody(t, dto.ObjectEnvelope{Body: &conversation.Object{ObjectType: conversation.TypeComment}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/objects/decrypt", body)
	h.DecryptObject(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}
