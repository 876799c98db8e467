package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

// Request headers of the conversation endpoints.
const (
	// HeaderEncryptionKeyURL names the key used when the payload carries no
	// encryptionKeyUrl of its own.
	HeaderEncryptionKeyURL = "X-Encryption-Key-URL"

	// HeaderOnBehalfOf names the user the decryption is performed for.
	HeaderOnBehalfOf = "X-On-Behalf-Of"
)

// ConversationHandler handles HTTP requests for conversation activities and
// objects.
type ConversationHandler struct {
	svc ports.ConversationTransformer
}

// NewConversationHandler creates a new ConversationHandler with the given
// service port.
func NewConversationHandler(svc ports.ConversationTransformer) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

// DecryptActivity handles POST /api/v1/activities/decrypt.
func (h *ConversationHandler) DecryptActivity(w http.ResponseWriter, r *http.Request) {
	var req dto.ObjectEnvelope
	if !decodeAndValidate(w, r, &req) {
		return
	}

	env, err := h.svc.DecryptActivity(r.Context(),
		r.Header.Get(HeaderEncryptionKeyURL), r.Header.Get(HeaderOnBehalfOf), req.Body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEnvelopeResponse(env))
}

// DecryptObject handles POST /api/v1/objects/decrypt.
func (h *ConversationHandler) DecryptObject(w http.ResponseWriter, r *http.Request) {
	var req dto.ObjectEnvelope
	if !decodeAndValidate(w, r, &req) {
		return
	}

	env, err := h.svc.DecryptObject(r.Context(),
		r.Header.Get(HeaderEncryptionKeyURL), r.Header.Get(HeaderOnBehalfOf), req.Body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEnvelopeResponse(env))
}
