package ports

import (
	"context"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/ediscovery"
)

// Envelope wraps a payload handed to or returned from a transform entry
// point. Annotations collects the non-fatal failures recorded while the body
// was transformed, keyed by node path.
type Envelope[T any] struct {
	Body        T                   `json:"body"`
	Annotations []domain.Annotation `json:"annotations,omitempty"`
}

// ReportTransformer defines the service port for eDiscovery payload
// transforms. Implemented by the application layer; called by handlers.
// Only EncryptReportRequest returns per-field failures as an error; every
// decrypt operation is best effort and reports failures as annotations.
type ReportTransformer interface {
	// EncryptReportRequest provisions a key and encrypts the request fields
	// under it. Any failure returns domain.ErrEncryption and no payload.
	EncryptReportRequest(ctx context.Context, env *Envelope[*ediscovery.ReportRequest]) (*Envelope[*ediscovery.ReportRequest], error)

	// DecryptReportRequest decrypts the request fields under its key.
	DecryptReportRequest(ctx context.Context, env *Envelope[*ediscovery.ReportRequest]) (*Envelope[*ediscovery.ReportRequest], error)

	// DecryptReportContent decrypts one activity of report content, looking
	// up its container to obtain the delegate identity.
	DecryptReportContent(ctx context.Context, env *Envelope[*ediscovery.Activity], reportID string) (*Envelope[*ediscovery.Activity], error)

	// DecryptReportContentBatch decrypts a page of report content, looking
	// each container up at most once.
	DecryptReportContentBatch(ctx context.Context, reportID string, activities []*ediscovery.Activity) ([]*Envelope[*ediscovery.Activity], error)

	// DecryptReportContentContainer decrypts a container name and
	// description.
	DecryptReportContentContainer(ctx context.Context, env *Envelope[*ediscovery.ContentContainer]) (*Envelope[*ediscovery.ContentContainer], error)
}

// ConversationTransformer defines the service port for conversation payload
// decryption.
type ConversationTransformer interface {
	// DecryptActivity decrypts an activity, its object and its children.
	// key is used when the activity carries no encryptionKeyUrl.
	DecryptActivity(ctx context.Context, key, onBehalfOf string, activity *conversation.Object) (*Envelope[*conversation.Object], error)

	// DecryptObject decrypts any conversation object by its objectType.
	DecryptObject(ctx context.Context, key, onBehalfOf string, object *conversation.Object) (*Envelope[*conversation.Object], error)
}
