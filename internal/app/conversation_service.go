package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/app/transform"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/retry"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

// Compile-time check that ConversationService implements
// ports.ConversationTransformer.
var _ ports.ConversationTransformer = (*ConversationService)(nil)

// Entry point names of the conversation transforms.
const (
	OpDecryptActivity = "DecryptActivity"
	OpDecryptObject   = "DecryptObject"
)

const pathObject domain.Path = "object"

// ConversationService implements ports.ConversationTransformer by walking
// conversation object graphs through the handler registry.
type ConversationService struct {
	crypto     *transform.Crypto
	registry   *transform.Registry
	logger     *slog.Logger
	policy     retry.Policy
	maxWorkers int
	instrumentation
}

// ConversationOption configures a ConversationService.
type ConversationOption func(*ConversationService)

// WithConversationRetry sets the retry policy of conversation decryption.
func WithConversationRetry(p retry.Policy) ConversationOption {
	return func(s *ConversationService) { s.policy = p }
}

// WithConversationMaxWorkers bounds the concurrent branches of one node.
func WithConversationMaxWorkers(n int) ConversationOption {
	return func(s *ConversationService) {
		if n > 0 {
			s.maxWorkers = n
		}
	}
}

// WithConversationMetrics records transform metrics.
func WithConversationMetrics(m *telemetry.Metrics) ConversationOption {
	return func(s *ConversationService) { s.metrics = m }
}

// WithRegistry replaces the default handler registry.
func WithRegistry(r *transform.Registry) ConversationOption {
	return func(s *ConversationService) {
		if r != nil {
			s.registry = r
		}
	}
}

// NewConversationService creates a ConversationService backed by km.
func NewConversationService(km ports.KeyManager, logger *slog.Logger, opts ...ConversationOption) *ConversationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ConversationService{
		crypto:     transform.NewCrypto(km),
		registry:   transform.DefaultRegistry(),
		logger:     logger,
		policy:     retry.None(),
		maxWorkers: 16,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ConversationService) newContext(operation, onBehalfOf string) *transform.Context {
	return transform.NewContext(s.crypto, s.registry,
		transform.WithOperation(operation),
		transform.WithLogger(s.logger),
		transform.WithMaxWorkers(s.maxWorkers),
		transform.WithPolicy(s.policy),
		transform.WithDelegate(onBehalfOf),
	)
}

// DecryptActivity decrypts an activity, its object and each of its children.
func (s *ConversationService) DecryptActivity(ctx context.Context, key, onBehalfOf string, activity *conversation.Object) (*ports.Envelope[*conversation.Object], error) {
	if activity == nil {
		return &ports.Envelope[*conversation.Object]{}, nil
	}

	ctx, end := s.begin(ctx, OpDecryptActivity)
	ctx = withLogAttrs(ctx, s.logger, slog.String("activity_id", activity.ID))

	tc := s.newContext(OpDecryptActivity, onBehalfOf)
	tc.DispatchActivity(ctx, key, activity, pathActivity)

	annotations := tc.Annotations().List()
	end(annotations, nil)
	return &ports.Envelope[*conversation.Object]{Body: activity, Annotations: annotations}, nil
}

// DecryptObject decrypts any conversation object by its objectType. Objects
// of an unregistered type are returned untouched.
func (s *ConversationService) DecryptObject(ctx context.Context, key, onBehalfOf string, object *conversation.Object) (*ports.Envelope[*conversation.Object], error) {
	if object == nil {
		return &ports.Envelope[*conversation.Object]{}, nil
	}

	ctx, end := s.begin(ctx, OpDecryptObject)
	ctx = withLogAttrs(ctx, s.logger,
		slog.String("object_id", object.ID),
		slog.String("object_type", object.ObjectType),
	)

	tc := s.newContext(OpDecryptObject, onBehalfOf)
	tc.DispatchObject(ctx, key, object, pathObject)

	annotations := tc.Annotations().List()
	end(annotations, nil)
	return &ports.Envelope[*conversation.Object]{Body: object, Annotations: annotations}, nil
}
