package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/go-ediscovery-transforms/internal/app/context"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/app/fanout"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/app/transform"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/ediscovery"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/retry"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

// Compile-time check that EdiscoveryService implements ports.ReportTransformer.
var _ ports.ReportTransformer = (*EdiscoveryService)(nil)

// Entry point names used in logs, spans, metrics and signals.
const (
	OpEncryptReportRequest          = "EncryptReportRequest"
	OpDecryptReportRequest          = "DecryptReportRequest"
	OpDecryptReportContent          = "DecryptReportContent"
	OpDecryptReportContentBatch     = "DecryptReportContentBatch"
	OpDecryptReportContentContainer = "DecryptReportContentContainer"
)

// Names of the report field transforms.
const (
	nameMessage       = "decryptMessage"
	nameSpaceInfo     = "decryptSpaceInfo"
	nameExtension     = "decryptExtension"
	nameMeetingTitle  = "decryptMeetingTitle"
	nameSharedLink    = "decryptSharedLinkInfo"
	nameReportField   = "decryptReportField"
	nameContainerName = "decryptContainerName"
	nameContainerDesc = "decryptContainerDescription"
)

// Root paths of the annotation side channel.
const (
	pathActivity      domain.Path = "activity"
	pathContainer     domain.Path = "container"
	pathReportRequest domain.Path = "reportRequest"
)

// EdiscoveryService implements ports.ReportTransformer. It encrypts outbound
// report requests and decrypts report requests, report content and content
// containers returned by the eDiscovery service.
//
// Encryption is all or nothing. Decryption is best effort: failures are
// logged and returned as annotations beside the partially decrypted body.
type EdiscoveryService struct {
	km          ports.KeyManager
	lookup      ports.ContainerLookup
	crypto      *transform.Crypto
	provisioner *transform.Provisioner
	logger      *slog.Logger
	policy      retry.Policy
	maxWorkers  int
	instrumentation
}

// EdiscoveryOption configures an EdiscoveryService.
type EdiscoveryOption func(*EdiscoveryService)

// WithReportRetry sets the retry policy of report content and container
// decryption.
func WithReportRetry(p retry.Policy) EdiscoveryOption {
	return func(s *EdiscoveryService) { s.policy = p }
}

// WithReportMaxWorkers bounds the fan-out of one node and of a content batch.
func WithReportMaxWorkers(n int) EdiscoveryOption {
	return func(s *EdiscoveryService) {
		if n > 0 {
			s.maxWorkers = n
		}
	}
}

// WithReportMetrics records transform metrics.
func WithReportMetrics(m *telemetry.Metrics) EdiscoveryOption {
	return func(s *EdiscoveryService) { s.metrics = m }
}

// NewEdiscoveryService creates an EdiscoveryService. km performs all crypto
// operations and lookup resolves the container of each content activity.
func NewEdiscoveryService(km ports.KeyManager, lookup ports.ContainerLookup, logger *slog.Logger, opts ...EdiscoveryOption) *EdiscoveryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &EdiscoveryService{
		km:         km,
		lookup:     lookup,
		crypto:     transform.NewCrypto(km),
		logger:     logger,
		policy:     retry.None(),
		maxWorkers: 16,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.provisioner = transform.NewProvisioner(km, s.crypto, s.maxWorkers)
	return s
}

func (s *EdiscoveryService) newContext(operation string, opts ...transform.Option) *transform.Context {
	opts = append([]transform.Option{
		transform.WithOperation(operation),
		transform.WithLogger(s.logger),
		transform.WithMaxWorkers(s.maxWorkers),
	}, opts...)
	return transform.NewContext(s.crypto, transform.DefaultRegistry(), opts...)
}

// EncryptReportRequest provisions a key and encrypts the request under it.
// Any failure returns an error wrapping domain.ErrEncryption and no payload.
func (s *EdiscoveryService) EncryptReportRequest(ctx context.Context, env *ports.Envelope[*ediscovery.ReportRequest]) (_ *ports.Envelope[*ediscovery.ReportRequest], err error) {
	if env == nil || env.Body == nil {
		return env, nil
	}

	ctx, end := s.begin(ctx, OpEncryptReportRequest)
	defer func() { end(nil, err) }()

	s.logger.InfoContext(ctx, "encrypting report request", slog.String("operation", OpEncryptReportRequest))

	req, err := s.provisioner.EncryptReportRequest(ctx, env.Body)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encrypt report request",
			slog.String("operation", OpEncryptReportRequest),
			slog.String("report_id", env.Body.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &ports.Envelope[*ediscovery.ReportRequest]{Body: req}, nil
}

// DecryptReportRequest decrypts the request fields under its key. Each field
// and list entry is decrypted on its own; failures are logged with the report
// ID and returned as annotations.
func (s *EdiscoveryService) DecryptReportRequest(ctx context.Context, env *ports.Envelope[*ediscovery.ReportRequest]) (*ports.Envelope[*ediscovery.ReportRequest], error) {
	if env == nil || env.Body == nil || env.Body.EncryptionKeyURL == "" {
		return env, nil
	}
	req := env.Body

	ctx, end := s.begin(ctx, OpDecryptReportRequest)
	ctx = withLogAttrs(ctx, s.logger, slog.String("report_id", req.ID))

	tc := s.newContext(OpDecryptReportRequest)
	key := req.EncryptionKeyURL

	b := tc.Batch()
	tc.DecryptField(b, nameReportField, key, &req.Name, pathReportRequest.Child("name"), domain.SeverityError)
	tc.DecryptField(b, nameReportField, key, &req.Description, pathReportRequest.Child("description"), domain.SeverityError)
	for i := range req.SpaceNames {
		tc.DecryptField(b, nameReportField, key, &req.SpaceNames[i], pathReportRequest.Index("spaceNames", i), domain.SeverityError)
	}
	for i := range req.Keywords {
		tc.DecryptField(b, nameReportField, key, &req.Keywords[i], pathReportRequest.Index("keywords", i), domain.SeverityError)
	}
	for i := range req.Emails {
		tc.DecryptField(b, nameReportField, key, &req.Emails[i], pathReportRequest.Index("emails", i), domain.SeverityError)
	}
	b.Wait(ctx)

	annotations := tc.Annotations().List()
	end(annotations, nil)
	return &ports.Envelope[*ediscovery.ReportRequest]{Body: req, Annotations: annotations}, nil
}

// DecryptReportContent decrypts one activity of report content. The
// activity's container is looked up first to obtain its display fields and
// the delegate identity; a missing container stops all field work.
func (s *EdiscoveryService) DecryptReportContent(ctx context.Context, env *ports.Envelope[*ediscovery.Activity], reportID string) (*ports.Envelope[*ediscovery.Activity], error) {
	if env == nil || env.Body == nil || reportID == "" {
		return env, nil
	}

	ctx, end := s.begin(ctx, OpDecryptReportContent)
	annotations := s.decryptActivity(ctx, reportID, env.Body)
	end(annotations, nil)

	return &ports.Envelope[*ediscovery.Activity]{Body: env.Body, Annotations: annotations}, nil
}

// DecryptReportContentBatch decrypts a page of report content concurrently.
// Each container is looked up at most once for the whole page.
func (s *EdiscoveryService) DecryptReportContentBatch(ctx context.Context, reportID string, activities []*ediscovery.Activity) (_ []*ports.Envelope[*ediscovery.Activity], err error) {
	ctx, end := s.begin(ctx, OpDecryptReportContentBatch)

	rc := appctx.Ensure(ctx)
	ctx = appctx.WithRequestContext(ctx, rc)

	results := fanout.Run(ctx, s.maxWorkers, activities, func(ctx context.Context, a *ediscovery.Activity) (*ports.Envelope[*ediscovery.Activity], error) {
		env := &ports.Envelope[*ediscovery.Activity]{Body: a}
		if a == nil || reportID == "" {
			return env, nil
		}
		env.Annotations = s.decryptActivity(ctx, reportID, a)
		return env, nil
	})

	out := make([]*ports.Envelope[*ediscovery.Activity], len(results))
	var all []domain.Annotation
	for i, r := range results {
		if r.Err != nil {
			out[i] = &ports.Envelope[*ediscovery.Activity]{
				Body: activities[i],
				Annotations: []domain.Annotation{{
					Path:     pathActivity,
					Severity: domain.SeverityError,
					Kind:     domain.KindOf(r.Err),
					Message:  r.Err.Error(),
				}},
			}
		} else {
			out[i] = r.Value
		}
		all = append(all, out[i].Annotations...)
	}

	end(all, nil)
	return out, nil
}

// decryptActivity runs the report content flow for one activity and returns
// the annotations it recorded.
func (s *EdiscoveryService) decryptActivity(ctx context.Context, reportID string, activity *ediscovery.Activity) []domain.Annotation {
	ctx = withLogAttrs(ctx, s.logger,
		slog.String("report_id", reportID),
		slog.String("activity_id", activity.ActivityID),
		slog.String("container_id", activity.TargetID),
	)

	tc := s.newContext(OpDecryptReportContent, transform.WithPolicy(s.policy))

	container, err := s.container(ctx, reportID, activity.TargetID)
	if err != nil {
		tc.Fail(ctx, pathActivity, domain.SeverityError, err)
		return tc.Annotations().List()
	}

	if container.Warning != "" {
		activity.SpaceWarning = container.Warning
		activity.ContainerWarning = container.Warning
	}
	name := container.DisplayName()
	activity.SpaceName = name
	activity.ContainerName = name

	if !activity.HasDecryptablePayload() {
		return nil
	}

	if activity.EncryptionKeyURL == "" {
		logging.FromContext(ctx).InfoContext(ctx, "activity has no encryption key, leaving it as is",
			slog.String("operation", OpDecryptReportContent),
			slog.String("reason", domain.ErrMissingKeyReference.Error()),
		)
		return nil
	}

	if container.OnBehalfOfUser == "" {
		tc.Fail(ctx, pathActivity, domain.SeverityError, fmt.Errorf(
			"%w: no user available with which to decrypt activity %s in container %s",
			domain.ErrMissingDelegate, activity.ActivityID, activity.TargetID))
		return tc.Annotations().List()
	}

	tc = s.newContext(OpDecryptReportContent,
		transform.WithPolicy(s.policy),
		transform.WithDelegate(container.OnBehalfOfUser),
	)
	s.decryptActivityFields(ctx, tc, activity)
	return tc.Annotations().List()
}

// container resolves the container of an activity through the request memo.
func (s *EdiscoveryService) container(ctx context.Context, reportID, containerID string) (*ediscovery.ContentContainer, error) {
	provider := appctx.NewDataProvider("container:"+reportID+"/"+containerID,
		func(ctx context.Context) (*ediscovery.ContentContainer, error) {
			return s.lookup.GetContentContainer(ctx, reportID, containerID)
		})

	container, err := provider.Get(ctx, appctx.Ensure(ctx))
	switch {
	case errors.Is(err, domain.ErrNotFound), err == nil && container == nil:
		return nil, fmt.Errorf("%w: container %s not found - unable to decrypt activity", domain.ErrLookupFailure, containerID)
	case err != nil:
		return nil, fmt.Errorf("%w: retrieving content container %s: %w", domain.ErrLookupFailure, containerID, err)
	default:
		return container, nil
	}
}

// decryptActivityFields fans out over every encrypted field of a decryptable
// activity: message, space information, custom app extension, meeting,
// recording, then shares (files, whiteboards, links in that order).
func (s *EdiscoveryService) decryptActivityFields(ctx context.Context, tc *transform.Context, a *ediscovery.Activity) {
	key := a.EncryptionKeyURL
	b := tc.Batch()

	tc.DecryptField(b, nameMessage, key, &a.ObjectDisplayName, pathActivity.Child("objectDisplayName"), domain.SeverityError)

	if si := a.SpaceInfo; si != nil {
		p := pathActivity.Child("spaceInfo")
		tc.DecryptField(b, nameSpaceInfo, key, &si.Name, p.Child("name"), domain.SeverityError)
		tc.DecryptField(b, nameSpaceInfo, key, &si.Description, p.Child("description"), domain.SeverityError)
		if si.PreviousName != "" && si.PreviousEncryptionKeyURL != "" {
			tc.DecryptField(b, nameSpaceInfo, si.PreviousEncryptionKeyURL, &si.PreviousName, p.Child("previousName"), domain.SeverityError)
		}
	}

	if ext := a.Extension; ext != nil && ext.IsCustomApp() {
		p := pathActivity.Child("extension")
		tc.DecryptField(b, nameExtension, key, &ext.ContentURL, p.Child("contentUrl"), domain.SeverityError)
		tc.DecryptField(b, nameExtension, key, &ext.DisplayName, p.Child("displayName"), domain.SeverityError)
		tc.DecryptField(b, nameExtension, key, &ext.WebURL, p.Child("webUrl"), domain.SeverityError)
		if a.Verb == ediscovery.VerbUpdate && ext.Previous != nil {
			pp := p.Child("previous")
			tc.DecryptField(b, nameExtension, key, &ext.Previous.ContentURL, pp.Child("contentUrl"), domain.SeverityError)
			tc.DecryptField(b, nameExtension, key, &ext.Previous.DisplayName, pp.Child("displayName"), domain.SeverityError)
		}
	}

	if a.Meeting != nil {
		tc.DecryptField(b, nameMeetingTitle, key, &a.Meeting.Title, pathActivity.Child("meeting").Child("title"), domain.SeverityError)
	}
	if a.Recording != nil {
		tc.DecryptField(b, transform.NamePropTopic, key, &a.Recording.Topic, pathActivity.Child("recording").Child("topic"), domain.SeverityError)
	}

	s.decryptShares(ctx, tc, b, key, a.Files, "files", true)
	s.decryptShares(ctx, tc, b, key, a.Whiteboards, "whiteboards", false)
	s.decryptShares(ctx, tc, b, key, a.Links, "links", true)

	b.Wait(ctx)
}

// decryptShares schedules the fields of each share. Whiteboard display names
// are stored in plaintext and are skipped.
func (s *EdiscoveryService) decryptShares(ctx context.Context, tc *transform.Context, b *transform.Batch, key string, shares []*ediscovery.Share, field string, encryptedName bool) {
	for i, share := range shares {
		if share == nil {
			continue
		}
		p := pathActivity.Index(field, i)

		if encryptedName {
			tc.DecryptField(b, transform.NamePropDisplayName, key, &share.DisplayName, p.Child("displayName"), domain.SeverityWarning)
		}

		if info := share.MicrosoftSharedLinkInfo; info != nil {
			lp := p.Child("microsoftSharedLinkInfo")
			tc.DecryptField(b, nameSharedLink, key, &info.DriveID, lp.Child("driveId"), domain.SeverityError)
			tc.DecryptField(b, nameSharedLink, key, &info.ItemID, lp.Child("itemId"), domain.SeverityError)
		}

		if tc.ConflictingReferences(ctx, share.Scr, share.Sslr, p) {
			continue
		}
		refKey := share.EncryptionKeyURL
		if refKey == "" {
			refKey = key
		}
		switch {
		case share.Scr != nil:
			tc.DecryptScr(b, transform.NamePropScr, refKey, share.Scr, p.Child("scr"))
		case share.Sslr != "":
			tc.DecryptSslr(b, transform.NamePropSslr, refKey, &share.Sslr, p.Child("sslr"))
		}
	}
}

// DecryptReportContentContainer decrypts a container's name and, when it has
// its own key, its description. Both run concurrently and failures are
// warnings.
func (s *EdiscoveryService) DecryptReportContentContainer(ctx context.Context, env *ports.Envelope[*ediscovery.ContentContainer]) (*ports.Envelope[*ediscovery.ContentContainer], error) {
	if env == nil || env.Body == nil || env.Body.ContainerName == "" {
		return env, nil
	}
	c := env.Body

	ctx, end := s.begin(ctx, OpDecryptReportContentContainer)
	ctx = withLogAttrs(ctx, s.logger,
		slog.String("container_id", c.ContainerID),
		slog.String("container_type", c.ContainerType),
	)

	if c.EncryptionKeyURL == "" {
		logging.FromContext(ctx).InfoContext(ctx, "container has no encryption key, leaving it as is",
			slog.String("operation", OpDecryptReportContentContainer),
			slog.String("reason", domain.ErrMissingKeyReference.Error()),
		)
		end(nil, nil)
		return env, nil
	}

	tc := s.newContext(OpDecryptReportContentContainer,
		transform.WithPolicy(s.policy),
		transform.WithDelegate(c.OnBehalfOfUser),
	)

	if c.OnBehalfOfUser == "" {
		tc.Fail(ctx, pathContainer, domain.SeverityError, fmt.Errorf(
			"%w: no user available with which to decrypt %s container %s",
			domain.ErrMissingDelegate, c.ContainerType, c.ContainerID))
	} else {
		b := tc.Batch()
		if c.Description != "" && c.DescriptionEncryptionKeyURL != "" {
			tc.DecryptField(b, nameContainerDesc, c.DescriptionEncryptionKeyURL, &c.Description, pathContainer.Child("description"), domain.SeverityWarning)
		}
		tc.DecryptField(b, nameContainerName, c.EncryptionKeyURL, &c.ContainerName, pathContainer.Child("containerName"), domain.SeverityWarning)
		b.Wait(ctx)
	}

	annotations := tc.Annotations().List()
	end(annotations, nil)
	return &ports.Envelope[*ediscovery.ContentContainer]{Body: c, Annotations: annotations}, nil
}
