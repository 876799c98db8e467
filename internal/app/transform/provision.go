package transform

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/ediscovery"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

const operationEncryptReportRequest = "EncryptReportRequest"

// Provisioner encrypts outbound report requests under a freshly issued key.
// Unlike decryption, encryption is all or nothing: a request that cannot be
// fully encrypted is never returned.
type Provisioner struct {
	km         ports.KeyManager
	crypto     *Crypto
	maxWorkers int
}

// NewProvisioner returns a provisioner encrypting with up to maxWorkers
// concurrent calls.
func NewProvisioner(km ports.KeyManager, crypto *Crypto, maxWorkers int) *Provisioner {
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}
	return &Provisioner{km: km, crypto: crypto, maxWorkers: maxWorkers}
}

// EncryptReportRequest creates one unbound key, binds it to a resource owned
// by the key's user and encrypts the name, description, space names,
// keywords and emails of req in place. Emails are first copied into
// UnencryptedEmails. When no key is issued req is returned unchanged.
//
// Any failure returns an error wrapping domain.ErrEncryption, and req is
// restored to its original content.
func (p *Provisioner) EncryptReportRequest(ctx context.Context, req *ediscovery.ReportRequest, opts ...CallOption) (*ediscovery.ReportRequest, error) {
	logger := logging.FromContext(ctx)

	keys, err := p.km.CreateUnboundKeys(ctx, 1)
	if err != nil {
		return nil, p.abort(ctx, fmt.Errorf("creating key: %w", err))
	}
	if len(keys) == 0 {
		logger.InfoContext(ctx, "no key issued, sending report request as is",
			slog.String("operation", operationEncryptReportRequest),
		)
		return req, nil
	}
	key := keys[0]

	if err := p.km.CreateResource(ctx, []string{key.UserID}, []ports.Key{key}); err != nil {
		return nil, p.abort(ctx, fmt.Errorf("binding key: %w", err))
	}
	emitKeyProvisioned(ctx, operationEncryptReportRequest)

	snapshot := req.Clone()

	req.EncryptionKeyURL = key.URI
	if req.Emails != nil {
		req.UnencryptedEmails = append([]string(nil), req.Emails...)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)

	encrypt := func(field *string, name string) {
		if *field == "" {
			return
		}
		g.Go(func() error {
			ciphertext, err := p.crypto.EncryptText(gctx, key, *field, opts...)
			if err != nil {
				return fmt.Errorf("encrypting %s: %w", name, err)
			}
			*field = ciphertext
			return nil
		})
	}

	encrypt(&req.Name, "name")
	encrypt(&req.Description, "description")
	for i := range req.SpaceNames {
		encrypt(&req.SpaceNames[i], fmt.Sprintf("spaceNames[%d]", i))
	}
	for i := range req.Keywords {
		encrypt(&req.Keywords[i], fmt.Sprintf("keywords[%d]", i))
	}
	for i := range req.Emails {
		encrypt(&req.Emails[i], fmt.Sprintf("emails[%d]", i))
	}

	if err := g.Wait(); err != nil {
		*req = *snapshot
		return nil, p.abort(ctx, err)
	}

	return req, nil
}

func (p *Provisioner) abort(ctx context.Context, err error) error {
	err = fmt.Errorf("%w: %w", domain.ErrEncryption, err)
	logging.FromContext(ctx).ErrorContext(ctx, "report request encryption aborted",
		slog.String("operation", operationEncryptReportRequest),
		slog.Any("error", err),
	)
	emitProvisioningAborted(ctx, operationEncryptReportRequest, err)
	return err
}
