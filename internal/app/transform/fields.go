package transform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
)

// DecryptField schedules name on b. The branch decrypts *field under key and
// writes the plaintext back. An empty field is skipped; an empty key leaves
// the field as plaintext and only logs. Failures are annotated at path with
// sev and leave the field untouched.
func (tc *Context) DecryptField(b *Batch, name, key string, field *string, path domain.Path, sev domain.Severity) {
	b.Go(name, path, func(ctx context.Context) {
		if *field == "" {
			return
		}
		if key == "" {
			tc.missingKey(ctx, path)
			return
		}

		plaintext, err := tc.crypto.DecryptText(ctx, key, *field, tc.callOptions()...)
		if err != nil {
			tc.Fail(ctx, path, sev, fmt.Errorf("decrypting %s: %w", path, err))
			return
		}
		*field = plaintext
	})
}

// DecryptScr schedules name on b. The branch replaces an encrypted scr with
// the decrypted reference.
func (tc *Context) DecryptScr(b *Batch, name, key string, scr *conversation.SecureReference, path domain.Path) {
	b.Go(name, path, func(ctx context.Context) {
		if !scr.Encrypted() {
			return
		}
		if key == "" {
			tc.missingKey(ctx, path)
			return
		}

		ref, err := tc.crypto.DecryptSecureReference(ctx, key, scr.Ciphertext, tc.callOptions()...)
		if err != nil {
			tc.Fail(ctx, path, domain.SeverityError, fmt.Errorf("decrypting %s: %w", path, err))
			return
		}
		scr.Decrypted = ref
		scr.Ciphertext = ""
	})
}

// DecryptSslr schedules name on b. The branch replaces *sslr with the
// location of the decrypted shared-link reference.
func (tc *Context) DecryptSslr(b *Batch, name, key string, sslr *string, path domain.Path) {
	b.Go(name, path, func(ctx context.Context) {
		if *sslr == "" {
			return
		}
		if key == "" {
			tc.missingKey(ctx, path)
			return
		}

		ref, err := tc.crypto.DecryptSecureReference(ctx, key, *sslr, tc.callOptions()...)
		if err != nil {
			tc.Fail(ctx, path, domain.SeverityError, fmt.Errorf("decrypting %s: %w", path, err))
			return
		}
		*sslr = ref.Loc
	})
}

// ConflictingReferences reports a share carrying both an scr and an sslr.
// Such a share is annotated at path and neither reference is decrypted.
func (tc *Context) ConflictingReferences(ctx context.Context, scr *conversation.SecureReference, sslr string, path domain.Path) bool {
	if scr == nil || sslr == "" {
		return false
	}
	tc.Fail(ctx, path, domain.SeverityError,
		fmt.Errorf("%w: share carries both scr and sslr", domain.ErrInvalidReference))
	return true
}

// missingKey records a field without a key as plaintext. It is informational
// and never annotated.
func (tc *Context) missingKey(ctx context.Context, path domain.Path) {
	tc.log(ctx).InfoContext(ctx, "no encryption key, leaving field as is",
		slog.String("operation", tc.operation),
		slog.String("path", path.String()),
		slog.String("reason", domain.ErrMissingKeyReference.Error()),
	)
}
