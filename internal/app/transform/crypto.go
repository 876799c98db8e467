package transform

import (
	"context"
	"errors"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/retry"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

// Crypto wraps the key-management port with per-call retry and delegate
// options. The retry policy is chosen by the caller for each call.
type Crypto struct {
	km ports.KeyManager
}

// NewCrypto returns a crypto adapter over km.
func NewCrypto(km ports.KeyManager) *Crypto {
	return &Crypto{km: km}
}

// CallOption configures one crypto call.
type CallOption func(*callOptions)

type callOptions struct {
	onBehalfOf string
	policy     retry.Policy
}

// WithOnBehalfOf decrypts as user instead of the service identity.
func WithOnBehalfOf(user string) CallOption {
	return func(o *callOptions) { o.onBehalfOf = user }
}

// WithRetry applies p to the call. Without it the call is attempted once.
func WithRetry(p retry.Policy) CallOption {
	return func(o *callOptions) { o.policy = p }
}

func resolve(opts []CallOption) callOptions {
	o := callOptions{policy: retry.None()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.policy.MaxAttempts <= 0 {
		o.policy = retry.None()
	}
	if o.policy.Retryable == nil {
		o.policy = o.policy.WithRetryable(retryableCryptoError)
	}
	return o
}

// DecryptText decrypts ciphertext protected by the key at keyURI.
func (c *Crypto) DecryptText(ctx context.Context, keyURI, ciphertext string, opts ...CallOption) (string, error) {
	o := resolve(opts)

	var plaintext string
	err := retry.Do(ctx, o.policy, "decryptText", func(ctx context.Context) error {
		var err error
		plaintext, err = c.km.DecryptText(ctx, keyURI, ciphertext, ports.DecryptOptions{OnBehalfOf: o.onBehalfOf})
		return err
	})
	if err != nil {
		return "", err
	}
	return plaintext, nil
}

// EncryptText encrypts plaintext under key.
func (c *Crypto) EncryptText(ctx context.Context, key ports.Key, plaintext string, opts ...CallOption) (string, error) {
	o := resolve(opts)

	var ciphertext string
	err := retry.Do(ctx, o.policy, "encryptText", func(ctx context.Context) error {
		var err error
		ciphertext, err = c.km.EncryptText(ctx, key, plaintext)
		return err
	})
	if err != nil {
		return "", err
	}
	return ciphertext, nil
}

// DecryptSecureReference decrypts an scr or sslr. The caller decides which
// part of the result replaces the input: the whole reference for an scr,
// only Loc for an sslr.
func (c *Crypto) DecryptSecureReference(ctx context.Context, keyURI, ref string, opts ...CallOption) (*conversation.SecureContentReference, error) {
	o := resolve(opts)

	var out *conversation.SecureContentReference
	err := retry.Do(ctx, o.policy, "decryptSecureReference", func(ctx context.Context) error {
		var err error
		out, err = c.km.DecryptSecureReference(ctx, keyURI, ref, ports.DecryptOptions{OnBehalfOf: o.onBehalfOf})
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("key management returned an empty secure reference")
	}
	return out, nil
}

// retryableCryptoError rejects failures another attempt cannot fix.
func retryableCryptoError(err error) bool {
	switch {
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrMissingDelegate):
		return false
	default:
		return retry.IsRetryable(err)
	}
}
