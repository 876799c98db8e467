package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/clients/acl/kms"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/config"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/retry"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

// Compile-time interface check.
var _ ports.KeyManager = (*KMSClient)(nil)

// HeaderOnBehalfOf carries the delegate identity of a decryption.
const HeaderOnBehalfOf = "X-On-Behalf-Of"

// KMSServiceName names the gateway in traces, metrics and breaker logs.
const KMSServiceName = "kms"

// KMSClient is the outbound adapter for the key-management gateway. It
// implements [ports.KeyManager] over the gateway's JSON API.
//
// HTTP errors are mapped to domain errors by [TranslateHTTPError]: a 403 on
// decrypt becomes [domain.ErrForbidden] and a 5xx becomes
// [domain.ErrUnavailable]. The underlying [httpclient.Client] provides
// circuit breaking, rate limiting and tracing. Each method makes exactly one
// gateway call; retries belong to the transform engine.
type KMSClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewKMSHTTPClient builds the gateway transport from cfg with retries
// disabled, whatever cfg.Retry says.
func NewKMSHTTPClient(cfg *config.ClientConfig, metrics *telemetry.Metrics, logger *slog.Logger) *httpclient.Client {
	return httpclient.New(cfg, KMSServiceName, metrics, logger, httpclient.WithRetryPolicy(retry.None()))
}

// NewKMSClient creates a KMSClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the gateway root.
func NewKMSClient(client *httpclient.Client, logger *slog.Logger) *KMSClient {
	return &KMSClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// CreateUnboundKeys issues count keys from POST /api/v1/keys.
func (c *KMSClient) CreateUnboundKeys(ctx context.Context, count int) ([]ports.Key, error) {
	var dto kms.KeyListResponseDTO
	if err := c.req.Send(ctx, call{
		method: http.MethodPost, path: "/api/v1/keys", want: http.StatusCreated,
		in: kms.CreateKeysRequestDTO{Count: count}, out: &dto,
	}); err != nil {
		return nil, err
	}
	return kms.ToDomainKeys(dto), nil
}

// CreateResource binds keys to a new resource via POST /api/v1/resources.
func (c *KMSClient) CreateResource(ctx context.Context, userIDs []string, keys []ports.Key) error {
	return c.req.Send(ctx, call{
		method: http.MethodPost, path: "/api/v1/resources", want: http.StatusCreated,
		in: kms.ToCreateResourceRequest(userIDs, keys),
	})
}

// EncryptText encrypts plaintext under key via POST /api/v1/encrypt.
func (c *KMSClient) EncryptText(ctx context.Context, key ports.Key, plaintext string) (string, error) {
	var dto kms.EncryptResponseDTO
	if err := c.req.Send(ctx, call{
		method: http.MethodPost, path: "/api/v1/encrypt", want: http.StatusOK,
		in: kms.EncryptRequestDTO{KeyURI: key.URI, Plaintext: plaintext}, out: &dto,
	}); err != nil {
		return "", err
	}
	return dto.Ciphertext, nil
}

// DecryptText decrypts ciphertext via POST /api/v1/decrypt. A non-empty
// opts.OnBehalfOf is sent in the X-On-Behalf-Of header.
func (c *KMSClient) DecryptText(ctx context.Context, keyURI, ciphertext string, opts ports.DecryptOptions) (string, error) {
	var dto kms.DecryptResponseDTO
	if err := c.req.Send(ctx, call{
		method: http.MethodPost, path: "/api/v1/decrypt", header: delegateHeader(opts), want: http.StatusOK,
		in: kms.DecryptRequestDTO{KeyURI: keyURI, Ciphertext: ciphertext}, out: &dto,
	}); err != nil {
		return "", err
	}
	return dto.Plaintext, nil
}

// DecryptSecureReference decrypts an scr or sslr via
// POST /api/v1/decrypt/scr.
func (c *KMSClient) DecryptSecureReference(ctx context.Context, keyURI, ref string, opts ports.DecryptOptions) (*conversation.SecureContentReference, error) {
	var dto kms.SecureReferenceDTO
	if err := c.req.Send(ctx, call{
		method: http.MethodPost, path: "/api/v1/decrypt/scr", header: delegateHeader(opts), want: http.StatusOK,
		in: kms.DecryptReferenceRequestDTO{KeyURI: keyURI, Ref: ref}, out: &dto,
	}); err != nil {
		return nil, err
	}
	if dto.Loc == "" {
		return nil, fmt.Errorf("decrypting secure reference: gateway returned no location")
	}
	return kms.ToDomainSecureReference(&dto), nil
}

func delegateHeader(opts ports.DecryptOptions) http.Header {
	if opts.OnBehalfOf == "" {
		return nil
	}
	h := http.Header{}
	h.Set(HeaderOnBehalfOf, opts.OnBehalfOf)
	return h
}
