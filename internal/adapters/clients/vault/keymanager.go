// Package vault implements the key-management port on HashiCorp Vault. Keys
// are transit keys; resource bindings, the per-key list of users allowed to
// decrypt on behalf of others, are kept in a KV v2 mount.
package vault

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/vault/api"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/config"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

// Compile-time interface check.
var _ ports.KeyManager = (*KeyManager)(nil)

const (
	uriScheme   = "vault://"
	keyType     = "aes256-gcm96"
	bindingsDir = "ediscovery/bindings"

	// ServiceUser is the user a transit key is issued to.
	ServiceUser = "ediscovery-transforms"
)

// KeyManager implements [ports.KeyManager] with Vault transit encryption.
// Key URIs have the form vault://{transitMount}/keys/{name}.
type KeyManager struct {
	client  *api.Client
	transit string
	kv      string
	log     *slog.Logger
}

// NewKeyManager creates a KeyManager for the Vault server in cfg.
func NewKeyManager(cfg config.VaultConfig, log *slog.Logger) (*KeyManager, error) {
	vc := api.DefaultConfig()
	vc.Address = cfg.Address
	if cfg.Timeout > 0 {
		vc.Timeout = cfg.Timeout
	}

	client, err := api.NewClient(vc)
	if err != nil {
		return nil, fmt.Errorf("creating Vault client: %w", err)
	}
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	return &KeyManager{
		client:  client,
		transit: strings.Trim(cfg.TransitMount, "/"),
		kv:      strings.Trim(cfg.KVMount, "/"),
		log:     log,
	}, nil
}

// CreateUnboundKeys creates count transit keys with random names.
func (m *KeyManager) CreateUnboundKeys(ctx context.Context, count int) ([]ports.Key, error) {
	keys := make([]ports.Key, 0, count)
	for range count {
		name := uuid.NewString()
		path := fmt.Sprintf("%s/keys/%s", m.transit, name)
		if _, err := m.client.Logical().WriteWithContext(ctx, path, map[string]any{"type": keyType}); err != nil {
			return nil, m.translate(ctx, "creating key", path, err)
		}
		keys = append(keys, ports.Key{URI: m.keyURI(name), UserID: ServiceUser})
	}
	return keys, nil
}

// binding is the KV record stored per bound key.
type binding struct {
	Resource string   `json:"resource"`
	UserIDs  []string `json:"userIds"`
}

// CreateResource records a binding for each key admitting userIDs.
func (m *KeyManager) CreateResource(ctx context.Context, userIDs []string, keys []ports.Key) error {
	resource := uuid.NewString()
	for _, k := range keys {
		name, err := m.keyName(k.URI)
		if err != nil {
			return err
		}
		path := m.bindingPath(name)
		data := map[string]any{
			"data": map[string]any{
				"resource": resource,
				"userIds":  userIDs,
			},
		}
		if _, err := m.client.Logical().WriteWithContext(ctx, path, data); err != nil {
			return m.translate(ctx, "binding key", path, err)
		}
	}
	return nil
}

// EncryptText encrypts plaintext with the transit key of key.URI.
func (m *KeyManager) EncryptText(ctx context.Context, key ports.Key, plaintext string) (string, error) {
	name, err := m.keyName(key.URI)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("%s/encrypt/%s", m.transit, name)
	secret, err := m.client.Logical().WriteWithContext(ctx, path, map[string]any{
		"plaintext": base64.StdEncoding.EncodeToString([]byte(plaintext)),
	})
	if err != nil {
		return "", m.translate(ctx, "encrypting", path, err)
	}

	ciphertext, ok := stringField(secret, "ciphertext")
	if !ok {
		return "", fmt.Errorf("encrypting with %s: response has no ciphertext", name)
	}
	return ciphertext, nil
}

// DecryptText decrypts ciphertext with the transit key at keyURI. A bound key
// read without a delegate gets [domain.ErrMissingDelegate]; a delegate not
// admitted by the binding gets [domain.ErrForbidden].
func (m *KeyManager) DecryptText(ctx context.Context, keyURI, ciphertext string, opts ports.DecryptOptions) (string, error) {
	name, err := m.keyName(keyURI)
	if err != nil {
		return "", err
	}
	if err := m.authorize(ctx, name, opts.OnBehalfOf); err != nil {
		return "", err
	}

	path := fmt.Sprintf("%s/decrypt/%s", m.transit, name)
	secret, err := m.client.Logical().WriteWithContext(ctx, path, map[string]any{"ciphertext": ciphertext})
	if err != nil {
		return "", m.translate(ctx, "decrypting", path, err)
	}

	encoded, ok := stringField(secret, "plaintext")
	if !ok {
		return "", fmt.Errorf("decrypting with %s: response has no plaintext", name)
	}
	plaintext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding plaintext from %s: %w", name, err)
	}
	return string(plaintext), nil
}

// DecryptSecureReference decrypts an scr or sslr. An scr decrypts to a JSON
// content reference; an sslr decrypts to a bare location.
func (m *KeyManager) DecryptSecureReference(ctx context.Context, keyURI, ref string, opts ports.DecryptOptions) (*conversation.SecureContentReference, error) {
	plaintext, err := m.DecryptText(ctx, keyURI, ref, opts)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(strings.TrimSpace(plaintext), "{") {
		var out conversation.SecureContentReference
		if err := json.Unmarshal([]byte(plaintext), &out); err != nil {
			return nil, fmt.Errorf("%w: decoding secure reference: %w", domain.ErrInvalidReference, err)
		}
		return &out, nil
	}
	return &conversation.SecureContentReference{Loc: plaintext}, nil
}

// authorize checks delegate against the binding of key name. Keys without a
// binding are readable by any caller; a bound key needs a delegate listed in
// its binding.
func (m *KeyManager) authorize(ctx context.Context, name, delegate string) error {
	path := m.bindingPath(name)
	secret, err := m.client.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return m.translate(ctx, "reading binding", path, err)
	}
	if secret == nil || secret.Data == nil {
		return nil
	}

	raw, err := json.Marshal(secret.Data["data"])
	if err != nil {
		return fmt.Errorf("encoding binding of %s: %w", name, err)
	}
	var b binding
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("decoding binding of %s: %w", name, err)
	}

	if delegate == "" {
		return fmt.Errorf("key %s is bound to a resource: %w", name, domain.ErrMissingDelegate)
	}
	if !slices.Contains(b.UserIDs, delegate) {
		return fmt.Errorf("%s may not decrypt with key %s: %w", delegate, name, domain.ErrForbidden)
	}
	return nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (m *KeyManager) Name() string {
	return "vault"
}

// HealthCheck reports whether Vault is initialized and unsealed. A standby
// node forwards transit calls to the active one and is reported as
// [ports.ErrDegraded].
func (m *KeyManager) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	health, err := m.client.Sys().HealthWithContext(ctx)
	if err != nil {
		return fmt.Errorf("vault: %w", err)
	}
	if !health.Initialized || health.Sealed {
		return fmt.Errorf("vault: not available (initialized=%t, sealed=%t)", health.Initialized, health.Sealed)
	}
	if health.Standby {
		return fmt.Errorf("vault: standby node: %w", ports.ErrDegraded)
	}
	return nil
}

func (m *KeyManager) keyURI(name string) string {
	return uriScheme + m.transit + "/keys/" + name
}

func (m *KeyManager) keyName(uri string) (string, error) {
	prefix := uriScheme + m.transit + "/keys/"
	name, ok := strings.CutPrefix(uri, prefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("key %q is not a %s key: %w", uri, prefix, domain.ErrValidation)
	}
	return name, nil
}

func (m *KeyManager) bindingPath(name string) string {
	return fmt.Sprintf("%s/data/%s/%s", m.kv, bindingsDir, name)
}

// translate maps a Vault client error to a domain error.
func (m *KeyManager) translate(ctx context.Context, op, path string, err error) error {
	m.log.ErrorContext(ctx, "vault request failed",
		slog.String("operation", op),
		slog.String("path", path),
		slog.Any("error", err),
	)

	var respErr *api.ResponseError
	if !errors.As(err, &respErr) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}

	switch {
	case respErr.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case respErr.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", op, domain.ErrForbidden)
	case respErr.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%s: %s: %w", op, strings.Join(respErr.Errors, "; "), domain.ErrValidation)
	case respErr.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", op, domain.ErrUnavailable)
	default:
		return fmt.Errorf("%s: unexpected status %d", op, respErr.StatusCode)
	}
}

func stringField(secret *api.Secret, key string) (string, bool) {
	if secret == nil || secret.Data == nil {
		return "", false
	}
	v, ok := secret.Data[key].(string)
	return v, ok
}
