package vault

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/config"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

const cipherPrefix = "vault:v1:"

// fakeVault serves the transit, KV v2 and health endpoints the key manager
// uses. Ciphertext is the base64 plaintext behind a version prefix.
type fakeVault struct {
	mu       sync.Mutex
	keys     map[string]bool
	bindings map[string]map[string]any
	locked   map[string]bool
	standby  bool
}

func newFakeVault(t *testing.T) (*fakeVault, *httptest.Server) {
	t.Helper()

	fv := &fakeVault{
		keys:     map[string]bool{},
		bindings: map[string]map[string]any{},
		locked:   map[string]bool{},
	}
	ts := httptest.NewServer(http.HandlerFunc(fv.serve))
	t.Cleanup(ts.Close)
	return fv, ts
}

func (fv *fakeVault) serve(w http.ResponseWriter, r *http.Request) {
	fv.mu.Lock()
	defer fv.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/v1/")
	var body map[string]any
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	switch {
	case path == "sys/health":
		writeJSON(w, http.StatusOK, map[string]any{"initialized": true, "sealed": false, "standby": fv.standby})

	case strings.HasPrefix(path, "transit/keys/"):
		fv.keys[strings.TrimPrefix(path, "transit/keys/")] = true
		w.WriteHeader(http.StatusNoContent)

	case strings.HasPrefix(path, "transit/encrypt/"):
		plaintext, _ := body["plaintext"].(string)
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"ciphertext": cipherPrefix + plaintext}})

	case strings.HasPrefix(path, "transit/decrypt/"):
		name := strings.TrimPrefix(path, "transit/decrypt/")
		if fv.locked[name] {
			writeJSON(w, http.StatusForbidden, map[string]any{"errors": []string{"permission denied"}})
			return
		}
		ciphertext, _ := body["ciphertext"].(string)
		encoded, ok := strings.CutPrefix(ciphertext, cipherPrefix)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{"errors": []string{"invalid ciphertext"}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"plaintext": encoded}})

	case strings.HasPrefix(path, "secret/data/"+bindingsDir+"/"):
		name := strings.TrimPrefix(path, "secret/data/"+bindingsDir+"/")
		if r.Method == http.MethodGet {
			b, ok := fv.bindings[name]
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]any{"errors": []string{}})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"data": b}})
			return
		}
		data, _ := body["data"].(map[string]any)
		fv.bindings[name] = data
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"version": 1}})

	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"errors": []string{}})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestKeyManager(t *testing.T, address string) *KeyManager {
	t.Helper()

	km, err := NewKeyManager(config.VaultConfig{
		Address:      address,
		Token:        "test-token",
		TransitMount: "transit",
		KVMount:      "secret",
		Timeout:      5 * time.Second,
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return km
}

func TestKeyManager_RoundTrip(t *testing.T) {
	t.Parallel()
	_, ts := newFakeVault(t)
	km := newTestKeyManager(t, ts.URL)
	ctx := context.Background()

	keys, err := km.CreateUnboundKeys(ctx, 1)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0].URI, "vault://transit/keys/"))
	assert.Equal(t, ServiceUser, keys[0].UserID)

	ciphertext, err := km.EncryptText(ctx, keys[0], "Quarterly audit")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ciphertext, cipherPrefix))

	plaintext, err := km.DecryptText(ctx, keys[0].URI, ciphertext, ports.DecryptOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Quarterly audit", plaintext)
}

func TestKeyManager_DelegateMustBeBound(t *testing.T) {
	t.Parallel()
	_, ts := newFakeVault(t)
	km := newTestKeyManager(t, ts.URL)
	ctx := context.Background()

	keys, err := km.CreateUnboundKeys(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, km.CreateResource(ctx, []string{"officer"}, keys[:1]))

	ciphertext, err := km.EncryptText(ctx, keys[0], "secret")
	require.NoError(t, err)

	_, err = km.DecryptText(ctx, keys[0].URI, ciphertext, ports.DecryptOptions{OnBehalfOf: "officer"})
	require.NoError(t, err)

	_, err = km.DecryptText(ctx, keys[0].URI, ciphertext, ports.DecryptOptions{OnBehalfOf: "intruder"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	unbound, err := km.EncryptText(ctx, keys[1], "open")
	require.NoError(t, err)
	got, err := km.DecryptText(ctx, keys[1].URI, unbound, ports.DecryptOptions{OnBehalfOf: "anyone"})
	require.NoError(t, err)
	assert.Equal(t, "open", got)
}

func TestKeyManager_BoundKeyNeedsDelegate(t *testing.T) {
	t.Parallel()
	_, ts := newFakeVault(t)
	km := newTestKeyManager(t, ts.URL)
	ctx := context.Background()

	keys, err := km.CreateUnboundKeys(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, km.CreateResource(ctx, []string{"officer"}, keys[:1]))

	bound, err := km.EncryptText(ctx, keys[0], "privileged memo")
	require.NoError(t, err)

	_, err = km.DecryptText(ctx, keys[0].URI, bound, ports.DecryptOptions{})
	require.ErrorIs(t, err, domain.ErrMissingDelegate)
	assert.NotErrorIs(t, err, domain.ErrForbidden)

	_, err = km.DecryptSecureReference(ctx, keys[0].URI, bound, ports.DecryptOptions{})
	require.ErrorIs(t, err, domain.ErrMissingDelegate)

	unbound, err := km.EncryptText(ctx, keys[1], "lobby notice")
	require.NoError(t, err)
	got, err := km.DecryptText(ctx, keys[1].URI, unbound, ports.DecryptOptions{})
	require.NoError(t, err)
	assert.Equal(t, "lobby notice", got)
}

func TestKeyManager_DecryptSecureReference(t *testing.T) {
	t.Parallel()
	_, ts := newFakeVault(t)
	km := newTestKeyManager(t, ts.URL)
	ctx := context.Background()

	keys, err := km.CreateUnboundKeys(ctx, 1)
	require.NoError(t, err)

	scr, err := km.EncryptText(ctx, keys[0], `{"loc":"https://files.example.com/1","key":"k","iv":"iv"}`)
	require.NoError(t, err)
	ref, err := km.DecryptSecureReference(ctx, keys[0].URI, scr, ports.DecryptOptions{})
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/1", ref.Loc)
	assert.Equal(t, "k", ref.Key)

	sslr, err := km.EncryptText(ctx, keys[0], "https://contoso.sharepoint.com/doc")
	require.NoError(t, err)
	ref, err = km.DecryptSecureReference(ctx, keys[0].URI, sslr, ports.DecryptOptions{})
	require.NoError(t, err)
	assert.Equal(t, "https://contoso.sharepoint.com/doc", ref.Loc)
	assert.Empty(t, ref.Key)

	broken, err := km.EncryptText(ctx, keys[0], `{"loc":`)
	require.NoError(t, err)
	_, err = km.DecryptSecureReference(ctx, keys[0].URI, broken, ports.DecryptOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestKeyManager_ErrorMapping(t *testing.T) {
	t.Parallel()
	fv, ts := newFakeVault(t)
	km := newTestKeyManager(t, ts.URL)
	ctx := context.Background()

	_, err := km.DecryptText(ctx, "kms://other/keys/1", "x", ports.DecryptOptions{})
	assert.ErrorIs(t, err, domain.ErrValidation, "foreign key URI")

	_, err = km.DecryptText(ctx, "vault://transit/keys/k1", "not-a-ciphertext", ports.DecryptOptions{})
	assert.ErrorIs(t, err, domain.ErrValidation, "malformed ciphertext")

	fv.mu.Lock()
	fv.locked["k2"] = true
	fv.mu.Unlock()
	_, err = km.DecryptText(ctx, "vault://transit/keys/k2", cipherPrefix+"eA==", ports.DecryptOptions{})
	assert.ErrorIs(t, err, domain.ErrForbidden, "policy denial")
}

func TestKeyManager_Unreachable(t *testing.T) {
	t.Parallel()
	km := newTestKeyManager(t, "http://127.0.0.1:1")

	_, err := km.CreateUnboundKeys(context.Background(), 1)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("CreateUnboundKeys() error = %v, want ErrUnavailable", err)
	}
}

func TestKeyManager_HealthCheck(t *testing.T) {
	t.Parallel()
	_, ts := newFakeVault(t)
	km := newTestKeyManager(t, ts.URL)

	assert.Equal(t, "vault", km.Name())
	assert.NoError(t, km.HealthCheck(context.Background()))
}

func TestKeyManager_HealthCheckStandbyIsDegraded(t *testing.T) {
	t.Parallel()
	fv, ts := newFakeVault(t)
	fv.standby = true
	km := newTestKeyManager(t, ts.URL)

	err := km.HealthCheck(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrDegraded)
}
