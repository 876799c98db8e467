package transform

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
	"github.com/jsamuelsen11/go-ediscovery-transforms/mocks"
)

const (
	testKey    = "kms://kms.example.com/keys/activity"
	cipherMark = "enc:"
)

var errTransient = errors.New("kms: connection reset")

// seal is the ciphertext the reversible key manager decrypts to plaintext.
func seal(plaintext string) string {
	return cipherMark + plaintext
}

// reversibleKMS returns a key manager mock that strips the cipher mark on
// decryption. Values without the mark fail, so every decrypted field in a
// test must be sealed.
func reversibleKMS(t *testing.T) *mocks.MockKeyManager {
	t.Helper()

	km := mocks.NewMockKeyManager(t)
	km.EXPECT().DecryptText(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _, ciphertext string, _ ports.DecryptOptions) (string, error) {
			if !strings.HasPrefix(ciphertext, cipherMark) {
				return "", errors.New("kms: malformed ciphertext")
			}
			return strings.TrimPrefix(ciphertext, cipherMark), nil
		}).Maybe()
	km.EXPECT().DecryptSecureReference(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _, ref string, _ ports.DecryptOptions) (*conversation.SecureContentReference, error) {
			if !strings.HasPrefix(ref, cipherMark) {
				return nil, errors.New("kms: malformed reference")
			}
			return &conversation.SecureContentReference{
				Loc: strings.TrimPrefix(ref, cipherMark),
				Key: "content-key",
				IV:  "iv",
			}, nil
		}).Maybe()
	return km
}

// recorder collects invocations reported to an Observer.
type recorder struct {
	mu    sync.Mutex
	calls []Invocation
}

func (r *recorder) observe(inv Invocation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, inv)
}

func (r *recorder) all() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Invocation, len(r.calls))
	copy(out, r.calls)
	return out
}

func (r *recorder) names() []string {
	calls := r.all()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Name
	}
	return out
}

// named returns the invocations with the given name, in recording order.
func (r *recorder) named(name string) []Invocation {
	var out []Invocation
	for _, c := range r.all() {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func newTestContext(km ports.KeyManager, opts ...Option) (*Context, *recorder) {
	rec := &recorder{}
	opts = append([]Option{WithObserver(rec.observe)}, opts...)
	return NewContext(NewCrypto(km), DefaultRegistry(), opts...), rec
}
