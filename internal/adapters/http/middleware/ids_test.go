package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/config"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/retry"
)

// idsHandler runs RequestID then CorrelationID and captures what the inner
// handler saw in its context.
func idsHandler(seen *[2]string) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[0] = middleware.RequestIDFromContext(r.Context())
		seen[1] = middleware.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return middleware.RequestID()(middleware.CorrelationID()(inner))
}

func TestIDs_Propagation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		requestID   string
		correlation string
		wantReq     func(t *testing.T, got string)
		wantCorr    func(t *testing.T, req, got string)
	}{
		{
			name:        "inbound IDs are kept",
			requestID:   "review-batch-17",
			correlation: "matter-2291",
			wantReq:     func(t *testing.T, got string) { assert.Equal(t, "review-batch-17", got) },
			wantCorr:    func(t *testing.T, _, got string) { assert.Equal(t, "matter-2291", got) },
		},
		{
			name:     "missing IDs are generated and correlated",
			wantReq:  func(t *testing.T, got string) { assert.NoError(t, uuid.Validate(got)) },
			wantCorr: func(t *testing.T, req, got string) { assert.Equal(t, req, got) },
		},
		{
			name:        "control characters are replaced",
			requestID:   "id\tforged=true",
			correlation: "corr\x7f",
			wantReq:     func(t *testing.T, got string) { assert.NoError(t, uuid.Validate(got)) },
			wantCorr:    func(t *testing.T, req, got string) { assert.Equal(t, req, got) },
		},
		{
			name:        "oversized IDs are replaced",
			requestID:   strings.Repeat("r", 129),
			correlation: "matter-2291",
			wantReq:     func(t *testing.T, got string) { assert.NoError(t, uuid.Validate(got)) },
			wantCorr:    func(t *testing.T, _, got string) { assert.Equal(t, "matter-2291", got) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen [2]string
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/objects/decrypt", http.NoBody)
			if tt.requestID != "" {
				req.Header.Set("X-Request-ID", tt.requestID)
			}
			if tt.correlation != "" {
				req.Header.Set("X-Correlation-ID", tt.correlation)
			}

			idsHandler(&seen).ServeHTTP(rec, req)

			tt.wantReq(t, seen[0])
			tt.wantCorr(t, seen[0], seen[1])
			assert.Equal(t, seen[0], rec.Header().Get("X-Request-ID"))
			assert.Equal(t, seen[1], rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestIDs_ForwardedToOutboundCalls(t *testing.T) {
	t.Parallel()

	var gotReq, gotCorr string
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Header.Get("X-Request-ID")
		gotCorr = r.Header.Get("X-Correlation-ID")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(gateway.Close)

	client := httpclient.New(&config.ClientConfig{
		BaseURL:        gateway.URL,
		Timeout:        5 * time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	}, "ediscovery-api", nil, slog.New(slog.DiscardHandler), httpclient.WithRetryPolicy(retry.None()))

	handler := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out, err := http.NewRequestWithContext(r.Context(), http.MethodPost, client.BaseURL()+"/api/v1/lookup", http.NoBody)
		require.NoError(t, err)
		resp, err := client.Do(r.Context(), out)
		require.NoError(t, err)
		_ = resp.Body.Close()
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities/decrypt", http.NoBody)
	req.Header.Set("X-Request-ID", "req-77")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "req-77", gotReq)
	assert.Equal(t, "req-77", gotCorr)
}
