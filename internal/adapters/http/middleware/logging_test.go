package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
)

// jsonRecords decodes every JSON log line in buf, keyed by message.
func jsonRecords(t *testing.T, buf *bytes.Buffer) map[string]map[string]any {
	t.Helper()

	records := map[string]map[string]any{}
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		records[rec["msg"].(string)] = rec
	}
	return records
}

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func TestLogging_CompletionRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.CorrelationID(), middleware.Logging(jsonLogger(&buf)))
	r.Post("/api/v1/reports/{reportId}/content/decrypt", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"body":{}}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/matter-2291/content/decrypt", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-1")
	req.Header.Set("X-Correlation-ID", "matter-2291")
	r.ServeHTTP(httptest.NewRecorder(), req)

	records := jsonRecords(t, &buf)

	started := records["request started"]
	require.NotNil(t, started)
	assert.Equal(t, false, started["delegated"])

	done := records["request completed"]
	require.NotNil(t, done)
	assert.Equal(t, "INFO", done["level"])
	assert.Equal(t, "req-log-1", done["request_id"])
	assert.Equal(t, "matter-2291", done["correlation_id"])
	assert.Equal(t, "/api/v1/reports/{reportId}/content/decrypt", done["route"])
	assert.InDelta(t, http.StatusOK, done["status"], 0)
	assert.InDelta(t, len(`{"body":{}}`), done["bytes"], 0)
	assert.Contains(t, done, "duration")
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusBadRequest, "WARN"},
		{http.StatusForbidden, "WARN"},
		{http.StatusBadGateway, "ERROR"},
		{http.StatusGatewayTimeout, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(jsonLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/objects/decrypt", http.NoBody))

			done := jsonRecords(t, &buf)["request completed"]
			require.NotNil(t, done)
			assert.Equal(t, tt.wantLevel, done["level"])
			assert.Equal(t, "unmatched", done["route"])
		})
	}
}

func TestLogging_DelegateIsFlaggedNotLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(jsonLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities/decrypt", http.NoBody)
	req.Header.Set("X-On-Behalf-Of", "compliance-officer-7")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, true, jsonRecords(t, &buf)["request started"]["delegated"])
	assert.NotContains(t, buf.String(), "compliance-officer-7")
}

func TestLogging_StoresRequestLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(
		middleware.Logging(jsonLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "container looked up")
		})),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/containers/decrypt", http.NoBody)
	req.Header.Set("X-Request-ID", "req-ctx-logger")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	lookup := jsonRecords(t, &buf)["container looked up"]
	require.NotNil(t, lookup, "handler log did not reach the request logger")
	assert.Equal(t, "req-ctx-logger", lookup["request_id"])
}
