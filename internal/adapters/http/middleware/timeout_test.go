package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/middleware"
)

func TestTimeout_PassesCompletedResponseThrough(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline := r.Context().Deadline()
		assert.True(t, hasDeadline, "handler context has no deadline")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"body":{"displayName":"Q3 plan"}}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/objects/decrypt", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"body":{"displayName":"Q3 plan"}}`, rec.Body.String())
}

func TestTimeout_WritesProblemOnDeadline(t *testing.T) {
	t.Parallel()

	lateWrite := make(chan error, 1)
	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		lateWrite <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reports/r1/content/decrypt-batch", http.NoBody))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var problem dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
	assert.Equal(t, dto.CodeDeadlineExceeded, problem.Code)
	assert.Equal(t, "/api/v1/reports/r1/content/decrypt-batch", problem.Instance)

	select {
	case err := <-lateWrite:
		assert.ErrorIs(t, err, http.ErrHandlerTimeout)
	case <-time.After(time.Second):
		t.Fatal("handler did not finish after the deadline")
	}
	assert.NotContains(t, rec.Body.String(), "too late")
}

func TestTimeout_LogsDeadlineWithRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(
		middleware.Timeout(10 * time.Millisecond)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/activities/decrypt", http.NoBody))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Contains(t, buf.String(), "request deadline exceeded")
	assert.Contains(t, buf.String(), "status=504")
}

func TestTimeout_ClientGoneWritesNothing(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/objects/decrypt", http.NoBody).WithContext(ctx))

	assert.False(t, rec.Flushed)
	assert.Empty(t, rec.Body.String())
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Recovery(testLogger(&buf))(
		middleware.Timeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(errors.New("nil container"))
		})),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/containers/decrypt", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "nil container")
}
