package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
)

// Timeout bounds each request by timeout. The handler runs on its own
// goroutine against a buffered writer; when the deadline passes first the
// client gets an RFC 9457 504 and later handler writes fail with
// http.ErrHandlerTimeout. A handler panic is re-raised on the serving
// goroutine so Recovery sees it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{w: w, header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flush()
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.expired = true

				if r.Context().Err() != nil {
					logging.FromContext(ctx).DebugContext(ctx, "client went away before the response",
						slog.String("path", r.URL.Path),
					)
					return
				}
				logging.FromContext(ctx).WarnContext(ctx, "request deadline exceeded",
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", timeout),
				)
				dto.WriteErrorResponse(w, r,
					fmt.Errorf("request exceeded %s: %w", timeout, context.DeadlineExceeded))
			}
		})
	}
}

// timeoutWriter buffers the handler's response until the handler returns.
// The handler goroutine and the deadline path share mu.
type timeoutWriter struct {
	w  http.ResponseWriter
	mu sync.Mutex

	header      http.Header
	buf         []byte
	status      int
	wroteHeader bool
	expired     bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.status = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.expired || tw.wroteHeader {
		return
	}
	tw.status = code
	tw.wroteHeader = true
}

// flush copies the buffered response to w. Callers hold mu.
func (tw *timeoutWriter) flush() {
	maps.Copy(tw.w.Header(), tw.header)
	if tw.wroteHeader {
		tw.w.WriteHeader(tw.status)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}
