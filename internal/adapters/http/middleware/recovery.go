package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/dto"
)

// errPanic is what the client sees after a recovered panic. The panic value
// and stack only go to the log, since a panic mid-traversal may carry
// decrypted content.
var errPanic = errors.New("handler panicked")

// Recovery turns a handler panic into an RFC 9457 500. Recovery runs before
// RequestID, so the ID is read back from the response header RequestID set.
// http.ErrAbortHandler is re-raised for net/http to abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := record(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("request_id", sr.Header().Get(headerRequestID)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
				)

				if !sr.wroteHeader {
					dto.WriteErrorResponse(sr, r, errPanic)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
