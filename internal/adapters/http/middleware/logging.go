package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
)

// headerOnBehalfOf names the delegate a conversation decrypt runs as.
const headerOnBehalfOf = "X-On-Behalf-Of"

// Logging stores a request logger carrying the request and correlation IDs
// in the context for handlers and the transform engine, and logs each
// request's outcome. 5xx completions log at error, 4xx at warn. Whether a
// delegate was named is logged; the delegate itself never is.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Bool("delegated", r.Header.Get(headerOnBehalfOf) != ""),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			sr := record(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			child.LogAttrs(ctx, completionLevel(sr.status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", sr.status),
				slog.Int64("bytes", sr.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
