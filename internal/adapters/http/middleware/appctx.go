package middleware

import (
	"log/slog"
	"net/http"

	appctx "github.com/jsamuelsen11/go-ediscovery-transforms/internal/app/context"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
)

// AppContext gives each request its own memo for container lookups, bound to
// the request context as Timeout left it. The memo is dropped when the
// request ends; its size is logged at debug.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)

			next.ServeHTTP(w, r.WithContext(ctx))

			logging.FromContext(ctx).DebugContext(ctx, "request memo released",
				slog.Int("entries", rc.Len()),
			)
		})
	}
}
