package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts request headers into slog attributes sorted by
// name. Values of credential headers and of X-On-Behalf-Of are replaced with
// "[REDACTED]" whatever their case; multi-value headers are joined with a
// comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		if logging.IsSensitiveHeader(key) {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(headers[key], ",")))
	}
	return attrs
}
