package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of HTTP header names (lowercase) whose values
// must never reach a log line: credentials and the delegate identity of a
// decryption. The masq layer and the HTTP middleware's RedactHeaders both
// consult it through IsSensitiveHeader.
var SensitiveHeaders = map[string]bool{
	"authorization":  true,
	"cookie":         true,
	"x-api-key":      true,
	"x-on-behalf-of": true,
}

// IsSensitiveHeader reports whether name is in SensitiveHeaders, ignoring
// case. Headers are logged under their canonical form (X-On-Behalf-Of).
func IsSensitiveHeader(name string) bool {
	return SensitiveHeaders[strings.ToLower(name)]
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches raw JWT strings (header.payload.signature). Requires at
// least 10 characters per segment to avoid false positives on short
// dot-separated strings like version numbers.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// jwePattern matches compact JWE serializations (five segments, the second
// possibly empty for direct key agreement), the shape of every ciphertext the
// key-management service returns.
var jwePattern = regexp.MustCompile(`eyJ[a-zA-Z0-9\-_]+\.[a-zA-Z0-9\-_]*\.[a-zA-Z0-9\-_]+\.[a-zA-Z0-9\-_]+\.[a-zA-Z0-9\-_]+`)

// apiKeyInlinePattern matches inline "api_key=<value>" or "apikey:<value>"
// patterns that may appear in arbitrary string fields.
var apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		// masq matches field names exactly; header keys arrive canonicalized.
		masq.WithCensor(func(fieldName string, _ any, _ string) bool {
			return IsSensitiveHeader(fieldName)
		}),

		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("ciphertext"),
		masq.WithFieldName("plaintext"),

		// Prefix-based redaction for variations like "secret_key", "api_key_v2".
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithFieldPrefix("on_behalf_of"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwePattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)
}
