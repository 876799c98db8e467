// Package logging builds the service's slog logger and carries the
// request-scoped logger through context.
//
// Every record passes the masq redaction layer first, so ciphertext,
// plaintext, delegate identities and credentials never reach the output even
// when a call site forgets to mask them.
//
// Application code logs through the request logger:
//
//	log := logging.FromContext(ctx)
//	log.WarnContext(ctx, "container lookup failed",
//	    slog.String("operation", "DecryptConversation"),
//	    slog.String("container_id", id),
//	    slog.Any("error", err),
//	)
//
// Failures carry the operation, the entity ids and the error chain. The
// HTTP logging middleware has already added request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/config"
)

// Output formats accepted in config.LogConfig.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type ctxKey struct{}

// New builds the process logger from cfg, writing to w. base is attached to
// every record, typically the service name and profile. A debug level adds
// the source location. An unparsable level logs at info and JSON is used for
// any format but "text"; config validation rejects both before this runs.
func New(cfg config.LogConfig, w io.Writer, base ...slog.Attr) *slog.Logger {
	level := ParseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, opts)
	}
	if len(base) > 0 {
		h = h.WithAttrs(base)
	}
	return slog.New(h)
}

// ParseLevel reads a slog level name in any case ("debug", "WARN", "info+2").
// Anything else is info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// WithLogger stores logger in ctx for FromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
