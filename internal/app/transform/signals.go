package transform

import (
	"context"
	"log/slog"
	"time"

	"github.com/zoobzio/capitan"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
)

// Signals emitted by transform traversals.
var (
	SignalTransformStart      = capitan.NewSignal("transform.start", "Transform traversal beginning")
	SignalTransformComplete   = capitan.NewSignal("transform.complete", "Transform traversal finished")
	SignalAnnotationRecorded  = capitan.NewSignal("transform.annotation", "Annotation recorded on a payload node")
	SignalKeyProvisioned      = capitan.NewSignal("transform.key.provisioned", "Encryption key created and bound")
	SignalProvisioningAborted = capitan.NewSignal("transform.key.aborted", "Encryption rejected, payload restored")
)

// Signal field keys.
var (
	KeyOperation   = capitan.NewStringKey("operation")
	KeyPath        = capitan.NewStringKey("path")
	KeySeverity    = capitan.NewStringKey("severity")
	KeyKind        = capitan.NewStringKey("kind")
	KeyAnnotations = capitan.NewIntKey("annotations")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// EmitStart emits the start of an entry point traversal.
func EmitStart(ctx context.Context, operation string) {
	capitan.Emit(ctx, SignalTransformStart, KeyOperation.Field(operation))
}

// EmitComplete emits the end of an entry point traversal. err is set only
// when the entry point itself failed.
func EmitComplete(ctx context.Context, operation string, annotations int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyOperation.Field(operation),
		KeyAnnotations.Field(annotations),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalTransformComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalTransformComplete, fields...)
	}
}

func emitAnnotation(ctx context.Context, operation string, a domain.Annotation) {
	capitan.Emit(ctx, SignalAnnotationRecorded,
		KeyOperation.Field(operation),
		KeyPath.Field(a.Path.String()),
		KeySeverity.Field(string(a.Severity)),
		KeyKind.Field(string(a.Kind)),
	)
}

func emitKeyProvisioned(ctx context.Context, operation string) {
	capitan.Emit(ctx, SignalKeyProvisioned, KeyOperation.Field(operation))
}

func emitProvisioningAborted(ctx context.Context, operation string, err error) {
	capitan.Error(ctx, SignalProvisioningAborted, KeyOperation.Field(operation), KeyError.Field(err))
}

// ObserveSignals logs every transform signal emitted on the default capitan
// instance. Provisioning aborts and failed traversals log at error, traversals
// that recorded annotations at warn, key provisioning at info, and the rest
// at debug. Close the returned observer, then call capitan.Shutdown, to stop.
func ObserveSignals(logger *slog.Logger) *capitan.Observer {
	return capitan.Observe(func(ctx context.Context, e *capitan.Event) {
		operation, _ := KeyOperation.From(e)
		attrs := []slog.Attr{
			slog.String("signal", e.Signal().Name()),
			slog.String("operation", operation),
		}
		level := slog.LevelDebug
		msg := e.Signal().Description()

		switch e.Signal() {
		case SignalKeyProvisioned:
			level = slog.LevelInfo
		case SignalProvisioningAborted:
			level = slog.LevelError
		case SignalTransformComplete:
			annotations, _ := KeyAnnotations.From(e)
			duration, _ := KeyDuration.From(e)
			attrs = append(attrs, slog.Int("annotations", annotations), slog.Duration("duration", duration))
			if annotations > 0 {
				level = slog.LevelWarn
			}
		case SignalAnnotationRecorded:
			path, _ := KeyPath.From(e)
			severity, _ := KeySeverity.From(e)
			kind, _ := KeyKind.From(e)
			attrs = append(attrs, slog.String("path", path), slog.String("severity", severity), slog.String("kind", kind))
		}

		if err, ok := KeyError.From(e); ok && err != nil {
			level = slog.LevelError
			attrs = append(attrs, slog.Any("error", err))
		}

		logger.LogAttrs(ctx, level, msg, attrs...)
	},
		SignalTransformStart,
		SignalTransformComplete,
		SignalAnnotationRecorded,
		SignalKeyProvisioned,
		SignalProvisioningAborted,
	)
}
