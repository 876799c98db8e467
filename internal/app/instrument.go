package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/app/transform"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/go-ediscovery-transforms/internal/app"

// Result labels of transform.operation.duration.
const (
	resultOK        = "ok"
	resultAnnotated = "annotated"
	resultError     = "error"
)

// instrumentation wraps every entry point in a span, the transform metrics
// and the start/complete signals. A nil metrics disables metric recording.
type instrumentation struct {
	metrics *telemetry.Metrics
}

// begin starts an entry point. The returned func ends it with the
// annotations the traversal recorded and the error returned to the caller.
func (in instrumentation) begin(ctx context.Context, operation string) (context.Context, func([]domain.Annotation, error)) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, operation,
		trace.WithAttributes(telemetry.AttrOperation.String(operation)),
	)
	transform.EmitStart(ctx, operation)
	start := time.Now()

	return ctx, func(annotations []domain.Annotation, err error) {
		elapsed := time.Since(start)
		defer span.End()

		result := resultOK
		switch {
		case err != nil:
			result = resultError
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case len(annotations) > 0:
			result = resultAnnotated
		}
		span.SetAttributes(attribute.Int("transform.annotations", len(annotations)))

		if in.metrics != nil {
			in.metrics.TransformDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
				telemetry.AttrOperation.String(operation),
				telemetry.AttrResult.String(result),
			))
			for _, a := range annotations {
				in.metrics.AnnotationTotal.Add(ctx, 1, metric.WithAttributes(
					telemetry.AttrOperation.String(operation),
					telemetry.AttrSeverity.String(string(a.Severity)),
					telemetry.AttrKind.String(string(a.Kind)),
				))
			}
		}

		transform.EmitComplete(ctx, operation, len(annotations), elapsed, err)
	}
}

// withLogAttrs stores a logger carrying attrs in ctx. The request logger is
// used when the middleware installed one, otherwise base.
func withLogAttrs(ctx context.Context, base *slog.Logger, attrs ...any) context.Context {
	l := logging.FromContext(ctx)
	if l == slog.Default() && base != nil {
		l = base
	}
	return logging.WithLogger(ctx, l.With(attrs...))
}
