// Package telemetry wires OpenTelemetry tracing and metrics for the
// transform service and defines the instruments and attribute keys the HTTP
// layer, the downstream clients and the traversals record into.
//
//	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer providers.Shutdown(ctx)
//	providers.Metrics.TransformDuration.Record(ctx, seconds, ...)
//
// With telemetry disabled Setup registers nothing and Metrics is nil; every
// recorder in the service accepts a nil *Metrics.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/config"
)

// Exporters accepted in config.TelemetryConfig.Exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys for spans and metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")

	AttrOperation = attribute.Key("transform.operation")
	AttrSeverity  = attribute.Key("annotation.severity")
	AttrKind      = attribute.Key("annotation.kind")
)

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// Metrics holds the service's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// TransformDuration measures one entry-point traversal, labelled by
	// operation and result.
	TransformDuration metric.Float64Histogram
	// AnnotationTotal counts annotations recorded during traversals,
	// labelled by operation, severity and kind.
	AnnotationTotal metric.Int64Counter
}

// Providers owns the SDK providers registered by Setup. All fields are nil
// when telemetry is disabled.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Option configures Setup.
type Option func(*options)

type options struct {
	stdout     io.Writer
	instanceID string
}

// WithStdoutWriter sends the stdout exporters' output to w.
func WithStdoutWriter(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithInstanceID sets service.instance.id. A random UUID is used otherwise.
func WithInstanceID(id string) Option {
	return func(o *options) { o.instanceID = id }
}

// Setup builds the tracer and meter providers cfg describes, registers them
// and the W3C trace-context propagator globally, and creates the service's
// instruments. On error nothing is left registered or running.
func Setup(ctx context.Context, cfg config.TelemetryConfig, opts ...Option) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	o := options{stdout: os.Stdout, instanceID: uuid.NewString()}
	for _, opt := range opts {
		opt(&o)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceInstanceID(o.instanceID),
	))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spans, err := newSpanExporter(ctx, cfg, o.stdout)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	readings, err := newMetricExporter(ctx, cfg, o.stdout)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(spans),
			sdktrace.WithResource(res),
		),
		Meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
			sdkmetric.WithResource(res),
		),
	}

	p.Metrics, err = NewMetrics(p.Meter, cfg.ServiceName)
	if err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops both providers. Safe on a disabled Providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// NewMetrics creates the service's instruments on a meter named serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	var (
		m    Metrics
		errs []error
	)

	histogram := func(name, desc, unit string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of incoming HTTP requests", "s")
	m.ServerRequestTotal = counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}")
	m.ClientRequestDuration = histogram("http.client.request.duration", "Duration of calls to the key-management and eDiscovery APIs", "s")
	m.ClientRequestTotal = counter("http.client.request.total", "Total number of calls to the key-management and eDiscovery APIs", "{request}")
	m.TransformDuration = histogram("transform.operation.duration", "Duration of transform traversals", "s")
	m.AnnotationTotal = counter("transform.annotation.total", "Annotations recorded by transform traversals", "{annotation}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

func newSpanExporter(ctx context.Context, cfg config.TelemetryConfig, stdout io.Writer) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case ExporterOTLP:
		endpoint, insecure, err := collector(cfg.Endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithWriter(stdout), stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("unsupported exporter %q", cfg.Exporter)
	}
}

func newMetricExporter(ctx context.Context, cfg config.TelemetryConfig, stdout io.Writer) (sdkmetric.Exporter, error) {
	switch cfg.Exporter {
	case ExporterOTLP:
		endpoint, insecure, err := collector(cfg.Endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		return stdoutmetric.New(stdoutmetric.WithWriter(stdout))
	default:
		return nil, fmt.Errorf("unsupported exporter %q", cfg.Exporter)
	}
}

// collector splits an OTLP/HTTP endpoint into the host:port the exporters
// take and whether TLS is off. A bare host:port is plaintext.
func collector(endpoint string) (hostPort string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, errEmptyEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
