// Package telemetry provides OpenTelemetry tracing for level generation.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "levelforge"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
	defaultDataset    = "levelforge"
)

// Options configures Setup.
type Options struct {
	// APIKey is the Honeycomb team key. Empty disables export.
	APIKey string
	// Dataset defaults to "levelforge".
	Dataset string
	// SampleRatio is the fraction of traces kept; zero or above one keeps all.
	SampleRatio float64
}

// OptionsFromEnv reads HONEYCOMB_LEVELFORGE_API_KEY, HONEYCOMB_LEVELFORGE_DATASET
// and LEVELFORGE_TRACE_SAMPLE_RATIO. An unparsable ratio keeps every trace.
func OptionsFromEnv() Options {
	opts := Options{
		APIKey:  os.Getenv("HONEYCOMB_LEVELFORGE_API_KEY"),
		Dataset: os.Getenv("HONEYCOMB_LEVELFORGE_DATASET"),
	}
	if ratio, err := strconv.ParseFloat(os.Getenv("LEVELFORGE_TRACE_SAMPLE_RATIO"), 64); err == nil {
		opts.SampleRatio = ratio
	}
	return opts
}

// Enabled returns true when traces would be exported.
func (o Options) Enabled() bool {
	return o.APIKey != ""
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter pointed at
// Honeycomb. The exporter itself reads the standard OTEL_* variables, which
// Setup fills in from opts.
//
// When opts carry no API key, Setup installs nothing and returns a no-op
// shutdown; spans then go to the default no-op provider.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	if !opts.Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	dataset := opts.Dataset
	if dataset == "" {
		dataset = defaultDataset
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombEndpoint)
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", opts.APIKey, dataset))

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	// Our own resource, not merged with Default(), to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build trace resource: %w", err)
	}

	sampler := sdktrace.AlwaysSample()
	if opts.SampleRatio > 0 && opts.SampleRatio < 1 {
		sampler = sdktrace.TraceIDRatioBased(opts.SampleRatio)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sampler)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("levelforge/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("levelforge/noop")
}

// RecordError marks the span as failed. A nil error is ignored.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
