// Package otel wires OpenTelemetry tracing for jobportal processes.
package otel

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Options selects the exporter target for one process.
type Options struct {
	ServiceName string
	// Endpoint is the OTLP/HTTP collector URL. Empty disables tracing.
	Endpoint string
	// Enabled gates export even when Endpoint is set.
	Enabled bool
	// SampleRatio is the parent-based sampling ratio; values outside (0,1]
	// sample everything.
	SampleRatio float64
}

// ShutdownFunc flushes pending spans and releases exporter resources.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup initialises tracing and registers the global provider and propagator.
//
// Tracing is opt-in: an empty endpoint or Enabled=false returns a no-op
// shutdown and leaves the global no-op provider in place.
func Setup(ctx context.Context, options Options) (ShutdownFunc, error) {
	serviceName := strings.TrimSpace(options.ServiceName)
	if serviceName == "" {
		return noopShutdown, errors.New("otel service name is required")
	}
	endpoint := strings.TrimSpace(options.Endpoint)
	if !options.Enabled || endpoint == "" {
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noopShutdown, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noopShutdown, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(options.SampleRatio)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func sampler(ratio float64) sdktrace.Sampler {
	if ratio <= 0 || ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}
