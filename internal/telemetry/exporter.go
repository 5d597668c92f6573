package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
)

// ServiceName is reported as the service.name resource attribute.
const ServiceName = "floorplan"

// SetupTracing installs a global tracer provider exporting spans to an
// OTLP/HTTP collector at endpoint (host:port). The returned function flushes
// and shuts the provider down.
func SetupTracing(ctx context.Context, endpoint string) (func(context.Context) error, error) {
	logger := ctxlog.FromContext(ctx)

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating otlp trace exporter for '%s': %w", endpoint, err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(attribute.String("service.name", ServiceName)),
	)
	if err != nil {
		logger.Warn("Failed to create resource, using default.", "error", err)
		res = resource.Default()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	logger.Debug("OTLP tracing enabled.", "endpoint", endpoint)

	return tp.Shutdown, nil
}
