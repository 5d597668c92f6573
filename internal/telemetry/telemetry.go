package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/specialistvlad/floorplan/internal/issues"
)

// InstrumentationName identifies the tracer and meter used by floorplan.
const InstrumentationName = "github.com/specialistvlad/floorplan"

// Telemetry holds the tracer and instruments for compilation passes.
type Telemetry struct {
	tracer       trace.Tracer
	issues       metric.Int64Counter
	builderCalls metric.Int64Counter
	nodes        metric.Int64Histogram
}

// New creates Telemetry from explicit providers.
func New(tp trace.TracerProvider, mp metric.MeterProvider) (*Telemetry, error) {
	meter := mp.Meter(InstrumentationName)

	issueCounter, err := meter.Int64Counter("floorplan.issues",
		metric.WithDescription("Number of compile issues reported"),
		metric.WithUnit("{issue}"),
	)
	if err != nil {
		return nil, err
	}

	calls, err := meter.Int64Counter("floorplan.builder.calls",
		metric.WithDescription("Number of calls made to the external builder"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	nodes, err := meter.Int64Histogram("floorplan.graph.nodes",
		metric.WithDescription("Number of nodes in a compiled graph"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, err
	}

	return &Telemetry{
		tracer:       tp.Tracer(InstrumentationName),
		issues:       issueCounter,
		builderCalls: calls,
		nodes:        nodes,
	}, nil
}

// Global creates Telemetry from the otel global providers. It falls back to
// Noop when the global meter refuses to create an instrument.
func Global() *Telemetry {
	t, err := New(otel.GetTracerProvider(), otel.GetMeterProvider())
	if err != nil {
		otel.Handle(err)
		return Noop()
	}
	return t
}

// Noop returns Telemetry that records nothing.
func Noop() *Telemetry {
	t, _ := New(nooptrace.NewTracerProvider(), noopmetric.NewMeterProvider())
	return t
}

// Start opens a span named name as a child of whatever span ctx carries.
func (t *Telemetry) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// IssueObserver returns an observer counting every issue by code and kind.
func (t *Telemetry) IssueObserver(ctx context.Context) issues.Observer {
	return func(i issues.Issue) {
		t.issues.Add(ctx, 1, metric.WithAttributes(
			attribute.String("code", string(i.Code)),
			attribute.String("node_kind", i.Kind),
		))
	}
}

// RecordGraph records the size of a compiled graph.
func (t *Telemetry) RecordGraph(ctx context.Context, nodes int) {
	t.nodes.Record(ctx, int64(nodes))
}

// Finish sets the outcome of a span from the number of issues found and
// ends it.
func Finish(span trace.Span, issueCount int) {
	span.SetAttributes(attribute.Int("floorplan.issues", issueCount))
	if issueCount > 0 {
		span.SetStatus(codes.Error, "compilation reported issues")
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
