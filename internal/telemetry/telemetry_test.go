package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/specialistvlad/floorplan/internal/build"
	"github.com/specialistvlad/floorplan/internal/issues"
)

func newTestTelemetry(t *testing.T) (*Telemetry, *tracetest.InMemoryExporter, *sdkmetric.ManualReader) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	tel, err := New(tp, mp)
	require.NoError(t, err)
	return tel, exporter, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func sumFor(m *metricdata.Metrics, key, value string) int64 {
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		return -1
	}
	var total int64
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(attribute.Key(key)); ok && v.AsString() == value {
			total += dp.Value
		}
	}
	return total
}

func TestFinish_SetsStatusFromIssueCount(t *testing.T) {
	testCases := []struct {
		name   string
		issues int
		want   otelcodes.Code
	}{
		{name: "clean pass", issues: 0, want: otelcodes.Ok},
		{name: "pass with issues", issues: 3, want: otelcodes.Error},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			tel, exporter, _ := newTestTelemetry(t)

			// --- Act ---
			_, span := tel.Start(context.Background(), "floorplan.compile")
			Finish(span, tc.issues)

			// --- Assert ---
			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, "floorplan.compile", spans[0].Name)
			assert.Equal(t, tc.want, spans[0].Status.Code)
			assert.Contains(t, spans[0].Attributes, attribute.Int("floorplan.issues", tc.issues))
		})
	}
}

func TestStart_NestsPhaseSpans(t *testing.T) {
	// --- Arrange ---
	tel, exporter, _ := newTestTelemetry(t)

	// --- Act ---
	ctx, root := tel.Start(context.Background(), "floorplan.compile")
	_, phase := tel.Start(ctx, "floorplan.link")
	phase.End()
	root.End()

	// --- Assert ---
	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "floorplan.link", spans[0].Name)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
}

func TestIssueObserver_CountsByCode(t *testing.T) {
	// --- Arrange ---
	tel, _, reader := newTestTelemetry(t)
	sink := issues.NewSink(tel.IssueObserver(context.Background()))

	// --- Act ---
	sink.Add(nil, issues.CodeUnresolvedLink, "flow is not linked")
	sink.Add(nil, issues.CodeUnresolvedLink, "team is not linked")
	sink.Add(nil, issues.CodeTypeLoad, "cannot load")

	// --- Assert ---
	m := findMetric(collect(t, reader), "floorplan.issues")
	require.NotNil(t, m)
	assert.Equal(t, int64(2), sumFor(m, "code", "LK-005"))
	assert.Equal(t, int64(1), sumFor(m, "code", "TY-001"))
}

func TestBuilder_CountsCallsAndForwards(t *testing.T) {
	// --- Arrange ---
	tel, _, reader := newTestTelemetry(t)
	rec := build.NewRecorder()
	rec.Fail = map[build.Op]error{build.OpAddOffice: errors.New("rejected")}
	b := tel.Builder(context.Background(), rec)

	// --- Act ---
	require.NoError(t, b.AddTeam(build.TeamSpec{Name: "workers"}))
	require.NoError(t, b.BindManagedObject(build.ManagedObjectSpec{Name: "db"}))
	err := b.AddOffice(build.OfficeSpec{Name: "web"})

	// --- Assert ---
	require.EqualError(t, err, "rejected")
	assert.Equal(t, []string{"workers"}, rec.Names(build.OpAddTeam))
	m := findMetric(collect(t, reader), "floorplan.builder.calls")
	require.NotNil(t, m)
	assert.Equal(t, int64(1), sumFor(m, "operation", "add_team"))
	assert.Equal(t, int64(1), sumFor(m, "outcome", "error"))
	assert.Equal(t, int64(2), sumFor(m, "outcome", "ok"))
}

func TestNoop_RecordsNothing(t *testing.T) {
	tel := Noop()
	require.NotNil(t, tel)

	_, span := tel.Start(context.Background(), "floorplan.compile")
	Finish(span, 1)
	tel.RecordGraph(context.Background(), 10)

	assert.False(t, span.SpanContext().IsValid())
}
