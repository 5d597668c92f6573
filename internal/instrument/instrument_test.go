package instrument

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
)

type fakeRegistrator struct {
	fail         map[string]error
	registered   []string
	unregistered []string
}

func (f *fakeRegistrator) Register(_ context.Context, p Possible) error {
	if err := f.fail[p.Key()]; err != nil {
		return err
	}
	f.registered = append(f.registered, p.Key())
	return nil
}

func (f *fakeRegistrator) Unregister(_ context.Context, p Possible) error {
	f.unregistered = append(f.unregistered, p.Key())
	return errors.New("unregister always complains")
}

func TestLifecycle_SwallowsFailures(t *testing.T) {
	// --- Arrange ---
	ctx := ctxlog.Discard(context.Background())
	reg := &fakeRegistrator{fail: map[string]error{"team:workers": errors.New("boom")}}
	possible := []Possible{
		{Type: TypeTeam, Name: "workers"},
		{Type: TypeManagedObjectSource, Name: "db"},
		{Type: TypeManagedObjectSource, Name: "cache"},
	}
	l := NewLifecycle(reg, possible)

	// --- Act ---
	l.Opened(ctx)
	l.Opened(ctx)

	// --- Assert ---
	assert.Equal(t, []string{"managed_object_source:db", "managed_object_source:cache"}, reg.registered)
	assert.Len(t, l.Registered(), 2)

	// --- Act ---
	l.Closed(ctx)

	// --- Assert ---
	assert.Equal(t, []string{"managed_object_source:cache", "managed_object_source:db"}, reg.unregistered)
	assert.Empty(t, l.Registered())
}

func gaugePoints(t *testing.T, reader *sdkmetric.ManualReader) []metricdata.DataPoint[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "floorplan.instrument.value" {
				g, ok := m.Data.(metricdata.Gauge[int64])
				require.True(t, ok)
				return g.DataPoints
			}
		}
	}
	return nil
}

func TestMeterRegistrator(t *testing.T) {
	// --- Arrange ---
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mr, err := NewMeterRegistrator(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)
	db := Possible{Type: TypeManagedObjectSource, Name: "db", Object: Gauges{"flows": 2, "dependents": 3}}

	// --- Act & Assert ---
	require.NoError(t, mr.Register(ctx, db))
	assert.Len(t, gaugePoints(t, reader), 2)

	err = mr.Register(ctx, db)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	err = mr.Register(ctx, Possible{Type: TypeTeam, Name: "workers", Object: "not observable"})
	assert.ErrorIs(t, err, ErrNotObservable)

	require.NoError(t, mr.Unregister(ctx, db))
	assert.Empty(t, gaugePoints(t, reader))

	err = mr.Unregister(ctx, db)
	assert.ErrorIs(t, err, ErrNotRegistered)
}
