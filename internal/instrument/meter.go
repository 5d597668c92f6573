package instrument

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/specialistvlad/floorplan/instrument"

// MeterRegistrator exposes Observable objects as an otel observable gauge.
// Each registered object contributes one data point per gauge it reports.
type MeterRegistrator struct {
	meter metric.Meter
	gauge metric.Int64ObservableGauge

	mu   sync.Mutex
	regs map[string]metric.Registration
}

var _ Registrator = (*MeterRegistrator)(nil)

// NewMeterRegistrator creates a registrator reporting through mp.
func NewMeterRegistrator(mp metric.MeterProvider) (*MeterRegistrator, error) {
	meter := mp.Meter(meterName)
	gauge, err := meter.Int64ObservableGauge("floorplan.instrument.value",
		metric.WithDescription("Structural gauges of managed floor entities"),
	)
	if err != nil {
		return nil, err
	}
	return &MeterRegistrator{
		meter: meter,
		gauge: gauge,
		regs:  make(map[string]metric.Registration),
	}, nil
}

func (m *MeterRegistrator) Register(_ context.Context, p Possible) error {
	obs, ok := p.Object.(Observable)
	if !ok {
		return fmt.Errorf("%s: %w", p.Key(), ErrNotObservable)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.regs[p.Key()]; ok {
		return fmt.Errorf("%s: %w", p.Key(), ErrAlreadyRegistered)
	}

	reg, err := m.meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		for name, value := range obs.Observe() {
			o.ObserveInt64(m.gauge, value, metric.WithAttributes(
				attribute.String("type", p.Type),
				attribute.String("name", p.Name),
				attribute.String("gauge", name),
			))
		}
		return nil
	}, m.gauge)
	if err != nil {
		return fmt.Errorf("registering %s: %w", p.Key(), err)
	}
	m.regs[p.Key()] = reg
	return nil
}

func (m *MeterRegistrator) Unregister(_ context.Context, p Possible) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, ok := m.regs[p.Key()]
	if !ok {
		return fmt.Errorf("%s: %w", p.Key(), ErrNotRegistered)
	}
	delete(m.regs, p.Key())
	return reg.Unregister()
}
