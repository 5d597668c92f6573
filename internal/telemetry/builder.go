package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/specialistvlad/floorplan/internal/build"
)

// Builder wraps next and counts every call by operation and outcome.
func (t *Telemetry) Builder(ctx context.Context, next build.Builder) build.Builder {
	return &countingBuilder{ctx: ctx, t: t, next: next}
}

type countingBuilder struct {
	ctx  context.Context
	t    *Telemetry
	next build.Builder
}

func (b *countingBuilder) count(op build.Op, err error) error {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	b.t.builderCalls.Add(b.ctx, 1, metric.WithAttributes(
		attribute.String("operation", string(op)),
		attribute.String("outcome", outcome),
	))
	return err
}

func (b *countingBuilder) AddTeam(spec build.TeamSpec) error {
	return b.count(build.OpAddTeam, b.next.AddTeam(spec))
}

func (b *countingBuilder) AddExecutionStrategy(spec build.ExecutionStrategySpec) error {
	return b.count(build.OpAddExecutionStrategy, b.next.AddExecutionStrategy(spec))
}

func (b *countingBuilder) AddOffice(spec build.OfficeSpec) error {
	return b.count(build.OpAddOffice, b.next.AddOffice(spec))
}

func (b *countingBuilder) BindManagedObjectSource(spec build.ManagedObjectSourceSpec) error {
	return b.count(build.OpBindManagedObjectSource, b.next.BindManagedObjectSource(spec))
}

func (b *countingBuilder) BindManagedObject(spec build.ManagedObjectSpec) error {
	return b.count(build.OpBindManagedObject, b.next.BindManagedObject(spec))
}

func (b *countingBuilder) BindInputManagedObject(spec build.InputManagedObjectSpec) error {
	return b.count(build.OpBindInputManagedObject, b.next.BindInputManagedObject(spec))
}

func (b *countingBuilder) BindManagedFunction(spec build.ManagedFunctionSpec) error {
	return b.count(build.OpBindManagedFunction, b.next.BindManagedFunction(spec))
}

func (b *countingBuilder) LinkPreAdministration(spec build.AdministrationSpec) error {
	return b.count(build.OpLinkPreAdministration, b.next.LinkPreAdministration(spec))
}

func (b *countingBuilder) LinkPostAdministration(spec build.AdministrationSpec) error {
	return b.count(build.OpLinkPostAdministration, b.next.LinkPostAdministration(spec))
}

func (b *countingBuilder) AddStartupFunction(spec build.StartupSpec) error {
	return b.count(build.OpAddStartupFunction, b.next.AddStartupFunction(spec))
}
