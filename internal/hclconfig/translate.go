// This file translates the HCL schema structs into the format-agnostic
// configuration model defined in the config package.

package hclconfig

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/floorplan/internal/config"
	"github.com/specialistvlad/floorplan/internal/ctxlog"
)

func (l *Loader) translateLinks(blocks []*linkBlock, owner string) ([]*config.Link, error) {
	out := make([]*config.Link, 0, len(blocks))
	for _, b := range blocks {
		if err := checkRemain(b.Remain, owner+" '"+b.Name+"'"); err != nil {
			return nil, err
		}
		out = append(out, &config.Link{Name: b.Name, Target: b.Link, Location: location(b.Remain)})
	}
	return out, nil
}

func (l *Loader) translateTeam(b *teamBlock) (*config.Team, error) {
	what := fmt.Sprintf("team '%s'", b.Name)
	if err := checkRemain(b.Remain, what); err != nil {
		return nil, err
	}
	return &config.Team{
		Name:       b.Name,
		Source:     b.Source,
		Properties: b.Properties,
		Oversight:  b.Oversight,
		Location:   location(b.Remain),
	}, nil
}

func (l *Loader) translateManagedObjectSource(ctx context.Context, b *managedObjectSourceBlock) (*config.ManagedObjectSource, error) {
	what := fmt.Sprintf("managed_object_source '%s'", b.Name)
	logger := ctxlog.FromContext(ctx).With("managed_object_source", b.Name)
	logger.Debug("Translating HCL managed object source to internal config model.")

	if err := checkRemain(b.Remain, what); err != nil {
		return nil, err
	}

	var timeout time.Duration
	if b.Timeout != "" {
		d, err := time.ParseDuration(b.Timeout)
		if err != nil {
			return nil, fmt.Errorf("in %s: invalid timeout: %w", what, err)
		}
		timeout = d
	}

	s := &config.ManagedObjectSource{
		Name:               b.Name,
		Source:             b.Source,
		Supplier:           b.Supplier,
		Qualifier:          b.Qualifier,
		Type:               b.Type,
		Properties:         b.Properties,
		Timeout:            timeout,
		ManagingOffice:     b.ManagingOffice,
		InputManagedObject: b.InputManagedObject,
		Location:           location(b.Remain),
	}

	var err error
	if s.Flows, err = l.translateLinks(b.Flows, what+" flow"); err != nil {
		return nil, err
	}
	if s.Teams, err = l.translateLinks(b.Teams, what+" team"); err != nil {
		return nil, err
	}
	if s.ExecutionStrategies, err = l.translateLinks(b.ExecutionStrategies, what+" execution_strategy"); err != nil {
		return nil, err
	}
	if s.FunctionDependencies, err = l.translateLinks(b.FunctionDependencies, what+" function_dependency"); err != nil {
		return nil, err
	}
	return s, nil
}

func (l *Loader) translateManagedObject(b *managedObjectBlock) (*config.ManagedObject, error) {
	what := fmt.Sprintf("managed_object '%s'", b.Name)
	if err := checkRemain(b.Remain, what); err != nil {
		return nil, err
	}
	deps, err := l.translateLinks(b.Dependencies, what+" dependency")
	if err != nil {
		return nil, err
	}
	return &config.ManagedObject{
		Name:         b.Name,
		Source:       b.Source,
		Scope:        b.Scope,
		Dependencies: deps,
		Location:     location(b.Remain),
	}, nil
}

func (l *Loader) translateOffice(ctx context.Context, b *officeBlock) (*config.Office, error) {
	what := fmt.Sprintf("office '%s'", b.Name)
	logger := ctxlog.FromContext(ctx).With("office", b.Name)
	logger.Debug("Translating HCL office to internal config model.", "functions", len(b.Functions))

	if err := checkRemain(b.Remain, what); err != nil {
		return nil, err
	}

	o := &config.Office{
		Name:        b.Name,
		DefaultTeam: b.DefaultTeam,
		Location:    location(b.Remain),
	}

	var err error
	if o.Teams, err = l.translateLinks(b.Teams, what+" team"); err != nil {
		return nil, err
	}
	if o.Objects, err = l.translateLinks(b.Objects, what+" object"); err != nil {
		return nil, err
	}
	if o.Inputs, err = l.translateLinks(b.Inputs, what+" input"); err != nil {
		return nil, err
	}
	if o.Outputs, err = l.translateLinks(b.Outputs, what+" output"); err != nil {
		return nil, err
	}
	if o.Starts, err = l.translateLinks(b.Starts, what+" start"); err != nil {
		return nil, err
	}

	for _, fb := range b.Functions {
		fn, err := l.translateFunction(fb, what)
		if err != nil {
			return nil, err
		}
		o.Functions = append(o.Functions, fn)
	}
	return o, nil
}

func (l *Loader) translateFunction(b *functionBlock, office string) (*config.Function, error) {
	what := fmt.Sprintf("%s function '%s'", office, b.Name)
	if err := checkRemain(b.Remain, what); err != nil {
		return nil, err
	}

	f := &config.Function{
		Name:               b.Name,
		Source:             b.Source,
		Properties:         b.Properties,
		Team:               b.Team,
		PreAdministration:  b.PreAdministration,
		PostAdministration: b.PostAdministration,
		Location:           location(b.Remain),
	}

	var err error
	if f.Objects, err = l.translateLinks(b.Objects, what+" object"); err != nil {
		return nil, err
	}
	if f.Flows, err = l.translateLinks(b.Flows, what+" flow"); err != nil {
		return nil, err
	}
	if f.Escalations, err = l.translateLinks(b.Escalations, what+" escalation"); err != nil {
		return nil, err
	}
	return f, nil
}

// --- Type Definitions ---

func translateTyped(ctx context.Context, blocks []*typedBlock, owner string) ([]*config.TypedName, error) {
	var out []*config.TypedName
	for _, b := range blocks {
		t, err := typeOf(ctx, b.Type, "type")
		if err != nil {
			return nil, fmt.Errorf("in %s, '%s': %w", owner, b.Name, err)
		}
		out = append(out, &config.TypedName{Name: b.Name, Type: t})
	}
	return out, nil
}

func translateFlowTypes(ctx context.Context, blocks []*flowTypeBlock, owner string) ([]*config.TypedName, error) {
	var out []*config.TypedName
	for _, b := range blocks {
		t, err := typeOf(ctx, b.Argument, "argument")
		if err != nil {
			return nil, fmt.Errorf("in %s, flow '%s': %w", owner, b.Name, err)
		}
		out = append(out, &config.TypedName{Name: b.Name, Type: t})
	}
	return out, nil
}

func (l *Loader) translateManagedObjectSourceType(ctx context.Context, b *managedObjectSourceTypeBlock) (*config.ManagedObjectSourceDefinition, error) {
	what := fmt.Sprintf("managed_object_source_type '%s'", b.Name)
	objectType, err := typeOf(ctx, b.ObjectType, "object_type")
	if err != nil {
		return nil, fmt.Errorf("in %s: %w", what, err)
	}

	d := &config.ManagedObjectSourceDefinition{
		Name:                b.Name,
		Description:         b.Description,
		ObjectType:          objectType,
		Teams:               b.Teams,
		ExecutionStrategies: b.ExecutionStrategies,
		Instrumentable:      b.Instrumentable,
	}
	if d.Dependencies, err = translateTyped(ctx, b.Dependencies, what+" dependency"); err != nil {
		return nil, err
	}
	if d.Flows, err = translateFlowTypes(ctx, b.Flows, what); err != nil {
		return nil, err
	}
	if d.FunctionDependencies, err = translateTyped(ctx, b.FunctionDependencies, what+" function_dependency"); err != nil {
		return nil, err
	}
	return d, nil
}

func (l *Loader) translateFunctionType(ctx context.Context, b *functionTypeBlock) (*config.FunctionDefinition, error) {
	what := fmt.Sprintf("function_type '%s'", b.Name)
	parameter, err := typeOf(ctx, b.Parameter, "parameter")
	if err != nil {
		return nil, fmt.Errorf("in %s: %w", what, err)
	}

	d := &config.FunctionDefinition{
		Name:        b.Name,
		Description: b.Description,
		Parameter:   parameter,
		Escalations: b.Escalations,
	}
	if d.Objects, err = translateTyped(ctx, b.Objects, what+" object"); err != nil {
		return nil, err
	}
	if d.Flows, err = translateFlowTypes(ctx, b.Flows, what); err != nil {
		return nil, err
	}
	return d, nil
}

func (l *Loader) translateSupplierType(b *supplierTypeBlock) *config.SupplierDefinition {
	d := &config.SupplierDefinition{Name: b.Name, Description: b.Description}
	for _, s := range b.Supplies {
		d.Supplies = append(d.Supplies, &config.SuppliedDefinition{
			Qualifier:  s.Qualifier,
			Type:       s.Type,
			Source:     s.Source,
			Properties: s.Properties,
		})
	}
	return d
}
