package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/floorplan/internal/config"
	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// ErrInvalidDefinition marks type manifests declared in configuration that
// cannot be registered.
var ErrInvalidDefinition = errors.New("invalid type definitions")

// PopulateDefinitionsFromModel registers the type manifests declared in the
// configuration model. Declared manifests are static: their type does not
// depend on properties.
//
// Declarations are user data, so a name that is already taken by a module or
// by an earlier declaration is reported in the returned error rather than
// panicking. Every valid declaration is still registered.
func (r *Registry) PopulateDefinitionsFromModel(ctx context.Context, defs config.Definitions) error {
	logger := ctxlog.FromContext(ctx)
	var problems []string

	taken := func(kind typeload.Kind, name string) bool {
		if r.Has(kind, name) {
			problems = append(problems, fmt.Sprintf("%s '%s' is already registered", kind, name))
			return true
		}
		return false
	}

	for _, d := range defs.ManagedObjectSources {
		if taken(typeload.KindManagedObjectSource, d.Name) {
			continue
		}
		t := managedObjectTypeFromDefinition(d)
		r.RegisterManagedObjectSource(d.Name, typeload.ManagedObjectSourceFunc(func(map[string]string) (*typeload.ManagedObjectType, error) {
			return t, nil
		}))
	}
	for _, d := range defs.Functions {
		if taken(typeload.KindFunction, d.Name) {
			continue
		}
		t := functionTypeFromDefinition(d)
		r.RegisterFunction(d.Name, typeload.FunctionSourceFunc(func(map[string]string) (*typeload.FunctionType, error) {
			return t, nil
		}))
	}
	for _, d := range defs.Suppliers {
		if taken(typeload.KindSupplier, d.Name) {
			continue
		}
		t := supplierTypeFromDefinition(d)
		r.RegisterSupplier(d.Name, typeload.SupplierSourceFunc(func(map[string]string) (*typeload.SupplierType, error) {
			return t, nil
		}))
	}
	for _, d := range defs.Sources {
		kind, err := typeload.ParseKind(d.Kind)
		if err != nil {
			problems = append(problems, fmt.Sprintf("source definition '%s': %s", d.Name, err))
			continue
		}
		if _, ok := r.sources[kind]; !ok {
			problems = append(problems, fmt.Sprintf("source definition '%s': kind '%s' needs a typed definition block", d.Name, d.Kind))
			continue
		}
		if taken(kind, d.Name) {
			continue
		}
		r.RegisterSource(kind, d.Name, d.Description)
	}

	logger.Debug("Registry definitions populated from config model.",
		"managed_object_sources", len(defs.ManagedObjectSources),
		"functions", len(defs.Functions),
		"suppliers", len(defs.Suppliers),
		"sources", len(defs.Sources),
		"rejected", len(problems),
	)
	if len(problems) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrInvalidDefinition, strings.Join(problems, "\n- "))
	}
	return nil
}

func managedObjectTypeFromDefinition(d *config.ManagedObjectSourceDefinition) *typeload.ManagedObjectType {
	return &typeload.ManagedObjectType{
		ObjectType:           d.ObjectType,
		Dependencies:         dependencies(d.Dependencies),
		Flows:                flows(d.Flows),
		Teams:                append([]string(nil), d.Teams...),
		ExecutionStrategies:  append([]string(nil), d.ExecutionStrategies...),
		FunctionDependencies: dependencies(d.FunctionDependencies),
		Instrumentable:       d.Instrumentable,
	}
}

func functionTypeFromDefinition(d *config.FunctionDefinition) *typeload.FunctionType {
	return &typeload.FunctionType{
		Parameter:   d.Parameter,
		Objects:     dependencies(d.Objects),
		Flows:       flows(d.Flows),
		Escalations: append([]string(nil), d.Escalations...),
	}
}

func supplierTypeFromDefinition(d *config.SupplierDefinition) *typeload.SupplierType {
	t := &typeload.SupplierType{}
	for _, s := range d.Supplies {
		t.Supplied = append(t.Supplied, typeload.Supplied{
			Qualifier:  s.Qualifier,
			Type:       s.Type,
			Source:     s.Source,
			Properties: s.Properties,
		})
	}
	return t
}

func dependencies(in []*config.TypedName) []typeload.Dependency {
	out := make([]typeload.Dependency, 0, len(in))
	for _, tn := range in {
		out = append(out, typeload.Dependency{Name: tn.Name, Type: tn.Type})
	}
	return out
}

func flows(in []*config.TypedName) []typeload.Flow {
	out := make([]typeload.Flow, 0, len(in))
	for _, tn := range in {
		out = append(out, typeload.Flow{Name: tn.Name, ArgumentType: tn.Type})
	}
	return out
}
