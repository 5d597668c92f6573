package registry

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/node"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// Module is the interface that all source modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered sources for a single application instance.
type Registry struct {
	logger               *slog.Logger
	managedObjectSources map[string]typeload.ManagedObjectSource
	functions            map[string]typeload.FunctionSource
	suppliers            map[string]typeload.SupplierSource
	sources              map[typeload.Kind]map[string]string
}

var _ typeload.Loader = (*Registry)(nil)

// New creates and initializes a new Registry instance logging through the
// logger carried by ctx.
func New(ctx context.Context) *Registry {
	return &Registry{
		logger:               ctxlog.FromContext(ctx),
		managedObjectSources: make(map[string]typeload.ManagedObjectSource),
		functions:            make(map[string]typeload.FunctionSource),
		suppliers:            make(map[string]typeload.SupplierSource),
		sources: map[typeload.Kind]map[string]string{
			typeload.KindTeam:              {},
			typeload.KindExecutionStrategy: {},
			typeload.KindTeamOversight:     {},
		},
	}
}

// RegisterManagedObjectSource registers a managed object source under name.
func (r *Registry) RegisterManagedObjectSource(name string, src typeload.ManagedObjectSource) {
	if _, exists := r.managedObjectSources[name]; exists {
		panic(fmt.Sprintf("managed object source with name '%s' already registered", name))
	}
	r.logger.Debug("Registering managed object source.", "name", name)
	r.managedObjectSources[name] = src
}

// RegisterFunction registers a function source under name.
func (r *Registry) RegisterFunction(name string, src typeload.FunctionSource) {
	if _, exists := r.functions[name]; exists {
		panic(fmt.Sprintf("function source with name '%s' already registered", name))
	}
	r.logger.Debug("Registering function source.", "name", name)
	r.functions[name] = src
}

// RegisterSupplier registers a supplier source under name.
func (r *Registry) RegisterSupplier(name string, src typeload.SupplierSource) {
	if _, exists := r.suppliers[name]; exists {
		panic(fmt.Sprintf("supplier source with name '%s' already registered", name))
	}
	r.logger.Debug("Registering supplier source.", "name", name)
	r.suppliers[name] = src
}

// RegisterSource registers a team, execution strategy or team oversight source.
func (r *Registry) RegisterSource(kind typeload.Kind, name, description string) {
	names, ok := r.sources[kind]
	if !ok {
		panic(fmt.Sprintf("cannot register a plain source of kind '%s'", kind))
	}
	if _, exists := names[name]; exists {
		panic(fmt.Sprintf("%s source with name '%s' already registered", kind, name))
	}
	r.logger.Debug("Registering source.", "kind", kind.String(), "name", name)
	names[name] = description
}

// Has reports whether a source of kind is registered under name.
func (r *Registry) Has(kind typeload.Kind, name string) bool {
	var ok bool
	switch kind {
	case typeload.KindManagedObjectSource:
		_, ok = r.managedObjectSources[name]
	case typeload.KindFunction:
		_, ok = r.functions[name]
	case typeload.KindSupplier:
		_, ok = r.suppliers[name]
	default:
		_, ok = r.sources[kind][name]
	}
	return ok
}

// Names returns the sorted names registered for kind.
func (r *Registry) Names(kind typeload.Kind) []string {
	var names []string
	switch kind {
	case typeload.KindManagedObjectSource:
		for n := range r.managedObjectSources {
			names = append(names, n)
		}
	case typeload.KindFunction:
		for n := range r.functions {
			names = append(names, n)
		}
	case typeload.KindSupplier:
		for n := range r.suppliers {
			names = append(names, n)
		}
	default:
		for n := range r.sources[kind] {
			names = append(names, n)
		}
	}
	slices.Sort(names)
	return names
}

// LoadManagedObjectType implements typeload.Loader.
func (r *Registry) LoadManagedObjectType(name string, properties map[string]string) (*typeload.ManagedObjectType, error) {
	src, ok := r.managedObjectSources[name]
	if !ok {
		return nil, notFound(typeload.KindManagedObjectSource, name)
	}
	t, err := src.Describe(properties)
	if err != nil {
		return nil, fmt.Errorf("describing managed object source '%s': %w", name, err)
	}
	return t, nil
}

// LoadFunctionType implements typeload.Loader.
func (r *Registry) LoadFunctionType(name string, properties map[string]string) (*typeload.FunctionType, error) {
	src, ok := r.functions[name]
	if !ok {
		return nil, notFound(typeload.KindFunction, name)
	}
	t, err := src.Describe(properties)
	if err != nil {
		return nil, fmt.Errorf("describing function source '%s': %w", name, err)
	}
	return t, nil
}

// LoadSupplierType implements typeload.Loader.
func (r *Registry) LoadSupplierType(name string, properties map[string]string) (*typeload.SupplierType, error) {
	src, ok := r.suppliers[name]
	if !ok {
		return nil, notFound(typeload.KindSupplier, name)
	}
	t, err := src.Describe(properties)
	if err != nil {
		return nil, fmt.Errorf("describing supplier source '%s': %w", name, err)
	}
	return t, nil
}

// CheckSource implements typeload.Loader.
func (r *Registry) CheckSource(kind typeload.Kind, name string) error {
	if _, ok := r.sources[kind][name]; !ok {
		return notFound(kind, name)
	}
	return nil
}

// LoadTeamType is an unsupported extension point: teams are checked for
// existence only and carry no loadable type.
func (r *Registry) LoadTeamType(string) {
	panic(&node.UnsupportedError{Op: "team type loading", Kind: node.KindTeam})
}

func notFound(kind typeload.Kind, name string) error {
	return fmt.Errorf("%w: %s '%s'", typeload.ErrTypeNotFound, kind, name)
}
