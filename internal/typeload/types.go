package typeload

import (
	"errors"
	"slices"

	"github.com/zclconf/go-cty/cty"
)

// ErrTypeNotFound is wrapped by every error reporting an unknown source name.
var ErrTypeNotFound = errors.New("type not found")

// Dependency is a named, typed slot that must be satisfied by an object.
type Dependency struct {
	Name string
	Type cty.Type
}

// Flow is a named flow. ArgumentType is cty.NilType for a flow without
// an argument.
type Flow struct {
	Name         string
	ArgumentType cty.Type
}

// ManagedObjectType is what a managed object source declares about the
// objects it provides.
type ManagedObjectType struct {
	ObjectType           cty.Type
	Dependencies         []Dependency
	Flows                []Flow
	Teams                []string
	ExecutionStrategies  []string
	FunctionDependencies []Dependency
	Instrumentable       bool
}

func (t *ManagedObjectType) Dependency(name string) (Dependency, bool) {
	return findDependency(t.Dependencies, name)
}

func (t *ManagedObjectType) FunctionDependency(name string) (Dependency, bool) {
	return findDependency(t.FunctionDependencies, name)
}

func (t *ManagedObjectType) Flow(name string) (Flow, bool) {
	return findFlow(t.Flows, name)
}

func (t *ManagedObjectType) HasTeam(name string) bool {
	return slices.Contains(t.Teams, name)
}

func (t *ManagedObjectType) HasExecutionStrategy(name string) bool {
	return slices.Contains(t.ExecutionStrategies, name)
}

// FunctionType is what a function source declares. Parameter is cty.NilType
// for a function that takes no argument.
type FunctionType struct {
	Parameter   cty.Type
	Objects     []Dependency
	Flows       []Flow
	Escalations []string
}

func (t *FunctionType) Object(name string) (Dependency, bool) {
	return findDependency(t.Objects, name)
}

func (t *FunctionType) Flow(name string) (Flow, bool) {
	return findFlow(t.Flows, name)
}

func (t *FunctionType) HasEscalation(name string) bool {
	return slices.Contains(t.Escalations, name)
}

// Supplied is one managed object source made available by a supplier.
type Supplied struct {
	Qualifier  string
	Type       string
	Source     string
	Properties map[string]string
}

// SupplierType lists what a supplier supplies.
type SupplierType struct {
	Supplied []Supplied
}

// Find returns the entry supplied under qualifier and type.
func (t *SupplierType) Find(qualifier, typ string) (Supplied, bool) {
	for _, s := range t.Supplied {
		if s.Qualifier == qualifier && s.Type == typ {
			return s, true
		}
	}
	return Supplied{}, false
}

// Loader resolves source names to types.
type Loader interface {
	LoadManagedObjectType(name string, properties map[string]string) (*ManagedObjectType, error)
	LoadFunctionType(name string, properties map[string]string) (*FunctionType, error)
	LoadSupplierType(name string, properties map[string]string) (*SupplierType, error)
	// CheckSource verifies that a team, execution strategy or team
	// oversight source exists.
	CheckSource(kind Kind, name string) error
}

func findDependency(deps []Dependency, name string) (Dependency, bool) {
	for _, d := range deps {
		if d.Name == name {
			return d, true
		}
	}
	return Dependency{}, false
}

func findFlow(flows []Flow, name string) (Flow, bool) {
	for _, f := range flows {
		if f.Name == name {
			return f, true
		}
	}
	return Flow{}, false
}
