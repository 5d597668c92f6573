package config

import (
	"time"

	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of an office floor
// together with the type manifests it declares.
type Model struct {
	Teams                []*Team
	TeamOversights       []*TeamOversight
	ExecutionStrategies  []*ExecutionStrategy
	ManagedObjectSources []*ManagedObjectSource
	ManagedObjects       []*ManagedObject
	InputManagedObjects  []*InputManagedObject
	Suppliers            []*Supplier
	Offices              []*Office
	Definitions          Definitions
}

// Link is a named, link-carrying child such as a flow or an object, and the
// reference it links to.
type Link struct {
	Name     string
	Target   string
	Location string
}

type Team struct {
	Name       string
	Source     string
	Properties map[string]string
	Oversight  string
	Location   string
}

type TeamOversight struct {
	Name     string
	Source   string
	Location string
}

type ExecutionStrategy struct {
	Name       string
	Source     string
	Properties map[string]string
	Location   string
}

// ManagedObjectSource is either configured directly through Source or
// supplied, in which case Supplier, Qualifier and Type select the entry of
// the supplier's type.
type ManagedObjectSource struct {
	Name                 string
	Source               string
	Supplier             string
	Qualifier            string
	Type                 string
	Properties           map[string]string
	Timeout              time.Duration
	ManagingOffice       string
	InputManagedObject   string
	Flows                []*Link
	Teams                []*Link
	ExecutionStrategies  []*Link
	FunctionDependencies []*Link
	Location             string
}

type ManagedObject struct {
	Name         string
	Source       string
	Scope        string
	Dependencies []*Link
	Location     string
}

type InputManagedObject struct {
	Name        string
	BoundSource string
	Location    string
}

type Supplier struct {
	Name       string
	Source     string
	Properties map[string]string
	Location   string
}

type Office struct {
	Name        string
	DefaultTeam string
	Teams       []*Link
	Objects     []*Link
	Inputs      []*Link
	Outputs     []*Link
	Starts      []*Link
	Functions   []*Function
	Location    string
}

type Function struct {
	Name               string
	Source             string
	Properties         map[string]string
	Team               string
	Objects            []*Link
	Flows              []*Link
	Escalations        []*Link
	PreAdministration  []string
	PostAdministration []string
	Location           string
}

// --- Type Manifest Models ---

// Definitions are type manifests declared in configuration rather than
// registered from Go code.
type Definitions struct {
	ManagedObjectSources []*ManagedObjectSourceDefinition
	Functions            []*FunctionDefinition
	Suppliers            []*SupplierDefinition
	Sources              []*SourceDefinition
}

// TypedName is a named slot with a type, e.g. a dependency or a flow
// argument. cty.DynamicPseudoType stands for `any`.
type TypedName struct {
	Name string
	Type cty.Type
}

type ManagedObjectSourceDefinition struct {
	Name                 string
	Description          string
	ObjectType           cty.Type
	Dependencies         []*TypedName
	Flows                []*TypedName
	Teams                []string
	ExecutionStrategies  []string
	FunctionDependencies []*TypedName
	Instrumentable       bool
}

// FunctionDefinition describes a function source. Parameter is cty.NilType
// when the function takes no argument.
type FunctionDefinition struct {
	Name        string
	Description string
	Parameter   cty.Type
	Objects     []*TypedName
	Flows       []*TypedName
	Escalations []string
}

type SupplierDefinition struct {
	Name        string
	Description string
	Supplies    []*SuppliedDefinition
}

type SuppliedDefinition struct {
	Qualifier  string
	Type       string
	Source     string
	Properties map[string]string
}

// SourceDefinition declares a team, execution strategy or team oversight
// source. Kind is one of "team", "execution_strategy" or "team_oversight".
type SourceDefinition struct {
	Kind        string
	Name        string
	Description string
}
