package build

import "time"

// Builder receives the fully linked office floor, one entity at a time.
// Only the returned error is inspected.
type Builder interface {
	AddTeam(spec TeamSpec) error
	AddExecutionStrategy(spec ExecutionStrategySpec) error
	AddOffice(spec OfficeSpec) error
	BindManagedObjectSource(spec ManagedObjectSourceSpec) error
	BindManagedObject(spec ManagedObjectSpec) error
	BindInputManagedObject(spec InputManagedObjectSpec) error
	BindManagedFunction(spec ManagedFunctionSpec) error
	LinkPreAdministration(spec AdministrationSpec) error
	LinkPostAdministration(spec AdministrationSpec) error
	AddStartupFunction(spec StartupSpec) error
}

// Binding names a slot and the qualified name of what satisfies it.
type Binding struct {
	Name   string `json:"name" yaml:"name"`
	Target string `json:"target" yaml:"target"`
}

type TeamSpec struct {
	Name       string            `json:"name" yaml:"name"`
	Source     string            `json:"source" yaml:"source"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Oversight  string            `json:"oversight,omitempty" yaml:"oversight,omitempty"`
}

type ExecutionStrategySpec struct {
	Name       string            `json:"name" yaml:"name"`
	Source     string            `json:"source" yaml:"source"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type OfficeSpec struct {
	Name string `json:"name" yaml:"name"`
	Team string `json:"team,omitempty" yaml:"team,omitempty"`
}

type ManagedObjectSourceSpec struct {
	Name                 string            `json:"name" yaml:"name"`
	Source               string            `json:"source" yaml:"source"`
	Properties           map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Timeout              time.Duration     `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	ManagingOffice       string            `json:"managing_office,omitempty" yaml:"managing_office,omitempty"`
	Flows                []Binding         `json:"flows,omitempty" yaml:"flows,omitempty"`
	Teams                []Binding         `json:"teams,omitempty" yaml:"teams,omitempty"`
	ExecutionStrategies  []Binding         `json:"execution_strategies,omitempty" yaml:"execution_strategies,omitempty"`
	FunctionDependencies []Binding         `json:"function_dependencies,omitempty" yaml:"function_dependencies,omitempty"`
}

type ManagedObjectSpec struct {
	Name         string    `json:"name" yaml:"name"`
	Source       string    `json:"source" yaml:"source"`
	Scope        string    `json:"scope" yaml:"scope"`
	Dependencies []Binding `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

type InputManagedObjectSpec struct {
	Name        string   `json:"name" yaml:"name"`
	BoundSource string   `json:"bound_source" yaml:"bound_source"`
	Sources     []string `json:"sources" yaml:"sources"`
}

type ManagedFunctionSpec struct {
	Office      string    `json:"office" yaml:"office"`
	Name        string    `json:"name" yaml:"name"`
	Source      string    `json:"source" yaml:"source"`
	Team        string    `json:"team,omitempty" yaml:"team,omitempty"`
	Parameter   string    `json:"parameter,omitempty" yaml:"parameter,omitempty"`
	Objects     []Binding `json:"objects,omitempty" yaml:"objects,omitempty"`
	Flows       []Binding `json:"flows,omitempty" yaml:"flows,omitempty"`
	Escalations []Binding `json:"escalations,omitempty" yaml:"escalations,omitempty"`
}

type AdministrationSpec struct {
	Function string `json:"function" yaml:"function"`
	Duty     string `json:"duty" yaml:"duty"`
}

type StartupSpec struct {
	Office   string `json:"office" yaml:"office"`
	Function string `json:"function" yaml:"function"`
}
