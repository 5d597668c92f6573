package hclconfig

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block a file may contain.
type fileRoot struct {
	Teams                []*teamBlock                `hcl:"team,block"`
	TeamOversights       []*teamOversightBlock       `hcl:"team_oversight,block"`
	ExecutionStrategies  []*executionStrategyBlock   `hcl:"execution_strategy,block"`
	Suppliers            []*supplierBlock            `hcl:"supplier,block"`
	ManagedObjectSources []*managedObjectSourceBlock `hcl:"managed_object_source,block"`
	ManagedObjects       []*managedObjectBlock       `hcl:"managed_object,block"`
	InputManagedObjects  []*inputManagedObjectBlock  `hcl:"input_managed_object,block"`
	Offices              []*officeBlock              `hcl:"office,block"`

	ManagedObjectSourceTypes []*managedObjectSourceTypeBlock `hcl:"managed_object_source_type,block"`
	FunctionTypes            []*functionTypeBlock            `hcl:"function_type,block"`
	SupplierTypes            []*supplierTypeBlock            `hcl:"supplier_type,block"`
	SourceTypes              []*sourceTypeBlock              `hcl:"source_type,block"`
}

// --- Floor Elements ---

// linkBlock is any named child carrying a single reference.
type linkBlock struct {
	Name   string   `hcl:"name,label"`
	Link   string   `hcl:"link,optional"`
	Remain hcl.Body `hcl:",remain"`
}

type teamBlock struct {
	Name       string            `hcl:"name,label"`
	Source     string            `hcl:"source"`
	Properties map[string]string `hcl:"properties,optional"`
	Oversight  string            `hcl:"oversight,optional"`
	Remain     hcl.Body          `hcl:",remain"`
}

type teamOversightBlock struct {
	Name   string   `hcl:"name,label"`
	Source string   `hcl:"source"`
	Remain hcl.Body `hcl:",remain"`
}

type executionStrategyBlock struct {
	Name       string            `hcl:"name,label"`
	Source     string            `hcl:"source"`
	Properties map[string]string `hcl:"properties,optional"`
	Remain     hcl.Body          `hcl:",remain"`
}

type supplierBlock struct {
	Name       string            `hcl:"name,label"`
	Source     string            `hcl:"source"`
	Properties map[string]string `hcl:"properties,optional"`
	Remain     hcl.Body          `hcl:",remain"`
}

type managedObjectSourceBlock struct {
	Name                 string            `hcl:"name,label"`
	Source               string            `hcl:"source,optional"`
	Supplier             string            `hcl:"supplier,optional"`
	Qualifier            string            `hcl:"qualifier,optional"`
	Type                 string            `hcl:"type,optional"`
	Properties           map[string]string `hcl:"properties,optional"`
	Timeout              string            `hcl:"timeout,optional"`
	ManagingOffice       string            `hcl:"managing_office,optional"`
	InputManagedObject   string            `hcl:"input_managed_object,optional"`
	Flows                []*linkBlock      `hcl:"flow,block"`
	Teams                []*linkBlock      `hcl:"team,block"`
	ExecutionStrategies  []*linkBlock      `hcl:"execution_strategy,block"`
	FunctionDependencies []*linkBlock      `hcl:"function_dependency,block"`
	Remain               hcl.Body          `hcl:",remain"`
}

type managedObjectBlock struct {
	Name         string       `hcl:"name,label"`
	Source       string       `hcl:"source"`
	Scope        string       `hcl:"scope,optional"`
	Dependencies []*linkBlock `hcl:"dependency,block"`
	Remain       hcl.Body     `hcl:",remain"`
}

type inputManagedObjectBlock struct {
	Name        string   `hcl:"name,label"`
	BoundSource string   `hcl:"bound_source,optional"`
	Remain      hcl.Body `hcl:",remain"`
}

type officeBlock struct {
	Name        string           `hcl:"name,label"`
	DefaultTeam string           `hcl:"default_team,optional"`
	Teams       []*linkBlock     `hcl:"team,block"`
	Objects     []*linkBlock     `hcl:"object,block"`
	Inputs      []*linkBlock     `hcl:"input,block"`
	Outputs     []*linkBlock     `hcl:"output,block"`
	Starts      []*linkBlock     `hcl:"start,block"`
	Functions   []*functionBlock `hcl:"function,block"`
	Remain      hcl.Body         `hcl:",remain"`
}

type functionBlock struct {
	Name               string            `hcl:"name,label"`
	Source             string            `hcl:"source"`
	Properties         map[string]string `hcl:"properties,optional"`
	Team               string            `hcl:"team,optional"`
	Objects            []*linkBlock      `hcl:"object,block"`
	Flows              []*linkBlock      `hcl:"flow,block"`
	Escalations        []*linkBlock      `hcl:"escalation,block"`
	PreAdministration  []string          `hcl:"pre_administration,optional"`
	PostAdministration []string          `hcl:"post_administration,optional"`
	Remain             hcl.Body          `hcl:",remain"`
}

// --- Type Definitions ---

// typedBlock declares a named slot of a type, e.g. a dependency.
type typedBlock struct {
	Name string         `hcl:"name,label"`
	Type hcl.Expression `hcl:"type"`
}

// flowTypeBlock declares a flow; a missing argument means the flow passes
// nothing.
type flowTypeBlock struct {
	Name     string         `hcl:"name,label"`
	Argument hcl.Expression `hcl:"argument,optional"`
}

type managedObjectSourceTypeBlock struct {
	Name                 string           `hcl:"name,label"`
	Description          string           `hcl:"description,optional"`
	ObjectType           hcl.Expression   `hcl:"object_type,optional"`
	Instrumentable       bool             `hcl:"instrumentable,optional"`
	Dependencies         []*typedBlock    `hcl:"dependency,block"`
	Flows                []*flowTypeBlock `hcl:"flow,block"`
	Teams                []string         `hcl:"teams,optional"`
	ExecutionStrategies  []string         `hcl:"execution_strategies,optional"`
	FunctionDependencies []*typedBlock    `hcl:"function_dependency,block"`
}

type functionTypeBlock struct {
	Name        string           `hcl:"name,label"`
	Description string           `hcl:"description,optional"`
	Parameter   hcl.Expression   `hcl:"parameter,optional"`
	Objects     []*typedBlock    `hcl:"object,block"`
	Flows       []*flowTypeBlock `hcl:"flow,block"`
	Escalations []string         `hcl:"escalations,optional"`
}

type suppliesBlock struct {
	Qualifier  string            `hcl:"qualifier,label"`
	Type       string            `hcl:"type,label"`
	Source     string            `hcl:"source"`
	Properties map[string]string `hcl:"properties,optional"`
}

type supplierTypeBlock struct {
	Name        string           `hcl:"name,label"`
	Description string           `hcl:"description,optional"`
	Supplies    []*suppliesBlock `hcl:"supplies,block"`
}

type sourceTypeBlock struct {
	Kind        string `hcl:"kind,label"`
	Name        string `hcl:"name,label"`
	Description string `hcl:"description,optional"`
}
