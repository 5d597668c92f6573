package yamlconfig

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is one YAML document of a configuration file.
type document struct {
	Teams                []located[teamEntry]                `yaml:"teams"`
	TeamOversights       []located[sourceEntry]              `yaml:"team_oversights"`
	ExecutionStrategies  []located[sourceEntry]              `yaml:"execution_strategies"`
	Suppliers            []located[sourceEntry]              `yaml:"suppliers"`
	ManagedObjectSources []located[managedObjectSourceEntry] `yaml:"managed_object_sources"`
	ManagedObjects       []located[managedObjectEntry]       `yaml:"managed_objects"`
	InputManagedObjects  []located[inputManagedObjectEntry]  `yaml:"input_managed_objects"`
	Offices              []located[officeEntry]              `yaml:"offices"`
	Definitions          definitions                         `yaml:"definitions"`
}

// located decodes T strictly and remembers the line it started on.
type located[T any] struct {
	Value T
	Line  int
}

func (l *located[T]) UnmarshalYAML(n *yaml.Node) error {
	l.Line = n.Line
	if err := checkFields(n, reflect.TypeOf(l.Value)); err != nil {
		return err
	}
	return n.Decode(&l.Value)
}

// checkFields rejects mapping keys that t has no field for. Node.Decode
// does not honour the decoder's KnownFields setting.
func checkFields(n *yaml.Node, t reflect.Type) error {
	if n.Kind != yaml.MappingNode || t.Kind() != reflect.Struct {
		return nil
	}
	known := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if name == "" {
			name = strings.ToLower(t.Field(i).Name)
		}
		known[name] = true
	}
	for i := 0; i < len(n.Content); i += 2 {
		key := n.Content[i]
		if !known[key.Value] {
			return fmt.Errorf("line %d: field %s not found in %s", key.Line, key.Value, t.Name())
		}
	}
	return nil
}

// entry is a named child and its value, e.g. a flow and its reference or a
// dependency and its type.
type entry struct {
	Name  string
	Value string
	Line  int
}

// entries decodes a mapping of names to scalars in document order.
type entries []entry

func (e *entries) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of names to values", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value of %s must be a scalar", value.Line, key.Value)
		}
		v := value.Value
		if value.Tag == "!!null" {
			v = ""
		}
		*e = append(*e, entry{Name: key.Value, Value: v, Line: key.Line})
	}
	return nil
}

// --- Floor Elements ---

type teamEntry struct {
	Name       string            `yaml:"name"`
	Source     string            `yaml:"source"`
	Properties map[string]string `yaml:"properties"`
	Oversight  string            `yaml:"oversight"`
}

// sourceEntry covers the elements that only name a source.
type sourceEntry struct {
	Name       string            `yaml:"name"`
	Source     string            `yaml:"source"`
	Properties map[string]string `yaml:"properties"`
}

type managedObjectSourceEntry struct {
	Name                 string            `yaml:"name"`
	Source               string            `yaml:"source"`
	Supplier             string            `yaml:"supplier"`
	Qualifier            string            `yaml:"qualifier"`
	Type                 string            `yaml:"type"`
	Properties           map[string]string `yaml:"properties"`
	Timeout              string            `yaml:"timeout"`
	ManagingOffice       string            `yaml:"managing_office"`
	InputManagedObject   string            `yaml:"input_managed_object"`
	Flows                entries           `yaml:"flows"`
	Teams                entries           `yaml:"teams"`
	ExecutionStrategies  entries           `yaml:"execution_strategies"`
	FunctionDependencies entries           `yaml:"function_dependencies"`
}

type managedObjectEntry struct {
	Name         string  `yaml:"name"`
	Source       string  `yaml:"source"`
	Scope        string  `yaml:"scope"`
	Dependencies entries `yaml:"dependencies"`
}

type inputManagedObjectEntry struct {
	Name        string `yaml:"name"`
	BoundSource string `yaml:"bound_source"`
}

type officeEntry struct {
	Name        string                   `yaml:"name"`
	DefaultTeam string                   `yaml:"default_team"`
	Teams       entries                  `yaml:"teams"`
	Objects     entries                  `yaml:"objects"`
	Inputs      entries                  `yaml:"inputs"`
	Outputs     entries                  `yaml:"outputs"`
	Starts      entries                  `yaml:"starts"`
	Functions   []located[functionEntry] `yaml:"functions"`
}

type functionEntry struct {
	Name               string            `yaml:"name"`
	Source             string            `yaml:"source"`
	Properties         map[string]string `yaml:"properties"`
	Team               string            `yaml:"team"`
	Objects            entries           `yaml:"objects"`
	Flows              entries           `yaml:"flows"`
	Escalations        entries           `yaml:"escalations"`
	PreAdministration  []string          `yaml:"pre_administration"`
	PostAdministration []string          `yaml:"post_administration"`
}

// --- Type Definitions ---

type definitions struct {
	ManagedObjectSources []located[managedObjectSourceTypeEntry] `yaml:"managed_object_sources"`
	Functions            []located[functionTypeEntry]            `yaml:"functions"`
	Suppliers            []located[supplierTypeEntry]            `yaml:"suppliers"`
	Sources              []located[sourceTypeEntry]              `yaml:"sources"`
}

type managedObjectSourceTypeEntry struct {
	Name                 string   `yaml:"name"`
	Description          string   `yaml:"description"`
	ObjectType           string   `yaml:"object_type"`
	Instrumentable       bool     `yaml:"instrumentable"`
	Dependencies         entries  `yaml:"dependencies"`
	Flows                entries  `yaml:"flows"`
	Teams                []string `yaml:"teams"`
	ExecutionStrategies  []string `yaml:"execution_strategies"`
	FunctionDependencies entries  `yaml:"function_dependencies"`
}

type functionTypeEntry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Parameter   string   `yaml:"parameter"`
	Objects     entries  `yaml:"objects"`
	Flows       entries  `yaml:"flows"`
	Escalations []string `yaml:"escalations"`
}

type suppliedEntry struct {
	Qualifier  string            `yaml:"qualifier"`
	Type       string            `yaml:"type"`
	Source     string            `yaml:"source"`
	Properties map[string]string `yaml:"properties"`
}

type supplierTypeEntry struct {
	Name        string                   `yaml:"name"`
	Description string                   `yaml:"description"`
	Supplies    []located[suppliedEntry] `yaml:"supplies"`
}

type sourceTypeEntry struct {
	Kind        string `yaml:"kind"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}
