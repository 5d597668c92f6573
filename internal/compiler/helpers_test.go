package compiler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/floorplan/internal/config"
	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/issues"
	"github.com/specialistvlad/floorplan/internal/node"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// fakeLoader serves fixed types and counts every load.
type fakeLoader struct {
	managedObjects map[string]*typeload.ManagedObjectType
	functions      map[string]*typeload.FunctionType
	suppliers      map[string]*typeload.SupplierType
	sources        map[string]bool
	loads          map[string]int
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		managedObjects: map[string]*typeload.ManagedObjectType{
			"sql": {ObjectType: cty.String},
			"repo": {
				ObjectType:   cty.Map(cty.String),
				Dependencies: []typeload.Dependency{{Name: "conn", Type: cty.String}},
			},
			"http": {
				ObjectType:     cty.String,
				Flows:          []typeload.Flow{{Name: "request", ArgumentType: cty.String}},
				Instrumentable: true,
			},
			"link": {
				ObjectType:   cty.String,
				Dependencies: []typeload.Dependency{{Name: "peer", Type: cty.DynamicPseudoType}},
			},
		},
		functions: map[string]*typeload.FunctionType{
			"handler": {
				Parameter:   cty.NilType,
				Objects:     []typeload.Dependency{{Name: "users", Type: cty.Map(cty.String)}},
				Flows:       []typeload.Flow{{Name: "next", ArgumentType: cty.String}},
				Escalations: []string{"timeout"},
			},
			"renderer": {Parameter: cty.String},
			"batch":    {Parameter: cty.List(cty.String)},
		},
		suppliers: map[string]*typeload.SupplierType{
			"sqlpool": {Supplied: []typeload.Supplied{
				{Qualifier: "primary", Type: "sql", Source: "sql", Properties: map[string]string{"pool": "10"}},
			}},
		},
		sources: map[string]bool{
			"team:team.pool":                true,
			"team:team.passive":             true,
			"execution_strategy:threads":    true,
			"team_oversight:oversight.none": true,
		},
		loads: make(map[string]int),
	}
}

func (f *fakeLoader) LoadManagedObjectType(name string, _ map[string]string) (*typeload.ManagedObjectType, error) {
	f.loads["managed_object_source:"+name]++
	if t, ok := f.managedObjects[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: managed_object_source '%s'", typeload.ErrTypeNotFound, name)
}

func (f *fakeLoader) LoadFunctionType(name string, _ map[string]string) (*typeload.FunctionType, error) {
	f.loads["function:"+name]++
	if t, ok := f.functions[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: function '%s'", typeload.ErrTypeNotFound, name)
}

func (f *fakeLoader) LoadSupplierType(name string, _ map[string]string) (*typeload.SupplierType, error) {
	f.loads["supplier:"+name]++
	if t, ok := f.suppliers[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: supplier '%s'", typeload.ErrTypeNotFound, name)
}

func (f *fakeLoader) CheckSource(kind typeload.Kind, name string) error {
	if f.sources[kind.String()+":"+name] {
		return nil
	}
	return fmt.Errorf("%w: %s '%s'", typeload.ErrTypeNotFound, kind, name)
}

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}

func link(name, target string) *config.Link {
	return &config.Link{Name: name, Target: target}
}

// validModel is a small floor without issues: one office serving requests
// with a repository that depends on a connection.
func validModel() *config.Model {
	return &config.Model{
		Teams: []*config.Team{
			{Name: "workers", Source: "team.pool"},
		},
		ManagedObjectSources: []*config.ManagedObjectSource{
			{Name: "database", Source: "sql"},
			{Name: "repository", Source: "repo"},
		},
		ManagedObjects: []*config.ManagedObject{
			{Name: "users", Source: "repository", Scope: "thread", Dependencies: []*config.Link{link("conn", "conn")}},
			{Name: "conn", Source: "database"},
		},
		Offices: []*config.Office{{
			Name:        "web",
			DefaultTeam: "main",
			Teams:       []*config.Link{link("main", "workers")},
			Objects:     []*config.Link{link("users", "users")},
			Inputs:      []*config.Link{link("request", "handle")},
			Starts:      []*config.Link{link("boot", "handle")},
			Functions: []*config.Function{
				{
					Name:        "handle",
					Source:      "handler",
					Team:        "main",
					Objects:     []*config.Link{link("users", "users")},
					Flows:       []*config.Link{link("next", "render")},
					Escalations: []*config.Link{link("timeout", "render")},
				},
				{Name: "render", Source: "renderer"},
			},
		}},
	}
}

func compile(t *testing.T, loader typeload.Loader, model *config.Model, opts ...Option) *Result {
	t.Helper()
	res := New(loader, opts...).Compile(testContext(), model)
	require.NotNil(t, res)
	return res
}

func lookup(t *testing.T, res *Result, qualified string, kind node.Kind) *node.Node {
	t.Helper()
	for _, n := range res.Graph().OfKind(kind) {
		if n.QualifiedName() == qualified {
			return n
		}
	}
	require.Failf(t, "node not found", "no %s node %q", kind, qualified)
	return nil
}

func codes(list []issues.Issue) []issues.Code {
	out := make([]issues.Code, len(list))
	for i, issue := range list {
		out[i] = issue.Code
	}
	return out
}
