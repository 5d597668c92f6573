package hclconfig

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/floorplan/internal/config"
	"github.com/specialistvlad/floorplan/internal/testutil"
)

const floorHCL = `
team "workers" {
  source     = "team.pool"
  properties = { size = "4" }
  oversight  = "watch"
}

team_oversight "watch" {
  source = "oversight.none"
}

execution_strategy "threads" {
  source = "strategy.threads"
}

supplier "pool" {
  source = "sqlpool"
}

managed_object_source "database" {
  source          = "sql"
  timeout         = "5s"
  managing_office = "web"

  flow "changed" { link = "web.handle" }
  team "io" { link = "workers" }
  execution_strategy "run" { link = "threads" }
}

managed_object_source "primary" {
  supplier  = "pool"
  qualifier = "primary"
  type      = "sql"
}

managed_object "conn" {
  source = "database"
  scope  = "thread"

  dependency "peer" { link = "users" }
}

input_managed_object "request" {
  bound_source = "database"
}

office "web" {
  default_team = "main"

  team "main" { link = "workers" }
  object "users" { link = "conn" }
  input "request" { link = "handle" }
  output "done" { link = "other.in" }
  start "boot" { link = "handle" }

  function "handle" {
    source              = "handler"
    team                = "main"
    pre_administration  = ["audit"]

    object "users" { link = "users" }
    flow "next" { link = "render" }
    escalation "timeout" { link = "render" }
  }
}
`

const typesHCL = `
managed_object_source_type "sql" {
  description    = "SQL connection"
  object_type    = object({dsn = string})
  instrumentable = true
  teams          = ["io"]

  dependency "peer" { type = any }
  flow "changed" { argument = list(string) }
  flow "ping" {}
  function_dependency "audit" { type = string }
}

function_type "handler" {
  parameter   = string
  escalations = ["timeout"]

  object "users" { type = map(string) }
  flow "next" { argument = string }
}

function_type "noop" {}

supplier_type "sqlpool" {
  supplies "primary" "sql" {
    source     = "sql"
    properties = { pool = "10" }
  }
}

source_type "team" "team.custom" {
  description = "custom team"
}
`

func TestLoader_Load(t *testing.T) {
	// --- Arrange ---
	ctx, _ := testutil.Context(t)
	dir := testutil.WriteFiles(t, map[string]string{
		"floor.hcl":       floorHCL,
		"types/types.hcl": typesHCL,
		"README.md":       "not configuration",
	})

	// --- Act ---
	model, err := NewLoader().Load(ctx, dir)

	// --- Assert ---
	require.NoError(t, err)

	require.Len(t, model.Teams, 1)
	team := model.Teams[0]
	assert.Equal(t, "workers", team.Name)
	assert.Equal(t, "team.pool", team.Source)
	assert.Equal(t, map[string]string{"size": "4"}, team.Properties)
	assert.Equal(t, "watch", team.Oversight)
	assert.Equal(t, filepath.Join(dir, "floor.hcl")+":2", team.Location)

	require.Len(t, model.TeamOversights, 1)
	require.Len(t, model.ExecutionStrategies, 1)
	require.Len(t, model.Suppliers, 1)

	require.Len(t, model.ManagedObjectSources, 2)
	db := model.ManagedObjectSources[0]
	assert.Equal(t, 5*time.Second, db.Timeout)
	assert.Equal(t, "web", db.ManagingOffice)
	assert.Equal(t, []*config.Link{{Name: "changed", Target: "web.handle", Location: db.Flows[0].Location}}, db.Flows)
	assert.Equal(t, "workers", db.Teams[0].Target)
	assert.Equal(t, "threads", db.ExecutionStrategies[0].Target)

	primary := model.ManagedObjectSources[1]
	assert.Equal(t, "pool", primary.Supplier)
	assert.Equal(t, "primary", primary.Qualifier)
	assert.Equal(t, "sql", primary.Type)
	assert.Empty(t, primary.Source)

	require.Len(t, model.ManagedObjects, 1)
	assert.Equal(t, "thread", model.ManagedObjects[0].Scope)
	assert.Equal(t, "users", model.ManagedObjects[0].Dependencies[0].Target)

	require.Len(t, model.InputManagedObjects, 1)
	assert.Equal(t, "database", model.InputManagedObjects[0].BoundSource)

	require.Len(t, model.Offices, 1)
	web := model.Offices[0]
	assert.Equal(t, "main", web.DefaultTeam)
	assert.Equal(t, "workers", web.Teams[0].Target)
	assert.Equal(t, "other.in", web.Outputs[0].Target)
	assert.Equal(t, "handle", web.Starts[0].Target)
	require.Len(t, web.Functions, 1)
	fn := web.Functions[0]
	assert.Equal(t, "handler", fn.Source)
	assert.Equal(t, "main", fn.Team)
	assert.Equal(t, []string{"audit"}, fn.PreAdministration)
	assert.Equal(t, "render", fn.Flows[0].Target)
	assert.Equal(t, "render", fn.Escalations[0].Target)
}

func TestLoader_Load_Definitions(t *testing.T) {
	// --- Arrange ---
	ctx, _ := testutil.Context(t)
	dir := testutil.WriteFiles(t, map[string]string{"types.hcl": typesHCL})

	// --- Act ---
	model, err := NewLoader().Load(ctx, filepath.Join(dir, "types.hcl"))

	// --- Assert ---
	require.NoError(t, err)
	defs := model.Definitions

	require.Len(t, defs.ManagedObjectSources, 1)
	sql := defs.ManagedObjectSources[0]
	assert.True(t, sql.ObjectType.Equals(cty.Object(map[string]cty.Type{"dsn": cty.String})))
	assert.True(t, sql.Instrumentable)
	assert.Equal(t, []string{"io"}, sql.Teams)
	assert.Equal(t, cty.DynamicPseudoType, sql.Dependencies[0].Type)
	require.Len(t, sql.Flows, 2)
	assert.True(t, sql.Flows[0].Type.Equals(cty.List(cty.String)))
	assert.Equal(t, cty.NilType, sql.Flows[1].Type, "a flow without argument passes nothing")
	assert.Equal(t, cty.String, sql.FunctionDependencies[0].Type)

	require.Len(t, defs.Functions, 2)
	handler := defs.Functions[0]
	assert.Equal(t, cty.String, handler.Parameter)
	assert.Equal(t, []string{"timeout"}, handler.Escalations)
	assert.True(t, handler.Objects[0].Type.Equals(cty.Map(cty.String)))
	assert.Equal(t, cty.NilType, defs.Functions[1].Parameter)

	require.Len(t, defs.Suppliers, 1)
	assert.Equal(t, []*config.SuppliedDefinition{{
		Qualifier:  "primary",
		Type:       "sql",
		Source:     "sql",
		Properties: map[string]string{"pool": "10"},
	}}, defs.Suppliers[0].Supplies)

	assert.Equal(t, []*config.SourceDefinition{{Kind: "team", Name: "team.custom", Description: "custom team"}}, defs.Sources)
}

func TestLoader_Load_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		expectErr string
	}{
		{name: "syntax", content: `team "a" {`, expectErr: "failed to parse HCL file"},
		{name: "unknown block", content: `widget "a" {}`, expectErr: "failed to decode HCL file"},
		{name: "missing source", content: `team "a" {}`, expectErr: "failed to decode HCL file"},
		{
			name:      "unknown attribute",
			content:   "team \"a\" {\n  source = \"team.pool\"\n  colour = \"red\"\n}",
			expectErr: `unsupported attribute "colour"`,
		},
		{
			name:      "unknown attribute on link",
			content:   "office \"a\" {\n  team \"t\" {\n    link = \"x\"\n    weight = 1\n  }\n}",
			expectErr: `unsupported attribute "weight"`,
		},
		{
			name:      "bad timeout",
			content:   "managed_object_source \"a\" {\n  source = \"sql\"\n  timeout = \"soon\"\n}",
			expectErr: "invalid timeout",
		},
		{
			name:      "bad type",
			content:   "function_type \"f\" {\n  parameter = integer\n}",
			expectErr: `unknown primitive type "integer"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			ctx, _ := testutil.Context(t)
			dir := testutil.WriteFiles(t, map[string]string{"bad.hcl": tc.content})

			// --- Act ---
			_, err := NewLoader().Load(ctx, dir)

			// --- Assert ---
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestLoader_Load_MissingPath(t *testing.T) {
	ctx, _ := testutil.Context(t)

	_, err := NewLoader().Load(ctx, filepath.Join(t.TempDir(), "absent"))

	require.Error(t, err)
}

func TestLoader_Load_Empty(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := testutil.WriteFiles(t, map[string]string{"notes.txt": "nothing"})

	model, err := NewLoader().Load(ctx, dir)

	require.NoError(t, err)
	assert.Empty(t, model.Offices)
	assert.Empty(t, model.Teams)
}
