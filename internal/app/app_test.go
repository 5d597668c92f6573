package app

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/floorplan/internal/build"
	"github.com/specialistvlad/floorplan/internal/config"
	"github.com/specialistvlad/floorplan/internal/issues"
	"github.com/specialistvlad/floorplan/internal/registry"
	"github.com/specialistvlad/floorplan/internal/testutil"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

const floorHCL = `
team "workers" {
  source = "team.pool"
}

managed_object_source "api" {
  source     = "http_client"
  properties = { timeout = "2s" }
  team "io" { link = "workers" }
}

managed_object "client" {
  source = "api"
}

office "web" {
  default_team = "main"
  team "main" { link = "workers" }
  object "client" { link = "client" }
  start "boot" { link = "fetch" }

  function "fetch" {
    source = "http_request"
    object "client" { link = "client" }
    flow "response" { link = "show" }
    escalation "error" { link = "show" }
  }

  function "show" {
    source = "shown"
  }
}
`

const showYAML = `definitions:
  functions:
    - name: shown
      parameter: any
`

func newTestApp(t *testing.T, files map[string]string, modules ...registry.Module) (*App, *testutil.SafeBuffer) {
	t.Helper()
	dir := testutil.WriteFiles(t, files)
	cfg, err := NewConfig(Config{Paths: []string{dir}, LogFormat: "text", LogLevel: "debug"})
	require.NoError(t, err)

	logs := &testutil.SafeBuffer{}
	a, err := NewApp(logs, cfg, modules...)
	require.NoError(t, err)
	return a, logs
}

func TestApp_Plan(t *testing.T) {
	// --- Arrange ---
	a, logs := newTestApp(t, map[string]string{"floor.hcl": floorHCL, "types/show.yaml": showYAML})

	// --- Act ---
	plan, result, err := a.Plan(a.Context())

	// --- Assert ---
	require.NoError(t, err, logs.String())
	assert.True(t, result.OK())
	assert.Equal(t, result.PassID, plan.PassID)

	names := func(op build.Op) []string {
		var out []string
		for _, c := range plan.Calls {
			if c.Op == op {
				out = append(out, c.Name)
			}
		}
		return out
	}
	assert.Equal(t, []string{"workers"}, names(build.OpAddTeam))
	assert.Equal(t, []string{"api"}, names(build.OpBindManagedObjectSource))
	assert.Equal(t, []string{"web.fetch", "web.show"}, names(build.OpBindManagedFunction))
	assert.Equal(t, []string{"web.fetch"}, names(build.OpAddStartupFunction))
	assert.Equal(t, []string{"team:workers", "managed_object_source:api"}, plan.Instruments)
	assert.Contains(t, logs.String(), "Office floor planned.")
}

func TestApp_Plan_Issues(t *testing.T) {
	broken := `
office "web" {
  function "f" {
    source = "nope"
  }
}
`
	a, _ := newTestApp(t, map[string]string{"floor.hcl": broken})

	plan, result, err := a.Plan(a.Context())

	require.Error(t, err)
	assert.Nil(t, plan)
	var issuesErr *issues.Error
	require.True(t, errors.As(err, &issuesErr))
	assert.NotEmpty(t, result.Issues())
	assert.Equal(t, issues.CodeTypeLoad, result.Issues()[0].Code)
}

func TestNewApp_LoadErrors(t *testing.T) {
	t.Run("no configuration files", func(t *testing.T) {
		dir := testutil.WriteFiles(t, map[string]string{"notes.txt": "x"})
		cfg, err := NewConfig(Config{Paths: []string{dir}, LogFormat: "text", LogLevel: "info"})
		require.NoError(t, err)

		_, err = NewApp(&bytes.Buffer{}, cfg)

		assert.ErrorIs(t, err, config.ErrNoSources)
	})

	t.Run("missing path", func(t *testing.T) {
		cfg, err := NewConfig(Config{Paths: []string{filepath.Join(t.TempDir(), "absent")}, LogFormat: "text", LogLevel: "info"})
		require.NoError(t, err)

		_, err = NewApp(&bytes.Buffer{}, cfg)

		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestNewApp_InvalidDefinitions(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		expectErr []string
	}{
		{
			name:      "declaration shadows a module source",
			files:     map[string]string{"types.hcl": `function_type "print" {}`},
			expectErr: []string{"invalid type definitions", "function 'print' is already registered"},
		},
		{
			name: "same declaration in two files",
			files: map[string]string{
				"a.yaml": "definitions:\n  functions:\n    - name: shown\n",
				"b.yaml": "definitions:\n  functions:\n    - name: shown\n",
			},
			expectErr: []string{"function 'shown' is already registered"},
		},
		{
			name: "supplier draws on an unknown source",
			files: map[string]string{"types.yaml": `definitions:
  suppliers:
    - name: pool
      supplies:
        - {qualifier: a, type: sql, source: nowhere}
`},
			expectErr: []string{"invalid type definitions", "supplier 'pool': supplies 'a/sql' from unknown managed object source 'nowhere'"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			dir := testutil.WriteFiles(t, tc.files)
			cfg, err := NewConfig(Config{Paths: []string{dir}, LogFormat: "text", LogLevel: "error"})
			require.NoError(t, err)

			// --- Act ---
			var a *App
			require.NotPanics(t, func() { a, err = NewApp(&bytes.Buffer{}, cfg) })

			// --- Assert ---
			require.Error(t, err)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, registry.ErrInvalidDefinition)
			for _, want := range tc.expectErr {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}

// inconsistentModule supplies from a source no module registers.
type inconsistentModule struct{}

func (inconsistentModule) Register(r *registry.Registry) {
	r.RegisterSupplier("pool", typeload.SupplierSourceFunc(func(map[string]string) (*typeload.SupplierType, error) {
		return &typeload.SupplierType{Supplied: []typeload.Supplied{{Qualifier: "a", Type: "sql", Source: "nowhere"}}}, nil
	}))
}

func TestNewApp_InconsistentModulesPanic(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"floor.hcl": floorHCL, "types/show.yaml": showYAML})
	cfg, err := NewConfig(Config{Paths: []string{dir}, LogFormat: "json", LogLevel: "error"})
	require.NoError(t, err)

	assert.PanicsWithError(t, "registry validation failed:\n- supplier 'pool': supplies 'a/sql' from unknown managed object source 'nowhere'", func() {
		_, _ = NewApp(&bytes.Buffer{}, cfg, inconsistentModule{})
	})
}
