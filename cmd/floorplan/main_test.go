package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/floorplan/internal/cli"
	"github.com/specialistvlad/floorplan/internal/testutil"
)

func TestRun_PanicRecovery(t *testing.T) {
	// --- Arrange ---
	orig := newRootCmd
	t.Cleanup(func() { newRootCmd = orig })
	newRootCmd = func(string) *cobra.Command {
		return &cobra.Command{
			Use: "floorplan",
			RunE: func(*cobra.Command, []string) error {
				panic("registry validation failed")
			},
		}
	}
	var out, errOut bytes.Buffer

	// --- Act ---
	err := run(&out, &errOut, []string{})

	// --- Assert ---
	require.Error(t, err)
	assert.EqualError(t, err, "application startup panicked: registry validation failed")
}

func TestRun_InvalidDefinitionsExitWithIssues(t *testing.T) {
	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{"types.yaml": `definitions:
  suppliers:
    - name: pool
      supplies:
        - {qualifier: a, type: sql, source: nowhere}
`})
	var out, errOut bytes.Buffer

	// --- Act ---
	err := run(&out, &errOut, []string{"validate", dir})

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 4, exitErr.Code)
	assert.Contains(t, exitErr.Message, "unknown managed object source 'nowhere'")
}

func TestRun_Help(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(&out, &errOut, []string{"--help"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "compile")
}

func TestRun_Version(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(&out, &errOut, []string{"--version"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), version)
}

func TestRun_UnknownFlag(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(&out, &errOut, []string{"--no-such-flag"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}
