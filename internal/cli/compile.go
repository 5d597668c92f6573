package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/floorplan/internal/issues"
)

// newCompileCmd creates the "compile" subcommand.
func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <path>...",
		Short: "Compile an office floor and print its build plan",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCompile,
	}
	cmd.Flags().StringP("output", "o", "yaml", "Plan format: yaml or json.")
	cmd.Flags().String("out", "", "Write the plan to this file instead of stdout.")
	return cmd
}

// runCompile loads, compiles and builds the floor into a recorder, then
// writes the recorded calls. Issues go to stderr.
func runCompile(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	outPath, _ := cmd.Flags().GetString("out")
	if format != "yaml" && format != "json" {
		return exitError(exitUsage, "invalid output format %q: must be 'yaml' or 'json'", format)
	}

	a, err := newApp(cmd, args)
	if err != nil {
		return err
	}
	ctx := a.Context()
	defer a.Close(ctx)

	plan, result, err := a.Plan(ctx)
	if err != nil {
		var issuesErr *issues.Error
		if errors.As(err, &issuesErr) {
			printIssues(cmd.ErrOrStderr(), result.Issues())
			return issuesError(result.Issues())
		}
		return exitError(exitInternal, "%s", err)
	}

	var buf bytes.Buffer
	if err := encode(&buf, format, plan); err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing plan: %w", err)
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
