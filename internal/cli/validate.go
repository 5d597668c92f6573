package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/floorplan/internal/issues"
)

// report is the machine-readable outcome of a validation.
type report struct {
	PassID string         `json:"pass_id" yaml:"pass_id"`
	Nodes  int            `json:"nodes" yaml:"nodes"`
	Issues []issues.Issue `json:"issues" yaml:"issues"`
}

// newValidateCmd creates the "validate" subcommand.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path>...",
		Short: "Compile an office floor and report its issues without building",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
	}
	cmd.Flags().String("format", "text", "Output format: text, json or yaml.")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text", "json", "yaml":
	default:
		return exitError(exitUsage, "invalid format %q: must be 'text', 'json' or 'yaml'", format)
	}

	a, err := newApp(cmd, args)
	if err != nil {
		return err
	}
	ctx := a.Context()
	defer a.Close(ctx)

	result := a.Compile(ctx)
	list := result.Issues()
	out := cmd.OutOrStdout()

	if format == "text" {
		if len(list) == 0 {
			fmt.Fprintf(out, "OK: %d nodes, no issues\n", result.Graph().Len())
		}
		printIssues(out, list)
	} else {
		r := report{PassID: result.PassID, Nodes: result.Graph().Len(), Issues: list}
		if r.Issues == nil {
			r.Issues = []issues.Issue{}
		}
		if err := encode(out, format, r); err != nil {
			return err
		}
	}

	if len(list) > 0 {
		return issuesError(list)
	}
	return nil
}
