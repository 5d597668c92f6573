package cli

import (
	"github.com/spf13/cobra"

	"github.com/specialistvlad/floorplan/internal/export"
)

// newTreeCmd creates the "tree" subcommand.
func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <path>...",
		Short: "Print the compiled node hierarchy",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTree,
	}
}

func runTree(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, args)
	if err != nil {
		return err
	}
	ctx := a.Context()
	defer a.Close(ctx)

	result := a.Compile(ctx)
	if err := export.Tree(cmd.OutOrStdout(), result.Graph()); err != nil {
		return exitError(exitInternal, "%s", err)
	}
	if !result.OK() {
		printIssues(cmd.ErrOrStderr(), result.Issues())
		return issuesError(result.Issues())
	}
	return nil
}

// newGraphCmd creates the "graph" subcommand.
func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <path>...",
		Short: "Print the links of the compiled floor as a diagram",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runGraph,
	}
	cmd.Flags().String("format", "dot", "Diagram format: dot or mermaid.")
	return cmd
}

func runGraph(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	render := export.DOT
	switch format {
	case "dot":
	case "mermaid":
		render = export.Mermaid
	default:
		return exitError(exitUsage, "invalid format %q: must be 'dot' or 'mermaid'", format)
	}

	a, err := newApp(cmd, args)
	if err != nil {
		return err
	}
	ctx := a.Context()
	defer a.Close(ctx)

	result := a.Compile(ctx)
	if err := render(cmd.OutOrStdout(), result.Graph()); err != nil {
		return exitError(exitInternal, "%s", err)
	}
	if !result.OK() {
		printIssues(cmd.ErrOrStderr(), result.Issues())
		return issuesError(result.Issues())
	}
	return nil
}
