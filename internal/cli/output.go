package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/floorplan/internal/issues"
)

// encode writes v to w as YAML or indented JSON.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return exitError(exitUsage, "unsupported output format %q", format)
	}
}

// printIssues writes one issue per line.
func printIssues(w io.Writer, list []issues.Issue) {
	for _, i := range list {
		fmt.Fprintln(w, i.String())
	}
}

// issuesError is the exit error for a pass that reported issues.
func issuesError(list []issues.Issue) *ExitError {
	return exitError(exitIssues, "compilation reported %d issue(s)", len(list))
}
