package cli

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/floorplan/internal/app"
	"github.com/specialistvlad/floorplan/internal/config"
)

// NewRootCmd creates the floorplan command tree.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "floorplan",
		Short: "Compile office floor configurations",
		Long: `floorplan compiles declarative office floor configurations (HCL or YAML)
into a linked, type-checked graph and reports every configuration issue.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "warn", "Logging level: debug, info, warn or error.")
	flags.String("log-format", "text", "Log output format: text or json.")
	flags.String("otlp-endpoint", "", "Export traces to this OTLP/HTTP collector (host:port).")
	flags.String("floor-name", "", "Name of the office floor root.")

	root.AddCommand(newCompileCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newTreeCmd())
	root.AddCommand(newGraphCmd())
	return root
}

// newApp builds the application from the persistent flags and the path
// arguments. Logs go to the command's error stream.
func newApp(cmd *cobra.Command, paths []string) (*app.App, error) {
	flags := cmd.Flags()
	level, _ := flags.GetString("log-level")
	format, _ := flags.GetString("log-format")
	endpoint, _ := flags.GetString("otlp-endpoint")
	floorName, _ := flags.GetString("floor-name")

	cfg, err := app.NewConfig(app.Config{
		Paths:        paths,
		FloorName:    floorName,
		LogFormat:    format,
		LogLevel:     level,
		OTLPEndpoint: endpoint,
	})
	if err != nil {
		return nil, exitError(exitUsage, "%s", err)
	}

	a, err := app.NewApp(cmd.ErrOrStderr(), cfg)
	switch {
	case err == nil:
		return a, nil
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, config.ErrNoSources):
		return nil, exitError(exitNotFound, "%s", err)
	default:
		return nil, exitError(exitIssues, "%s", err)
	}
}
