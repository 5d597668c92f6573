package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/floorplan/internal/cli"
)

// version is set at build time.
var version = "dev"

// newRootCmd builds the command tree run by main.
var newRootCmd = cli.NewRootCmd

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// run executes the command tree. Panics, such as modules registering an
// inconsistent set of sources, are returned as errors.
func run(outW, errW io.Writer, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	root := newRootCmd(version)
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetArgs(args)
	return root.Execute()
}
