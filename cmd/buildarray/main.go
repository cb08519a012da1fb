// Command buildarray builds fixed-length containers from mixed scalar
// arguments.
//
// Usage:
//
//	buildarray demo                       Print the demonstration container
//	buildarray build <literal>...         Build from literal arguments
//	buildarray eval <path>                Build every request in CUE files
//	buildarray check <scenarios-dir>      Run YAML conformance scenarios
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/buildarray/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		// ExitErrors have already been reported by the command.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	os.Exit(cli.GetExitCode(err))
}
