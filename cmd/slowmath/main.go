package main

import (
	"fmt"
	"os"

	"github.com/eigerco/slowmath/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// failed evaluations have already been reported on stdout
		code := cli.GetExitCode(err)
		if code != cli.ExitFailure {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(code)
	}
}
