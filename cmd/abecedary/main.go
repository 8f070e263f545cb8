package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/abecedary/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands print their own structured errors before returning an
		// ExitError; anything else (flag parsing, usage) still needs a line.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
