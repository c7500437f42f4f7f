package main

import (
	"os"

	"github.com/dprint/relnotes/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
