// Package main is the entry point for the whichchain CLI.
package main

import (
	"os"

	"github.com/whichchain/whichchain/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
