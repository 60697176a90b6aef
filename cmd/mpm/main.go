// Package main is the entry point for the mpm CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/thoreinstein/mpm/cmd/mpm/commands"
	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/logging"
)

func main() {
	// Replaced once flags are parsed.
	slog.SetDefault(logging.Default())

	if err := commands.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
