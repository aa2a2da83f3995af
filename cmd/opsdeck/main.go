// Package main provides the entry point for the opsdeck CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/opsdeck/internal/cli"
	"github.com/mrz1836/opsdeck/internal/signal"
)

// Build information set via ldflags.
//
//nolint:gochecknoglobals // set at build time
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	handler := signal.NewHandler(context.Background())
	defer handler.Stop()

	err := cli.Execute(handler.Context(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	cli.CloseLogFile()
	if err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}
