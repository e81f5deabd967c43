// Package main is the entry point for the list-displays application.
package main

import (
	"os"

	"github.com/joe/list-displays/internal/config"
	"github.com/joe/list-displays/internal/enumerator"
	"github.com/joe/list-displays/internal/logging"
	"github.com/joe/list-displays/pkg/display"
	"github.com/joe/list-displays/pkg/filesystem"
)

func main() {
	cfg := config.ParseFlags()

	logger := logging.New(cfg.Verbose, os.Stderr)
	defer func() {
		_ = logger.Sync()
	}()

	display.RouteLibraryLogs(logger)

	enum := enumerator.New(
		filesystem.NewRealFileSystem(),
		display.NewXConnector(cfg.SocketDir),
		cfg.SocketDir,
		os.Stdout,
	)
	enum.Logger = logger

	// Nothing found and nothing reachable are both successful runs.
	enum.Run()
}
