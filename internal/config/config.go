// Package config handles application configuration and command-line argument parsing.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/joe/list-displays/pkg/display"
)

// Config holds the application configuration.
// The zero-argument invocation scans the standard X socket directory silently.
type Config struct {
	SocketDir string `arg:"--socket-dir" placeholder:"DIR" help:"Directory holding X display sockets"`
	Verbose   bool   `arg:"-v,--verbose" help:"Explain skipped entries and failed connections on stderr"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "List local X displays and the resolution of each of their screens"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "list-displays 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration.
// Invalid flags print usage and exit, as go-arg does.
func ParseFlags() *Config {
	cfg := &Config{SocketDir: display.DefaultSocketDir}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// ParseArgs parses args (without the program name) into a Config.
// It returns arg.ErrHelp or arg.ErrVersion when those flags are given.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{SocketDir: display.DefaultSocketDir}

	parser, err := arg.NewParser(arg.Config{Program: "list-displays"}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build argument parser: %w", err)
	}

	err = parser.Parse(args)
	if err != nil {
		return nil, err //nolint:wrapcheck // Callers compare against arg.ErrHelp
	}

	return PostProcessConfig(cfg), nil
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) *Config {
	dir := strings.TrimSpace(cfg.SocketDir)
	if dir == "" {
		dir = display.DefaultSocketDir
	}

	cfg.SocketDir = filepath.Clean(dir)

	return cfg
}
