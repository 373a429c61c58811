// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"wellness/internal/config"
	"wellness/internal/seed"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsSeed returns true if the command builds a session and therefore
	// needs a seed source. Commands like help, version, login, logout
	// return false.
	NeedsSeed() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths, session settings).
	// src is nil if NeedsSeed() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, src seed.Source, args []string, out, errOut io.Writer) int
}
