// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"wellness/internal/backend/googletasks"
	"wellness/internal/commands"
	"wellness/internal/config"
	"wellness/internal/exitcode"
	"wellness/internal/seed"
)

// SourceFactory creates the seed source for a session from config.
type SourceFactory func(ctx context.Context, cfg *config.Config) (seed.Source, error)

// DefaultSourceFactory seeds from Google Tasks when cfg.FromList is set and
// from the sample generator otherwise.
func DefaultSourceFactory(ctx context.Context, cfg *config.Config) (seed.Source, error) {
	if !cfg.UsesGoogle() {
		return seed.Generator{Count: cfg.SeedCount, Template: cfg.LabelTemplate}, nil
	}
	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("%w: %s not found in %s", googletasks.ErrAuth, config.OAuthClientFile, cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, fmt.Errorf("%w: not logged in (run: wellness login)", googletasks.ErrAuth)
	}
	return googletasks.New(ctx, cfg)
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  SourceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and source
// factory. A nil factory uses DefaultSourceFactory.
func NewDispatcher(registry *commands.Registry, factory SourceFactory) *Dispatcher {
	if factory == nil {
		factory = DefaultSourceFactory
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return d.dispatch(ctx, "", nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Resolve(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

// seedFlags are the flags shared by every command that builds a session.
type seedFlags struct {
	count int
	from  string
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported below

	var configDir string
	var quiet, debug bool
	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	var sf seedFlags
	if cmd.NeedsSeed() {
		fs.IntVar(&sf.count, "count", 0, "")
		fs.StringVar(&sf.from, "from", "", "")
	}

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}

	// A leading "-" here means the flag parser stopped early
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") && positionalArgs[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	var src seed.Source
	if cmd.NeedsSeed() {
		// Explicit flags override config.toml
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "count":
				cfg.SeedCount = sf.count
			case "from":
				cfg.FromList = sf.from
			}
		})
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}

		cfg.Logger(errOut).Printf("seeding %s", describeSeed(cfg))
		src, err = d.factory(ctx, cfg)
		if err != nil {
			if errors.Is(err, googletasks.ErrAuth) {
				fmt.Fprintf(errOut, "error: %v\n", err)
				return exitcode.AuthError
			}
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
	}

	return cmd.Run(ctx, cfg, src, positionalArgs, out, errOut)
}

// flagErrorMessage rewrites flag package errors into the CLI's wording.
func flagErrorMessage(err error) string {
	errStr := err.Error()

	if strings.HasPrefix(errStr, "flag needs an argument:") {
		name := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + name
	}
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		name := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		return "unknown flag: " + name
	}
	return errStr
}

func describeSeed(cfg *config.Config) string {
	if cfg.UsesGoogle() {
		return fmt.Sprintf("from Google Tasks list %q", cfg.FromList)
	}
	return fmt.Sprintf("%d generated tasks", cfg.SeedCount)
}
