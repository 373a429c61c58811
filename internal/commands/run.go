package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"wellness/internal/config"
	"wellness/internal/exitcode"
	"wellness/internal/output"
	"wellness/internal/seed"
	"wellness/internal/session"
	"wellness/internal/ui"
)

func init() {
	Register(&RunCmd{})
	DefaultRegistry.SetDefault("run")
}

// Interact drives a session until the user is done.
type Interact func(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error

// RunCmd starts an interactive session. It is the default command.
type RunCmd struct {
	// Interact replaces the terminal UI (for testing). Nil means ui.Run.
	Interact Interact

	// Stdin is the UI's input. Nil means os.Stdin.
	Stdin io.Reader
}

func (c *RunCmd) Name() string      { return "run" }
func (c *RunCmd) Aliases() []string { return nil }
func (c *RunCmd) Synopsis() string  { return "Start an interactive session" }
func (c *RunCmd) Usage() string     { return "wellness run [seed flags]" }
func (c *RunCmd) NeedsSeed() bool   { return true }

func (c *RunCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RunCmd) Run(ctx context.Context, cfg *config.Config, src seed.Source, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	s, code := openSession(ctx, cfg, src, errOut)
	if s == nil {
		return code
	}

	interact := c.Interact
	if interact == nil {
		interact = ui.Run
	}
	in := c.Stdin
	if in == nil {
		in = os.Stdin
	}

	if err := interact(ctx, s, in, out); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		sum := s.Summary()
		output.FormatSummary(out, sum.Checked, sum.Total)
	}
	return exitcode.Success
}
