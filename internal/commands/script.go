package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"wellness/internal/config"
	"wellness/internal/exitcode"
	"wellness/internal/output"
	"wellness/internal/script"
	"wellness/internal/seed"
)

func init() {
	Register(&ScriptCmd{})
}

// ScriptCmd applies an op script to a fresh session and prints the result.
type ScriptCmd struct {
	// Stdin is read when no file is given. Nil means os.Stdin.
	Stdin io.Reader
}

func (c *ScriptCmd) Name() string      { return "script" }
func (c *ScriptCmd) Aliases() []string { return nil }
func (c *ScriptCmd) Synopsis() string  { return "Apply session ops from a file or stdin" }
func (c *ScriptCmd) Usage() string     { return "wellness script [seed flags] [file]" }
func (c *ScriptCmd) NeedsSeed() bool   { return true }

func (c *ScriptCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ScriptCmd) Run(ctx context.Context, cfg *config.Config, src seed.Source, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	in := c.Stdin
	if in == nil {
		in = os.Stdin
	}
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(errOut, "error: cannot open script: %s\n", args[0])
			return exitcode.UserError
		}
		defer f.Close()
		in = f
	}

	// Parse before seeding so a bad script never touches the backend
	ops, err := script.Parse(in)
	if err != nil {
		var perr *script.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(errOut, "error: script %v\n", perr)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	s, code := openSession(ctx, cfg, src, errOut)
	if s == nil {
		return code
	}

	script.Apply(s, ops, out)

	output.FormatTasks(out, s.Tasks())
	if !cfg.Quiet {
		sum := s.Summary()
		output.FormatSummary(out, sum.Checked, sum.Total)
		if msg := s.Water().Message(); msg != "" {
			fmt.Fprintln(out, msg)
		}
	}
	return exitcode.Success
}
