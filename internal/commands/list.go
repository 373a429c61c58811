package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"wellness/internal/config"
	"wellness/internal/exitcode"
	"wellness/internal/output"
	"wellness/internal/seed"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd prints the tasks a fresh session starts with.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "Print the seeded task list" }
func (c *ListCmd) Usage() string     { return "wellness list [seed flags]" }
func (c *ListCmd) NeedsSeed() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, src seed.Source, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	s, code := openSession(ctx, cfg, src, errOut)
	if s == nil {
		return code
	}

	tasks := s.Tasks()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	output.FormatTasks(out, tasks)
	return exitcode.Success
}
