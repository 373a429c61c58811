package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"wellness/internal/config"
	"wellness/internal/exitcode"
	"wellness/internal/seed"
)

func init() {
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	registry *Registry
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "wellness help" }
func (c *HelpCmd) NeedsSeed() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, src seed.Source, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  wellness                      Start an interactive session")
	for _, cmd := range c.registry.All() {
		fmt.Fprintf(out, "  %-45s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(out, commonFlagsHelp)
	fmt.Fprintf(out, "\nSeed flags (%s):\n", strings.Join(c.registry.Seeded(), ", "))
	fmt.Fprint(out, seedFlagsHelp)
	return exitcode.Success
}

const commonFlagsHelp = `
Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`

const seedFlagsHelp = `  --count <n>      Number of generated tasks (default 30)
  --from <list>    Seed from a Google Tasks list (@default for the default list)

Script ops, one per line:
  check <id> | uncheck <id> | close <id> | water | water reset | list
`
