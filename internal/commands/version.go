package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"wellness/internal/config"
	"wellness/internal/exitcode"
	"wellness/internal/seed"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd implements the version command.
type VersionCmd struct{}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version" }
func (c *VersionCmd) Usage() string     { return "wellness version" }
func (c *VersionCmd) NeedsSeed() bool   { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, src seed.Source, args []string, out, errOut io.Writer) int {
	fmt.Fprintf(out, "wellness %s\n", Version)
	return exitcode.Success
}
