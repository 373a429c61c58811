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

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd removes the stored Google token. oauth_client.json is kept so a
// later login does not need new credentials.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string      { return "logout" }
func (c *LogoutCmd) Aliases() []string { return nil }
func (c *LogoutCmd) Synopsis() string  { return "Remove the stored Google token" }
func (c *LogoutCmd) Usage() string     { return "wellness logout [common flags]" }
func (c *LogoutCmd) NeedsSeed() bool   { return false }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, cfg *config.Config, src seed.Source, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if !cfg.HasToken() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "not logged in")
		}
		return exitcode.Success
	}

	if err := cfg.RemoveToken(); err != nil {
		fmt.Fprintf(errOut, "error: failed to remove token: %v\n", err)
		return exitcode.AuthError
	}
	cfg.Logger(errOut).Printf("removed %s", cfg.TokenPath())

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
		// Sessions seeded from a configured list fail until the next login.
		if cfg.UsesGoogle() {
			fmt.Fprintf(errOut, "note: %s seeds from Google Tasks list %q; run 'wellness login' before the next session\n", config.SettingsFile, cfg.FromList)
		}
	}
	return exitcode.Success
}
