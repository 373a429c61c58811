package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"wellness/internal/backend/googletasks"
	"wellness/internal/config"
	"wellness/internal/exitcode"
	"wellness/internal/seed"
	"wellness/internal/session"
)

// openSession seeds a session from src. On failure it prints the error and
// returns the exit code to use.
func openSession(ctx context.Context, cfg *config.Config, src seed.Source, errOut io.Writer) (*session.Session, int) {
	s, err := session.New(ctx, src, session.Options{
		WaterMax: cfg.WaterMax,
		Logger:   cfg.Logger(errOut),
	})
	if err != nil {
		return nil, reportSeedError(err, errOut)
	}
	return s, exitcode.Success
}

// reportSeedError maps a seed failure to a message and exit code. Auth and
// list errors are printed as the source reported them.
func reportSeedError(err error, errOut io.Writer) int {
	cause := err
	var seedErr *session.SeedError
	if errors.As(err, &seedErr) {
		cause = seedErr.Err
	}

	switch {
	case errors.Is(err, googletasks.ErrAuth):
		fmt.Fprintf(errOut, "error: %v\n", cause)
		return exitcode.AuthError
	case errors.Is(err, googletasks.ErrListNotFound), errors.Is(err, googletasks.ErrAmbiguousList):
		fmt.Fprintf(errOut, "error: %v\n", cause)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}
