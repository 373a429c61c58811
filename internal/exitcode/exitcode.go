// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad script, unknown list).
	UserError = 1

	// AuthError indicates an auth or settings error.
	AuthError = 2

	// BackendError indicates a Google Tasks API or network error while seeding.
	BackendError = 3
)
