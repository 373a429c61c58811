package ui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"wellness/internal/session"
)

// Run drives s interactively until the user quits or ctx is cancelled.
// Cancellation is not an error.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(s),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
