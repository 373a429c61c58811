package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors
const (
	colorAccent    = "86"  // titles, water line
	colorHighlight = "205" // selected row
	colorMuted     = "241" // hints, details
	colorDone      = "243" // checked labels
	colorWarning   = "208" // water cap reached
)

var styles = struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Done     lipgloss.Style
	Detail   lipgloss.Style
	Water    lipgloss.Style
	Warning  lipgloss.Style
	Hint     lipgloss.Style
	Empty    lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
	Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorHighlight)),
	Normal:   lipgloss.NewStyle(),
	Done:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color(colorDone)),
	Detail:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)).PaddingLeft(6),
	Water:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)),
	Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarning)),
	Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	Empty:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(colorMuted)),
}
