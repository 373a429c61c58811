// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"wellness/internal/taskstore"
)

const (
	// ListSeparator is the separator line between list sections.
	ListSeparator = "------------"
)

// FormatTask formats one task line.
// Format: "{ID:>4}  [x] {LABEL}\n" ("[ ]" when unchecked).
func FormatTask(w io.Writer, task taskstore.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", task.ID, Checkbox(task.Checked), NormalizeLabel(task.Label))
}

// FormatTasks formats every task in order.
func FormatTasks(w io.Writer, tasks []taskstore.Task) {
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// FormatSummary formats the "{checked}/{total} done" line.
func FormatSummary(w io.Writer, checked, total int) {
	fmt.Fprintf(w, "%d/%d done\n", checked, total)
}

// Checkbox renders a checked flag.
func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// NormalizeLabel normalizes a task label for display.
// - Empty or whitespace-only labels become "(untitled)"
// - Newlines are replaced with spaces
func NormalizeLabel(label string) string {
	label = strings.ReplaceAll(label, "\r", " ")
	label = strings.ReplaceAll(label, "\n", " ")

	if strings.TrimSpace(label) == "" {
		return "(untitled)"
	}
	return label
}
