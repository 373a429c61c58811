// Package seed produces the initial task labels for a session.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wellness/internal/taskstore"
)

const (
	// DefaultCount is the number of tasks the sample generator produces.
	DefaultCount = 30

	// DefaultTemplate is the label template used by the sample generator.
	DefaultTemplate = "Task # %d"
)

// ErrInvalidTemplate is returned when a label template does not format exactly one integer.
var ErrInvalidTemplate = errors.New("label template must contain %d")

// Source supplies the labels a session starts with.
// A session calls Labels exactly once.
type Source interface {
	Labels(ctx context.Context) ([]string, error)
}

// Generator is the fixed sample source: Count labels built from Template.
type Generator struct {
	Count    int
	Template string
}

// NewGenerator returns a generator with the sample defaults.
func NewGenerator() Generator {
	return Generator{Count: DefaultCount, Template: DefaultTemplate}
}

// Labels implements Source.
func (g Generator) Labels(ctx context.Context) ([]string, error) {
	if g.Count < 0 {
		return nil, fmt.Errorf("invalid seed count: %d", g.Count)
	}
	tmpl := g.Template
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	if err := ValidateTemplate(tmpl); err != nil {
		return nil, err
	}

	labels := make([]string, g.Count)
	for i := range labels {
		labels[i] = fmt.Sprintf(tmpl, i)
	}
	return labels, nil
}

// ValidateTemplate checks that tmpl formats exactly one integer. The verb
// may carry flags and a width ("%03d"); "%%" is a literal percent sign.
func ValidateTemplate(tmpl string) error {
	verbs := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		i++
		if i < len(tmpl) && tmpl[i] == '%' {
			continue
		}
		for i < len(tmpl) && strings.IndexByte("+- #0", tmpl[i]) >= 0 {
			i++
		}
		for i < len(tmpl) && (tmpl[i] >= '0' && tmpl[i] <= '9' || tmpl[i] == '.') {
			i++
		}
		if i >= len(tmpl) || tmpl[i] != 'd' {
			return fmt.Errorf("%w: %q", ErrInvalidTemplate, tmpl)
		}
		verbs++
	}
	if verbs != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidTemplate, tmpl)
	}
	return nil
}

// Build turns labels into tasks with sequential IDs starting at 0.
func Build(labels []string) []taskstore.Task {
	tasks := make([]taskstore.Task, len(labels))
	for i, label := range labels {
		tasks[i] = taskstore.Task{ID: i, Label: label}
	}
	return tasks
}
