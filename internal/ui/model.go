package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wellness/internal/output"
	"wellness/internal/rowstate"
	"wellness/internal/session"
	"wellness/internal/taskstore"
)

// noSelection is the cursor value when the list is empty.
const noSelection = -1

// chromeLines is the number of lines View uses outside the task rows.
const chromeLines = 6

// Model is the bubbletea model for one session.
type Model struct {
	sess     *session.Session
	keys     keyMap
	cursor   int // ID of the selected task, or noSelection
	offset   int // index of the first visible row
	expanded *rowstate.Map[bool]
	height   int
	quitting bool
}

var _ tea.Model = (*Model)(nil)

// New creates a model over s with the first task selected.
func New(s *session.Session) *Model {
	m := &Model{
		sess:     s,
		keys:     defaultKeys(),
		cursor:   noSelection,
		expanded: rowstate.New[bool](),
	}
	if tasks := s.Tasks(); len(tasks) > 0 {
		m.cursor = tasks[0].ID
	}
	return m
}

// Selected returns the ID of the selected task.
func (m *Model) Selected() (int, bool) {
	return m.cursor, m.cursor != noSelection
}

// Expanded reports whether the row for id shows its detail line.
func (m *Model) Expanded(id int) bool {
	return m.expanded.Get(id)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	tasks := m.sess.Tasks()
	pos := position(tasks, m.cursor)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.selectAt(tasks, pos+1)
	case key.Matches(msg, m.keys.Up):
		m.selectAt(tasks, pos-1)
	case key.Matches(msg, m.keys.Top):
		m.selectAt(tasks, 0)
	case key.Matches(msg, m.keys.Bottom):
		m.selectAt(tasks, len(tasks)-1)
	case key.Matches(msg, m.keys.Toggle):
		if pos >= 0 {
			m.sess.Toggle(m.cursor)
		}
	case key.Matches(msg, m.keys.Expand):
		if pos >= 0 {
			rowstate.Toggle(m.expanded, m.cursor)
		}
	case key.Matches(msg, m.keys.Close):
		if pos >= 0 {
			m.closeAt(pos)
		}
	case key.Matches(msg, m.keys.AddWater):
		m.sess.AddWater()
	case key.Matches(msg, m.keys.ResetWater):
		m.sess.ResetWater()
	}
	return nil
}

// selectAt moves the cursor to the task at index i, clamped to the list.
func (m *Model) selectAt(tasks []taskstore.Task, i int) {
	if len(tasks) == 0 {
		m.cursor = noSelection
		return
	}
	i = max(0, min(i, len(tasks)-1))
	m.cursor = tasks[i].ID
}

// closeAt closes the selected task, which sits at index pos. The cursor
// lands on the task that slides into pos, or the new last task.
func (m *Model) closeAt(pos int) {
	m.sess.Close(m.cursor)

	tasks := m.sess.Tasks()
	ids := make([]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	m.expanded.Prune(ids)
	m.selectAt(tasks, pos)
}

func position(tasks []taskstore.Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Wellness"))
	b.WriteString("\n\n")
	b.WriteString(m.waterLine())
	b.WriteString("\n\n")

	tasks := m.sess.Tasks()
	if len(tasks) == 0 {
		b.WriteString(styles.Empty.Render("All tasks closed."))
		b.WriteString("\n")
	}

	start, end := m.window(tasks)
	for _, t := range tasks[start:end] {
		b.WriteString(m.row(t))
		b.WriteString("\n")
		if m.expanded.Get(t.ID) {
			b.WriteString(styles.Detail.Render(detail(t)))
			b.WriteString("\n")
		}
	}

	sum := m.sess.Summary()
	b.WriteString("\n")
	b.WriteString(styles.Hint.Render(fmt.Sprintf("%d/%d done · %s", sum.Checked, sum.Total, m.helpLine())))
	return b.String()
}

func (m *Model) waterLine() string {
	w := m.sess.Water()
	line := w.Message()
	if line == "" {
		line = "No glasses yet."
	}
	if !w.CanAdd() {
		return styles.Warning.Render(line + fmt.Sprintf(" (max %d)", w.Max()))
	}
	return styles.Water.Render(line)
}

func (m *Model) row(t taskstore.Task) string {
	marker := "  "
	style := styles.Normal
	if t.ID == m.cursor {
		marker = "> "
		style = styles.Selected
	}
	label := output.NormalizeLabel(t.Label)
	if t.Checked && t.ID != m.cursor {
		style = styles.Done
	}
	return marker + output.Checkbox(t.Checked) + " " + style.Render(label)
}

func detail(t taskstore.Task) string {
	status := "open"
	if t.Checked {
		status = "done"
	}
	return fmt.Sprintf("id %d · %s", t.ID, status)
}

// window returns the slice bounds of the rows that fit on screen, keeping
// the selected row visible. Expanded rows take two lines.
func (m *Model) window(tasks []taskstore.Task) (int, int) {
	budget := m.height - chromeLines
	if m.height == 0 || m.lines(tasks) <= budget {
		m.offset = 0
		return 0, len(tasks)
	}
	budget = max(budget, 1)

	pos := max(position(tasks, m.cursor), 0)
	m.offset = min(m.offset, pos)
	for m.offset < pos && m.lines(tasks[m.offset:pos+1]) > budget {
		m.offset++
	}
	// Fill the screen when the tail is short.
	for m.offset > 0 && m.lines(tasks[m.offset-1:]) <= budget {
		m.offset--
	}

	end := m.offset + 1
	used := m.lines(tasks[m.offset:end])
	for end < len(tasks) {
		next := m.lines(tasks[end : end+1])
		if used+next > budget {
			break
		}
		used += next
		end++
	}
	return m.offset, end
}

// lines returns how many screen lines the given rows render to.
func (m *Model) lines(tasks []taskstore.Task) int {
	n := len(tasks)
	for _, t := range tasks {
		if m.expanded.Get(t.ID) {
			n++
		}
	}
	return n
}

func (m *Model) helpLine() string {
	var parts []string
	for _, b := range m.keys.helpBindings() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
