// Package taskstore holds the ordered, identity-stable task list for a session.
//
// Every lookup is keyed by Task.ID, never by position: removing a task shifts
// the tasks after it left by one, so a position seen before a removal may name
// a different task afterwards.
package taskstore

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned by New when two seed tasks share an ID.
var ErrDuplicateID = errors.New("duplicate task id")

// Task is a single row in the store.
type Task struct {
	ID      int
	Label   string
	Checked bool
}

// Store owns the task sequence. It is not safe for concurrent use; all calls
// are expected to come from the single goroutine that drives the session.
type Store struct {
	tasks []Task
}

// New creates a store holding a copy of tasks in the given order.
func New(tasks []Task) (*Store, error) {
	seen := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	s := &Store{tasks: make([]Task, len(tasks))}
	copy(s.tasks, tasks)
	return s, nil
}

// List returns the current tasks in display order.
// The returned slice is a copy; changing it does not affect the store.
func (s *Store) List() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks currently held.
func (s *Store) Len() int { return len(s.tasks) }

// Get returns the task with the given ID.
func (s *Store) Get(id int) (Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// SetChecked sets the checked flag of the task with the given ID.
// Unknown IDs are ignored: the task may already have been closed.
func (s *Store) SetChecked(id int, checked bool) {
	if i := s.indexOf(id); i >= 0 {
		s.tasks[i].Checked = checked
	}
}

// Remove deletes the task with the given ID. Unknown IDs are ignored.
func (s *Store) Remove(id int) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
