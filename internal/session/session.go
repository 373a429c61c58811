// Package session is the view-model for one wellness screen: the task store,
// the water counter, and the single call to the seed source that fills them.
package session

import (
	"context"
	"io"
	"log"

	"wellness/internal/seed"
	"wellness/internal/taskstore"
	"wellness/internal/water"
)

// Options configures a Session.
type Options struct {
	// WaterMax caps the water counter. Zero uses water.DefaultMax.
	WaterMax int

	// Logger receives debug lines for every mutation. Nil discards them.
	Logger *log.Logger
}

// Summary is a count of tasks by state.
type Summary struct {
	Total   int
	Checked int
}

// Open returns the number of unchecked tasks.
func (s Summary) Open() int { return s.Total - s.Checked }

// SeedError reports a failure of the seed source. Err is the source's own
// error, suitable for showing to the user as is.
type SeedError struct {
	Err error
}

func (e *SeedError) Error() string { return "seed: " + e.Err.Error() }

func (e *SeedError) Unwrap() error { return e.Err }

// Session owns the state behind one screen. Presentation code reads it through
// Tasks and changes it only through the mutators below.
type Session struct {
	store *taskstore.Store
	water *water.Counter
	log   *log.Logger
}

// New seeds a session from src. src.Labels is called exactly once.
func New(ctx context.Context, src seed.Source, opts Options) (*Session, error) {
	labels, err := src.Labels(ctx)
	if err != nil {
		return nil, &SeedError{Err: err}
	}

	store, err := taskstore.New(seed.Build(labels))
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	logger.Printf("session seeded with %d tasks", store.Len())

	return &Session{
		store: store,
		water: water.New(opts.WaterMax),
		log:   logger,
	}, nil
}

// Tasks returns the tasks in display order.
func (s *Session) Tasks() []taskstore.Task {
	return s.store.List()
}

// Task returns the task with the given ID.
func (s *Session) Task(id int) (taskstore.Task, bool) {
	return s.store.Get(id)
}

// SetChecked changes the checked flag of a task.
func (s *Session) SetChecked(id int, checked bool) {
	s.log.Printf("set checked id=%d checked=%t", id, checked)
	s.store.SetChecked(id, checked)
}

// Toggle flips the checked flag of a task and returns the new value.
// It returns false for unknown IDs.
func (s *Session) Toggle(id int) bool {
	t, ok := s.store.Get(id)
	if !ok {
		return false
	}
	s.SetChecked(id, !t.Checked)
	return !t.Checked
}

// Close removes a task from the session.
func (s *Session) Close(id int) {
	s.log.Printf("close id=%d", id)
	s.store.Remove(id)
}

// Water returns the session's water counter.
func (s *Session) Water() *water.Counter {
	return s.water
}

// AddWater counts one glass and reports whether it was counted.
func (s *Session) AddWater() bool {
	ok := s.water.Add()
	s.log.Printf("add water count=%d added=%t", s.water.Count(), ok)
	return ok
}

// ResetWater clears the water counter.
func (s *Session) ResetWater() {
	s.log.Printf("reset water")
	s.water.Reset()
}

// Summary counts the current tasks.
func (s *Session) Summary() Summary {
	var sum Summary
	for _, t := range s.store.List() {
		sum.Total++
		if t.Checked {
			sum.Checked++
		}
	}
	return sum
}
