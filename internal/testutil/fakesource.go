// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
)

// FakeSource is an in-memory seed.Source for testing.
type FakeSource struct {
	mu     sync.Mutex
	labels []string
	calls  int

	// Err, when set, is returned by Labels instead of the labels.
	Err error
}

// NewFakeSource creates a FakeSource that yields the given labels.
func NewFakeSource(labels ...string) *FakeSource {
	return &FakeSource{labels: labels}
}

// Labels implements seed.Source.
func (f *FakeSource) Labels(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]string, len(f.labels))
	copy(out, f.labels)
	return out, nil
}

// Calls returns how many times Labels has been called.
func (f *FakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
