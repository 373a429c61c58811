// Package water tracks glasses of water drunk during a session.
package water

import "fmt"

// DefaultMax is the number of glasses after which Add stops counting.
const DefaultMax = 10

// Counter counts glasses up to Max.
type Counter struct {
	count int
	max   int
}

// New creates a counter capped at max. A max below 1 uses DefaultMax.
func New(max int) *Counter {
	if max < 1 {
		max = DefaultMax
	}
	return &Counter{max: max}
}

// Count returns the current number of glasses.
func (c *Counter) Count() int { return c.count }

// Max returns the cap.
func (c *Counter) Max() int { return c.max }

// CanAdd reports whether another glass can be counted.
func (c *Counter) CanAdd() bool { return c.count < c.max }

// Add counts one more glass. It returns false and does nothing at the cap.
func (c *Counter) Add() bool {
	if !c.CanAdd() {
		return false
	}
	c.count++
	return true
}

// Reset clears the count.
func (c *Counter) Reset() { c.count = 0 }

// Message returns the status line, or "" when nothing has been counted.
func (c *Counter) Message() string {
	if c.count == 0 {
		return ""
	}
	return fmt.Sprintf("You've had %d glasses.", c.count)
}
