// Package storagetest holds the behavior every Repository backend must share,
// written once and run against each backend from its own tests.
package storagetest

import (
	"sync"
	"time"
)

// Clock is a deterministic time source that advances by Step on every call.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start.UTC(), Step: time.Second}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.Step)
	return c.now
}

// Set moves the clock so the next Now returns t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC().Add(-c.Step)
}
