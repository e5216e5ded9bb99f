package timeutil

import (
	"sync"
	"time"
)

// Clock abstracts a time source.
type Clock interface {
	// Now returns the current time in the clock's location.
	Now() time.Time
	// Since is a convenience wrapper over Now().Sub(t).
	Since(t time.Time) time.Duration
}

// ===== Implementations =====

// SystemClock uses system time in Location (time.Local when nil).
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().In(time.Local)
	}
	return time.Now().In(c.Location)
}

// Important: use Clock.Now() for consistency with custom clocks.
func (c SystemClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

// FrozenClock keeps fixed time with manual advancement.
type FrozenClock struct {
	mu sync.RWMutex
	t  time.Time
}

// NewFrozenClock keeps t as is, including its location, so calendar
// helpers see the same day the caller wrote down.
func NewFrozenClock(t time.Time) *FrozenClock { return &FrozenClock{t: t} }

func (c *FrozenClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

func (c *FrozenClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

func (c *FrozenClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// OrDefault returns c, or a SystemClock in time.Local when c is nil.
func OrDefault(c Clock) Clock {
	if c == nil {
		return SystemClock{}
	}
	return c
}
