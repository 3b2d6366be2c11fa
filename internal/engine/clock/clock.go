// Package clock provides the monotonic elapsed-time source read once per
// frame.
package clock

import "time"

// Clock measures seconds since Start.
type Clock struct {
	now     func() time.Time
	start   time.Time
	started bool
}

// New returns a clock backed by the wall clock's monotonic reading.
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource returns a clock that reads time from now.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start resets elapsed time to zero.
func (c *Clock) Start() {
	c.start = c.now()
	c.started = true
}

// Started reports whether Start has been called.
func (c *Clock) Started() bool {
	return c.started
}

// Elapsed returns seconds since Start, or 0 if the clock was never started.
// The result never decreases.
func (c *Clock) Elapsed() float64 {
	if !c.started {
		return 0
	}
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}
