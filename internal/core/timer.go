package core

import "time"

// DefaultCyclePeriod is the auto-regeneration interval used by the viewers.
const DefaultCyclePeriod = 2 * time.Second

// Cycle fires at a steady period so viewers can regenerate levels on a timer.
type Cycle struct {
	period      time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewCycle constructs a Cycle with the given period.
func NewCycle(period time.Duration) *Cycle {
	c := &Cycle{}
	c.SetPeriod(period)
	return c
}

// SetPeriod changes the interval. Non-positive values select DefaultCyclePeriod.
func (c *Cycle) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = DefaultCyclePeriod
	}
	c.period = period
}

// Period reports the active interval.
func (c *Cycle) Period() time.Duration { return c.period }

// Reset discards accumulated time, e.g. after a manual regeneration.
func (c *Cycle) Reset() {
	c.accumulator = 0
	c.last = time.Time{}
}

// Due reports whether a full period has elapsed since the last firing.
func (c *Cycle) Due(now time.Time) bool {
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta > 0 {
		c.accumulator += delta
	}
	if c.accumulator >= c.period {
		c.accumulator -= c.period
		if c.accumulator >= c.period {
			c.accumulator = 0
		}
		return true
	}
	return false
}
