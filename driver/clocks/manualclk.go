package clocks

import (
	"sync"
	"time"

	"example.com/frame-time/base/timebase"
)

// ManualClock is a hand-advanced clock for deterministic tests and
// simulation. Sleep advances the clock instead of blocking. The zero
// value is ready to use.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ timebase.LocalClock = (*ManualClock)(nil)

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Advance(duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(duration)
}

func (c *ManualClock) Sleep(duration time.Duration) {
	if duration < 0 {
		duration = 0
	}
	c.Advance(duration)
}
