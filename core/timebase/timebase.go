package timebase

import (
	"sync/atomic"
	"time"

	"example.com/frame-time/base/timebase"
)

var (
	lclk atomic.Value
)

// RegisterClock installs the process-wide local clock. It must be called
// exactly once, before any component reads time through this package.
func RegisterClock(c timebase.LocalClock) {
	if c == nil {
		panic("local clock must not be nil")
	}
	swapped := lclk.CompareAndSwap(nil, c)
	if !swapped {
		panic("local clock already registered")
	}
}

func Clock() timebase.LocalClock {
	c, ok := lclk.Load().(timebase.LocalClock)
	if !ok {
		panic("no local clock registered")
	}
	return c
}

func Now() time.Time {
	return Clock().Now()
}

func Sleep(duration time.Duration) {
	Clock().Sleep(duration)
}
