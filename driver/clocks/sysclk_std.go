//go:build !linux

package clocks

import (
	"time"

	"go.uber.org/zap"

	"example.com/frame-time/base/timebase"
)

type SystemClock struct {
	Log *zap.Logger
}

var _ timebase.LocalClock = (*SystemClock)(nil)

func (c *SystemClock) Now() time.Time {
	return time.Now()
}

func (c *SystemClock) Sleep(duration time.Duration) {
	c.Log.Debug("SystemClock.Sleep",
		zap.Duration("duration", duration),
	)
	time.Sleep(duration)
}
