//go:build linux

package clocks

import (
	"time"

	"go.uber.org/zap"

	"golang.org/x/sys/unix"

	"example.com/frame-time/base/timebase"
)

type SystemClock struct {
	Log *zap.Logger
}

var _ timebase.LocalClock = (*SystemClock)(nil)

func (c *SystemClock) Now() time.Time {
	var ts unix.Timespec
	err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	if err != nil {
		c.Log.Fatal("unix.ClockGettime failed", zap.Error(err))
	}
	return time.Unix(ts.Unix())
}

func (c *SystemClock) Sleep(duration time.Duration) {
	if duration <= 0 {
		return
	}
	req := unix.NsecToTimespec(duration.Nanoseconds())
	for {
		var rem unix.Timespec
		err := unix.Nanosleep(&req, &rem)
		if err == nil {
			return
		}
		if err != unix.EINTR {
			c.Log.Fatal("unix.Nanosleep failed", zap.Error(err))
		}
		req = rem
	}
}
