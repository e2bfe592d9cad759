package timebase

import (
	"time"
)

// LocalClock is the time source behind the timing facility. Now must be
// backed by a monotonic clock: its values are only ever subtracted from
// each other, never interpreted as wall-clock time.
type LocalClock interface {
	Now() time.Time
	Sleep(duration time.Duration)
}
