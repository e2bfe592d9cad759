package timemath

import (
	"time"
)

func Micros(d time.Duration) int64 {
	return d.Microseconds()
}

func FromMicros(us int64) time.Duration {
	return time.Duration(us) * time.Microsecond
}

// FrameMicros converts a frame count at the given frame rate to microseconds,
// truncating towards zero.
func FrameMicros(frames, rate int64) int64 {
	if rate <= 0 {
		panic("invalid frame rate")
	}
	return frames * 1_000_000 / rate
}

// InUnit truncates a duration to a whole number of the given unit.
func InUnit(d, unit time.Duration) int64 {
	if unit <= 0 {
		panic("invalid time unit")
	}
	return int64(d / unit)
}
