package clock

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go.uber.org/zap"

	"example.com/frame-time/base/metrics"
	"example.com/frame-time/base/timemath"
)

// FrameRate is the fixed frame basis of the master clock timecode.
const FrameRate = 120

// TimecodeLen is the required element count of a master clock update.
const TimecodeLen = 8

// Field indices within a timecode sequence. Year and month are carried for
// wire compatibility but not consumed by the time conversion.
const (
	FieldYear = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldFrame
	FieldPaused
)

// Register holds the process-wide master clock: a frame-accurate timecode
// received from an external source and read by arbitrary consumers. One
// component sets it, any number of others read or convert it. Readers
// always receive a snapshot copy, never a live view.
type Register struct {
	log *zap.Logger

	mu  sync.Mutex
	set bool
	tc  [TimecodeLen]int64

	updates  prometheus.Counter
	rejected prometheus.Counter
}

func NewRegister(log *zap.Logger) *Register {
	if log == nil {
		log = zap.NewNop()
	}
	return &Register{log: log}
}

// RegisterMetrics attaches Prometheus instrumentation to the register.
// Must be called at most once per register.
func (r *Register) RegisterMetrics(reg prometheus.Registerer) {
	r.updates = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: metrics.ClockUpdatesN,
		Help: metrics.ClockUpdatesH,
	})
	r.rejected = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: metrics.ClockUpdatesRejectedN,
		Help: metrics.ClockUpdatesRejectedH,
	})
}

// Set replaces the stored timecode wholesale. Updates with any element
// count other than TimecodeLen are dropped and the prior value retained.
func (r *Register) Set(values []int64) {
	if len(values) != TimecodeLen {
		if r.rejected != nil {
			r.rejected.Inc()
		}
		r.log.Debug("dropped malformed master clock update",
			zap.Int("len", len(values)),
		)
		return
	}
	r.mu.Lock()
	copy(r.tc[:], values)
	r.set = true
	r.mu.Unlock()
	if r.updates != nil {
		r.updates.Inc()
	}
}

// Get returns a copy of the current timecode, or ok=false if no clock has
// ever been set.
func (r *Register) Get() (values []int64, ok bool) {
	tc, ok := r.snapshot()
	if !ok {
		return nil, false
	}
	values = make([]int64, TimecodeLen)
	copy(values, tc[:])
	return values, true
}

// TimeIn converts the current timecode to an absolute time in the given
// unit, e.g. time.Microsecond, truncating to the unit's granularity. It
// reports ok=false and paused=true if no clock has ever been set.
func (r *Register) TimeIn(unit time.Duration) (t int64, paused, ok bool) {
	tc, ok := r.snapshot()
	if !ok {
		return 0, true, false
	}
	frames := tc[FieldFrame] +
		(tc[FieldSecond]+(tc[FieldMinute]+(tc[FieldHour]+tc[FieldDay]*24)*60)*60)*FrameRate
	us := timemath.FrameMicros(frames, FrameRate)
	return timemath.InUnit(timemath.FromMicros(us), unit), tc[FieldPaused] != 0, true
}

// snapshot copies the timecode under the lock; conversion arithmetic runs
// outside the critical section.
func (r *Register) snapshot() ([TimecodeLen]int64, bool) {
	r.mu.Lock()
	tc, ok := r.tc, r.set
	r.mu.Unlock()
	return tc, ok
}
