package timing

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go.uber.org/zap"

	"example.com/frame-time/base/metrics"
	"example.com/frame-time/base/timebase"
	"example.com/frame-time/base/timemath"
)

// Timer measures named durations across concurrent call sites and paces
// callers to a target period. A single Timer is constructed at process
// start and shared by reference among all instrumented components.
//
// Per-label operations are linearizable through atomic map slots with
// last-writer-wins semantics; there is no ordering between labels.
type Timer struct {
	log *zap.Logger
	clk timebase.LocalClock

	epoch time.Time

	enabled atomic.Bool
	debug   atomic.Bool

	starts    sync.Map // label -> int64, micros since epoch at Start
	durations sync.Map // label -> uint64, last measured micros

	// Single-slot duration handoff between two call sites, see
	// PushDuration and PullDuration.
	handoff chan uint64

	lastDuration *prometheus.GaugeVec
	waits        *prometheus.CounterVec
	overtime     *prometheus.CounterVec
}

func New(log *zap.Logger, clk timebase.LocalClock) *Timer {
	if clk == nil {
		panic("local clock must not be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}
	t := &Timer{
		log:     log,
		clk:     clk,
		epoch:   clk.Now(),
		handoff: make(chan uint64, 1),
	}
	t.enabled.Store(true)
	return t
}

// RegisterMetrics attaches Prometheus instrumentation to the timer. Without
// it the timer records no metrics. Must be called at most once per timer.
func (t *Timer) RegisterMetrics(r prometheus.Registerer) {
	t.lastDuration = promauto.With(r).NewGaugeVec(prometheus.GaugeOpts{
		Name: metrics.TimingLastDurationN,
		Help: metrics.TimingLastDurationH,
	}, []string{"label"})
	t.waits = promauto.With(r).NewCounterVec(prometheus.CounterOpts{
		Name: metrics.TimingWaitsN,
		Help: metrics.TimingWaitsH,
	}, []string{"label"})
	t.overtime = promauto.With(r).NewCounterVec(prometheus.CounterOpts{
		Name: metrics.TimingOvertimeN,
		Help: metrics.TimingOvertimeH,
	}, []string{"label"})
}

// SetEnabled toggles the whole facility. While disabled, all start, stop,
// and pacing operations are no-ops.
func (t *Timer) SetEnabled(enabled bool) {
	t.enabled.Store(enabled)
}

func (t *Timer) Enabled() bool {
	return t.enabled.Load()
}

// SetDebug enables verbose logging of pacing misses.
func (t *Timer) SetDebug(debug bool) {
	t.debug.Store(debug)
}

func (t *Timer) Debug() bool {
	return t.debug.Load()
}

// Now returns the current time in microseconds since the timer's epoch.
func (t *Timer) Now() int64 {
	return t.now()
}

func (t *Timer) now() int64 {
	return timemath.Micros(t.clk.Now().Sub(t.epoch))
}

// Start begins a duration measurement, overwriting any prior start time
// for the label.
func (t *Timer) Start(label string) {
	if !t.enabled.Load() {
		return
	}
	t.starts.Store(label, t.now())
}

// Stop finalizes a duration measurement. A label that was never started
// is ignored.
func (t *Timer) Stop(label string) {
	if !t.enabled.Load() {
		return
	}
	v, ok := t.starts.Load(label)
	if !ok {
		return
	}
	t.record(label, uint64(t.now()-v.(int64)))
}

// Duration returns the last measured duration for the label in
// microseconds, or 0 if none was ever recorded.
func (t *Timer) Duration(label string) uint64 {
	v, ok := t.durations.Load(label)
	if !ok {
		return 0
	}
	return v.(uint64)
}

// SetDuration injects an externally measured duration, e.g. a timing
// received from a peer.
func (t *Timer) SetDuration(label string, us uint64) {
	t.record(label, us)
}

// Durations returns a snapshot of all last measured durations.
func (t *Timer) Durations() map[string]uint64 {
	m := make(map[string]uint64)
	t.durations.Range(func(k, v any) bool {
		m[k.(string)] = v.(uint64)
		return true
	})
	return m
}

// SinceLastSeen returns the duration since the previous call with the same
// label, or 0 on the first call. The label is left running on every path,
// so successive calls measure back-to-back intervals.
func (t *Timer) SinceLastSeen(label string) uint64 {
	if _, ok := t.starts.Load(label); !ok {
		t.Start(label)
		return 0
	}
	t.Stop(label)
	d := t.Duration(label)
	t.Start(label)
	return d
}

// WaitUntilDuration sleeps the caller until the target duration has elapsed
// since Start(label) and reports whether the target had already been missed.
// It returns false immediately if the facility is disabled or the label was
// never started. The recorded duration is max(target, elapsed), so
// chronically overtime labels stay visible in telemetry.
func (t *Timer) WaitUntilDuration(label string, target uint64) (overtime bool) {
	if !t.enabled.Load() {
		return false
	}
	v, ok := t.starts.Load(label)
	if !ok {
		return false
	}
	elapsed := uint64(t.now() - v.(int64))
	t.record(label, max(target, elapsed))
	if t.waits != nil {
		t.waits.WithLabelValues(label).Inc()
	}
	if elapsed >= target {
		if t.overtime != nil {
			t.overtime.WithLabelValues(label).Inc()
		}
		if t.debug.Load() {
			t.log.Debug("pacing overtime",
				zap.String("label", label),
				zap.Uint64("target_us", target),
				zap.Uint64("elapsed_us", elapsed),
			)
		}
		return true
	}
	t.clk.Sleep(timemath.FromMicros(int64(target - elapsed)))
	return false
}

// PushDuration hands a measured duration to a later PullDuration call on
// the same goroutine, without threading the value through call arguments.
// At most one handoff may be outstanding process-wide; a second push
// blocks until the pending value has been pulled.
func (t *Timer) PushDuration(us uint64) {
	t.handoff <- us
}

// PullDuration consumes the pending handoff and uses it as the pacing
// target for the label. Without a pending handoff, or with a pending
// zero, it falls back to a plain Stop.
func (t *Timer) PullDuration(label string) (overtime bool) {
	var us uint64
	select {
	case us = <-t.handoff:
	default:
	}
	if us > 0 {
		return t.WaitUntilDuration(label, us)
	}
	t.Stop(label)
	return false
}

func (t *Timer) record(label string, us uint64) {
	t.durations.Store(label, us)
	if t.lastDuration != nil {
		t.lastDuration.WithLabelValues(label).Set(float64(us) / 1e6)
	}
}
