package benchmark

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"go.uber.org/zap"

	"example.com/frame-time/core/timing"
)

// RunPacing drives the pacing engine at the given target period for the
// given number of frames and reports the achieved frame-to-frame interval
// distribution.
func RunPacing(log *zap.Logger, tm *timing.Timer, label string,
	target time.Duration, iterations int) {
	targetUs := uint64(target.Microseconds())
	intervalLabel := label + "_interval"
	hg := hdrhistogram.New(1, 100*int64(targetUs)+1, 5)
	overtime := 0
	for i := 0; i < iterations; i++ {
		tm.Start(label)
		if tm.WaitUntilDuration(label, targetUs) {
			overtime++
		}
		interval := tm.SinceLastSeen(intervalLabel)
		if i == 0 {
			continue
		}
		err := hg.RecordValue(int64(interval))
		if err != nil {
			log.Error("failed to record histogram value", zap.Error(err))
		}
	}
	log.Info("pacing benchmark done",
		zap.Int("iterations", iterations),
		zap.Uint64("target_us", targetUs),
		zap.Int("overtime", overtime),
		zap.Int64("p50_us", hg.ValueAtQuantile(50)),
		zap.Int64("p90_us", hg.ValueAtQuantile(90)),
		zap.Int64("p99_us", hg.ValueAtQuantile(99)),
		zap.Int64("max_us", hg.Max()),
	)
}
