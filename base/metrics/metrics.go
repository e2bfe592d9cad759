package metrics

const (
	TimingLastDurationH = "The last measured duration per label, in seconds"
	TimingLastDurationN = "frametime_timing_last_duration_seconds"
	TimingOvertimeH     = "The total number of pacing waits that were already overtime"
	TimingOvertimeN     = "frametime_timing_overtime_total"
	TimingWaitsH        = "The total number of pacing waits performed"
	TimingWaitsN        = "frametime_timing_waits_total"

	ClockUpdatesH         = "The total number of master clock updates accepted"
	ClockUpdatesN         = "frametime_clock_updates_total"
	ClockUpdatesRejectedH = "The total number of malformed master clock updates rejected"
	ClockUpdatesRejectedN = "frametime_clock_updates_rejected_total"
)
