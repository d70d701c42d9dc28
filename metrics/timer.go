package metrics

import "time"

// Timer measures one scoped block of work and reports it on Stop.
type Timer struct {
	recorder Recorder
	path     []string
	start    time.Time
}

func newTimer(recorder Recorder, path []string) *Timer {
	return &Timer{recorder: recorder, path: path, start: time.Now()}
}

// Stop records the elapsed time under the timer's path. The duration is
// clamped at zero so a clock adjustment between start and stop can never
// produce a negative timing.
func (t *Timer) Stop() {
	t.recorder.RecordTiming(clampedBetween(t.start, time.Now()), t.path...)
}

func clampedBetween(start, end time.Time) time.Duration {
	if end.Before(start) {
		return 0
	}
	return end.Sub(start)
}
