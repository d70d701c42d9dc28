package metrics

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/mixmetrics/mixmetrics-go/statsd"
)

// statsdRecorder emits one wire line per recorded value. StatsD carries no
// tags, so SetMetricTag does nothing here.
type statsdRecorder struct {
	client   statsd.CollectorInterface
	handler  string
	method   string
	start    time.Time
	finished atomic.Bool
}

var _ Recorder = (*statsdRecorder)(nil)

func (r *statsdRecorder) SetMetricTag(name, value string) {}

func (r *statsdRecorder) RecordTiming(elapsed time.Duration, path ...string) {
	r.client.Timing(elapsed, path...)
}

func (r *statsdRecorder) IncreaseCounter(path ...string) {
	r.client.Incr(1, path...)
}

func (r *statsdRecorder) IncreaseCounterBy(amount int64, path ...string) {
	r.client.Incr(amount, path...)
}

func (r *statsdRecorder) StartTimer(path ...string) *Timer {
	return newTimer(r, path)
}

// Finish sends the total duration as one timing line under
// <handler>.<method>.<status>. Calls after the first are ignored.
func (r *statsdRecorder) Finish(statusCode int) {
	if r.finished.Swap(true) {
		return
	}
	elapsed := clampedBetween(r.start, time.Now())
	r.client.Timing(elapsed, r.handler, r.method, strconv.Itoa(statusCode))
}
