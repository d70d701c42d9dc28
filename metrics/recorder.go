/*
Package metrics is the surface application code records against. A Provider
is built once per process around a statsd or influxdb collector; request
handling code asks it for one Recorder per unit of work, records timings and
counters while the work runs, and calls Finish exactly once when it is done.
*/
package metrics

//go:generate mockgen -source=recorder.go -destination=mocks/recorder.go -package=mocks

import (
	"context"
	"time"
)

// Recorder accumulates the metrics of one unit of work, typically one
// handled request.
type Recorder interface {
	// SetMetricTag attaches or overrides a tag on the unit of work. Tags
	// only exist in the InfluxDB backend; the statsd backend ignores them.
	SetMetricTag(name, value string)

	// RecordTiming records a duration-valued metric under path.
	RecordTiming(elapsed time.Duration, path ...string)

	// IncreaseCounter adds one to the counter identified by path.
	IncreaseCounter(path ...string)

	// IncreaseCounterBy adds amount to the counter identified by path.
	IncreaseCounterBy(amount int64, path ...string)

	// StartTimer starts a scoped timer; its Stop method records the elapsed
	// time under path on every exit path:
	//
	//	defer r.StartTimer("db", "query").Stop()
	StartTimer(path ...string) *Timer

	// Finish completes the unit of work: the status code and total duration
	// are attached and the accumulated measurement is handed to the
	// transport. Calls after the first are ignored.
	Finish(statusCode int)
}

// Provider mints one Recorder per unit of work and owns the lifecycle of the
// transport behind them.
type Provider interface {
	// NewRecorder returns a recorder for one unit of work handled by the
	// named handler and method.
	NewRecorder(handler, method string) Recorder

	// Shutdown flushes and stops the underlying transport. The context
	// bounds how long to wait for in-flight deliveries.
	Shutdown(ctx context.Context) error
}
