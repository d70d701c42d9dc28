package metrics

import (
	"context"
	"time"
)

// NoopRecorder discards everything. Useful when metrics are disabled.
type NoopRecorder struct{}

var _ Recorder = (*NoopRecorder)(nil)

func (n *NoopRecorder) SetMetricTag(name, value string) {}

func (n *NoopRecorder) RecordTiming(elapsed time.Duration, path ...string) {}

func (n *NoopRecorder) IncreaseCounter(path ...string) {}

func (n *NoopRecorder) IncreaseCounterBy(amount int64, path ...string) {}

func (n *NoopRecorder) StartTimer(path ...string) *Timer {
	return newTimer(n, path)
}

func (n *NoopRecorder) Finish(statusCode int) {}

// NoopProvider mints NoopRecorders.
type NoopProvider struct{}

var _ Provider = (*NoopProvider)(nil)

func (n *NoopProvider) NewRecorder(handler, method string) Recorder {
	return &NoopRecorder{}
}

func (n *NoopProvider) Shutdown(_ context.Context) error {
	return nil
}
