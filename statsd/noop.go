package statsd

import "time"

// NoOpCollector is a collector that does nothing. Can be useful in testing
// situations for library users.
type NoOpCollector struct{}

var _ CollectorInterface = (*NoOpCollector)(nil)

func (n *NoOpCollector) Timing(elapsed time.Duration, path ...string) {}

func (n *NoOpCollector) Incr(amount int64, path ...string) {}

func (n *NoOpCollector) Close() error {
	return nil
}
