package metrics

import (
	"context"
	"time"

	"github.com/mixmetrics/mixmetrics-go/influxdb"
	"github.com/mixmetrics/mixmetrics-go/statsd"
)

// StatsdProvider mints recorders backed by a statsd collector.
type StatsdProvider struct {
	client statsd.CollectorInterface
}

var _ Provider = (*StatsdProvider)(nil)

// NewStatsdProvider wraps an already constructed statsd collector.
func NewStatsdProvider(client statsd.CollectorInterface) *StatsdProvider {
	return &StatsdProvider{client: client}
}

func (p *StatsdProvider) NewRecorder(handler, method string) Recorder {
	return &statsdRecorder{
		client:  p.client,
		handler: handler,
		method:  method,
		start:   time.Now(),
	}
}

func (p *StatsdProvider) Shutdown(_ context.Context) error {
	return p.client.Close()
}

// InfluxProvider mints recorders backed by an influxdb collector. Every
// recorder starts from the provider's base tags plus the handler and method
// of its unit of work.
type InfluxProvider struct {
	collector   *influxdb.Collector
	measurement string
	baseTags    map[string]string
}

var _ Provider = (*InfluxProvider)(nil)

// NewInfluxProvider wraps an already constructed influxdb collector.
// Measurement names every submitted line; baseTags may be nil.
func NewInfluxProvider(collector *influxdb.Collector, measurement string, baseTags map[string]string) *InfluxProvider {
	return &InfluxProvider{
		collector:   collector,
		measurement: measurement,
		baseTags:    baseTags,
	}
}

func (p *InfluxProvider) NewRecorder(handler, method string) Recorder {
	tags := make(map[string]string, len(p.baseTags)+2)
	for name, value := range p.baseTags {
		tags[name] = value
	}
	tags["handler"] = handler
	tags["method"] = method

	return &influxRecorder{
		collector:   p.collector,
		measurement: p.measurement,
		start:       time.Now(),
		tags:        tags,
		counters:    make(map[string]int),
	}
}

func (p *InfluxProvider) Shutdown(ctx context.Context) error {
	return p.collector.Shutdown(ctx)
}
