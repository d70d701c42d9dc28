package otel

import (
	"context"
	"errors"
	"sync/atomic"

	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/embedded"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/sdk/instrumentation"
)

// ErrNoClient is returned by NewMeterProvider when no statsd collector was
// configured.
var ErrNoClient = errors.New("no statsd collector configured")

// MeterProvider hands out meters whose instruments report to a statsd
// collector.
type MeterProvider struct {
	embedded.MeterProvider

	cfg     Config
	stopped atomic.Bool
	meters  cache[instrumentation.Scope, *meter]
}

var _ otelmetric.MeterProvider = (*MeterProvider)(nil)

// NewMeterProvider returns a provider reporting to the collector set with
// WithClient.
func NewMeterProvider(options ...Option) (*MeterProvider, error) {
	cfg := newConfig(options...)
	if cfg.client == nil {
		return nil, ErrNoClient
	}
	return &MeterProvider{cfg: cfg}, nil
}

// Meter returns the named meter, creating it on first use. A stopped
// provider hands out no-op meters.
func (mp *MeterProvider) Meter(name string, opts ...otelmetric.MeterOption) otelmetric.Meter {
	if name == "" {
		mp.cfg.logger.Warn("invalid empty meter name")
	}

	if mp.stopped.Load() {
		return noop.Meter{}
	}

	c := otelmetric.NewMeterConfig(opts...)
	s := instrumentation.Scope{
		Name:      name,
		Version:   c.InstrumentationVersion(),
		SchemaURL: c.SchemaURL(),
	}

	return mp.meters.Lookup(s, func() *meter {
		return newMeter(s, mp.cfg)
	})
}

// Shutdown stops the provider; meters created afterwards are no-ops. The
// statsd collector itself is owned by the caller and stays open.
func (mp *MeterProvider) Shutdown(_ context.Context) error {
	mp.stopped.Store(true)
	return nil
}
