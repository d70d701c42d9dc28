/*
Package otel bridges OpenTelemetry instruments onto the statsd collector.
Counters and up-down counters become statsd counters, histograms become
timings; attribute key/values are folded into the metric path since statsd
carries no tags.
*/
package otel

import (
	"github.com/apex/log"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/mixmetrics/mixmetrics-go/statsd"
)

// Config is the resolved configuration of a MeterProvider.
type Config struct {
	client     statsd.CollectorInterface
	logger     *log.Entry
	res        *resource.Resource
	errHandler func(error)
}

// Option applies a configuration option to the MeterProvider.
type Option func(Config) Config

func newConfig(options ...Option) Config {
	cfg := Config{}

	for _, option := range options {
		cfg = option(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = log.WithField("context", "otel")
	}
	if cfg.res == nil {
		cfg.res = resource.Empty()
	}
	if cfg.errHandler == nil {
		logger := cfg.logger
		cfg.errHandler = func(err error) {
			logger.WithError(err).Warn("instrument error")
		}
	}

	return cfg
}

// WithClient sets the statsd collector the instruments report to.
func WithClient(client statsd.CollectorInterface) Option {
	return func(cfg Config) Config {
		cfg.client = client
		return cfg
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Entry) Option {
	return func(cfg Config) Config {
		cfg.logger = logger
		return cfg
	}
}

// WithResource sets the resource whose attributes are attached to every
// metric path.
func WithResource(res *resource.Resource) Option {
	return func(cfg Config) Config {
		cfg.res = res
		return cfg
	}
}

// WithErrorHandler sets the callback invoked on instrument errors.
func WithErrorHandler(f func(error)) Option {
	return func(cfg Config) Config {
		cfg.errHandler = f
		return cfg
	}
}
