// Package flood drives both metric backends at a configurable rate, to
// exercise batching and reconnect behavior against real servers.
package flood

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/mixmetrics/mixmetrics-go/influxdb"
	"github.com/mixmetrics/mixmetrics-go/metrics"
	"github.com/mixmetrics/mixmetrics-go/statsd"
)

var statusCodes = []int{200, 200, 200, 201, 204, 400, 404, 500}

func configFromFlags(command *cobra.Command) (*Config, error) {
	path, err := command.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	var config *Config
	if path != "" {
		config, err = ParseConfig(path)
		if err != nil {
			return nil, err
		}
	} else {
		config = DefaultConfig()
	}

	if command.Flags().Changed("statsd-address") {
		config.Statsd.Address, _ = command.Flags().GetString("statsd-address")
	}
	if command.Flags().Changed("statsd-protocol") {
		config.Statsd.Protocol, _ = command.Flags().GetString("statsd-protocol")
	}
	if command.Flags().Changed("influx-url") {
		config.Influx.WriteURL, _ = command.Flags().GetString("influx-url")
	}
	if command.Flags().Changed("points-per-second") {
		config.PointsPerSecond, _ = command.Flags().GetInt("points-per-second")
	}
	if command.Flags().Changed("duration") {
		config.Duration, _ = command.Flags().GetDuration("duration")
	}
	return config, nil
}

func buildProviders(config *Config) (*metrics.Registry, error) {
	registry := metrics.NewRegistry()

	client, err := statsd.New(config.Statsd.Address,
		statsd.WithProtocol(config.Statsd.Protocol),
		statsd.WithNamespace(config.Statsd.Namespace),
	)
	if err != nil {
		return nil, err
	}
	registry.Install(metrics.StatsdProviderName, metrics.NewStatsdProvider(client))

	collector, err := influxdb.New(
		influxdb.WithWriteURL(config.Influx.WriteURL),
		influxdb.WithDatabase(config.Influx.Database),
		influxdb.WithSubmissionInterval(config.Influx.SubmissionInterval),
		influxdb.WithMaxBatchSize(config.Influx.MaxBatchSize),
	)
	if err != nil {
		return nil, err
	}
	registry.Install(metrics.InfluxProviderName, metrics.NewInfluxProvider(collector, config.Influx.Measurement, nil))

	return registry, nil
}

// Flood sends points at the configured rate until the duration elapses, then
// shuts both providers down cleanly.
func Flood(command *cobra.Command, _ []string) error {
	config, err := configFromFlags(command)
	if err != nil {
		return err
	}
	if config.PointsPerSecond <= 0 {
		return errors.New("points per second must be positive")
	}

	registry, err := buildProviders(config)
	if err != nil {
		return err
	}

	logger := log.WithField("context", "flooder")
	logger.WithFields(log.Fields{
		"statsd": config.Statsd.Address,
		"influx": config.Influx.WriteURL,
		"rate":   config.PointsPerSecond,
	}).Info("flooding")

	ticker := time.NewTicker(time.Second / time.Duration(config.PointsPerSecond))
	defer ticker.Stop()
	deadline := time.After(config.Duration)

	var sent int
	for running := true; running; {
		select {
		case <-ticker.C:
			floodOnce(registry)
			sent++
		case <-deadline:
			running = false
		}
	}

	logger.WithField("points", sent).Info("draining")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return registry.ShutdownAll(ctx)
}

func floodOnce(registry *metrics.Registry) {
	status := statusCodes[rand.Intn(len(statusCodes))]

	for _, name := range []string{metrics.StatsdProviderName, metrics.InfluxProviderName} {
		provider, ok := registry.Lookup(name)
		if !ok {
			continue
		}
		recorder := provider.NewRecorder("FloodHandler", "GET")
		recorder.SetMetricTag("worker", strconv.Itoa(rand.Intn(8)))
		recorder.IncreaseCounter("points")
		recorder.RecordTiming(time.Duration(rand.Intn(50))*time.Millisecond, "db", "query")
		recorder.Finish(status)
	}
}
