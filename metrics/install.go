package metrics

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/mixmetrics/mixmetrics-go/influxdb"
	"github.com/mixmetrics/mixmetrics-go/statsd"
)

// Registry names used by the environment-based installers.
const (
	StatsdProviderName = "statsd"
	InfluxProviderName = "influxdb"
)

// InstallStatsdFromEnv builds a statsd provider from STATSD_HOST (127.0.0.1),
// STATSD_PORT (8125) and STATSD_PROTOCOL (udp) and installs it under
// "statsd". It reports false without replacing anything when the name is
// already installed. Explicit options win over the environment.
func InstallStatsdFromEnv(registry *Registry, options ...statsd.Option) (bool, error) {
	host := envOr("STATSD_HOST", "127.0.0.1")
	port := envOr("STATSD_PORT", "8125")
	protocol := envOr("STATSD_PROTOCOL", statsd.ProtocolUDP)

	opts := append([]statsd.Option{statsd.WithProtocol(protocol)}, options...)
	client, err := statsd.New(net.JoinHostPort(host, port), opts...)
	if err != nil {
		return false, err
	}

	if !registry.Install(StatsdProviderName, NewStatsdProvider(client)) {
		client.Close()
		return false, nil
	}
	return true, nil
}

// InstallInfluxFromEnv builds an influxdb provider from INFLUX_SCHEME (http),
// INFLUX_HOST (localhost), INFLUX_PORT (8086), INFLUX_USER and
// INFLUX_PASSWORD and installs it under "influxdb". The base tags always
// carry the hostname, plus environment and service tags when the ENVIRONMENT
// and SERVICE variables are set. Explicit options win over the environment.
func InstallInfluxFromEnv(registry *Registry, measurement string, options ...influxdb.Option) (bool, error) {
	writeURL := fmt.Sprintf("%s://%s/write",
		envOr("INFLUX_SCHEME", "http"),
		net.JoinHostPort(envOr("INFLUX_HOST", "localhost"), envOr("INFLUX_PORT", "8086")),
	)

	opts := []influxdb.Option{influxdb.WithWriteURL(writeURL)}
	if user := os.Getenv("INFLUX_USER"); user != "" {
		opts = append(opts, influxdb.WithBasicAuth(user, os.Getenv("INFLUX_PASSWORD")))
	}
	opts = append(opts, options...)

	collector, err := influxdb.New(opts...)
	if err != nil {
		return false, err
	}

	baseTags := map[string]string{}
	if hostname, err := os.Hostname(); err == nil {
		baseTags["hostname"] = hostname
	}
	if environment := os.Getenv("ENVIRONMENT"); environment != "" {
		baseTags["environment"] = environment
	}
	if service := os.Getenv("SERVICE"); service != "" {
		baseTags["service"] = service
	}

	if !registry.Install(InfluxProviderName, NewInfluxProvider(collector, measurement, baseTags)) {
		collector.Shutdown(context.Background())
		return false, nil
	}
	return true, nil
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
