package flood

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// StatsdConfig configures the statsd side of the flood.
type StatsdConfig struct {
	Address   string `yaml:"address"`
	Protocol  string `yaml:"protocol"`
	Namespace string `yaml:"namespace"`
}

// InfluxConfig configures the influxdb side of the flood.
type InfluxConfig struct {
	WriteURL           string        `yaml:"write_url"`
	Database           string        `yaml:"database"`
	SubmissionInterval time.Duration `yaml:"submission_interval"`
	MaxBatchSize       int           `yaml:"max_batch_size"`
	Measurement        string        `yaml:"measurement"`
}

// Config is the full flood configuration, loadable from a yaml file.
type Config struct {
	Statsd          StatsdConfig  `yaml:"statsd"`
	Influx          InfluxConfig  `yaml:"influxdb"`
	PointsPerSecond int           `yaml:"points_per_second"`
	Duration        time.Duration `yaml:"duration"`
}

// DefaultConfig returns the configuration used when no file and no flags are
// given.
func DefaultConfig() *Config {
	return &Config{
		Statsd: StatsdConfig{
			Address:   "127.0.0.1:8125",
			Protocol:  "udp",
			Namespace: "flooder",
		},
		Influx: InfluxConfig{
			WriteURL:           "http://127.0.0.1:8086/write",
			Database:           "flooder",
			SubmissionInterval: time.Second,
			MaxBatchSize:       1000,
			Measurement:        "flood",
		},
		PointsPerSecond: 1000,
		Duration:        10 * time.Second,
	}
}

// ParseConfig reads a yaml file over the defaults.
func ParseConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return config, nil
}
