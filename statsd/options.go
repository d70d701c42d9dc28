package statsd

import (
	"time"

	"github.com/apex/log"
)

var (
	// DefaultNamespace is the default value for the Namespace option.
	DefaultNamespace = "app"
	// DefaultProtocol is the default value for the Protocol option.
	DefaultProtocol = ProtocolUDP
	// DefaultPrependMetricType is the default value for the PrependMetricType option.
	DefaultPrependMetricType = true
	// DefaultReconnectWait is the default value for the ReconnectWait option.
	DefaultReconnectWait = 5 * time.Second
	// DefaultWriteTimeout is the default value for the WriteTimeout option.
	DefaultWriteTimeout = 100 * time.Millisecond
)

// Options contains the configuration options for a collector.
type Options struct {
	// Namespace to prepend to every metric path.
	Namespace string
	// Protocol selects the transport: ProtocolUDP, ProtocolTCP or, on
	// Windows, ProtocolNamedPipe.
	Protocol string
	// PrependMetricType inserts a per-type prefix word ("counters",
	// "timers") between the namespace and the path.
	PrependMetricType bool
	// ReconnectWait is how long the TCP transport waits before redialing a
	// dropped connection.
	ReconnectWait time.Duration
	// WriteTimeout is the per-write deadline on stream transports.
	WriteTimeout time.Duration
	// Logger receives dropped-line warnings and reconnect events.
	Logger *log.Entry
}

func resolveOptions(options []Option) (*Options, error) {
	o := &Options{
		Namespace:         DefaultNamespace,
		Protocol:          DefaultProtocol,
		PrependMetricType: DefaultPrependMetricType,
		ReconnectWait:     DefaultReconnectWait,
		WriteTimeout:      DefaultWriteTimeout,
	}

	for _, option := range options {
		if err := option(o); err != nil {
			return nil, err
		}
	}

	if o.Logger == nil {
		o.Logger = log.WithField("context", "statsd")
	}

	return o, nil
}

// Option is a collector option. Can return an error if validation fails.
type Option func(*Options) error

// WithNamespace sets the Namespace option.
func WithNamespace(namespace string) Option {
	return func(o *Options) error {
		o.Namespace = namespace
		return nil
	}
}

// WithProtocol sets the Protocol option.
func WithProtocol(protocol string) Option {
	return func(o *Options) error {
		o.Protocol = protocol
		return nil
	}
}

// WithoutMetricTypePrefix disables the per-type prefix word in metric paths.
func WithoutMetricTypePrefix() Option {
	return func(o *Options) error {
		o.PrependMetricType = false
		return nil
	}
}

// WithReconnectWait sets the ReconnectWait option.
func WithReconnectWait(wait time.Duration) Option {
	return func(o *Options) error {
		o.ReconnectWait = wait
		return nil
	}
}

// WithWriteTimeout sets the WriteTimeout option.
func WithWriteTimeout(timeout time.Duration) Option {
	return func(o *Options) error {
		o.WriteTimeout = timeout
		return nil
	}
}

// WithLogger sets the Logger option.
func WithLogger(logger *log.Entry) Option {
	return func(o *Options) error {
		o.Logger = logger
		return nil
	}
}
