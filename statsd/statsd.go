/*
Package statsd delivers application metrics to a StatsD server, one wire line
per call, over UDP or TCP.

Sends are best effort: transient network errors are logged and swallowed so
that metric reporting can never break the instrumented application.
*/
package statsd

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/apex/log"
)

const (
	// ProtocolUDP sends each line as a single fire-and-forget datagram.
	ProtocolUDP = "udp"
	// ProtocolTCP writes newline-terminated lines on a persistent stream,
	// redialing in the background when the stream drops.
	ProtocolTCP = "tcp"
	// ProtocolNamedPipe writes lines to a Windows named pipe.
	ProtocolNamedPipe = "pipe"
)

// ErrUnsupportedProtocol is returned by New when the configured protocol is
// not one of the Protocol* constants.
var ErrUnsupportedProtocol = errors.New("unsupported statsd protocol")

// writer is the transport surface shared by the UDP, TCP and named pipe
// implementations. Write receives one complete metric line without a
// terminator; stream transports append their own framing. Write must be
// synchronous, the line buffer is reused after it returns.
type writer interface {
	Write(data []byte) (n int, err error)
	Close() error
}

// CollectorInterface exposes the collector operations so that callers can
// substitute a no-op or mock implementation in tests.
type CollectorInterface interface {
	// Timing records a duration for the metric identified by path. The value
	// goes on the wire in milliseconds, matching the statsd "ms" type.
	Timing(elapsed time.Duration, path ...string)

	// Incr adds amount to the counter identified by path.
	Incr(amount int64, path ...string)

	// Close shuts the underlying transport down. It is idempotent; a TCP
	// collector stops reconnecting once closed.
	Close() error
}

// Collector formats metric lines and hands them to a transport writer.
type Collector struct {
	namespace         string
	prependMetricType bool
	transport         writer
	log               *log.Entry
	closed            atomic.Bool
}

var _ CollectorInterface = (*Collector)(nil)

// New returns a collector sending to addr ("host:port", or a pipe path for
// the named pipe protocol). The protocol defaults to UDP; an unknown protocol
// is a configuration error.
func New(addr string, options ...Option) (*Collector, error) {
	o, err := resolveOptions(options)
	if err != nil {
		return nil, err
	}

	var transport writer
	switch o.Protocol {
	case ProtocolUDP:
		transport, err = newUDPWriter(addr)
	case ProtocolTCP:
		transport = newTCPWriter(addr, o.ReconnectWait, o.WriteTimeout, o.Logger)
	case ProtocolNamedPipe:
		transport, err = newPipeWriter(addr)
	default:
		return nil, fmt.Errorf("%w %q, expected %q or %q", ErrUnsupportedProtocol, o.Protocol, ProtocolUDP, ProtocolTCP)
	}
	if err != nil {
		return nil, err
	}

	return &Collector{
		namespace:         o.Namespace,
		prependMetricType: o.PrependMetricType,
		transport:         transport,
		log:               o.Logger,
	}, nil
}

// Timing records a duration for the metric identified by path.
func (c *Collector) Timing(elapsed time.Duration, path ...string) {
	value := float64(elapsed) / float64(time.Millisecond)
	c.send(strconv.FormatFloat(value, 'f', -1, 64), metricTiming, path)
}

// Incr adds amount to the counter identified by path.
func (c *Collector) Incr(amount int64, path ...string) {
	c.send(strconv.FormatInt(amount, 10), metricCounter, path)
}

func (c *Collector) send(value string, metricType metricType, path []string) {
	if c.closed.Load() {
		return
	}

	var buffer []byte
	buffer = c.appendPath(buffer, metricType, path)
	buffer = append(buffer, ':')
	buffer = append(buffer, value...)
	buffer = append(buffer, '|')
	buffer = append(buffer, metricType...)

	if _, err := c.transport.Write(buffer); err != nil {
		c.log.WithError(err).Warn("metric line dropped")
	}
}

// Close shuts the transport down. Lines sent after Close are discarded.
func (c *Collector) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.transport.Close()
}
