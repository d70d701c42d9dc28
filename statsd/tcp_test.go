package statsd

import (
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTCPCollector(t *testing.T, addr string, options ...Option) (*Collector, *tcpWriter) {
	logger, _ := testLogger()
	options = append([]Option{
		WithProtocol(ProtocolTCP),
		WithNamespace("testing"),
		WithReconnectWait(50 * time.Millisecond),
		WithLogger(logger),
	}, options...)
	client, err := New(addr, options...)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, client.transport.(*tcpWriter)
}

func (w *tcpWriter) currentState() connState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func TestTCPLinesAreNewlineFramed(t *testing.T) {
	server := newTestTCPServer(t)
	client, _ := newTestTCPCollector(t, server.addr())

	client.Incr(1, "request", "count")
	client.Timing(5*time.Millisecond, "db", "query")

	// the server splits on '\n', so seeing both lines proves the framing
	lines := server.waitFor(t, 2)
	assert.Equal(t, "testing.counters.request.count:1|c", lines[0])
	assert.Equal(t, "testing.timers.db.query:5|ms", lines[1])
}

func TestTCPDropsWhileDisconnectedThenReconnects(t *testing.T) {
	server := newTestTCPServer(t)
	// a long enough backoff that the writer is reliably still disconnected
	// right after the drop is observed
	client, transport := newTestTCPCollector(t, server.addr(), WithReconnectWait(300*time.Millisecond))

	client.Incr(1, "before")
	server.waitFor(t, 1)

	server.dropConnections()

	// a broken stream is only observed on write, keep probing until the
	// writer notices
	require.Eventually(t, func() bool {
		client.Incr(1, "probe")
		return transport.currentState() != stateConnected
	}, 2*time.Second, 10*time.Millisecond)

	// dropped without raising or blocking
	client.Incr(1, "lost")

	require.Eventually(t, func() bool {
		return transport.currentState() == stateConnected
	}, 2*time.Second, 10*time.Millisecond)

	client.Incr(1, "after")
	require.Eventually(t, func() bool {
		for _, line := range server.received() {
			if line == "testing.counters.after:1|c" {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	assert.NotContains(t, server.received(), "testing.counters.lost:1|c")
}

func TestTCPCloseStopsReconnecting(t *testing.T) {
	server := newTestTCPServer(t)
	client, transport := newTestTCPCollector(t, server.addr())

	require.NoError(t, client.Close())
	assert.Equal(t, stateClosed, transport.currentState())

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, stateClosed, transport.currentState())
}

func TestTCPConstructionSucceedsWithServerDown(t *testing.T) {
	logger, handler := testLogger()

	// nothing listens on this address; construction must still succeed and
	// sends must be silently dropped. The long reconnect wait keeps the
	// redial loop quiet for the duration of the test.
	client, err := New("127.0.0.1:1",
		WithProtocol(ProtocolTCP),
		WithReconnectWait(time.Minute),
		WithLogger(logger),
	)
	require.NoError(t, err)
	defer client.Close()

	client.Incr(1, "request", "count")

	var warnings int
	for _, e := range handler.Entries {
		if e.Level == log.WarnLevel {
			warnings++
		}
	}
	// one for the failed dial, one for the dropped line
	assert.GreaterOrEqual(t, warnings, 2)
}
