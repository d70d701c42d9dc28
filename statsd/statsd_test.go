package statsd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnsupportedProtocol(t *testing.T) {
	client, err := New("localhost:8125", WithProtocol("carrier-pigeon"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedProtocol)
	assert.Nil(t, client)
}

func TestUDPCounterFormat(t *testing.T) {
	server := newTestUDPServer(t)
	logger, _ := testLogger()

	client, err := New(server.addr(), WithNamespace("testing"), WithLogger(logger))
	require.NoError(t, err)
	defer client.Close()

	client.Incr(1, "request", "count")
	client.Incr(42, "request", "count")

	lines := server.waitFor(t, 2)
	assert.Equal(t, "testing.counters.request.count:1|c", lines[0])
	assert.Equal(t, "testing.counters.request.count:42|c", lines[1])
}

func TestUDPTimingFormat(t *testing.T) {
	server := newTestUDPServer(t)
	logger, _ := testLogger()

	client, err := New(server.addr(), WithNamespace("testing"), WithLogger(logger))
	require.NoError(t, err)
	defer client.Close()

	client.Timing(12250*time.Microsecond, "db", "query")

	lines := server.waitFor(t, 1)
	assert.Equal(t, "testing.timers.db.query:12.25|ms", lines[0])
}

func TestWithoutMetricTypePrefix(t *testing.T) {
	server := newTestUDPServer(t)
	logger, _ := testLogger()

	client, err := New(server.addr(),
		WithNamespace("testing"),
		WithoutMetricTypePrefix(),
		WithLogger(logger),
	)
	require.NoError(t, err)
	defer client.Close()

	client.Incr(1, "request", "count")

	lines := server.waitFor(t, 1)
	assert.Equal(t, "testing.request.count:1|c", lines[0])
}

func TestCloseIsIdempotent(t *testing.T) {
	server := newTestUDPServer(t)
	logger, _ := testLogger()

	client, err := New(server.addr(), WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
}

func TestSendAfterCloseIsDiscarded(t *testing.T) {
	server := newTestUDPServer(t)
	logger, _ := testLogger()

	client, err := New(server.addr(), WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, client.Close())

	client.Incr(1, "request", "count")
	client.Timing(time.Second, "db", "query")

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, server.received())
}

func TestNoOpCollector(t *testing.T) {
	client := &NoOpCollector{}
	client.Incr(1, "request", "count")
	client.Timing(time.Second, "db", "query")
	assert.NoError(t, client.Close())
}
