package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixmetrics/mixmetrics-go/influxdb"
	"github.com/mixmetrics/mixmetrics-go/statsd"
)

type recordedTiming struct {
	elapsed time.Duration
	path    []string
}

type recordedCount struct {
	amount int64
	path   []string
}

// fakeStatsdClient captures collector calls in memory.
type fakeStatsdClient struct {
	mu      sync.Mutex
	timings []recordedTiming
	counts  []recordedCount
	closed  bool
}

var _ statsd.CollectorInterface = (*fakeStatsdClient)(nil)

func (f *fakeStatsdClient) Timing(elapsed time.Duration, path ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.timings = append(f.timings, recordedTiming{elapsed: elapsed, path: path})
}

func (f *fakeStatsdClient) Incr(amount int64, path ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = append(f.counts, recordedCount{amount: amount, path: path})
}

func (f *fakeStatsdClient) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestStatsdRecorderFinish(t *testing.T) {
	client := &fakeStatsdClient{}
	provider := NewStatsdProvider(client)

	r := provider.NewRecorder("UserHandler", "GET")
	r.Finish(200)

	require.Len(t, client.timings, 1)
	assert.Equal(t, []string{"UserHandler", "GET", "200"}, client.timings[0].path)
	assert.GreaterOrEqual(t, client.timings[0].elapsed, time.Duration(0))
}

func TestStatsdRecorderFinishIsOnce(t *testing.T) {
	client := &fakeStatsdClient{}
	r := NewStatsdProvider(client).NewRecorder("UserHandler", "GET")

	r.Finish(200)
	r.Finish(500)

	require.Len(t, client.timings, 1)
	assert.Equal(t, []string{"UserHandler", "GET", "200"}, client.timings[0].path)
}

func TestStatsdRecorderCounters(t *testing.T) {
	client := &fakeStatsdClient{}
	r := NewStatsdProvider(client).NewRecorder("UserHandler", "GET")

	r.IncreaseCounter("cache", "hit")
	r.IncreaseCounterBy(5, "cache", "miss")

	require.Len(t, client.counts, 2)
	assert.Equal(t, recordedCount{amount: 1, path: []string{"cache", "hit"}}, client.counts[0])
	assert.Equal(t, recordedCount{amount: 5, path: []string{"cache", "miss"}}, client.counts[1])
}

func TestStatsdRecorderIgnoresTags(t *testing.T) {
	client := &fakeStatsdClient{}
	r := NewStatsdProvider(client).NewRecorder("UserHandler", "GET")

	r.SetMetricTag("user", "42")
	r.Finish(200)

	require.Len(t, client.timings, 1)
}

func TestStatsdProviderShutdownClosesClient(t *testing.T) {
	client := &fakeStatsdClient{}
	provider := NewStatsdProvider(client)

	require.NoError(t, provider.Shutdown(context.Background()))
	assert.True(t, client.closed)
}

func TestExecutionTimerRecordsOnStop(t *testing.T) {
	client := &fakeStatsdClient{}
	r := NewStatsdProvider(client).NewRecorder("UserHandler", "GET")

	func() {
		defer r.StartTimer("db", "query").Stop()
		time.Sleep(5 * time.Millisecond)
	}()

	require.Len(t, client.timings, 1)
	assert.Equal(t, []string{"db", "query"}, client.timings[0].path)
	assert.GreaterOrEqual(t, client.timings[0].elapsed, 5*time.Millisecond)
}

func newInfluxTestSetup(t *testing.T) (*InfluxProvider, func() []string) {
	var mu sync.Mutex
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(body))
		mu.Unlock()
	}))
	t.Cleanup(server.Close)

	collector, err := influxdb.New(
		influxdb.WithWriteURL(server.URL+"/write"),
		influxdb.WithSubmissionInterval(time.Hour),
	)
	require.NoError(t, err)
	provider := NewInfluxProvider(collector, "webapp", map[string]string{"hostname": "web01"})

	return provider, func() []string {
		require.NoError(t, collector.Shutdown(context.Background()))
		mu.Lock()
		defer mu.Unlock()
		return bodies
	}
}

func TestInfluxRecorderSubmitsOneMeasurement(t *testing.T) {
	provider, drain := newInfluxTestSetup(t)

	r := provider.NewRecorder("UserHandler", "GET")
	r.SetMetricTag("user", "42")
	r.IncreaseCounter("cache", "hit")
	r.IncreaseCounterBy(2, "cache", "hit")
	r.RecordTiming(250*time.Millisecond, "db query")
	r.Finish(200)

	bodies := drain()
	require.Len(t, bodies, 1)
	lines := strings.Split(bodies[0], "\n")
	require.Len(t, lines, 1)

	line := lines[0]
	assert.True(t, strings.HasPrefix(line, "webapp,"), line)
	assert.Contains(t, line, "handler=UserHandler")
	assert.Contains(t, line, "method=GET")
	assert.Contains(t, line, "status_code=200")
	assert.Contains(t, line, "hostname=web01")
	assert.Contains(t, line, "user=42")
	// repeated counter increments accumulate into one field
	assert.Contains(t, line, "cache.hit=3")
	// timing paths are escaped and reported in seconds
	assert.Contains(t, line, `db\ query=0.25`)
	assert.Contains(t, line, "duration=")
}

func TestInfluxRecorderFinishIsOnce(t *testing.T) {
	provider, drain := newInfluxTestSetup(t)

	r := provider.NewRecorder("UserHandler", "GET")
	r.IncreaseCounter("requests")
	r.Finish(200)
	r.Finish(500)

	bodies := drain()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "status_code=200")
	assert.NotContains(t, bodies[0], "status_code=500")
}

func TestNoopProvider(t *testing.T) {
	provider := &NoopProvider{}
	r := provider.NewRecorder("UserHandler", "GET")

	r.SetMetricTag("a", "b")
	r.IncreaseCounter("requests")
	r.StartTimer("db").Stop()
	r.Finish(200)

	assert.NoError(t, provider.Shutdown(context.Background()))
}
