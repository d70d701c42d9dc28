package influxdb

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/apex/log"
)

const (
	userAgent         = "mixmetrics-go/1.0.0"
	drainPollInterval = 100 * time.Millisecond
)

// Collector buffers encoded measurements and flushes them to the write
// endpoint, either on a periodic ticker or as soon as the buffer reaches the
// batch size. One collector instance is meant to live for the whole process.
type Collector struct {
	writeURL      string
	client        *http.Client
	authUsername  string
	authPassword  string
	maxBatchSize  int
	highWaterMark int
	log           *log.Entry

	mu     sync.Mutex
	buffer []string

	pending  atomic.Int64
	ticker   *time.Ticker
	stop     chan struct{}
	stopOnce sync.Once
}

// New returns a collector posting batches to the configured write URL with
// the database attached as the db query argument.
func New(options ...Option) (*Collector, error) {
	o, err := resolveOptions(options)
	if err != nil {
		return nil, err
	}

	c := &Collector{
		writeURL:      o.WriteURL + "?db=" + url.QueryEscape(o.Database),
		client:        o.HTTPClient,
		authUsername:  o.AuthUsername,
		authPassword:  o.AuthPassword,
		maxBatchSize:  o.MaxBatchSize,
		highWaterMark: o.HighWaterMark,
		log:           o.Logger,
		ticker:        time.NewTicker(o.SubmissionInterval),
		stop:          make(chan struct{}),
	}
	go c.flushLoop()
	return c, nil
}

// Submit encodes one measurement and queues it for the next batch. Reaching
// the batch size triggers an immediate flush; overflowing the high-water mark
// is only a warning, nothing is dropped.
func (c *Collector) Submit(measurement string, tags map[string]string, fields []Field) {
	if len(fields) == 0 {
		return
	}
	line := string(appendLine(nil, measurement, tags, fields, time.Now()))

	c.mu.Lock()
	c.buffer = append(c.buffer, line)
	size := len(c.buffer)
	c.mu.Unlock()

	if size > c.highWaterMark {
		c.log.WithField("size", size).Warn("metric buffer above high-water mark")
	}
	if size >= c.maxBatchSize {
		c.flush()
	}
}

// Len reports how many encoded lines are waiting for the next flush.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buffer)
}

// Pending reports how many batch submissions are currently in flight.
func (c *Collector) Pending() int64 {
	return c.pending.Load()
}

func (c *Collector) flushLoop() {
	for {
		select {
		case <-c.ticker.C:
			c.flush()
		case <-c.stop:
			return
		}
	}
}

// flush drains the buffer in maxBatchSize chunks, one POST per chunk, until
// the buffer is empty.
func (c *Collector) flush() {
	for {
		c.mu.Lock()
		if len(c.buffer) == 0 {
			c.mu.Unlock()
			return
		}
		count := c.maxBatchSize
		if count > len(c.buffer) {
			count = len(c.buffer)
		}
		batch := c.buffer[:count]
		c.buffer = c.buffer[count:]
		c.mu.Unlock()

		c.post(batch)
	}
}

// post writes one batch in the background. Failed batches are logged and
// dropped; retrying would hold memory for data nobody is waiting on.
func (c *Collector) post(batch []string) {
	body := strings.Join(batch, "\n")
	c.pending.Add(1)

	go func() {
		defer c.pending.Add(-1)

		req, err := http.NewRequest(http.MethodPost, c.writeURL, strings.NewReader(body))
		if err != nil {
			c.log.WithError(err).Error("could not build batch request")
			return
		}
		req.Header.Set("Content-Type", "text/plain; charset=utf-8")
		req.Header.Set("User-Agent", userAgent)
		if c.authUsername != "" {
			req.SetBasicAuth(c.authUsername, c.authPassword)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			c.log.WithError(err).WithField("lines", len(batch)).Error("batch dropped")
			return
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode >= http.StatusMultipleChoices {
			c.log.WithFields(log.Fields{
				"status": resp.StatusCode,
				"lines":  len(batch),
			}).Error("batch rejected and dropped")
		}
	}()
}

// Shutdown stops the periodic flush, forces one final drain and waits for
// every in-flight submission to finish, polling at a short interval. The
// context bounds the wait.
func (c *Collector) Shutdown(ctx context.Context) error {
	c.stopOnce.Do(func() {
		c.ticker.Stop()
		close(c.stop)
	})
	c.flush()

	poll := time.NewTicker(drainPollInterval)
	defer poll.Stop()
	for c.pending.Load() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-poll.C:
		}
	}
	return nil
}
