package metrics

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mixmetrics/mixmetrics-go/influxdb"
)

// influxRecorder accumulates the tags and fields of one unit of work and
// submits them as a single measurement when the work finishes.
type influxRecorder struct {
	collector   *influxdb.Collector
	measurement string
	start       time.Time

	mu       sync.Mutex
	tags     map[string]string
	fields   []influxdb.Field
	counters map[string]int // counter name -> index into fields
	finished bool
}

var _ Recorder = (*influxRecorder)(nil)

func (r *influxRecorder) SetMetricTag(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags[name] = value
}

func (r *influxRecorder) RecordTiming(elapsed time.Duration, path ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields = append(r.fields, influxdb.Field{
		Name:  fieldName(path),
		Value: elapsed.Seconds(),
	})
}

func (r *influxRecorder) IncreaseCounter(path ...string) {
	r.IncreaseCounterBy(1, path...)
}

// IncreaseCounterBy accumulates repeated increments into one field, keeping
// the field keys of the finished measurement unique.
func (r *influxRecorder) IncreaseCounterBy(amount int64, path ...string) {
	name := fieldName(path)

	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.counters[name]; ok {
		r.fields[i].Value += float64(amount)
		return
	}
	r.counters[name] = len(r.fields)
	r.fields = append(r.fields, influxdb.Field{Name: name, Value: float64(amount)})
}

func (r *influxRecorder) StartTimer(path ...string) *Timer {
	return newTimer(r, path)
}

// Finish attaches the status code tag and total duration, then submits the
// whole measurement as one line.
func (r *influxRecorder) Finish(statusCode int) {
	elapsed := clampedBetween(r.start, time.Now())

	r.mu.Lock()
	if r.finished {
		r.mu.Unlock()
		return
	}
	r.finished = true
	r.tags["status_code"] = strconv.Itoa(statusCode)
	r.fields = append(r.fields, influxdb.Field{Name: "duration", Value: elapsed.Seconds()})
	tags, fields := r.tags, r.fields
	r.mu.Unlock()

	r.collector.Submit(r.measurement, tags, fields)
}

// fieldName joins the path segments into one escaped field key.
func fieldName(path []string) string {
	escaped := make([]string, len(path))
	for i, segment := range path {
		escaped[i] = influxdb.Escape(segment)
	}
	return strings.Join(escaped, ".")
}
