package otel

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/embedded"
)

// statsd counters carry whole numbers, fractional increments are truncated.
var errPrecisionLoss = errors.New("float64 counter increment truncated to a whole number")

type int64Inst struct {
	embedded.Int64Counter
	embedded.Int64UpDownCounter
	embedded.Int64Histogram

	name  string
	unit  string
	meter *meter
}

func (i *int64Inst) Add(_ context.Context, incr int64, options ...otelmetric.AddOption) {
	c := otelmetric.NewAddConfig(options)
	i.meter.cfg.client.Incr(incr, i.meter.path(i.name, c.Attributes())...)
}

func (i *int64Inst) Record(_ context.Context, value int64, options ...otelmetric.RecordOption) {
	c := otelmetric.NewRecordConfig(options)
	i.meter.cfg.client.Timing(durationFromValue(float64(value), i.unit), i.meter.path(i.name, c.Attributes())...)
}

type float64Inst struct {
	embedded.Float64Counter
	embedded.Float64UpDownCounter
	embedded.Float64Histogram

	name  string
	unit  string
	meter *meter
}

func (i *float64Inst) Add(_ context.Context, incr float64, options ...otelmetric.AddOption) {
	if incr != math.Trunc(incr) {
		i.meter.cfg.errHandler(errPrecisionLoss)
	}
	c := otelmetric.NewAddConfig(options)
	i.meter.cfg.client.Incr(int64(incr), i.meter.path(i.name, c.Attributes())...)
}

func (i *float64Inst) Record(_ context.Context, value float64, options ...otelmetric.RecordOption) {
	c := otelmetric.NewRecordConfig(options)
	i.meter.cfg.client.Timing(durationFromValue(value, i.unit), i.meter.path(i.name, c.Attributes())...)
}

// path splits the dotted instrument name into statsd path segments and folds
// the resource and call attributes in as "key-value" segments.
func (m *meter) path(name string, attrs attribute.Set) []string {
	path := strings.Split(name, ".")
	for _, keyValue := range m.cfg.res.Attributes() {
		path = append(path, keyValueSegment(keyValue))
	}
	for _, keyValue := range attrs.ToSlice() {
		path = append(path, keyValueSegment(keyValue))
	}
	return path
}

func keyValueSegment(keyValue attribute.KeyValue) string {
	return fmt.Sprintf("%s-%v", keyValue.Key, keyValue.Value.AsInterface())
}

// durationFromValue interprets a histogram sample according to the
// instrument's unit; statsd timings are milliseconds on the wire.
func durationFromValue(value float64, unit string) time.Duration {
	if unit == "s" {
		return time.Duration(value * float64(time.Second))
	}
	return time.Duration(value * float64(time.Millisecond))
}
