/*
Package influxdb accumulates measurements and delivers them to an InfluxDB
write endpoint as line-protocol batches, trading a little latency for request
volume.

Delivery is best effort: a batch that fails to write is logged and dropped,
never retried, and errors are never surfaced to the code recording metrics.
*/
package influxdb

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Field is one field key/value pair of a measurement. Durations are reported
// in seconds, counters as whole numbers.
type Field struct {
	Name  string
	Value float64
}

// Escape renders s safe for use as a measurement name, tag key or tag value:
// spaces and commas are backslash-escaped as the line protocol requires.
func Escape(s string) string {
	if !strings.ContainsAny(s, " ,") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == ',' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// appendLine renders one line-protocol entry:
//
//	<measurement>,<tag>=<val>,... <field>=<val>,... <unix-nanoseconds>
//
// Tag keys are written in sorted order so output is deterministic.
func appendLine(buffer []byte, measurement string, tags map[string]string, fields []Field, ts time.Time) []byte {
	buffer = append(buffer, Escape(measurement)...)

	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		buffer = append(buffer, ',')
		buffer = append(buffer, Escape(key)...)
		buffer = append(buffer, '=')
		buffer = append(buffer, Escape(tags[key])...)
	}

	buffer = append(buffer, ' ')
	for i, field := range fields {
		if i > 0 {
			buffer = append(buffer, ',')
		}
		buffer = append(buffer, Escape(field.Name)...)
		buffer = append(buffer, '=')
		buffer = strconv.AppendFloat(buffer, field.Value, 'f', -1, 64)
	}

	buffer = append(buffer, ' ')
	buffer = strconv.AppendInt(buffer, ts.UnixNano(), 10)
	return buffer
}
