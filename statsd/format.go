package statsd

// metricType is the statsd type marker appended after the value.
type metricType string

const (
	metricCounter metricType = "c"
	metricTiming  metricType = "ms"
)

// metricTypeNames are the path prefix words inserted after the namespace when
// the PrependMetricType option is on.
var metricTypeNames = map[metricType]string{
	metricCounter: "counters",
	metricTiming:  "timers",
}
