package statsd

import "strings"

// appendPath renders the namespace, the optional metric type prefix and the
// path segments as a dotted statsd path. Dots inside a segment are rewritten
// to '-' so a single segment can never add depth to the hierarchy.
func (c *Collector) appendPath(buffer []byte, metricType metricType, path []string) []byte {
	if c.namespace != "" {
		buffer = append(buffer, c.namespace...)
	}
	if c.prependMetricType {
		if len(buffer) > 0 {
			buffer = append(buffer, '.')
		}
		buffer = append(buffer, metricTypeNames[metricType]...)
	}
	for _, segment := range path {
		if len(buffer) > 0 {
			buffer = append(buffer, '.')
		}
		buffer = appendSanitizedSegment(buffer, segment)
	}
	return buffer
}

func appendSanitizedSegment(buffer []byte, s string) []byte {
	// fastpath for segments without dots
	if strings.IndexByte(s, '.') == -1 {
		return append(buffer, s...)
	}

	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			buffer = append(buffer, '-')
		} else {
			buffer = append(buffer, s[i])
		}
	}
	return buffer
}
