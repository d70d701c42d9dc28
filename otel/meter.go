package otel

import (
	"errors"
	"fmt"

	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/embedded"
	"go.opentelemetry.io/otel/sdk/instrumentation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Observable instruments need a collection loop pulling values on a timer,
// which the statsd transport has no place for.
var errObservablesUnsupported = errors.New("observable instruments are not supported by the statsd bridge")

type meter struct {
	embedded.Meter

	scope instrumentation.Scope
	cfg   Config

	cacheInts   cacheWithErr[string, *int64Inst]
	cacheFloats cacheWithErr[string, *float64Inst]
}

var _ otelmetric.Meter = (*meter)(nil)

func newMeter(s instrumentation.Scope, cfg Config) *meter {
	return &meter{scope: s, cfg: cfg}
}

func (m *meter) int64Inst(name, unit string) (*int64Inst, error) {
	if err := validateInstrumentName(name); err != nil {
		return nil, err
	}
	return m.cacheInts.Lookup(name, func() (*int64Inst, error) {
		return &int64Inst{name: name, unit: unit, meter: m}, nil
	})
}

func (m *meter) float64Inst(name, unit string) (*float64Inst, error) {
	if err := validateInstrumentName(name); err != nil {
		return nil, err
	}
	return m.cacheFloats.Lookup(name, func() (*float64Inst, error) {
		return &float64Inst{name: name, unit: unit, meter: m}, nil
	})
}

func (m *meter) Int64Counter(name string, options ...otelmetric.Int64CounterOption) (otelmetric.Int64Counter, error) {
	cfg := otelmetric.NewInt64CounterConfig(options...)
	return m.int64Inst(name, cfg.Unit())
}

func (m *meter) Int64UpDownCounter(name string, options ...otelmetric.Int64UpDownCounterOption) (otelmetric.Int64UpDownCounter, error) {
	cfg := otelmetric.NewInt64UpDownCounterConfig(options...)
	return m.int64Inst(name, cfg.Unit())
}

func (m *meter) Int64Histogram(name string, options ...otelmetric.Int64HistogramOption) (otelmetric.Int64Histogram, error) {
	cfg := otelmetric.NewInt64HistogramConfig(options...)
	return m.int64Inst(name, cfg.Unit())
}

func (m *meter) Float64Counter(name string, options ...otelmetric.Float64CounterOption) (otelmetric.Float64Counter, error) {
	cfg := otelmetric.NewFloat64CounterConfig(options...)
	return m.float64Inst(name, cfg.Unit())
}

func (m *meter) Float64UpDownCounter(name string, options ...otelmetric.Float64UpDownCounterOption) (otelmetric.Float64UpDownCounter, error) {
	cfg := otelmetric.NewFloat64UpDownCounterConfig(options...)
	return m.float64Inst(name, cfg.Unit())
}

func (m *meter) Float64Histogram(name string, options ...otelmetric.Float64HistogramOption) (otelmetric.Float64Histogram, error) {
	cfg := otelmetric.NewFloat64HistogramConfig(options...)
	return m.float64Inst(name, cfg.Unit())
}

func (m *meter) Int64ObservableCounter(name string, options ...otelmetric.Int64ObservableCounterOption) (otelmetric.Int64ObservableCounter, error) {
	return nil, errObservablesUnsupported
}

func (m *meter) Int64ObservableUpDownCounter(name string, options ...otelmetric.Int64ObservableUpDownCounterOption) (otelmetric.Int64ObservableUpDownCounter, error) {
	return nil, errObservablesUnsupported
}

func (m *meter) Int64ObservableGauge(name string, options ...otelmetric.Int64ObservableGaugeOption) (otelmetric.Int64ObservableGauge, error) {
	return nil, errObservablesUnsupported
}

func (m *meter) Float64ObservableCounter(name string, options ...otelmetric.Float64ObservableCounterOption) (otelmetric.Float64ObservableCounter, error) {
	return nil, errObservablesUnsupported
}

func (m *meter) Float64ObservableUpDownCounter(name string, options ...otelmetric.Float64ObservableUpDownCounterOption) (otelmetric.Float64ObservableUpDownCounter, error) {
	return nil, errObservablesUnsupported
}

func (m *meter) Float64ObservableGauge(name string, options ...otelmetric.Float64ObservableGaugeOption) (otelmetric.Float64ObservableGauge, error) {
	return nil, errObservablesUnsupported
}

func (m *meter) RegisterCallback(f otelmetric.Callback, instruments ...otelmetric.Observable) (otelmetric.Registration, error) {
	return nil, errObservablesUnsupported
}

func validateInstrumentName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("%w: %s: is empty", sdkmetric.ErrInstrumentName, name)
	}
	if len(name) > 255 {
		return fmt.Errorf("%w: %s: longer than 255 characters", sdkmetric.ErrInstrumentName, name)
	}
	if !isAlpha([]rune(name)[0]) {
		return fmt.Errorf("%w: %s: must start with a letter", sdkmetric.ErrInstrumentName, name)
	}
	if len(name) == 1 {
		return nil
	}
	for _, c := range name[1:] {
		if !isAlphanumeric(c) && c != '_' && c != '.' && c != '-' && c != '/' {
			return fmt.Errorf("%w: %s: must only contain [A-Za-z0-9_.-/]", sdkmetric.ErrInstrumentName, name)
		}
	}
	return nil
}

func isAlpha(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAlphanumeric(c rune) bool {
	return isAlpha(c) || ('0' <= c && c <= '9')
}
