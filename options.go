package bitconv

import (
	"github.com/hupe1980/bitconv/codec"
	"github.com/hupe1980/bitconv/resource"
)

type options struct {
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
	historyCapacity  int
	resources        resource.Config
}

// Option configures a Converter.
type Option func(*options)

// WithCodec configures the codec used by Converter.Marshal.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bitconv.BasicMetricsCollector{}
//	c := bitconv.New(bitconv.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithHistory records every conversion in an in-memory session log holding at
// most capacity entries. capacity <= 0 disables history.
func WithHistory(capacity int) Option {
	return func(o *options) {
		o.historyCapacity = capacity
	}
}

// WithMaxWorkers bounds how many conversions ConvertBatch runs at once.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.resources.MaxWorkers = int64(n)
	}
}

// WithRateLimit paces ConvertBatch to perSec conversions per second with the
// given burst. perSec <= 0 disables pacing.
func WithRateLimit(perSec float64, burst int) Option {
	return func(o *options) {
		o.resources.RatePerSec = perSec
		o.resources.Burst = burst
	}
}
