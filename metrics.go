package bitconv

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordConvert is called after each conversion.
	// err is nil if the conversion succeeded.
	RecordConvert(n Notation, duration time.Duration, err *ConversionError)

	// RecordBatch is called after each batch conversion.
	// count is the number of requests, failed the number of failed results.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConvert(Notation, time.Duration, *ConversionError) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)                      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ConvertCount      atomic.Int64
	ConvertErrors     atomic.Int64
	ConvertTotalNanos atomic.Int64
	EmptyInputErrors  atomic.Int64
	FormatErrors      atomic.Int64
	RangeErrors       atomic.Int64
	BatchCount        atomic.Int64
	BatchItems        atomic.Int64
	BatchFailed       atomic.Int64
}

// RecordConvert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConvert(_ Notation, duration time.Duration, err *ConversionError) {
	b.ConvertCount.Add(1)
	b.ConvertTotalNanos.Add(duration.Nanoseconds())
	if err == nil {
		return
	}
	b.ConvertErrors.Add(1)
	switch err.Kind {
	case KindEmptyInput:
		b.EmptyInputErrors.Add(1)
	case KindInvalidFormat:
		b.FormatErrors.Add(1)
	case KindOutOfRange:
		b.RangeErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, _ time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ConvertCount:     b.ConvertCount.Load(),
		ConvertErrors:    b.ConvertErrors.Load(),
		ConvertAvgNanos:  b.getAvgConvertNanos(),
		EmptyInputErrors: b.EmptyInputErrors.Load(),
		FormatErrors:     b.FormatErrors.Load(),
		RangeErrors:      b.RangeErrors.Load(),
		BatchCount:       b.BatchCount.Load(),
		BatchItems:       b.BatchItems.Load(),
		BatchFailed:      b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgConvertNanos() int64 {
	count := b.ConvertCount.Load()
	if count == 0 {
		return 0
	}
	return b.ConvertTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConvertCount     int64
	ConvertErrors    int64
	ConvertAvgNanos  int64
	EmptyInputErrors int64
	FormatErrors     int64
	RangeErrors      int64
	BatchCount       int64
	BatchItems       int64
	BatchFailed      int64
}
