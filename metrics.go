package binning

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    samplesCounter prometheus.Counter
//	    binHistogram   prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordBin(samples int, duration time.Duration, err error) {
//	    p.samplesCounter.Add(float64(samples))
//	    p.binHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordBin is called after each batch binning operation.
	// samples is the batch size, duration is the total time taken,
	// err is nil if successful.
	RecordBin(samples int, duration time.Duration, err error)

	// RecordSample is called after each single-sample count.
	RecordSample()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBin(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSample()                       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BinCount      atomic.Int64
	BinErrors     atomic.Int64
	BinSamples    atomic.Int64
	BinTotalNanos atomic.Int64
	SampleCount   atomic.Int64
}

// RecordBin implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBin(samples int, duration time.Duration, err error) {
	b.BinCount.Add(1)
	b.BinTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BinErrors.Add(1)
		return
	}
	b.BinSamples.Add(int64(samples))
}

// RecordSample implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSample() {
	b.SampleCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BinCount:    b.BinCount.Load(),
		BinErrors:   b.BinErrors.Load(),
		BinSamples:  b.BinSamples.Load(),
		BinAvgNanos: b.getAvgBinNanos(),
		SampleCount: b.SampleCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBinNanos() int64 {
	count := b.BinCount.Load()
	if count == 0 {
		return 0
	}
	return b.BinTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BinCount    int64
	BinErrors   int64
	BinSamples  int64
	BinAvgNanos int64
	SampleCount int64
}
