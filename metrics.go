package ngramvec

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
//	    transformCounter   prometheus.Counter
//	    transformHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordTransform(duration time.Duration, err error) {
//	    p.transformCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordBuild is called once after vectorizer construction.
	// duration is the total time taken, err is nil if successful.
	RecordBuild(duration time.Duration, err error)

	// RecordTransform is called after each transform operation.
	// duration is the total time taken, err is nil if successful.
	RecordTransform(duration time.Duration, err error)

	// RecordBatchTransform is called after each batch transform operation.
	// count is the number of documents attempted, failed is the number that
	// failed, duration is the total time taken.
	RecordBatchTransform(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(time.Duration, error)             {}
func (NoopMetricsCollector) RecordTransform(time.Duration, error)         {}
func (NoopMetricsCollector) RecordBatchTransform(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount          atomic.Int64
	BuildErrors         atomic.Int64
	TransformCount      atomic.Int64
	TransformErrors     atomic.Int64
	TransformTotalNanos atomic.Int64
	BatchCount          atomic.Int64
	BatchDocs           atomic.Int64
	BatchFailed         atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(_ time.Duration, err error) {
	b.BuildCount.Add(1)
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordTransform implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTransform(duration time.Duration, err error) {
	b.TransformCount.Add(1)
	b.TransformTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TransformErrors.Add(1)
	}
}

// RecordBatchTransform implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchTransform(count, failed int, _ time.Duration) {
	b.BatchCount.Add(1)
	b.BatchDocs.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}
