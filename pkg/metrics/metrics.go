// Package metrics provides Prometheus metrics for rowforge encoders:
// rows and bytes encoded, null rows, and encode latency. Callers create one
// collector per encoder, labeled with the schema it serializes, and pass it
// in through the encoder's config.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records encoder activity. All methods are safe for concurrent
// use; a nil *Collector is a valid no-op collector.
type Collector struct {
	rowsEncoded   prometheus.Counter
	nullRows      prometheus.Counter
	bytesWritten  prometheus.Counter
	encodeLatency prometheus.Histogram
}

// NewCollector creates a collector registered with reg. Pass
// prometheus.DefaultRegisterer in binaries and a fresh
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewCollector(schema string, reg prometheus.Registerer) *Collector {
	labels := prometheus.Labels{"schema": schema}
	factory := promauto.With(reg)
	return &Collector{
		rowsEncoded: factory.NewCounter(prometheus.CounterOpts{
			Name:        "rowforge_rows_encoded_total",
			Help:        "Total rows encoded to UnsafeRow.",
			ConstLabels: labels,
		}),
		nullRows: factory.NewCounter(prometheus.CounterOpts{
			Name:        "rowforge_null_rows_total",
			Help:        "Top-level null rows encountered while encoding.",
			ConstLabels: labels,
		}),
		bytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name:        "rowforge_bytes_written_total",
			Help:        "Total UnsafeRow bytes produced.",
			ConstLabels: labels,
		}),
		encodeLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "rowforge_encode_duration_seconds",
			Help:        "Per-row encode latency.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(100e-9, 4, 12),
		}),
	}
}

// ObserveRow records one encoded row of the given size.
func (c *Collector) ObserveRow(bytes int, d time.Duration) {
	if c == nil {
		return
	}
	c.rowsEncoded.Inc()
	c.bytesWritten.Add(float64(bytes))
	c.encodeLatency.Observe(d.Seconds())
}

// ObserveNull records one top-level null row.
func (c *Collector) ObserveNull() {
	if c == nil {
		return
	}
	c.nullRows.Inc()
}
