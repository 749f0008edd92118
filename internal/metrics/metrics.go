// Package metrics defines the Prometheus collectors the engine and its
// batch dispatcher update. Unlike a service that scrapes over HTTP, this
// engine has no network transport: collectors register against a private
// registry, and Gather exposes the current values to whoever embeds the
// engine, typically for logging or an external exporter the caller owns.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Collector holds every Prometheus collector the engine updates.
type Collector struct {
	registry *prometheus.Registry

	DocumentsIndexedTotal prometheus.Counter
	DocumentsRemovedTotal prometheus.Counter
	DocumentCount         prometheus.Gauge
	QueryLatency          *prometheus.HistogramVec
	QueryResultsCount     prometheus.Histogram
	BatchDuration         prometheus.Histogram
	BatchQueriesTotal     prometheus.Counter
}

// New creates a Collector and registers its metrics against a fresh,
// private registry — never the global default registry, so embedding this
// package never collides with a host application's own metrics.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		DocumentsIndexedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "search_documents_indexed_total",
			Help: "Total documents successfully added to the index.",
		}),
		DocumentsRemovedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "search_documents_removed_total",
			Help: "Total documents removed from the index.",
		}),
		DocumentCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "search_document_count",
			Help: "Current number of live documents in the index.",
		}),
		QueryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "search_query_latency_seconds",
				Help:    "FindTopDocuments latency in seconds, by execution path.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"path"}, // "sequential" or "parallel"
		),
		QueryResultsCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "search_query_results_count",
			Help:    "Number of results returned per query.",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "search_batch_duration_seconds",
			Help:    "Wall-clock duration of a batch dispatch across all its queries.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		BatchQueriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "search_batch_queries_total",
			Help: "Total queries dispatched through the batch processor.",
		}),
	}

	c.registry.MustRegister(
		c.DocumentsIndexedTotal,
		c.DocumentsRemovedTotal,
		c.DocumentCount,
		c.QueryLatency,
		c.QueryResultsCount,
		c.BatchDuration,
		c.BatchQueriesTotal,
	)

	return c
}

// Gather returns the current value of every registered metric family.
func (c *Collector) Gather() ([]*dto.MetricFamily, error) {
	return c.registry.Gather()
}
