package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the ingestion pipeline.
type Metrics struct {
	BarsInserted    prometheus.Counter
	RefreshRuns     prometheus.Counter
	RefreshFailures prometheus.Counter
	FetchDuration   prometheus.Histogram

	registry *prometheus.Registry
}

// New registers and returns the application metrics on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		BarsInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ingest_bars_inserted_total",
			Help: "Total price bars inserted into the store",
		}),
		RefreshRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ingest_refresh_runs_total",
			Help: "Total per-symbol refresh attempts",
		}),
		RefreshFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ingest_refresh_failures_total",
			Help: "Refresh attempts that failed at the provider boundary",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ingest_fetch_duration_seconds",
			Help:    "Provider fetch latency per symbol",
			Buckets: prometheus.DefBuckets,
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.BarsInserted,
		m.RefreshRuns,
		m.RefreshFailures,
		m.FetchDuration,
	)

	return m
}

// Handler returns the HTTP handler exposing the registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
