package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instrumentation for the scoring server.
// Each Metrics owns its registry so independent servers (and tests) never
// collide on registration.
type Metrics struct {
	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
	scoresTotal    *prometheus.CounterVec
	scoreDuration  prometheus.Histogram
	handler        http.Handler
}

// NewMetrics creates and registers the server metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pencalc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pencalc_requests_total",
			Help: "Total HTTP requests by path.",
		}, []string{"path"}),
		scoresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pencalc_scores_total",
			Help: "Total difficulty scores computed, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		scoreDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pencalc_score_duration_seconds",
			Help:    "Time spent computing one difficulty score.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.activeRequests,
		m.requestsTotal,
		m.scoresTotal,
		m.scoreDuration,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// WritePrometheus serves the metrics endpoint.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// IncrementActiveRequests marks a request as in flight.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// CountRequest counts one request against its path.
func (m *Metrics) CountRequest(path string) {
	m.requestsTotal.WithLabelValues(path).Inc()
}

// ObserveScore records the outcome and duration of one scoring call.
func (m *Metrics) ObserveScore(operation string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.scoresTotal.WithLabelValues(operation, outcome).Inc()
	m.scoreDuration.Observe(d.Seconds())
}
