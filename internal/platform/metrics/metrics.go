// Package metrics owns the Prometheus collectors of the service. Collectors are
// registered on a private registry so tests can build as many as they like.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reconciliation outcomes.
const (
	OutcomeCredited         = "credited"
	OutcomeAlreadyProcessed = "already_processed"
	OutcomeUnpaid           = "unpaid"
)

// Metrics is safe for concurrent use. A nil *Metrics records nothing.
type Metrics struct {
	registry          *prometheus.Registry
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	requestsDecided   *prometheus.CounterVec
	paymentsReconcile *prometheus.CounterVec
	assetsReturned    prometheus.Counter
}

// New creates the collectors and registers them, plus the Go and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route template and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route template.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		requestsDecided: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "asset_requests_decided_total",
			Help: "Asset requests approved or rejected.",
		}, []string{"status"}),
		paymentsReconcile: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_reconciled_total",
			Help: "Checkout reconciliations by outcome.",
		}, []string{"outcome"}),
		assetsReturned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "assets_returned_total",
			Help: "Assigned assets given back to inventory.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.requestsDecided,
		m.paymentsReconcile,
		m.assetsReturned,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RequestDecided(status string) {
	if m == nil {
		return
	}
	m.requestsDecided.WithLabelValues(status).Inc()
}

func (m *Metrics) PaymentReconciled(outcome string) {
	if m == nil {
		return
	}
	m.paymentsReconcile.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AssetReturned() {
	if m == nil {
		return
	}
	m.assetsReturned.Inc()
}
