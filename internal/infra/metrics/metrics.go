// Package metrics collects Prometheus metrics for backend calls and the companion API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "schoolnote"

// Metrics owns a dedicated registry so tests and multiple instances never collide.
type Metrics struct {
	registry *prometheus.Registry

	// Backend calls by endpoint and status ("network_error" when no response arrived)
	backendRequests *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec

	// Companion API requests by method, route and status
	apiRequests *prometheus.CounterVec
	apiDuration *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		backendRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "backend_requests_total",
				Help:      "Total number of backend API requests",
			},
			[]string{"endpoint", "status"},
		),
		backendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "backend_request_duration_seconds",
				Help:      "Backend API request duration in seconds",
				// Translation of multi-page documents routinely takes tens of seconds.
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
			},
			[]string{"endpoint"},
		),
		apiRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of companion API requests",
			},
			[]string{"method", "path", "status"},
		),
		apiDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Companion API request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.backendRequests,
		m.backendDuration,
		m.apiRequests,
		m.apiDuration,
	)

	return m
}

// ObserveBackend records one backend call. A zero status means the request never got a response.
func (m *Metrics) ObserveBackend(endpoint string, status int, elapsed time.Duration) {
	label := "network_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.backendRequests.WithLabelValues(endpoint, label).Inc()
	m.backendDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveAPI records one companion API request.
func (m *Metrics) ObserveAPI(method, path string, status int, elapsed time.Duration) {
	m.apiRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.apiDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
