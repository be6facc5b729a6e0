// Package metrics owns the Prometheus registry of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "logistics_tracker"

// Metrics groups the collectors recorded by the service.
type Metrics struct {
	registry *prometheus.Registry

	unknownStatuses *prometheus.CounterVec
	backendRequests *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
}

// New creates a registry with the service collectors plus Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		unknownStatuses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_status_total",
			Help:      "Status strings received from the backend that are not part of the status model.",
		}, []string{"source"}),
		backendRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of outbound requests to the marketplace API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "code"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.unknownStatuses,
		m.backendRequests,
		m.cacheLookups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// UnknownStatus counts one unrecognized status coming from source.
func (m *Metrics) UnknownStatus(source string) {
	if m == nil {
		return
	}
	m.unknownStatuses.WithLabelValues(source).Inc()
}

// ObserveBackendRequest records one outbound request. A code of 0 means transport failure.
func (m *Metrics) ObserveBackendRequest(method string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.backendRequests.WithLabelValues(method, strconv.Itoa(code)).Observe(d.Seconds())
}

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// CacheLookup counts one cache lookup by result.
func (m *Metrics) CacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
