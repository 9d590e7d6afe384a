// Package metrics holds the Prometheus collectors exposed at /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poseidon",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "poseidon",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	recordWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poseidon",
			Subsystem: "records",
			Name:      "writes_total",
			Help:      "Successful record writes by entity and operation.",
		},
		[]string{"entity", "operation"},
	)

	authzDenials = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poseidon",
			Subsystem: "authz",
			Name:      "denials_total",
			Help:      "Delete attempts refused by the ownership policy.",
		},
		[]string{"entity"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		recordWrites,
		authzDenials,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one handled HTTP request. route is the matched
// route template so that ids do not explode label cardinality.
func ObserveRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordWrite counts a successful create, update or delete.
func RecordWrite(entity, operation string) {
	recordWrites.WithLabelValues(entity, operation).Inc()
}

// RecordDenial counts a refused delete.
func RecordDenial(entity string) {
	authzDenials.WithLabelValues(entity).Inc()
}
