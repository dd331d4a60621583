package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Store metrics
	StoreOperations  *prometheus.CounterVec
	StoreDuration    *prometheus.HistogramVec
	StoreUnavailable *prometheus.CounterVec
	OfflineReads     *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry, so tests can
// build as many as they like.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	storeOperations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of store operations",
		},
		[]string{"operation", "table", "status"},
	)

	storeDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Store operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	storeUnavailable := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_unavailable_total",
			Help:      "Total number of store calls that failed because the backend was unreachable",
		},
		[]string{"backend"},
	)

	offlineReads := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offline_reads_total",
			Help:      "Total number of reads served from the offline dataset",
		},
		[]string{"table"},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		storeOperations,
		storeDuration,
		storeUnavailable,
		offlineReads,
	)

	return &Collector{
		registry:         registry,
		HTTPRequests:     httpRequests,
		HTTPDuration:     httpDuration,
		StoreOperations:  storeOperations,
		StoreDuration:    storeDuration,
		StoreUnavailable: storeUnavailable,
		OfflineReads:     offlineReads,
	}
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served request.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordStoreOperation records one store call. status is "success",
// "error" or "unavailable".
func (c *Collector) RecordStoreOperation(operation, table, status string, duration time.Duration) {
	c.StoreOperations.WithLabelValues(operation, table, status).Inc()
	c.StoreDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

// RecordStoreUnavailable counts a call that could not reach backend.
func (c *Collector) RecordStoreUnavailable(backend string) {
	c.StoreUnavailable.WithLabelValues(backend).Inc()
}

// RecordOfflineRead counts a read served from the offline dataset.
func (c *Collector) RecordOfflineRead(table string) {
	c.OfflineReads.WithLabelValues(table).Inc()
}
