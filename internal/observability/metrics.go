// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Cache metrics
	CacheHits      *prometheus.CounterVec
	CacheMisses    *prometheus.CounterVec
	CacheEvictions prometheus.Counter

	// Producer metrics
	ProducerDuration *prometheus.HistogramVec
	ProducerErrors   *prometheus.CounterVec

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Stream metrics
	StreamClients   prometheus.Gauge
	QuotesStreamed  prometheus.Counter
	StreamSendError prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "market_data_lab"
	}

	return &Metrics{
		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of result cache hits by operation",
		}, []string{"op"}),
		CacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of result cache misses by operation",
		}, []string{"op"}),
		CacheEvictions: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Total number of cache entries evicted or expired",
		}),

		ProducerDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "producer_duration_seconds",
			Help:      "Producer execution duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		ProducerErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "producer_errors_total",
			Help:      "Total number of producer errors by operation",
		}, []string{"op"}),

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by path and status",
		}, []string{"path", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),

		StreamClients: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "clients",
			Help:      "Number of connected WebSocket quote stream clients",
		}),
		QuotesStreamed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "quotes_streamed_total",
			Help:      "Total number of quotes pushed to stream clients",
		}),
		StreamSendError: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "send_errors_total",
			Help:      "Total number of failed stream writes",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordCacheHit increments the cache hit counter for an operation.
func RecordCacheHit(op string) {
	DefaultMetrics.CacheHits.WithLabelValues(op).Inc()
}

// RecordCacheMiss increments the cache miss counter for an operation.
func RecordCacheMiss(op string) {
	DefaultMetrics.CacheMisses.WithLabelValues(op).Inc()
}

// RecordCacheEviction increments the cache eviction counter.
func RecordCacheEviction() {
	DefaultMetrics.CacheEvictions.Inc()
}

// RecordProducer records one producer invocation.
func RecordProducer(op string, seconds float64, err error) {
	DefaultMetrics.ProducerDuration.WithLabelValues(op).Observe(seconds)
	if err != nil {
		DefaultMetrics.ProducerErrors.WithLabelValues(op).Inc()
	}
}

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(path, status string, seconds float64) {
	DefaultMetrics.HTTPRequestsTotal.WithLabelValues(path, status).Inc()
	DefaultMetrics.HTTPRequestDuration.WithLabelValues(path).Observe(seconds)
}

// RecordQuotesStreamed adds to the streamed quote counter.
func RecordQuotesStreamed(n int) {
	DefaultMetrics.QuotesStreamed.Add(float64(n))
}
