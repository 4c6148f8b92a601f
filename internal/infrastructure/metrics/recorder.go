package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns the Prometheus collectors of one process. It satisfies
// pokeapi.Observer and usecase.BatchObserver.
type Recorder struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	batchSize        prometheus.Histogram
	batchLatency     *prometheus.HistogramVec
	batches          *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
}

// NewRecorder creates a recorder on a fresh registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dexview_upstream_requests_total",
			Help: "Catalog API requests by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dexview_upstream_request_duration_seconds",
			Help:    "Latency of catalog API requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dexview_enrich_batch_size",
			Help:    "References fetched per enrichment batch",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 250},
		}),
		batchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dexview_enrich_batch_duration_seconds",
			Help:    "Wall time of enrichment batches by result",
			Buckets: prometheus.DefBuckets,
		}, []string{"result"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dexview_enrich_batches_total",
			Help: "Enrichment batches by result (applied, stale or error)",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dexview_http_requests_total",
			Help: "HTTP requests served by route and status",
		}, []string{"route", "status"}),
	}

	r.registry.MustRegister(
		r.upstreamRequests,
		r.upstreamLatency,
		r.batchSize,
		r.batchLatency,
		r.batches,
		r.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// ObserveUpstream records one catalog API request
func (r *Recorder) ObserveUpstream(endpoint, outcome string, elapsed time.Duration) {
	r.upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	r.upstreamLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveBatch records one completed enrichment batch. result is the
// usecase batch result label.
func (r *Recorder) ObserveBatch(size int, elapsed time.Duration, result string) {
	r.batchSize.Observe(float64(size))
	r.batchLatency.WithLabelValues(result).Observe(elapsed.Seconds())
	r.batches.WithLabelValues(result).Inc()
}

// ObserveHTTP records one served HTTP request
func (r *Recorder) ObserveHTTP(route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
