package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the explicit process-wide metrics handle passed into the
// request path. Counters are monotonic and concurrency-safe; nothing here is
// package-level state.
type Registry struct {
	registry *prometheus.Registry

	requests prometheus.Counter
	drift    prometheus.Counter
	latency  prometheus.Histogram
}

func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inference_requests_total",
			Help: "Total inference requests",
		}),
		drift: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "drift_events_total",
			Help: "Total drift detection events",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "inference_latency_seconds",
			Help:    "Latency of predictions in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}),
	}

	r.registry.MustRegister(r.requests, r.drift, r.latency)
	return r
}

func (r *Registry) IncRequests() {
	r.requests.Inc()
}

func (r *Registry) IncDriftEvents() {
	r.drift.Inc()
}

func (r *Registry) ObserveLatency(d time.Duration) {
	r.latency.Observe(d.Seconds())
}

// Handler exposes the registry in Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
