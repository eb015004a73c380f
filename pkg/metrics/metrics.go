package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gitlab"

// Recorder collects sync and estimate counters. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry        *prometheus.Registry
	passes          *prometheus.CounterVec
	mismatches      prometheus.Counter
	resolveFailures prometheus.Counter
	passDuration    prometheus.Histogram
	estimateRuns    *prometheus.CounterVec
}

// New registers the collectors on a private registry, together with the Go and process collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_passes_total",
			Help:      "Sync passes by outcome status.",
		}, []string{"status"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_mismatches_total",
			Help:      "Checklist entries found out of sync with their issue.",
		}),
		resolveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_resolve_failures_total",
			Help:      "Issue lookups that failed and were treated as open.",
		}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_pass_duration_seconds",
			Help:      "Wall time of a sync pass.",
			Buckets:   prometheus.DefBuckets,
		}),
		estimateRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimate_runs_total",
			Help:      "Estimate runs by outcome status.",
		}, []string{"status"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.passes,
		r.mismatches,
		r.resolveFailures,
		r.passDuration,
		r.estimateRuns,
	)
	return r
}

func (r *Recorder) ObservePass(status string, mismatches int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.passes.WithLabelValues(status).Inc()
	r.mismatches.Add(float64(mismatches))
	r.passDuration.Observe(elapsed.Seconds())
}

func (r *Recorder) ResolveFailed() {
	if r == nil {
		return
	}
	r.resolveFailures.Inc()
}

func (r *Recorder) ObserveEstimate(status string) {
	if r == nil {
		return
	}
	r.estimateRuns.WithLabelValues(status).Inc()
}

// Gatherer exposes the private registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.Gatherer(), promhttp.HandlerOpts{})
}
