// Package metrics holds the Prometheus collectors for scoring runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "moora"

// OutcomeOK labels a run that produced a ranking.
const OutcomeOK = "ok"

// Transport label values. Anything else is recorded as TransportOther so
// callers cannot grow the series count.
const (
	TransportHTTP  = "http"
	TransportNATS  = "nats"
	TransportCLI   = "cli"
	TransportOther = "other"
)

func transportLabel(t string) string {
	switch t {
	case TransportHTTP, TransportNATS, TransportCLI:
		return t
	default:
		return TransportOther
	}
}

// Recorder counts scoring runs and observes their size and latency.
type Recorder struct {
	runs         *prometheus.CounterVec
	duration     prometheus.Histogram
	alternatives prometheus.Histogram
	events       *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors with reg. Pass
// prometheus.DefaultRegisterer to expose them on promhttp.Handler().
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scoring_runs_total",
			Help:      "Scoring runs by transport and outcome (ok or an error kind).",
		}, []string{"transport", "outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scoring_duration_seconds",
			Help:      "Time spent in the scoring engine per run.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		alternatives: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scoring_alternatives",
			Help:      "Number of alternatives ranked per successful run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Ranking events published to NATS by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(r.runs, r.duration, r.alternatives, r.events)
	return r
}

// ObserveRun records one run. outcome is "ok" or an error kind. A nil
// Recorder records nothing.
func (r *Recorder) ObserveRun(transport, outcome string, alternatives int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(transportLabel(transport), outcome).Inc()
	r.duration.Observe(elapsed.Seconds())
	if outcome == OutcomeOK {
		r.alternatives.Observe(float64(alternatives))
	}
}

// ObservePublish records whether an event publish succeeded.
func (r *Recorder) ObservePublish(err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.events.WithLabelValues("error").Inc()
		return
	}
	r.events.WithLabelValues("ok").Inc()
}
