// Package metrics records search statistics as Prometheus collectors.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/hillclimb/astar"
)

// Outcome labels.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeExhausted   = "exhausted"
	OutcomeError       = "error"
)

// Recorder holds the search collectors. A nil *Recorder is a no-op.
type Recorder struct {
	searches *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	length   *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hillclimb_searches_total",
			Help: "Searches by direction, heuristic and outcome",
		}, []string{"direction", "heuristic", "outcome"}),
		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hillclimb_search_expanded_nodes",
			Help:    "Cells closed per successful search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"direction", "heuristic"}),
		length: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hillclimb_path_length",
			Help:    "Edges in the returned path",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"direction"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hillclimb_search_duration_seconds",
			Help:    "Wall time per search",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"direction", "heuristic"}),
	}
}

// OutcomeOf maps a search error to its outcome label.
func OutcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, astar.ErrUnreachable):
		return OutcomeUnreachable
	case errors.Is(err, astar.ErrExhaustedBudget):
		return OutcomeExhausted
	}

	return OutcomeError
}

// Observe records one finished search.
func (r *Recorder) Observe(direction, heuristic string, res *astar.Result, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.searches.WithLabelValues(direction, heuristic, OutcomeOf(err)).Inc()
	r.duration.WithLabelValues(direction, heuristic).Observe(elapsed.Seconds())
	if err != nil || res == nil {
		return
	}
	r.expanded.WithLabelValues(direction, heuristic).Observe(float64(res.Expanded))
	r.length.WithLabelValues(direction).Observe(float64(res.Length))
}

// Track times fn and records its result.
func (r *Recorder) Track(direction, heuristic string, fn func() (*astar.Result, error)) (*astar.Result, error) {
	start := time.Now()
	res, err := fn()
	r.Observe(direction, heuristic, res, err, time.Since(start))

	return res, err
}
