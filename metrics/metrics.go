// Package metrics exposes Prometheus collectors for reward searches.
//
// Metrics (namespace "valveflow", subsystem "search", all labelled by agents):
//
//	expanded_total       counter   search nodes expanded
//	pruned_total         counter   subtrees cut by the upper bound
//	improvements_total   counter   best-so-far updates
//	failures_total       counter   aborted searches, labelled by reason
//	best_reward          gauge     reward of the last completed search
//	duration_seconds     histogram wall time per search
//
// Use a private registry in tests and CLIs:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.NewSearchMetrics(reg)
//	m.Observe(2, res, time.Since(t0))
package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/valveflow/search"
)

// Failure reasons recorded by Fail.
const (
	ReasonStepLimit = "step_limit"
	ReasonTimeLimit = "time_limit"
	ReasonCanceled  = "canceled"
	ReasonInvalid   = "invalid"
)

// SearchMetrics records search statistics. Safe for concurrent use.
type SearchMetrics struct {
	expanded     *prometheus.CounterVec
	pruned       *prometheus.CounterVec
	improvements *prometheus.CounterVec
	failures     *prometheus.CounterVec
	bestReward   *prometheus.GaugeVec
	duration     *prometheus.HistogramVec
}

// NewSearchMetrics creates and registers the search collectors with reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	labels := []string{"agents"}

	return &SearchMetrics{
		expanded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "valveflow", Subsystem: "search", Name: "expanded_total",
			Help: "Search nodes expanded by the branch-and-bound engine",
		}, labels),
		pruned: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "valveflow", Subsystem: "search", Name: "pruned_total",
			Help: "Subtrees cut because their upper bound could not beat the best reward",
		}, labels),
		improvements: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "valveflow", Subsystem: "search", Name: "improvements_total",
			Help: "Best-so-far reward updates",
		}, labels),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "valveflow", Subsystem: "search", Name: "failures_total",
			Help: "Searches that returned an error",
		}, []string{"agents", "reason"}),
		bestReward: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "valveflow", Subsystem: "search", Name: "best_reward",
			Help: "Reward of the most recent completed search",
		}, labels),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "valveflow", Subsystem: "search", Name: "duration_seconds",
			Help:    "Wall time per search",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10), // 0.5ms .. ~2m
		}, labels),
	}
}

// Observe records a completed search.
func (m *SearchMetrics) Observe(agents int, res search.Result, elapsed time.Duration) {
	a := strconv.Itoa(agents)
	m.expanded.WithLabelValues(a).Add(float64(res.Stats.Expanded))
	m.pruned.WithLabelValues(a).Add(float64(res.Stats.Pruned))
	m.improvements.WithLabelValues(a).Add(float64(res.Stats.Improvements))
	m.bestReward.WithLabelValues(a).Set(float64(res.Reward))
	m.duration.WithLabelValues(a).Observe(elapsed.Seconds())
}

// Fail records an aborted search. The partial statistics in res still
// count towards expanded and pruned.
func (m *SearchMetrics) Fail(agents int, res search.Result, err error) {
	a := strconv.Itoa(agents)
	m.expanded.WithLabelValues(a).Add(float64(res.Stats.Expanded))
	m.pruned.WithLabelValues(a).Add(float64(res.Stats.Pruned))
	m.failures.WithLabelValues(a, reason(err)).Inc()
}

func reason(err error) string {
	switch {
	case errors.Is(err, search.ErrStepLimit):
		return ReasonStepLimit
	case errors.Is(err, search.ErrTimeLimit), errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeLimit
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	default:
		return ReasonInvalid
	}
}
