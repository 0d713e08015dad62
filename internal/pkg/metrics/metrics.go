// Package metrics holds the planner's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansTotal counts planning runs by terminal status.
	PlansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "degreeplanner",
		Name:      "plans_total",
		Help:      "Planning runs by terminal status.",
	}, []string{"status"})

	// SolveDuration observes end-to-end solve wall time.
	SolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "degreeplanner",
		Name:      "solve_duration_seconds",
		Help:      "Wall-clock duration of solver runs.",
		Buckets:   prometheus.DefBuckets,
	})

	// SolveNodes observes search node expansions per run.
	SolveNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "degreeplanner",
		Name:      "solve_nodes",
		Help:      "Search node expansions per solver run.",
		Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
	})
)
