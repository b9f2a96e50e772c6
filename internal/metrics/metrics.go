// internal/metrics/metrics.go
// Prometheus metrics for the scoring service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScoresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opportunity_scores_total",
		Help: "Total number of products scored.",
	})

	VetoesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opportunity_vetoes_total",
		Help: "Total number of vetoed products by rule.",
	}, []string{"rule"})

	ScoreDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "opportunity_score_distribution",
		Help:    "Distribution of non-vetoed total scores.",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})

	ScoringDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "opportunity_scoring_duration_seconds",
		Help:    "Wall time spent inside the scoring engine.",
		Buckets: prometheus.DefBuckets,
	})
)
