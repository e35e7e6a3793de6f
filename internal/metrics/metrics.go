package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendationsServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_recommendations_served_total",
		Help: "Total number of recommendation requests answered, by outcome.",
	}, []string{"outcome"}) // outcome: "ranked", "empty", "insufficient_selection"
	RecommendationCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "app_recommendation_candidates",
		Help:    "Number of candidates returned per recommendation.",
		Buckets: prometheus.LinearBuckets(0, 1, 11),
	})
	RecommendationDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "app_recommendation_duration_seconds",
		Help:    "Time spent scoring and ranking, excluding storage reads.",
		Buckets: prometheus.DefBuckets,
	})
	CorpusListsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "app_corpus_lists",
		Help: "Number of lists in the corpus at the last scan.",
	})

	// History Metrics
	HistoryRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_history_recorded_total",
		Help: "Total number of list snapshots appended to purchase history.",
	})
)
