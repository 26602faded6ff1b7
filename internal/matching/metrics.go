package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeMatched        = "matched"
	outcomeBelowThreshold = "below_threshold"
	outcomeBlankQuery     = "blank_query"
)

var (
	// matchAttempts tracks single-item match outcomes.
	matchAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_match_attempts_total",
		Help: "Total number of match attempts by outcome",
	}, []string{"outcome"})

	// bestMatchScore tracks the score distribution of accepted matches.
	bestMatchScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pricing_best_match_score",
		Help:    "Score distribution of accepted best matches",
		Buckets: []float64{0.62, 0.7, 0.8, 0.9, 0.94, 0.98, 1},
	})

	// batchItems tracks the distribution of batch-apply sizes.
	batchItems = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pricing_apply_batch_items_count",
		Help:    "Number of line items per batch apply request",
		Buckets: []float64{1, 5, 10, 20, 50, 100},
	})

	// batchMatched counts line items changed by batch applies.
	batchMatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_apply_matched_rows_total",
		Help: "Total number of line items filled by batch applies",
	})
)
