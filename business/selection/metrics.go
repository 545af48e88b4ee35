package selection

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSelected       = "selected"
	outcomeInvalidInput   = "invalid_input"
	outcomeInfeasible     = "infeasible"
	outcomeEstimatorError = "estimator_error"
)

var (
	SelectionOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offer_selection_outcomes_total",
			Help: "Count of offer selections by outcome.",
		},
		[]string{"outcome"},
	)

	SelectionBatchSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "offer_selection_batch_size",
		Help:    "Number of offers per selection call.",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500},
	})
)

func init() {
	prometheus.MustRegister(SelectionOutcomesTotal, SelectionBatchSize)
}
