package selection

import (
	"fmt"
	"math"

	"quoteOptimizer/domain"
)

// Estimator is a trained win-probability model. Preprocess must apply the
// same encoding the model was fitted with; PredictProba maps each encoded row
// to the probability that the offer is accepted.
//
// Implementations are loaded once and must be safe for concurrent use.
type Estimator interface {
	Preprocess(offers []domain.DerivedOffer) ([][]float64, error)
	PredictProba(x [][]float64) ([]float64, error)
}

// Score runs the estimator over a derived batch and returns one probability
// per offer in input order.
func Score(est Estimator, offers []domain.DerivedOffer) ([]float64, error) {
	x, err := est.Preprocess(offers)
	if err != nil {
		return nil, fmt.Errorf("preprocess offers: %w", err)
	}
	if len(x) != len(offers) {
		return nil, fmt.Errorf("preprocess returned %d rows for %d offers", len(x), len(offers))
	}

	probs, err := est.PredictProba(x)
	if err != nil {
		return nil, fmt.Errorf("predict win probability: %w", err)
	}
	if len(probs) != len(offers) {
		return nil, fmt.Errorf("estimator returned %d probabilities for %d offers", len(probs), len(offers))
	}
	for i, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, fmt.Errorf("estimator returned p_win %v for offer %d, want [0,1]", p, i)
		}
	}

	return probs, nil
}
