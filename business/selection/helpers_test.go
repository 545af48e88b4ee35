//go:build !integration

package selection

import (
	"quoteOptimizer/domain"
)

// stubEstimator returns a fixed probability per supplier, or fallback.
type stubEstimator struct {
	probs    map[domain.SupplierID]float64
	fallback float64
}

func (s stubEstimator) Preprocess(offers []domain.DerivedOffer) ([][]float64, error) {
	x := make([][]float64, len(offers))
	for i, o := range offers {
		p, ok := s.probs[o.SupplierID]
		if !ok {
			p = s.fallback
		}
		x[i] = []float64{p}
	}
	return x, nil
}

func (s stubEstimator) PredictProba(x [][]float64) ([]float64, error) {
	out := make([]float64, len(x))
	for i, row := range x {
		out[i] = row[0]
	}
	return out, nil
}

func offer(id domain.SupplierID, price float64, lead int, margin float64) domain.Offer {
	return domain.Offer{
		SupplierID:      id,
		UnitPrice:       price,
		LeadTimeDays:    lead,
		QuotedMarginPct: margin,
		Quantity:        1000,
		ProductType:     "flyer",
		Tier:            "A",
		Region:          "NL",
		OnTimeRate:      0.95,
	}
}
