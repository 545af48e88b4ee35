package selection

import (
	"fmt"
	"math"

	"quoteOptimizer/domain"
)

// DeriveFeatures computes the batch-relative attributes the estimator was
// trained on. Deltas are measured against the cheapest and the fastest offer
// of this batch only, so the result must never be reused for another request.
func DeriveFeatures(offers []domain.Offer) ([]domain.DerivedOffer, error) {
	if len(offers) == 0 {
		return nil, fmt.Errorf("%w: offer batch is empty", domain.ErrInvalidInput)
	}

	minPrice := math.Inf(1)
	minLead := math.MaxInt
	for i, o := range offers {
		if math.IsNaN(o.UnitPrice) || math.IsInf(o.UnitPrice, 0) || o.UnitPrice <= 0 {
			return nil, fmt.Errorf("%w: offer %d: unit_price must be a positive finite number", domain.ErrInvalidInput, i)
		}
		if o.LeadTimeDays < 0 {
			return nil, fmt.Errorf("%w: offer %d: lead_time_days must not be negative", domain.ErrInvalidInput, i)
		}
		if o.Quantity <= 0 {
			return nil, fmt.Errorf("%w: offer %d: quantity must be positive", domain.ErrInvalidInput, i)
		}
		minPrice = math.Min(minPrice, o.UnitPrice)
		minLead = min(minLead, o.LeadTimeDays)
	}

	out := make([]domain.DerivedOffer, len(offers))
	for i, o := range offers {
		out[i] = domain.DerivedOffer{
			Offer:         o,
			PriceDeltaPct: o.UnitPrice/minPrice - 1,
			LeadDeltaDays: o.LeadTimeDays - minLead,
			QuantityLog:   math.Log1p(float64(o.Quantity)),
		}
	}

	return out, nil
}
