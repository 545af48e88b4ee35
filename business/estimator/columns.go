package estimator

import "quoteOptimizer/domain"

// Numeric inputs the training job standardizes.
var numericExtractors = map[string]func(o domain.DerivedOffer) float64{
	"unit_price":        func(o domain.DerivedOffer) float64 { return o.UnitPrice },
	"lead_time_days":    func(o domain.DerivedOffer) float64 { return float64(o.LeadTimeDays) },
	"quoted_margin_pct": func(o domain.DerivedOffer) float64 { return o.QuotedMarginPct },
	"price_delta_pct":   func(o domain.DerivedOffer) float64 { return o.PriceDeltaPct },
	"lead_delta_days":   func(o domain.DerivedOffer) float64 { return float64(o.LeadDeltaDays) },
	"quantity_log":      func(o domain.DerivedOffer) float64 { return o.QuantityLog },
	"on_time_rate":      func(o domain.DerivedOffer) float64 { return o.OnTimeRate },
}

// Categorical inputs the training job one-hot encodes.
var categoricalExtractors = map[string]func(o domain.DerivedOffer) string{
	"product_type": func(o domain.DerivedOffer) string { return o.ProductType },
	"tier":         func(o domain.DerivedOffer) string { return o.Tier },
	"region":       func(o domain.DerivedOffer) string { return o.Region },
}
