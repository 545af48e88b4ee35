package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SupplierID identifies the supplier behind an offer. Upstream exports carry
// it either as a JSON string or as a bare number, so both are accepted.
type SupplierID string

func (s *SupplierID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SupplierID(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("supplier_id must be a string or a number: %w", err)
	}
	*s = SupplierID(num.String())
	return nil
}

// Offer is one supplier's bid for a request-for-quotation.
type Offer struct {
	SupplierID      SupplierID `json:"supplier_id" validate:"required"`
	UnitPrice       float64    `json:"unit_price" validate:"gt=0"`
	LeadTimeDays    int        `json:"lead_time_days" validate:"gte=0"`
	QuotedMarginPct float64    `json:"quoted_margin_pct" validate:"gte=0,lte=1"`
	Quantity        int        `json:"quantity" validate:"gt=0"`
	ProductType     string     `json:"product_type"`
	Tier            string     `json:"tier"`
	Region          string     `json:"region"`
	OnTimeRate      float64    `json:"on_time_rate" validate:"gte=0,lte=1"`
}

// DerivedOffer is an Offer plus the features computed relative to its batch.
type DerivedOffer struct {
	Offer
	PriceDeltaPct float64 `json:"price_delta_pct"`
	LeadDeltaDays int     `json:"lead_delta_days"`
	QuantityLog   float64 `json:"quantity_log"`
}

// ScoredOffer is one row of the ranked table.
type ScoredOffer struct {
	DerivedOffer
	Position int     `json:"position"`
	PWin     float64 `json:"p_win"`
	Utility  float64 `json:"utility"`
	Eligible bool    `json:"eligible"`
	Selected bool    `json:"selected"`
	Rank     int     `json:"rank"`
}
