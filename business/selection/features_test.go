//go:build !integration

package selection

import (
	"math"
	"testing"

	"quoteOptimizer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveFeatures_BatchRelative(t *testing.T) {
	offers := []domain.Offer{
		offer("1", 1.30, 5, 0.20),
		offer("2", 1.50, 4, 0.28),
		offer("3", 1.30, 9, 0.25),
	}

	got, err := DeriveFeatures(offers)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, d := range got {
		assert.Equal(t, offers[i], d.Offer, "order and identity preserved")
		assert.GreaterOrEqual(t, d.PriceDeltaPct, 0.0)
		assert.GreaterOrEqual(t, d.LeadDeltaDays, 0)
		assert.InDelta(t, math.Log1p(1000), d.QuantityLog, 1e-12)
	}

	assert.Zero(t, got[0].PriceDeltaPct)
	assert.InDelta(t, 1.50/1.30-1, got[1].PriceDeltaPct, 1e-12)
	assert.Equal(t, 1, got[0].LeadDeltaDays)
	assert.Equal(t, 0, got[1].LeadDeltaDays)
	assert.Equal(t, 5, got[2].LeadDeltaDays)
}

func TestDeriveFeatures_SameOfferShiftsWithBatch(t *testing.T) {
	o := offer("2", 1.50, 4, 0.28)

	alone, err := DeriveFeatures([]domain.Offer{o})
	require.NoError(t, err)
	assert.Zero(t, alone[0].PriceDeltaPct)
	assert.Zero(t, alone[0].LeadDeltaDays)

	paired, err := DeriveFeatures([]domain.Offer{offer("1", 1.00, 2, 0.2), o})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, paired[1].PriceDeltaPct, 1e-12)
	assert.Equal(t, 2, paired[1].LeadDeltaDays)
}

func TestDeriveFeatures_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		offers []domain.Offer
	}{
		{"empty", nil},
		{"zero price", []domain.Offer{offer("1", 0, 3, 0.2)}},
		{"negative price", []domain.Offer{offer("1", -1, 3, 0.2)}},
		{"nan price", []domain.Offer{offer("1", math.NaN(), 3, 0.2)}},
		{"inf price", []domain.Offer{offer("1", math.Inf(1), 3, 0.2)}},
		{"negative lead", []domain.Offer{offer("1", 1.2, -1, 0.2)}},
		{"zero quantity", []domain.Offer{{SupplierID: "1", UnitPrice: 1.2, LeadTimeDays: 3}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DeriveFeatures(tc.offers)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
