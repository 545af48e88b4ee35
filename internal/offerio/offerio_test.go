//go:build !integration

package offerio

import (
	"bytes"
	"strings"
	"testing"

	"quoteOptimizer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOffers_CSVAnyColumnOrder(t *testing.T) {
	in := strings.Join([]string{
		"region,supplier_id,unit_price,lead_time_days,quoted_margin_pct,quantity,product_type,tier,on_time_rate,notes",
		"NL,1,1.30,5,0.20,1000,flyer,A,0.95,cheap",
		"NL,2,1.50,4.0,0.28,1000.0,flyer,B,0.91,",
	}, "\n")

	offers, err := ReadOffers(strings.NewReader(in), FormatCSV)
	require.NoError(t, err)
	require.Len(t, offers, 2)

	assert.Equal(t, domain.Offer{
		SupplierID:      "1",
		UnitPrice:       1.30,
		LeadTimeDays:    5,
		QuotedMarginPct: 0.20,
		Quantity:        1000,
		ProductType:     "flyer",
		Tier:            "A",
		Region:          "NL",
		OnTimeRate:      0.95,
	}, offers[0])
	assert.Equal(t, 4, offers[1].LeadTimeDays)
	assert.Equal(t, 1000, offers[1].Quantity)
}

func TestReadOffers_CSVErrors(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"missing column": "supplier_id,unit_price\n1,1.2\n",
		"bad number":     "supplier_id,unit_price,lead_time_days,quoted_margin_pct,quantity,product_type,tier,region,on_time_rate\n1,abc,5,0.2,1000,flyer,A,NL,0.9\n",
		"fractional int": "supplier_id,unit_price,lead_time_days,quoted_margin_pct,quantity,product_type,tier,region,on_time_rate\n1,1.2,5.5,0.2,1000,flyer,A,NL,0.9\n",
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadOffers(strings.NewReader(in), FormatCSV)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestReadOffers_JSONNumericSupplierID(t *testing.T) {
	in := `[{"supplier_id": 17, "unit_price": 1.3, "lead_time_days": 5, "quoted_margin_pct": 0.2,
	         "quantity": 500, "product_type": "poster", "tier": "C", "region": "DE", "on_time_rate": 0.9},
	        {"supplier_id": "S-9", "unit_price": 1.4, "lead_time_days": 6, "quoted_margin_pct": 0.25,
	         "quantity": 500, "product_type": "poster", "tier": "A", "region": "DE", "on_time_rate": 0.93}]`

	offers, err := ReadOffers(strings.NewReader(in), FormatJSON)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, domain.SupplierID("17"), offers[0].SupplierID)
	assert.Equal(t, domain.SupplierID("S-9"), offers[1].SupplierID)

	_, err = ReadOffers(strings.NewReader(`{"offers": 1}`), FormatJSON)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDetectFormat(t *testing.T) {
	f, err := DetectFormat("offers.CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = DetectFormat("/tmp/sample_offers.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = DetectFormat("rfq.pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWriteRankedCSV(t *testing.T) {
	ranked := []domain.ScoredOffer{
		{
			DerivedOffer: domain.DerivedOffer{Offer: domain.Offer{SupplierID: "2", UnitPrice: 1.5, LeadTimeDays: 4, QuotedMarginPct: 0.28}},
			PWin:         0.5,
			Utility:      0.14,
		},
		{
			DerivedOffer: domain.DerivedOffer{Offer: domain.Offer{SupplierID: "1", UnitPrice: 1.3, LeadTimeDays: 5, QuotedMarginPct: 0.2}},
			PWin:         0.4047,
			Utility:      0.08094,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRankedCSV(&buf, ranked))

	want := "Supplier,€ / unit,Lead-time (days),margin %,p(win) %,Utility\n" +
		"2,1.5,4,28.0,50.0,0.140\n" +
		"1,1.3,5,20.0,40.5,0.081\n"
	assert.Equal(t, want, buf.String())
}
