// Package offerio reads offer batches from uploaded tables and renders the
// ranked result for download.
package offerio

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"quoteOptimizer/domain"

	"github.com/shopspring/decimal"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

var offerColumns = []string{
	"supplier_id",
	"unit_price",
	"lead_time_days",
	"quoted_margin_pct",
	"quantity",
	"product_type",
	"tier",
	"region",
	"on_time_rate",
}

// DetectFormat picks the format from a file name extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unsupported offer file %q (want .csv or .json)", domain.ErrInvalidInput, filename)
	}
}

// ReadOffers parses a batch of offers. Parse failures wrap domain.ErrInvalidInput.
func ReadOffers(r io.Reader, format Format) ([]domain.Offer, error) {
	switch format {
	case FormatJSON:
		return readJSON(r)
	case FormatCSV:
		return readCSV(r)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", domain.ErrInvalidInput, format)
	}
}

func readJSON(r io.Reader) ([]domain.Offer, error) {
	var offers []domain.Offer
	if err := json.NewDecoder(r).Decode(&offers); err != nil {
		return nil, fmt.Errorf("%w: decode offers: %v", domain.ErrInvalidInput, err)
	}
	return offers, nil
}

func readCSV(r io.Reader) ([]domain.Offer, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: offer table is empty", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: read header: %v", domain.ErrInvalidInput, err)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, name := range offerColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", domain.ErrInvalidInput, name)
		}
	}

	var offers []domain.Offer
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidInput, line, err)
		}

		o, err := parseRecord(rec, col)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidInput, line, err)
		}
		offers = append(offers, o)
	}

	return offers, nil
}

func parseRecord(rec []string, col map[string]int) (domain.Offer, error) {
	field := func(name string) string { return strings.TrimSpace(rec[col[name]]) }

	var (
		o   domain.Offer
		err error
	)
	o.SupplierID = domain.SupplierID(field("supplier_id"))
	o.ProductType = field("product_type")
	o.Tier = field("tier")
	o.Region = field("region")

	if o.UnitPrice, err = parseFloat("unit_price", field("unit_price")); err != nil {
		return o, err
	}
	if o.QuotedMarginPct, err = parseFloat("quoted_margin_pct", field("quoted_margin_pct")); err != nil {
		return o, err
	}
	if o.OnTimeRate, err = parseFloat("on_time_rate", field("on_time_rate")); err != nil {
		return o, err
	}
	if o.LeadTimeDays, err = parseInt("lead_time_days", field("lead_time_days")); err != nil {
		return o, err
	}
	if o.Quantity, err = parseInt("quantity", field("quantity")); err != nil {
		return o, err
	}

	return o, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return v, nil
}

// parseInt also accepts integral floats such as "1000.0", which spreadsheet
// exports produce.
func parseInt(name, s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%s: %q is not an integer", name, s)
	}
	return int(f), nil
}

// RankedHeader are the columns of the downloadable ranked table.
var RankedHeader = []string{"Supplier", "€ / unit", "Lead-time (days)", "margin %", "p(win) %", "Utility"}

// WriteRankedCSV writes the ranked table in display units: percentages with
// one decimal and utility with three.
func WriteRankedCSV(w io.Writer, ranked []domain.ScoredOffer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RankedHeader); err != nil {
		return err
	}

	hundred := decimal.NewFromInt(100)
	for _, o := range ranked {
		row := []string{
			string(o.SupplierID),
			strconv.FormatFloat(o.UnitPrice, 'f', -1, 64),
			strconv.Itoa(o.LeadTimeDays),
			decimal.NewFromFloat(o.QuotedMarginPct).Mul(hundred).StringFixed(1),
			decimal.NewFromFloat(o.PWin).Mul(hundred).StringFixed(1),
			decimal.NewFromFloat(o.Utility).StringFixed(3),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
