package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"quoteOptimizer/business/selection"
	"quoteOptimizer/domain"
	"quoteOptimizer/internal/offerio"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type selectOptions struct {
	model string
	floor float64
	csv   string
	top   int
}

func newSelectCmd() *cobra.Command {
	opts := &selectOptions{}

	cmd := &cobra.Command{
		Use:   "select <offers.csv|offers.json>",
		Short: "Rank an offer table and print the best offer",
		Long: `Scores every offer, keeps those whose quoted margin meets the floor, and
picks the one with the highest p(win) x margin.

Examples:
  quoteopt select --model model.json offers.csv
  quoteopt select --floor 0.25 --csv ranked_offers.csv offers.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.model, "model", "", "estimator artifact (default $MODEL_PATH or model.json)")
	cmd.Flags().Float64Var(&opts.floor, "floor", defaultMarginFloor, "minimum quoted margin (default $MARGIN_FLOOR or 0.20)")
	cmd.Flags().StringVar(&opts.csv, "csv", "", "also write the ranked table to this CSV file")
	cmd.Flags().IntVar(&opts.top, "top", 5, "rows of the ranked table to print (0 prints all)")

	return cmd
}

func runSelect(cmd *cobra.Command, opts *selectOptions, path string) error {
	floor, err := marginFloor(cmd, opts.floor)
	if err != nil {
		return err
	}

	offers, err := readOfferFile(path)
	if err != nil {
		return err
	}

	engine, err := selection.Open(modelPath(opts.model), floor)
	if err != nil {
		return err
	}

	best, ranked, err := engine.SelectBestOffer(offers, floor)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Best offer: supplier %s  p(win) %.3f  margin %.3f  utility %.3f\n\n",
		best.SupplierID, best.PWin, best.MarginPct, best.Utility)

	rows := ranked
	if opts.top > 0 && len(rows) > opts.top {
		rows = rows[:opts.top]
	}
	if err := printRanked(out, rows); err != nil {
		return err
	}

	if opts.csv != "" {
		if err := writeRankedFile(opts.csv, ranked); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nRanked table written to %s\n", opts.csv)
	}

	return nil
}

func readOfferFile(path string) ([]domain.Offer, error) {
	format, err := offerio.DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open offers: %w", err)
	}
	defer f.Close()

	return offerio.ReadOffers(f, format)
}

func writeRankedFile(path string, ranked []domain.ScoredOffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := offerio.WriteRankedCSV(f, ranked); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printRanked(w io.Writer, rows []domain.ScoredOffer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSUPPLIER\t€ / UNIT\tLEAD (DAYS)\tMARGIN %\tP(WIN) %\tUTILITY\t")
	for _, r := range rows {
		mark := ""
		if r.Selected {
			mark = "*"
		} else if !r.Eligible {
			mark = "below floor"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			r.Rank,
			r.SupplierID,
			decimal.NewFromFloat(r.UnitPrice).StringFixed(2),
			r.LeadTimeDays,
			decimal.NewFromFloat(r.QuotedMarginPct*100).StringFixed(1),
			decimal.NewFromFloat(r.PWin*100).StringFixed(1),
			decimal.NewFromFloat(r.Utility).StringFixed(3),
			mark,
		)
	}
	return tw.Flush()
}
