// Package cmd holds the quoteopt commands.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultMarginFloor = 0.20

var verbose bool

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quoteopt",
		Short: "Supplier offer selection for RFQs",
		Long: `quoteopt scores supplier offers with a trained win-probability artifact
and picks the one with the highest expected margin above a margin floor.

Commands:
    select      rank an offer table (CSV or JSON) and print the best offer
    inspect     print metadata of an estimator artifact
    token       issue a bearer token for the history endpoints
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newSelectCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newTokenCmd())

	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func initConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && verbose {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: .env file not found, using environment variables")
	}
	return nil
}

// modelPath resolves --model, then MODEL_PATH, then model.json.
func modelPath(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("MODEL_PATH"); env != "" {
		return env
	}
	return "model.json"
}

func marginFloor(cmd *cobra.Command, flag float64) (float64, error) {
	if cmd.Flags().Changed("floor") {
		return flag, nil
	}
	env := os.Getenv("MARGIN_FLOOR")
	if env == "" {
		return defaultMarginFloor, nil
	}
	f, err := strconv.ParseFloat(env, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid MARGIN_FLOOR: %w", err)
	}
	return f, nil
}
