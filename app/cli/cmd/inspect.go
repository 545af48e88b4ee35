package cmd

import (
	"fmt"

	"quoteOptimizer/business/estimator"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInspectCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print estimator artifact metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := estimator.Load(modelPath(model))
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(p.Info()); err != nil {
				return fmt.Errorf("encode estimator info: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "estimator artifact (default $MODEL_PATH or model.json)")

	return cmd
}
