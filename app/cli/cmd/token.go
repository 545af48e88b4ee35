package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"quoteOptimizer/pkg/utils"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		user string
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token signed with $JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return errors.New("--user is required")
			}

			token, err := utils.GenerateJWT(os.Getenv("JWT_SECRET"), user, role, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "analyst id carried in the token")
	cmd.Flags().StringVar(&role, "role", "ANALYST", "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
