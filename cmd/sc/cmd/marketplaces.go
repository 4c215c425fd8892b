package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/jadehome/seller-console/internal/api/client"
)

func marketplacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "marketplaces",
		Short: "List configured marketplaces",
		Example: `  sc marketplaces
  sc marketplaces --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mps, err := newClient().ListMarketplaces(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), mps)
			}
			return printMarketplaces(cmd.OutOrStdout(), mps)
		},
	}
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show daily API quota usage per marketplace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			quotas, err := newClient().Quota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), quotas)
			}
			return printQuota(cmd.OutOrStdout(), quotas)
		},
	}
}

func ordersCmd() *cobra.Command {
	var (
		since    time.Duration
		statuses []string
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "orders <marketplace>",
		Short: "List recent orders of one marketplace",
		Long: "List orders created in one marketplace. Without --since the server\n" +
			"returns orders created since the start of the current UTC day.",
		Example: `  # Today's orders in the US
  sc orders US

  # Unshipped UK orders from the last three days
  sc orders UK --since 72h --status Unshipped,PartiallyShipped`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &apiclient.ListOrdersParams{Statuses: statuses, MaxPages: maxPages}
			if since > 0 {
				params.CreatedAfter = time.Now().Add(-since)
			}

			page, err := newClient().ListOrders(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), page)
			}
			if len(page.Orders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No orders found.")
				return nil
			}
			if err := printOrders(cmd.OutOrStdout(), page.Orders); err != nil {
				return err
			}
			if page.NextToken != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "\nMore orders available; raise --max-pages to fetch them.")
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&since, "since", 0, "only orders created within this duration")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "order statuses to include")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "maximum result pages to fetch")
	return cmd
}
