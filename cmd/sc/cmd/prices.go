package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/jadehome/seller-console/internal/api/client"
)

func pricesCmd() *cobra.Command {
	pricesRoot := &cobra.Command{
		Use:   "prices",
		Short: "Check and set listing prices",
		Long: "Look up the current price of a SKU in one or every marketplace,\n" +
			"submit a new price and review the price change history.",
	}

	pricesRoot.AddCommand(
		pricesGetCmd(),
		pricesSetCmd(),
		pricesHistoryCmd(),
	)
	return pricesRoot
}

func pricesGetCmd() *cobra.Command {
	var (
		code         string
		marketplaces string
	)

	cmd := &cobra.Command{
		Use:   "get <sku>",
		Short: "Show the price of a SKU",
		Example: `  # Every marketplace
  sc prices get LT-2024-WW

  # One marketplace, with listing details
  sc prices get LT-2024-WW --marketplace UK`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			out := cmd.OutOrStdout()

			if code != "" {
				st, err := c.GetPrice(cmd.Context(), code, args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(out, st)
				}
				return printListingStatus(out, code, args[0], st)
			}

			res, err := c.AllPrices(cmd.Context(), args[0], marketplaceList(marketplaces))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(out, res)
			}
			return printPrices(out, res)
		},
	}

	cmd.Flags().StringVarP(&code, "marketplace", "m", "", "single marketplace code")
	cmd.Flags().StringVar(&marketplaces, "marketplaces", "", "comma-separated marketplace codes (default all)")
	return cmd
}

func pricesSetCmd() *cobra.Command {
	var (
		validFor    time.Duration
		productType string
	)

	cmd := &cobra.Command{
		Use:   "set <marketplace> <sku> <price>",
		Short: "Submit a new price",
		Long: "Submit a new discounted price for a listing. The price takes effect\n" +
			"immediately and stays valid for --valid-for (default 30 days).",
		Example: `  sc prices set US LT-2024-WW 24.99
  sc prices set AE LT-2024-WW 89 --valid-for 168h`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[2], 64)
			if err != nil || price <= 0 {
				return fmt.Errorf("invalid price %q: must be a positive number", args[2])
			}

			req := &apiclient.SetPriceRequest{Price: price, ProductType: productType}
			if validFor > 0 {
				from := time.Now().UTC()
				to := from.Add(validFor)
				req.ValidFrom, req.ValidTo = &from, &to
			}

			res, err := newClient().SetPrice(cmd.Context(), args[0], args[1], req)
			var apiErr *apiclient.APIError
			if err != nil && !errors.As(err, &apiErr) {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				if jerr := outputJSON(out, res); jerr != nil {
					return jerr
				}
				return err
			}
			if res.Submission != nil {
				if perr := printSubmission(out, res.Submission); perr != nil {
					return perr
				}
			}
			return err
		},
	}

	cmd.Flags().DurationVar(&validFor, "valid-for", 0, "how long the price stays valid (0 uses the server default of 30 days)")
	cmd.Flags().StringVar(&productType, "product-type", "", "listing product type (looked up when empty)")
	return cmd
}

func pricesHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "history <sku>",
		Short:   "Show recent price changes of a SKU",
		Example: `  sc prices history LT-2024-WW --limit 50`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changes, err := newClient().PriceHistory(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), changes)
			}
			if len(changes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No price changes recorded.")
				return nil
			}
			return printPriceHistory(cmd.OutOrStdout(), changes)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of changes to show")
	return cmd
}
