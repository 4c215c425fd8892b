package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/jadehome/seller-console/internal/api/client"
)

func skusCmd() *cobra.Command {
	skusRoot := &cobra.Command{
		Use:   "skus",
		Short: "Browse SKU master data",
	}

	skusRoot.AddCommand(
		skusListCmd(),
		skusAttrsCmd(),
	)
	return skusRoot
}

func skusListCmd() *cobra.Command {
	var (
		search   string
		inactive bool
		hasASIN  string
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List SKUs",
		Example: `  sc skus list --search laptop
  sc skus list --has-asin=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &apiclient.ListSKUsParams{
				Search:   search,
				Inactive: inactive,
				Limit:    limit,
				Offset:   offset,
			}
			if hasASIN != "" {
				v, err := strconv.ParseBool(hasASIN)
				if err != nil {
					return fmt.Errorf("invalid --has-asin %q", hasASIN)
				}
				params.HasASIN = &v
			}

			page, err := newClient().ListSKUs(cmd.Context(), params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), page)
			}
			if len(page.SKUs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No SKUs found.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Showing %d of %d SKUs\n\n", len(page.SKUs), page.Total)
			return printSKUs(cmd.OutOrStdout(), page.SKUs)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match on SKU code or product name")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "include inactive SKUs")
	cmd.Flags().StringVar(&hasASIN, "has-asin", "", "filter by whether an ASIN is known (true, false)")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	return cmd
}

func skusAttrsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-attrs <sku> <marketplace> key=value...",
		Short: "Replace the listing attributes of a SKU in one marketplace",
		Example: `  sc skus set-attrs LT-2024-WW UK product_type=LAPTOP brand=Acme item_name="Acme Laptop"`,
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs := make(map[string]string, len(args)-2)
			for _, kv := range args[2:] {
				k, v, ok := strings.Cut(kv, "=")
				if !ok || strings.TrimSpace(k) == "" {
					return fmt.Errorf("invalid attribute %q: want key=value", kv)
				}
				attrs[strings.TrimSpace(k)] = v
			}

			saved, err := newClient().SetAttributes(cmd.Context(), args[0], args[1], attrs)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), saved)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d attributes for %s in %s.\n",
				len(saved), args[0], strings.ToUpper(args[1]))
			return nil
		},
	}
}
