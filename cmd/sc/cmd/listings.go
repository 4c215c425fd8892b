package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jadehome/seller-console/internal/amazon"
	apiclient "github.com/jadehome/seller-console/internal/api/client"
	"github.com/jadehome/seller-console/internal/marketplace"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Inspect and publish listings",
	}

	listingsRoot.AddCommand(
		listingsBoardCmd(),
		listingsPublishCmd(),
		listingsPatchCmd(),
	)
	return listingsRoot
}

func listingsBoardCmd() *cobra.Command {
	var marketplaces string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the listing status of every active SKU",
		Long: "Show, for every active SKU, whether it is listed in each marketplace\n" +
			"and at what price. Marketplaces whose token could not be acquired show\n" +
			"as token? instead of failing the board.",
		Example: `  sc listings board
  sc listings board --marketplaces US,CA`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			codes := marketplaceList(marketplaces)

			rows, err := c.ListingBoard(cmd.Context(), codes)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), rows)
			}

			columns := make([]marketplace.Code, 0, len(codes))
			for _, code := range codes {
				columns = append(columns, marketplace.ParseCode(code))
			}
			if len(columns) == 0 {
				mps, err := c.ListMarketplaces(cmd.Context())
				if err != nil {
					return err
				}
				for _, m := range mps {
					columns = append(columns, m.ID)
				}
			}
			return printBoard(cmd.OutOrStdout(), rows, columns)
		},
	}

	cmd.Flags().StringVar(&marketplaces, "marketplaces", "", "comma-separated marketplace codes (default all)")
	return cmd
}

func listingsPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <marketplace> <sku>",
		Short: "Create a listing from the stored SKU attributes",
		Example: `  sc listings publish SA LT-2024-WW`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := newClient().PublishListing(cmd.Context(), args[0], args[1])
			var apiErr *apiclient.APIError
			if err != nil && (!errors.As(err, &apiErr) || sub.SubmissionID == "") {
				return err
			}
			if jsonOutput() {
				if jerr := outputJSON(cmd.OutOrStdout(), sub); jerr != nil {
					return jerr
				}
				return err
			}
			if perr := printSubmission(cmd.OutOrStdout(), sub); perr != nil {
				return perr
			}
			return err
		},
	}
}

func listingsPatchCmd() *cobra.Command {
	var (
		sets        []string
		deletes     []string
		productType string
	)

	cmd := &cobra.Command{
		Use:   "patch <marketplace> <sku>",
		Short: "Replace or delete individual listing attributes",
		Example: `  sc listings patch UK LT-2024-WW --set item_name="Acme Laptop 14"
  sc listings patch US LT-2024-WW --delete bullet_point`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patches, err := buildPatches(sets, deletes)
			if err != nil {
				return err
			}

			sub, err := newClient().PatchListing(cmd.Context(), args[0], args[1], productType, patches)
			var apiErr *apiclient.APIError
			if err != nil && (!errors.As(err, &apiErr) || sub.SubmissionID == "") {
				return err
			}
			if jsonOutput() {
				if jerr := outputJSON(cmd.OutOrStdout(), sub); jerr != nil {
					return jerr
				}
				return err
			}
			if perr := printSubmission(cmd.OutOrStdout(), sub); perr != nil {
				return perr
			}
			return err
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "attribute=value to replace (repeatable)")
	cmd.Flags().StringArrayVar(&deletes, "delete", nil, "attribute to delete (repeatable)")
	cmd.Flags().StringVar(&productType, "product-type", "", "listing product type (looked up when empty)")
	return cmd
}

func buildPatches(sets, deletes []string) ([]amazon.PatchOperation, error) {
	patches := make([]amazon.PatchOperation, 0, len(sets)+len(deletes))
	for _, kv := range sets {
		k, v, ok := strings.Cut(kv, "=")
		if k = strings.TrimSpace(k); !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q: want attribute=value", kv)
		}
		patches = append(patches, amazon.PatchOperation{
			Op:    "replace",
			Path:  "/attributes/" + k,
			Value: []map[string]string{{"value": v}},
		})
	}
	for _, k := range deletes {
		if k = strings.TrimSpace(k); k == "" {
			return nil, errors.New("invalid --delete: empty attribute name")
		}
		patches = append(patches, amazon.PatchOperation{Op: "delete", Path: "/attributes/" + k})
	}
	if len(patches) == 0 {
		return nil, errors.New("nothing to patch: pass --set or --delete")
	}
	return patches, nil
}
