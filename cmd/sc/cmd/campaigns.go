package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jadehome/seller-console/internal/marketplace"
)

func campaignsCmd() *cobra.Command {
	campaignsRoot := &cobra.Command{
		Use:   "campaigns",
		Short: "Report Sponsored Products campaigns",
	}

	campaignsRoot.AddCommand(
		campaignsListCmd(),
		campaignsBudgetCmd(),
	)
	return campaignsRoot
}

func campaignsListCmd() *cobra.Command {
	var marketplaces string

	cmd := &cobra.Command{
		Use:   "list [marketplace]",
		Short: "List enabled and paused campaigns",
		Example: `  # Every marketplace
  sc campaigns list

  # One marketplace
  sc campaigns list UK`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				campaigns, err := c.ListCampaigns(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(out, campaigns)
				}
				return printCampaigns(out, marketplace.ParseCode(args[0]), campaigns)
			}

			res, err := c.AllCampaigns(cmd.Context(), marketplaceList(marketplaces))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(out, res)
			}
			return printAllCampaigns(out, res)
		},
	}

	cmd.Flags().StringVar(&marketplaces, "marketplaces", "", "comma-separated marketplace codes (default all)")
	return cmd
}

func campaignsBudgetCmd() *cobra.Command {
	var selectors []string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show campaign budget usage",
		Long: "Show how much of its budget each campaign has spent. Select campaigns\n" +
			"with --campaign CODE or --campaign CODE=ID; a bare code covers every\n" +
			"campaign of that marketplace. Without --campaign all marketplaces are shown.",
		Example: `  sc campaigns budget
  sc campaigns budget --campaign US=123456789 --campaign UK`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			campaigns, err := parseCampaignSelectors(selectors)
			if err != nil {
				return err
			}

			res, err := newClient().BudgetUsage(cmd.Context(), campaigns)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printBudgetUsage(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringArrayVar(&selectors, "campaign", nil, "CODE or CODE=CAMPAIGN_ID (repeatable)")
	return cmd
}

// parseCampaignSelectors turns CODE and CODE=ID flags into the budget-usage
// request map. A nil map selects every marketplace.
func parseCampaignSelectors(selectors []string) (map[string][]string, error) {
	if len(selectors) == 0 {
		return nil, nil
	}
	out := make(map[string][]string, len(selectors))
	for _, s := range selectors {
		code, id, hasID := strings.Cut(s, "=")
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			return nil, fmt.Errorf("invalid --campaign %q: missing marketplace code", s)
		}
		if _, ok := out[code]; !ok {
			out[code] = []string{}
		}
		if id = strings.TrimSpace(id); hasID && id != "" {
			out[code] = append(out[code], id)
		}
	}
	return out, nil
}
