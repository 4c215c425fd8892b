package client

import (
	"context"
	"net/url"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/fanout"
)

// ListCampaigns returns the campaigns of one marketplace.
func (c *Client) ListCampaigns(ctx context.Context, code string) ([]amazon.Campaign, error) {
	var out []amazon.Campaign
	if err := c.get(ctx, "/api/v1/campaigns/"+url.PathEscape(code), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllCampaigns returns campaigns in every requested marketplace.
func (c *Client) AllCampaigns(
	ctx context.Context,
	codes []string,
) (fanout.Result[[]amazon.Campaign], error) {
	var out fanout.Result[[]amazon.Campaign]
	if err := c.get(ctx, withQuery("/api/v1/campaigns", codesQuery(codes)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BudgetUsage reports budget usage for campaigns keyed by marketplace code.
// A nil map covers every campaign in every marketplace.
func (c *Client) BudgetUsage(
	ctx context.Context,
	campaigns map[string][]string,
) (fanout.Result[amazon.BudgetUsageResult], error) {
	body := struct {
		Campaigns map[string][]string `json:"campaigns,omitempty"`
	}{Campaigns: campaigns}

	var out fanout.Result[amazon.BudgetUsageResult]
	if err := c.post(ctx, "/api/v1/campaigns/budget-usage", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
