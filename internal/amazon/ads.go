package amazon

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jadehome/seller-console/internal/marketplace"
)

const (
	campaignMediaType    = "application/vnd.spCampaign.v3+json"
	budgetUsageMediaType = "application/vnd.spcampaignbudgetusage.v1+json"

	campaignPageSize    = 100
	maxCampaignPages    = 50
	budgetUsageMaxBatch = 100
)

type stateFilter struct {
	Include []string `json:"include"`
}

type listCampaignsRequest struct {
	StateFilter stateFilter `json:"stateFilter"`
	MaxResults  int         `json:"maxResults"`
	NextToken   string      `json:"nextToken,omitempty"`
}

type listCampaignsResponse struct {
	Campaigns    []Campaign `json:"campaigns"`
	NextToken    string     `json:"nextToken"`
	TotalResults int        `json:"totalResults"`
}

// ListCampaigns returns the enabled and paused Sponsored Products
// campaigns of code's advertising profile.
func (c *Client) ListCampaigns(ctx context.Context, code marketplace.Code) ([]Campaign, error) {
	profileID, err := c.ProfileID(ctx, code)
	if err != nil {
		return nil, err
	}

	campaigns := []Campaign{}
	next := ""
	for range maxCampaignPages {
		var resp listCampaignsResponse
		err := c.do(ctx, code, call{
			api:         adsAPI,
			operation:   "list_campaigns",
			method:      http.MethodPost,
			path:        "/sp/campaigns/list",
			contentType: campaignMediaType,
			body: listCampaignsRequest{
				StateFilter: stateFilter{Include: []string{"ENABLED", "PAUSED"}},
				MaxResults:  campaignPageSize,
				NextToken:   next,
			},
			idempotent: true,
			profileID:  profileID,
		}, &resp)
		if err != nil {
			return nil, err
		}

		campaigns = append(campaigns, resp.Campaigns...)
		next = resp.NextToken
		if next == "" {
			return campaigns, nil
		}
	}

	c.logger.Warn("campaign list truncated", "marketplace", code, "pages", maxCampaignPages)
	return campaigns, nil
}

type budgetUsageRequest struct {
	CampaignIDs []string `json:"campaignIds"`
}

// GetCampaignBudgetUsage returns current budget usage for campaignIDs.
// Large inputs are split into provider-sized batches; indexes in the
// result refer to positions in campaignIDs.
func (c *Client) GetCampaignBudgetUsage(
	ctx context.Context,
	code marketplace.Code,
	campaignIDs []string,
) (*BudgetUsageResult, error) {
	if len(campaignIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one campaign id is required", ErrInvalidRequest)
	}
	profileID, err := c.ProfileID(ctx, code)
	if err != nil {
		return nil, err
	}

	out := &BudgetUsageResult{Success: []BudgetUsage{}, Error: []BudgetUsageError{}}
	for offset := 0; offset < len(campaignIDs); offset += budgetUsageMaxBatch {
		batch := campaignIDs[offset:min(offset+budgetUsageMaxBatch, len(campaignIDs))]

		var resp BudgetUsageResult
		err := c.do(ctx, code, call{
			api:         adsAPI,
			operation:   "campaign_budget_usage",
			method:      http.MethodPost,
			path:        "/sp/campaigns/budget/usage",
			contentType: budgetUsageMediaType,
			body:        budgetUsageRequest{CampaignIDs: batch},
			idempotent:  true,
			profileID:   profileID,
		}, &resp)
		if err != nil {
			return nil, err
		}

		for _, s := range resp.Success {
			s.Index += offset
			out.Success = append(out.Success, s)
		}
		for _, e := range resp.Error {
			e.Index += offset
			out.Error = append(out.Error, e)
		}
	}
	return out, nil
}
