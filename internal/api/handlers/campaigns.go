package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/console"
	"github.com/jadehome/seller-console/internal/fanout"
	"github.com/jadehome/seller-console/internal/marketplace"
)

// CampaignsHandler serves Sponsored Products campaign endpoints.
type CampaignsHandler struct {
	svc *console.Service
}

// NewCampaignsHandler creates a new CampaignsHandler.
func NewCampaignsHandler(svc *console.Service) *CampaignsHandler {
	return &CampaignsHandler{svc: svc}
}

// ListCampaignsInput is the input for a single-marketplace campaign list.
type ListCampaignsInput struct {
	Marketplace string `path:"marketplace" doc:"Marketplace code" example:"US"`
}

// AllCampaignsInput is the input for the all-marketplace campaign list.
type AllCampaignsInput struct {
	Marketplaces string `query:"marketplaces" doc:"Comma-separated marketplace codes; defaults to all" example:"US,UK"`
}

// BudgetUsageInput is the input for the budget-usage fan-out.
type BudgetUsageInput struct {
	Body struct {
		Campaigns map[string][]string `json:"campaigns,omitempty" doc:"Campaign IDs per marketplace code; an empty list means every campaign. Omit for all marketplaces."`
	} `required:"false"`
}

// ListCampaigns returns the enabled and paused campaigns of one marketplace.
func (h *CampaignsHandler) ListCampaigns(
	ctx context.Context,
	input *ListCampaignsInput,
) (*Response[[]amazon.Campaign], error) {
	campaigns, err := h.svc.Campaigns(ctx, marketplace.ParseCode(input.Marketplace))
	if err != nil {
		return fail[[]amazon.Campaign](err), nil
	}
	return ok(campaigns), nil
}

// AllCampaigns lists campaigns in every requested marketplace.
func (h *CampaignsHandler) AllCampaigns(
	ctx context.Context,
	input *AllCampaignsInput,
) (*Response[fanout.Result[[]amazon.Campaign]], error) {
	codes, err := h.svc.Registry().ParseCodes(input.Marketplaces)
	if err != nil {
		return fail[fanout.Result[[]amazon.Campaign]](err), nil
	}
	return ok(h.svc.AllCampaigns(ctx, codes)), nil
}

// BudgetUsage reports campaign budget usage per marketplace.
func (h *CampaignsHandler) BudgetUsage(
	ctx context.Context,
	input *BudgetUsageInput,
) (*Response[fanout.Result[amazon.BudgetUsageResult]], error) {
	ids := make(map[marketplace.Code][]string, len(input.Body.Campaigns))
	for raw, campaignIDs := range input.Body.Campaigns {
		code := marketplace.ParseCode(raw)
		if _, err := h.svc.Registry().Resolve(code); err != nil {
			return fail[fanout.Result[amazon.BudgetUsageResult]](err), nil
		}
		ids[code] = append(ids[code], campaignIDs...)
	}
	return ok(h.svc.BudgetUsage(ctx, ids)), nil
}

// RegisterCampaignRoutes registers campaign endpoints with the Huma API.
func RegisterCampaignRoutes(api huma.API, h *CampaignsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-campaigns",
		Method:      http.MethodGet,
		Path:        "/api/v1/campaigns/{marketplace}",
		Summary:     "List campaigns",
		Description: "Returns the enabled and paused Sponsored Products campaigns of one marketplace.",
		Tags:        []string{"campaigns"},
		Errors:      []int{http.StatusBadRequest, http.StatusGatewayTimeout},
	}, h.ListCampaigns)

	huma.Register(api, huma.Operation{
		OperationID: "list-all-campaigns",
		Method:      http.MethodGet,
		Path:        "/api/v1/campaigns",
		Summary:     "List campaigns in every marketplace",
		Description: "Lists campaigns in all requested marketplaces concurrently and reports a per-marketplace outcome.",
		Tags:        []string{"campaigns"},
	}, h.AllCampaigns)

	huma.Register(api, huma.Operation{
		OperationID: "campaign-budget-usage",
		Method:      http.MethodPost,
		Path:        "/api/v1/campaigns/budget-usage",
		Summary:     "Get campaign budget usage",
		Description: "Reports current spend against budget for the given campaigns in each marketplace.",
		Tags:        []string{"campaigns"},
	}, h.BudgetUsage)
}
