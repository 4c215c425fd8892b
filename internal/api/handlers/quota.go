package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/console"
	"github.com/jadehome/seller-console/internal/marketplace"
)

// MarketplacesHandler serves the marketplace list and API quota endpoints.
type MarketplacesHandler struct {
	svc *console.Service
}

// NewMarketplacesHandler creates a new MarketplacesHandler.
func NewMarketplacesHandler(svc *console.Service) *MarketplacesHandler {
	return &MarketplacesHandler{svc: svc}
}

// ListMarketplaces returns the configured marketplaces.
func (h *MarketplacesHandler) ListMarketplaces(
	_ context.Context,
	_ *struct{},
) (*Response[[]marketplace.Summary], error) {
	return ok(h.svc.Marketplaces()), nil
}

// GetQuota returns the per-marketplace daily API usage.
func (h *MarketplacesHandler) GetQuota(_ context.Context, _ *struct{}) (*Response[[]amazon.Quota], error) {
	return ok(h.svc.Quotas()), nil
}

// RegisterMarketplaceRoutes registers the marketplace and quota endpoints with the Huma API.
func RegisterMarketplaceRoutes(api huma.API, h *MarketplacesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-marketplaces",
		Method:      http.MethodGet,
		Path:        "/api/v1/marketplaces",
		Summary:     "List marketplaces",
		Description: "Returns the configured marketplaces with their display name and currency.",
		Tags:        []string{"marketplaces"},
	}, h.ListMarketplaces)

	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get Amazon API quota status",
		Description: "Returns the daily API call usage, remaining quota, and window reset time per marketplace.",
		Tags:        []string{"marketplaces"},
	}, h.GetQuota)
}
