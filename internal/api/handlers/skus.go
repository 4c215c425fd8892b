package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jadehome/seller-console/internal/console"
	"github.com/jadehome/seller-console/internal/marketplace"
	"github.com/jadehome/seller-console/internal/store"
	domain "github.com/jadehome/seller-console/pkg/types"
)

// SKUsHandler serves master-data SKU endpoints.
type SKUsHandler struct {
	svc *console.Service
}

// NewSKUsHandler creates a new SKUsHandler.
func NewSKUsHandler(svc *console.Service) *SKUsHandler {
	return &SKUsHandler{svc: svc}
}

// ListSKUsInput is the input for listing SKUs with optional filters.
type ListSKUsInput struct {
	Search   string `query:"search"   doc:"Case-insensitive match on SKU code or product name"`
	Inactive bool   `query:"inactive" doc:"Include inactive SKUs"`
	HasASIN  string `query:"has_asin" doc:"Filter by whether an ASIN is known"                 enum:"true,false,"`
	Limit    int    `query:"limit"    doc:"Number of results (default 50)"                      minimum:"0" maximum:"500"`
	Offset   int    `query:"offset"   doc:"Pagination offset"                                   minimum:"0"`
}

// SKUPage is a page of SKUs.
type SKUPage struct {
	SKUs   []domain.SKU `json:"skus"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// SetAttributesInput is the input for upserting per-country listing attributes.
type SetAttributesInput struct {
	SKU         string `path:"sku"         doc:"Seller SKU"`
	Marketplace string `path:"marketplace" doc:"Marketplace code" example:"UK"`
	Body        struct {
		Attributes map[string]string `json:"attributes" doc:"Listing attribute values by key; product_type selects the product type"`
	}
}

// ListSKUs returns SKUs with optional filters and pagination.
func (h *SKUsHandler) ListSKUs(ctx context.Context, input *ListSKUsInput) (*Response[*SKUPage], error) {
	q := &store.SKUQuery{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Search != "" {
		q.Search = &input.Search
	}
	if input.Inactive {
		activeOnly := false
		q.ActiveOnly = &activeOnly
	}
	if input.HasASIN != "" {
		hasASIN := input.HasASIN == "true"
		q.HasASIN = &hasASIN
	}

	skus, total, err := h.svc.SKUs(ctx, q)
	if err != nil {
		return fail[*SKUPage](err), nil
	}
	limit, offset := q.Page()
	return ok(&SKUPage{SKUs: skus, Total: total, Limit: limit, Offset: offset}), nil
}

// SetAttributes upserts listing attributes used when publishing the SKU.
func (h *SKUsHandler) SetAttributes(
	ctx context.Context,
	input *SetAttributesInput,
) (*Response[[]domain.ProductAttribute], error) {
	attrs, err := h.svc.SetAttributes(ctx, marketplace.ParseCode(input.Marketplace), input.SKU, input.Body.Attributes)
	if err != nil {
		return fail[[]domain.ProductAttribute](err), nil
	}
	return ok(attrs), nil
}

// RegisterSKURoutes registers SKU endpoints with the Huma API.
func RegisterSKURoutes(api huma.API, h *SKUsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-skus",
		Method:      http.MethodGet,
		Path:        "/api/v1/skus",
		Summary:     "List SKUs",
		Description: "Returns master-data SKUs with optional search and pagination.",
		Tags:        []string{"skus"},
	}, h.ListSKUs)

	huma.Register(api, huma.Operation{
		OperationID: "set-sku-attributes",
		Method:      http.MethodPut,
		Path:        "/api/v1/skus/{sku}/attributes/{marketplace}",
		Summary:     "Set listing attributes",
		Description: "Upserts per-country listing attributes of the SKU and returns the full attribute set.",
		Tags:        []string{"skus"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.SetAttributes)
}
