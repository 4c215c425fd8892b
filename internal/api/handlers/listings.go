package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/console"
	"github.com/jadehome/seller-console/internal/marketplace"
)

// ListingsHandler handles listing status and mutation endpoints.
type ListingsHandler struct {
	svc *console.Service
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(svc *console.Service) *ListingsHandler {
	return &ListingsHandler{svc: svc}
}

// --- Input/Output types ---

// ListingBoardInput is the input for the all-SKU listing status board.
type ListingBoardInput struct {
	Marketplaces string `query:"marketplaces" doc:"Comma-separated marketplace codes; defaults to all" example:"US,CA"`
}

// PublishListingInput is the input for publishing a listing from master data.
type PublishListingInput struct {
	Marketplace string `path:"marketplace" doc:"Marketplace code" example:"UK"`
	SKU         string `path:"sku"         doc:"Seller SKU"`
}

// PatchListingInput is the input for patching listing attributes.
type PatchListingInput struct {
	Marketplace string `path:"marketplace" doc:"Marketplace code" example:"US"`
	SKU         string `path:"sku"         doc:"Seller SKU"`
	Body        struct {
		ProductType string                  `json:"product_type,omitempty" doc:"Listing product type; looked up from the listing when empty"`
		Patches     []amazon.PatchOperation `json:"patches"                doc:"JSON Patch operations on listing attributes"            minItems:"1"`
	}
}

// --- Handlers ---

// ListingBoard returns the listing status of every active SKU.
func (h *ListingsHandler) ListingBoard(
	ctx context.Context,
	input *ListingBoardInput,
) (*Response[[]console.BoardRow], error) {
	codes, err := h.svc.Registry().ParseCodes(input.Marketplaces)
	if err != nil {
		return fail[[]console.BoardRow](err), nil
	}
	rows, err := h.svc.ListingBoard(ctx, codes)
	if err != nil {
		return fail[[]console.BoardRow](err), nil
	}
	return ok(rows), nil
}

// PublishListing creates or replaces a listing from the SKU's master data.
func (h *ListingsHandler) PublishListing(
	ctx context.Context,
	input *PublishListingInput,
) (*Response[*amazon.ListingSubmission], error) {
	sub, err := h.svc.Publish(ctx, marketplace.ParseCode(input.Marketplace), input.SKU)
	if err != nil {
		return fail[*amazon.ListingSubmission](err), nil
	}
	return submitted(sub), nil
}

// PatchListing applies JSON patches to a listing.
func (h *ListingsHandler) PatchListing(
	ctx context.Context,
	input *PatchListingInput,
) (*Response[*amazon.ListingSubmission], error) {
	sub, err := h.svc.Patch(ctx, marketplace.ParseCode(input.Marketplace), input.SKU, input.Body.ProductType, input.Body.Patches)
	if err != nil {
		return fail[*amazon.ListingSubmission](err), nil
	}
	return submitted(sub), nil
}

// submitted reports a rejected submission as success=false with its issues
// in data.
func submitted(sub *amazon.ListingSubmission) *Response[*amazon.ListingSubmission] {
	resp := ok(sub)
	if !sub.Accepted() {
		resp.Body.Success = false
		resp.Body.Message = "submission status " + sub.Status
	}
	return resp
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-listing-board",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/status",
		Summary:     "Get listing status of all SKUs",
		Description: "Checks every active SKU in every requested marketplace and reports listed flag, price and errors.",
		Tags:        []string{"listings"},
	}, h.ListingBoard)

	huma.Register(api, huma.Operation{
		OperationID: "publish-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/{marketplace}/{sku}/publish",
		Summary:     "Publish a listing",
		Description: "Creates or replaces the listing from the SKU's dimensions, weight, battery data and per-country attributes.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusGatewayTimeout},
	}, h.PublishListing)

	huma.Register(api, huma.Operation{
		OperationID: "patch-listing",
		Method:      http.MethodPatch,
		Path:        "/api/v1/listings/{marketplace}/{sku}",
		Summary:     "Patch a listing",
		Description: "Applies JSON Patch operations to listing attributes. The call is not retried.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusBadRequest, http.StatusGatewayTimeout},
	}, h.PatchListing)
}
