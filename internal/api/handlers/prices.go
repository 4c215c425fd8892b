package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/console"
	"github.com/jadehome/seller-console/internal/fanout"
	"github.com/jadehome/seller-console/internal/marketplace"
	domain "github.com/jadehome/seller-console/pkg/types"
)

// PricesHandler serves listing price lookups and updates.
type PricesHandler struct {
	svc *console.Service
}

// NewPricesHandler creates a new PricesHandler.
func NewPricesHandler(svc *console.Service) *PricesHandler {
	return &PricesHandler{svc: svc}
}

// --- Input/Output types ---

// GetPriceInput is the input for a single-marketplace price lookup.
type GetPriceInput struct {
	Marketplace string `path:"marketplace" doc:"Marketplace code" example:"US"`
	SKU         string `path:"sku"         doc:"Seller SKU"`
}

// AllPricesInput is the input for the all-marketplace price lookup.
type AllPricesInput struct {
	SKU          string `path:"sku"           doc:"Seller SKU"`
	Marketplaces string `query:"marketplaces" doc:"Comma-separated marketplace codes; defaults to all" example:"US,UK"`
}

// SetPriceInput is the input for submitting a new price.
type SetPriceInput struct {
	Marketplace string `path:"marketplace" doc:"Marketplace code" example:"US"`
	SKU         string `path:"sku"         doc:"Seller SKU"`
	Body        struct {
		Price       float64    `json:"price"                  doc:"New discounted price in the marketplace currency" example:"19.99" exclusiveMinimum:"0"`
		ValidFrom   *time.Time `json:"valid_from,omitempty"   doc:"Start of the price window; defaults to now"`
		ValidTo     *time.Time `json:"valid_to,omitempty"     doc:"End of the price window; defaults to 30 days after the start"`
		ProductType string     `json:"product_type,omitempty" doc:"Listing product type; looked up from the listing when empty"`
	}
}

// SetPriceResult is the data of a price submission.
type SetPriceResult struct {
	Submission *amazon.ListingSubmission `json:"submission,omitempty"`
	Change     *domain.PriceChange       `json:"change,omitempty"`
}

// PriceHistoryInput is the input for the price change history.
type PriceHistoryInput struct {
	SKU   string `path:"sku"    doc:"Seller SKU"`
	Limit int    `query:"limit" doc:"Number of changes (default 20)" minimum:"0" maximum:"500"`
}

// --- Handlers ---

// GetPrice returns the price of a SKU in one marketplace.
func (h *PricesHandler) GetPrice(ctx context.Context, input *GetPriceInput) (*Response[*amazon.ListingStatus], error) {
	status, err := h.svc.ListingStatus(ctx, marketplace.ParseCode(input.Marketplace), input.SKU)
	if err != nil {
		return fail[*amazon.ListingStatus](err), nil
	}
	if !status.IsListed {
		resp := ok(&status)
		resp.Body.Message = "sku not listed"
		return resp, nil
	}
	return ok(&status), nil
}

// AllPrices looks up the price of a SKU in every requested marketplace.
// Per-marketplace failures are reported in the result, never as an error.
func (h *PricesHandler) AllPrices(
	ctx context.Context,
	input *AllPricesInput,
) (*Response[fanout.Result[amazon.Price]], error) {
	codes, err := h.svc.Registry().ParseCodes(input.Marketplaces)
	if err != nil {
		return fail[fanout.Result[amazon.Price]](err), nil
	}
	return ok(h.svc.Prices(ctx, input.SKU, codes)), nil
}

// SetPrice submits a new price. The submission is not retried; the outcome
// is recorded in the price change history.
func (h *PricesHandler) SetPrice(ctx context.Context, input *SetPriceInput) (*Response[*SetPriceResult], error) {
	u := amazon.PriceUpdate{
		Amount:      input.Body.Price,
		ProductType: input.Body.ProductType,
	}
	if input.Body.ValidFrom != nil {
		u.ValidFrom = *input.Body.ValidFrom
	}
	if input.Body.ValidTo != nil {
		u.ValidTo = *input.Body.ValidTo
	}

	sub, change, err := h.svc.SetPrice(ctx, marketplace.ParseCode(input.Marketplace), input.SKU, u)
	if err != nil {
		resp := fail[*SetPriceResult](err)
		if change != nil {
			resp.Body.Data = &SetPriceResult{Change: change}
		}
		return resp, nil
	}

	resp := ok(&SetPriceResult{Submission: sub, Change: change})
	if !sub.Accepted() {
		resp.Body.Success = false
		resp.Body.Message = "submission rejected: " + change.Error
	}
	return resp, nil
}

// PriceHistory returns the recorded price changes of a SKU, newest first.
func (h *PricesHandler) PriceHistory(
	ctx context.Context,
	input *PriceHistoryInput,
) (*Response[[]domain.PriceChange], error) {
	changes, err := h.svc.PriceHistory(ctx, input.SKU, input.Limit)
	if err != nil {
		return fail[[]domain.PriceChange](err), nil
	}
	return ok(changes), nil
}

// RegisterPriceRoutes registers price endpoints with the Huma API.
func RegisterPriceRoutes(api huma.API, h *PricesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-price",
		Method:      http.MethodGet,
		Path:        "/api/v1/prices/{marketplace}/{sku}",
		Summary:     "Get a listing price",
		Description: "Returns whether the SKU is listed in the marketplace and its effective price.",
		Tags:        []string{"prices"},
		Errors:      []int{http.StatusBadRequest, http.StatusGatewayTimeout},
	}, h.GetPrice)

	huma.Register(api, huma.Operation{
		OperationID: "get-all-prices",
		Method:      http.MethodGet,
		Path:        "/api/v1/prices/{sku}",
		Summary:     "Get a listing price in every marketplace",
		Description: "Looks up the SKU in all requested marketplaces concurrently and reports a per-marketplace outcome.",
		Tags:        []string{"prices"},
	}, h.AllPrices)

	huma.Register(api, huma.Operation{
		OperationID: "set-price",
		Method:      http.MethodPost,
		Path:        "/api/v1/prices/{marketplace}/{sku}",
		Summary:     "Set a listing price",
		Description: "Submits a discounted price schedule for the listing. The call is not retried.",
		Tags:        []string{"prices"},
		Errors:      []int{http.StatusBadRequest, http.StatusGatewayTimeout},
	}, h.SetPrice)

	huma.Register(api, huma.Operation{
		OperationID: "get-price-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/price-history/{sku}",
		Summary:     "Get price change history",
		Description: "Returns recorded price submissions for the SKU, newest first.",
		Tags:        []string{"prices"},
	}, h.PriceHistory)
}
