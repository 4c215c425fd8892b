package amazon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jadehome/seller-console/internal/marketplace"
)

// ErrInvalidRequest reports caller input the provider would reject.
var ErrInvalidRequest = errors.New("invalid request")

const purchasableOfferPath = "/attributes/purchasable_offer"

// DefaultPriceValidity is how long a submitted price stays valid when the
// update has no ValidTo.
const DefaultPriceValidity = 30 * 24 * time.Hour

func (c *Client) listingPath(cfg marketplace.Config, sku string) (string, error) {
	if cfg.SellerID == "" {
		return "", &marketplace.ConfigurationError{Code: cfg.Code, Reason: "seller_id is required for listings"}
	}
	if sku == "" {
		return "", fmt.Errorf("%w: sku is required", ErrInvalidRequest)
	}
	return "/listings/2021-08-01/items/" + url.PathEscape(cfg.SellerID) + "/" + url.PathEscape(sku), nil
}

// GetListing fetches the listing for sku with summaries and attributes. A
// 404 is reported as ErrNotListed.
func (c *Client) GetListing(ctx context.Context, code marketplace.Code, sku string) (*Listing, error) {
	cfg, err := c.registry.Resolve(code)
	if err != nil {
		return nil, err
	}
	path, err := c.listingPath(cfg, sku)
	if err != nil {
		return nil, err
	}

	var l Listing
	err = c.do(ctx, code, call{
		api:       spAPI,
		operation: "get_listing",
		method:    http.MethodGet,
		path:      path,
		query: url.Values{
			"marketplaceIds": {cfg.MarketplaceID},
			"includedData":   {"summaries,attributes"},
		},
		idempotent: true,
	}, &l)

	var provErr *ProviderRequestError
	if errors.As(err, &provErr) && provErr.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("listing %s in %s: %w", sku, code, ErrNotListed)
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CheckListingStatus reports whether sku is listed in code and at what
// price. A missing listing is not an error. Token failures surface as
// *TokenAcquisitionError so the caller decides how to present them.
func (c *Client) CheckListingStatus(ctx context.Context, code marketplace.Code, sku string) (ListingStatus, error) {
	cfg, err := c.registry.Resolve(code)
	if err != nil {
		return ListingStatus{}, err
	}

	l, err := c.GetListing(ctx, code, sku)
	if errors.Is(err, ErrNotListed) {
		return ListingStatus{IsListed: false, Price: Price{CurrencyCode: cfg.Currency}}, nil
	}
	if err != nil {
		return ListingStatus{}, err
	}

	st := ListingStatus{
		IsListed: true,
		Price:    ExtractPrice(l.Attributes, cfg.Currency),
	}
	if s, ok := l.summaryFor(cfg.MarketplaceID); ok {
		st.ASIN = s.ASIN
		st.ProductType = s.ProductType
	}
	return st, nil
}

// GetListingPrice returns the effective price of sku. When the SKU is not
// listed it returns a zero price in the marketplace currency together with
// an error wrapping ErrNotListed.
func (c *Client) GetListingPrice(ctx context.Context, code marketplace.Code, sku string) (Price, error) {
	st, err := c.CheckListingStatus(ctx, code, sku)
	if err != nil {
		return Price{}, err
	}
	if !st.IsListed {
		return st.Price, fmt.Errorf("price of %s in %s: %w", sku, code, ErrNotListed)
	}
	return st.Price, nil
}

type patchRequest struct {
	ProductType string           `json:"productType"`
	Patches     []PatchOperation `json:"patches"`
}

// SetListingPrice replaces the purchasable offer of sku with a
// discounted-price schedule. It is never retried automatically.
func (c *Client) SetListingPrice(
	ctx context.Context,
	code marketplace.Code,
	sku string,
	u PriceUpdate,
) (*ListingSubmission, error) {
	cfg, err := c.registry.Resolve(code)
	if err != nil {
		return nil, err
	}
	if u.Amount <= 0 {
		return nil, fmt.Errorf("%w: price must be positive, got %v", ErrInvalidRequest, u.Amount)
	}

	start := u.ValidFrom
	if start.IsZero() {
		start = c.nowFunc()
	}
	end := u.ValidTo
	if end.IsZero() {
		end = start.Add(DefaultPriceValidity)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: valid_to must be after valid_from", ErrInvalidRequest)
	}

	schedule := map[string]any{
		"value_with_tax": u.Amount,
		"start_at":       start.UTC().Format(time.RFC3339),
		"end_at":         end.UTC().Format(time.RFC3339),
	}

	offer := map[string]any{
		"marketplace_id": cfg.MarketplaceID,
		"currency":       cfg.Currency,
		"discounted_price": []any{
			map[string]any{"schedule": []any{schedule}},
		},
	}

	return c.PatchListing(ctx, code, sku, u.ProductType, []PatchOperation{
		{Op: "replace", Path: purchasableOfferPath, Value: []any{offer}},
	})
}

// PatchListing applies patches to sku. productType is looked up from the
// listing when empty.
func (c *Client) PatchListing(
	ctx context.Context,
	code marketplace.Code,
	sku, productType string,
	patches []PatchOperation,
) (*ListingSubmission, error) {
	cfg, err := c.registry.Resolve(code)
	if err != nil {
		return nil, err
	}
	path, err := c.listingPath(cfg, sku)
	if err != nil {
		return nil, err
	}
	if len(patches) == 0 {
		return nil, fmt.Errorf("%w: at least one patch is required", ErrInvalidRequest)
	}
	if productType == "" {
		productType, err = c.lookupProductType(ctx, cfg, sku)
		if err != nil {
			return nil, err
		}
	}

	var sub ListingSubmission
	err = c.do(ctx, code, call{
		api:       spAPI,
		operation: "patch_listing",
		method:    http.MethodPatch,
		path:      path,
		query: url.Values{
			"marketplaceIds": {cfg.MarketplaceID},
			"includedData":   {"issues"},
		},
		body: patchRequest{ProductType: productType, Patches: patches},
	}, &sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// PublishListing creates or fully replaces the listing for sku.
func (c *Client) PublishListing(
	ctx context.Context,
	code marketplace.Code,
	sku string,
	body ListingPut,
) (*ListingSubmission, error) {
	cfg, err := c.registry.Resolve(code)
	if err != nil {
		return nil, err
	}
	path, err := c.listingPath(cfg, sku)
	if err != nil {
		return nil, err
	}
	if body.ProductType == "" {
		return nil, fmt.Errorf("%w: product type is required", ErrInvalidRequest)
	}

	var sub ListingSubmission
	err = c.do(ctx, code, call{
		api:       spAPI,
		operation: "put_listing",
		method:    http.MethodPut,
		path:      path,
		query: url.Values{
			"marketplaceIds": {cfg.MarketplaceID},
			"includedData":   {"issues,identifiers"},
		},
		body: body,
	}, &sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) lookupProductType(ctx context.Context, cfg marketplace.Config, sku string) (string, error) {
	l, err := c.GetListing(ctx, cfg.Code, sku)
	if err != nil {
		return "", fmt.Errorf("looking up product type: %w", err)
	}
	s, ok := l.summaryFor(cfg.MarketplaceID)
	if !ok || s.ProductType == "" {
		return "", fmt.Errorf("%w: listing %s in %s has no product type", ErrInvalidRequest, sku, cfg.Code)
	}
	return s.ProductType, nil
}

// ExtractPrice finds the effective price in listing attributes. It takes
// the first value_with_tax of the first purchasable offer carrying a
// discounted-price schedule, in the offer's currency or fallbackCurrency.
// Without such an offer the price is zero in fallbackCurrency.
func ExtractPrice(attrs map[string]any, fallbackCurrency string) Price {
	offers, _ := attrs["purchasable_offer"].([]any)
	for _, o := range offers {
		offer, ok := o.(map[string]any)
		if !ok {
			continue
		}
		discounts, _ := offer["discounted_price"].([]any)
		for _, d := range discounts {
			discount, ok := d.(map[string]any)
			if !ok {
				continue
			}
			schedule, _ := discount["schedule"].([]any)
			if len(schedule) == 0 {
				continue
			}
			entry, _ := schedule[0].(map[string]any)

			currency, _ := offer["currency"].(string)
			if currency == "" {
				currency = fallbackCurrency
			}
			return Price{Amount: toFloat(entry["value_with_tax"]), CurrencyCode: currency}
		}
	}
	return Price{Amount: 0, CurrencyCode: fallbackCurrency}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err == nil {
			return f
		}
	}
	return 0
}
