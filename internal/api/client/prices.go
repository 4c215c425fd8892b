package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/fanout"
	domain "github.com/jadehome/seller-console/pkg/types"
)

// SetPriceRequest is the body of a price submission.
type SetPriceRequest struct {
	Price       float64    `json:"price"`
	ValidFrom   *time.Time `json:"valid_from,omitempty"`
	ValidTo     *time.Time `json:"valid_to,omitempty"`
	ProductType string     `json:"product_type,omitempty"`
}

// PriceSubmission is the outcome of SetPrice.
type PriceSubmission struct {
	Submission *amazon.ListingSubmission `json:"submission,omitempty"`
	Change     *domain.PriceChange       `json:"change,omitempty"`
}

func pricePath(code, sku string) string {
	return "/api/v1/prices/" + url.PathEscape(code) + "/" + url.PathEscape(sku)
}

// GetPrice returns the listing status and price of sku in one marketplace.
func (c *Client) GetPrice(ctx context.Context, code, sku string) (*amazon.ListingStatus, error) {
	var out amazon.ListingStatus
	if err := c.get(ctx, pricePath(code, sku), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllPrices returns the price of sku in every requested marketplace. An
// empty codes list means all of them.
func (c *Client) AllPrices(
	ctx context.Context,
	sku string,
	codes []string,
) (fanout.Result[amazon.Price], error) {
	var out fanout.Result[amazon.Price]
	path := withQuery("/api/v1/prices/"+url.PathEscape(sku), codesQuery(codes))
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetPrice submits a new price. A rejected submission returns both the
// decoded result and an *APIError.
func (c *Client) SetPrice(
	ctx context.Context,
	code, sku string,
	req *SetPriceRequest,
) (*PriceSubmission, error) {
	var out PriceSubmission
	err := c.post(ctx, pricePath(code, sku), req, &out)
	return &out, err
}

// PriceHistory returns the most recent price changes of sku.
func (c *Client) PriceHistory(ctx context.Context, sku string, limit int) ([]domain.PriceChange, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out []domain.PriceChange
	if err := c.get(ctx, withQuery("/api/v1/price-history/"+url.PathEscape(sku), q), &out); err != nil {
		return nil, err
	}
	return out, nil
}
