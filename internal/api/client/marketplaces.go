package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/marketplace"
)

// ListMarketplaces returns the configured marketplaces.
func (c *Client) ListMarketplaces(ctx context.Context) ([]marketplace.Summary, error) {
	var out []marketplace.Summary
	if err := c.get(ctx, "/api/v1/marketplaces", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Quota returns the daily request quota of every marketplace.
func (c *Client) Quota(ctx context.Context) ([]amazon.Quota, error) {
	var out []amazon.Quota
	if err := c.get(ctx, "/api/v1/quota", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListOrdersParams filters ListOrders.
type ListOrdersParams struct {
	CreatedAfter  time.Time
	CreatedBefore time.Time
	Statuses      []string
	MaxPages      int
}

// ListOrders returns orders of one marketplace.
func (c *Client) ListOrders(
	ctx context.Context,
	code string,
	params *ListOrdersParams,
) (*amazon.OrdersPage, error) {
	q := url.Values{}
	if params != nil {
		if !params.CreatedAfter.IsZero() {
			q.Set("created_after", params.CreatedAfter.Format(time.RFC3339))
		}
		if !params.CreatedBefore.IsZero() {
			q.Set("created_before", params.CreatedBefore.Format(time.RFC3339))
		}
		if len(params.Statuses) > 0 {
			q.Set("status", strings.Join(params.Statuses, ","))
		}
		if params.MaxPages > 0 {
			q.Set("max_pages", strconv.Itoa(params.MaxPages))
		}
	}

	var out amazon.OrdersPage
	if err := c.get(ctx, withQuery("/api/v1/orders/"+url.PathEscape(code), q), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func codesQuery(codes []string) url.Values {
	q := url.Values{}
	if len(codes) > 0 {
		q.Set("marketplaces", strings.Join(codes, ","))
	}
	return q
}
