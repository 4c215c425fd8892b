package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/jadehome/seller-console/pkg/types"
)

// SKUPage is a page of SKUs.
type SKUPage struct {
	SKUs   []domain.SKU `json:"skus"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// ListSKUsParams filters ListSKUs.
type ListSKUsParams struct {
	Search   string
	Inactive bool
	HasASIN  *bool
	Limit    int
	Offset   int
}

// ListSKUs returns master-data SKUs matching params.
func (c *Client) ListSKUs(ctx context.Context, params *ListSKUsParams) (*SKUPage, error) {
	q := url.Values{}
	if params != nil {
		if params.Search != "" {
			q.Set("search", params.Search)
		}
		if params.Inactive {
			q.Set("inactive", "true")
		}
		if params.HasASIN != nil {
			q.Set("has_asin", strconv.FormatBool(*params.HasASIN))
		}
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
	}

	var out SKUPage
	if err := c.get(ctx, withQuery("/api/v1/skus", q), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetAttributes replaces the listing attributes of sku in one marketplace.
func (c *Client) SetAttributes(
	ctx context.Context,
	sku, code string,
	attrs map[string]string,
) ([]domain.ProductAttribute, error) {
	body := struct {
		Attributes map[string]string `json:"attributes"`
	}{Attributes: attrs}

	var out []domain.ProductAttribute
	path := "/api/v1/skus/" + url.PathEscape(sku) + "/attributes/" + url.PathEscape(code)
	if err := c.put(ctx, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
