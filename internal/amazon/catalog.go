package amazon

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jadehome/seller-console/internal/marketplace"
)

// GetCatalogItem fetches the catalog record of asin in code's marketplace.
func (c *Client) GetCatalogItem(ctx context.Context, code marketplace.Code, asin string) (*CatalogItem, error) {
	cfg, err := c.registry.Resolve(code)
	if err != nil {
		return nil, err
	}

	var item CatalogItem
	err = c.do(ctx, code, call{
		api:       spAPI,
		operation: "get_catalog_item",
		method:    http.MethodGet,
		path:      "/catalog/2022-04-01/items/" + url.PathEscape(asin),
		query: url.Values{
			"marketplaceIds": {cfg.MarketplaceID},
			"includedData":   {"summaries,attributes"},
		},
		sign:       true,
		idempotent: true,
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
