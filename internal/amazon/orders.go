package amazon

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jadehome/seller-console/internal/marketplace"
)

// DefaultMaxOrderPages caps NextToken pagination when OrdersQuery.MaxPages
// is zero.
const DefaultMaxOrderPages = 10

type ordersResponse struct {
	Payload struct {
		Orders    []Order `json:"Orders"`
		NextToken string  `json:"NextToken"`
	} `json:"payload"`
}

// ListOrders returns orders created in the query window, following
// NextToken up to MaxPages pages. Requests are SigV4-signed.
func (c *Client) ListOrders(ctx context.Context, code marketplace.Code, q OrdersQuery) (*OrdersPage, error) {
	cfg, err := c.registry.Resolve(code)
	if err != nil {
		return nil, err
	}

	after := q.CreatedAfter
	if after.IsZero() {
		now := c.nowFunc().UTC()
		after = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	maxPages := q.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxOrderPages
	}

	page := &OrdersPage{Orders: []Order{}}
	next := ""
	for i := 0; i < maxPages; i++ {
		query := url.Values{"MarketplaceIds": {cfg.MarketplaceID}}
		if next != "" {
			// A NextToken request carries the original filters implicitly.
			query.Set("NextToken", next)
		} else {
			query.Set("CreatedAfter", after.UTC().Format(time.RFC3339))
			if !q.CreatedBefore.IsZero() {
				query.Set("CreatedBefore", q.CreatedBefore.UTC().Format(time.RFC3339))
			}
			if len(q.OrderStatuses) > 0 {
				query.Set("OrderStatuses", strings.Join(q.OrderStatuses, ","))
			}
		}

		var resp ordersResponse
		err := c.do(ctx, code, call{
			api:        spAPI,
			operation:  "list_orders",
			method:     http.MethodGet,
			path:       "/orders/v0/orders",
			query:      query,
			sign:       true,
			idempotent: true,
		}, &resp)
		if err != nil {
			return nil, err
		}

		page.Orders = append(page.Orders, resp.Payload.Orders...)
		next = resp.Payload.NextToken
		if next == "" {
			break
		}
	}
	page.NextToken = next
	return page, nil
}
