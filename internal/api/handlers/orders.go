package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/console"
	"github.com/jadehome/seller-console/internal/marketplace"
)

// OrdersHandler serves the orders endpoint.
type OrdersHandler struct {
	svc *console.Service
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(svc *console.Service) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// ListOrdersInput is the input for listing orders of one marketplace.
type ListOrdersInput struct {
	Marketplace   string `path:"marketplace"     doc:"Marketplace code"                                           example:"US"`
	CreatedAfter  string `query:"created_after"  doc:"RFC 3339 time or YYYY-MM-DD date; defaults to today (UTC)"`
	CreatedBefore string `query:"created_before" doc:"RFC 3339 time or YYYY-MM-DD date"`
	Status        string `query:"status"         doc:"Comma-separated order statuses"                             example:"Unshipped,Shipped"`
	MaxPages      int    `query:"max_pages"      doc:"Maximum NextToken pages to follow"                          minimum:"0" maximum:"50"`
}

// ListOrders returns the orders of one marketplace.
func (h *OrdersHandler) ListOrders(
	ctx context.Context,
	input *ListOrdersInput,
) (*Response[*amazon.OrdersPage], error) {
	q := amazon.OrdersQuery{
		OrderStatuses: splitCSV(input.Status),
		MaxPages:      input.MaxPages,
	}

	var err error
	if q.CreatedAfter, err = parseTimeParam("created_after", input.CreatedAfter); err != nil {
		return fail[*amazon.OrdersPage](err), nil
	}
	if q.CreatedBefore, err = parseTimeParam("created_before", input.CreatedBefore); err != nil {
		return fail[*amazon.OrdersPage](err), nil
	}

	page, err := h.svc.Orders(ctx, marketplace.ParseCode(input.Marketplace), q)
	if err != nil {
		return fail[*amazon.OrdersPage](err), nil
	}
	return ok(page), nil
}

// parseTimeParam accepts an RFC 3339 timestamp or a bare date. Empty input
// yields the zero time.
func parseTimeParam(name, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC 3339 or YYYY-MM-DD, got %q", amazon.ErrInvalidRequest, name, v)
	}
	return t, nil
}

// RegisterOrderRoutes registers the orders endpoint with the Huma API.
func RegisterOrderRoutes(api huma.API, h *OrdersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-orders",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders/{marketplace}",
		Summary:     "List orders",
		Description: "Returns the orders of one marketplace created in the given window, following pagination.",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusBadRequest, http.StatusGatewayTimeout},
	}, h.ListOrders)
}
