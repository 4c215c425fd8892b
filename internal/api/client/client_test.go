package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/fanout"
	"github.com/jadehome/seller-console/internal/marketplace"
	domain "github.com/jadehome/seller-console/pkg/types"
)

// envelopeServer answers every request with the given status and envelope,
// after running check against the request.
func envelopeServer(
	t *testing.T,
	status int,
	body map[string]any,
	check func(r *http.Request),
) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		assert.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListMarketplaces(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	srv := envelopeServer(t, http.StatusBadRequest, map[string]any{
		"success": false,
		"data":    nil,
		"message": `marketplace "DE": unknown marketplace`,
	}, nil)

	_, err := New(srv.URL).ListCampaigns(context.Background(), "DE")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, `marketplace "DE": unknown marketplace`, apiErr.Message)
	assert.Contains(t, err.Error(), "API error (HTTP 400)")
}

func TestClient_NonJSONError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Quota(context.Background())
	require.Error(t, err)
	assert.Equal(t, "API error (HTTP 502): upstream unavailable", err.Error())
}

func TestClient_ListMarketplaces(t *testing.T) {
	t.Parallel()

	srv := envelopeServer(t, http.StatusOK, map[string]any{
		"success": true,
		"data": []map[string]string{
			{"id": "US", "name": "United States", "currency": "USD"},
			{"id": "UK", "name": "United Kingdom", "currency": "GBP"},
		},
	}, func(r *http.Request) {
		assert.Equal(t, "/api/v1/marketplaces", r.URL.Path)
	})

	got, err := New(srv.URL).ListMarketplaces(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, marketplace.UK, got[1].ID)
	assert.Equal(t, "GBP", got[1].Currency)
}

func TestClient_ListOrders(t *testing.T) {
	t.Parallel()

	after := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	srv := envelopeServer(t, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"orders": []map[string]any{{"AmazonOrderId": "113-1", "OrderStatus": "Shipped"}},
		},
	}, func(r *http.Request) {
		assert.Equal(t, "/api/v1/orders/CA", r.URL.Path)
		assert.Equal(t, "2026-03-01T00:00:00Z", r.URL.Query().Get("created_after"))
		assert.Equal(t, "Shipped,Unshipped", r.URL.Query().Get("status"))
		assert.Equal(t, "2", r.URL.Query().Get("max_pages"))
		assert.Empty(t, r.URL.Query().Get("created_before"))
	})

	page, err := New(srv.URL).ListOrders(context.Background(), "CA", &ListOrdersParams{
		CreatedAfter: after,
		Statuses:     []string{"Shipped", "Unshipped"},
		MaxPages:     2,
	})
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, "113-1", page.Orders[0].AmazonOrderID)
}

func TestClient_AllPrices(t *testing.T) {
	t.Parallel()

	srv := envelopeServer(t, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"US": map[string]any{"status": "success", "data": map[string]any{"amount": 19.99, "currency_code": "USD"}},
			"UK": map[string]any{"status": "not_listed", "error": "token", "token_error": true},
		},
	}, func(r *http.Request) {
		assert.Equal(t, "/api/v1/prices/LT-1", r.URL.Path)
		assert.Equal(t, "US,UK", r.URL.Query().Get("marketplaces"))
	})

	got, err := New(srv.URL).AllPrices(context.Background(), "LT-1", []string{"US", "UK"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[marketplace.US].Data)
	assert.InDelta(t, 19.99, got[marketplace.US].Data.Amount, 0.001)
	assert.Equal(t, fanout.StatusNotListed, got[marketplace.UK].Status)
	assert.True(t, got[marketplace.UK].TokenError)
}

func TestClient_SetPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    map[string]any
		wantErr bool
	}{
		{
			name:   "accepted",
			status: http.StatusOK,
			body: map[string]any{
				"success": true,
				"data": map[string]any{
					"submission": map[string]any{"sku": "LT-1", "status": "ACCEPTED", "submissionId": "s1"},
					"change":     map[string]any{"id": "c1", "status": "accepted"},
				},
			},
		},
		{
			name:   "rejected keeps data",
			status: http.StatusOK,
			body: map[string]any{
				"success": false,
				"message": "submission rejected: INVALID",
				"data": map[string]any{
					"submission": map[string]any{"sku": "LT-1", "status": "INVALID", "submissionId": "s1"},
					"change":     map[string]any{"id": "c1", "status": "rejected"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := envelopeServer(t, tt.status, tt.body, func(r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/v1/prices/US/LT-1", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var req SetPriceRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.InDelta(t, 24.5, req.Price, 0)
			})

			got, err := New(srv.URL).SetPrice(context.Background(), "US", "LT-1", &SetPriceRequest{Price: 24.5})
			if tt.wantErr {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, "submission rejected: INVALID", apiErr.Message)
				assert.Equal(t, domain.PriceChangeRejected, got.Change.Status)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Submission.Accepted())
			assert.Equal(t, "c1", got.Change.ID)
		})
	}
}

func TestClient_BudgetUsage(t *testing.T) {
	t.Parallel()

	srv := envelopeServer(t, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"US": map[string]any{"status": "success", "data": map[string]any{
				"success": []map[string]any{{"campaignId": "c1", "budgetUsagePercent": 42.5, "index": 0}},
				"error":   []map[string]any{},
			}},
		},
	}, func(r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body struct {
			Campaigns map[string][]string `json:"campaigns"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"c1"}, body.Campaigns["US"])
	})

	got, err := New(srv.URL).BudgetUsage(context.Background(), map[string][]string{"US": {"c1"}})
	require.NoError(t, err)
	require.NotNil(t, got[marketplace.US].Data)
	assert.InDelta(t, 42.5, got[marketplace.US].Data.Success[0].BudgetUsagePercent, 0)
}

func TestClient_PatchListing(t *testing.T) {
	t.Parallel()

	srv := envelopeServer(t, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]any{"sku": "LT-1", "status": "ACCEPTED", "submissionId": "s2"},
	}, func(r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/listings/AE/LT-1", r.URL.Path)
	})

	got, err := New(srv.URL).PatchListing(context.Background(), "AE", "LT-1", "LAPTOP",
		[]amazon.PatchOperation{{Op: "replace", Path: "/attributes/item_name", Value: "New"}})
	require.NoError(t, err)
	assert.Equal(t, "s2", got.SubmissionID)
}

func TestClient_ListSKUs(t *testing.T) {
	t.Parallel()

	hasASIN := false
	srv := envelopeServer(t, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]any{"skus": []map[string]any{{"sku_code": "LT-1"}}, "total": 1, "limit": 10},
	}, func(r *http.Request) {
		assert.Equal(t, "/api/v1/skus", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("has_asin"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
	})

	page, err := New(srv.URL).ListSKUs(context.Background(), &ListSKUsParams{HasASIN: &hasASIN, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "LT-1", page.SKUs[0].Code)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
