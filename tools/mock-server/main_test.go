package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newMockAmazon(testLogger(), []string{"DEMO-1"}).routes())
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, target, body string, header map[string]string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 && data[0] == '{' {
		require.NoError(t, json.Unmarshal(data, &out))
	}
	return resp.StatusCode, out
}

var spHeader = map[string]string{"x-amz-access-token": "Atza|test"}

func TestTokenHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantError  string
	}{
		{
			name: "issues token",
			form: url.Values{
				"grant_type": {"refresh_token"}, "refresh_token": {"Atzr|x"},
				"client_id": {"id"}, "client_secret": {"secret"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "revoked refresh token",
			form: url.Values{
				"grant_type": {"refresh_token"}, "refresh_token": {refreshTokenRevoked},
				"client_id": {"id"}, "client_secret": {"secret"},
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_grant",
		},
		{
			name:       "missing client credentials",
			form:       url.Values{"grant_type": {"refresh_token"}, "refresh_token": {"Atzr|x"}},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid_client",
		},
	}

	srv := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, body := doRequest(t, http.MethodPost, srv.URL+"/auth/o2/token", tt.form.Encode(),
				map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
				return
			}
			assert.True(t, strings.HasPrefix(body["access_token"].(string), "Atza|mock-"))
			assert.InDelta(t, 3600, body["expires_in"], 0)
		})
	}
}

func TestOrdersHandler_Paginates(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	status, first := doRequest(t, http.MethodGet,
		srv.URL+"/orders/v0/orders?MarketplaceIds=ATVPDKIKX0DER", "", spHeader)
	require.Equal(t, http.StatusOK, status)
	payload := first["payload"].(map[string]any)
	assert.Len(t, payload["Orders"], 2)
	assert.Equal(t, "page-2", payload["NextToken"])

	_, second := doRequest(t, http.MethodGet,
		srv.URL+"/orders/v0/orders?MarketplaceIds=ATVPDKIKX0DER&NextToken=page-2", "", spHeader)
	payload = second["payload"].(map[string]any)
	assert.Len(t, payload["Orders"], 1)
	assert.Nil(t, payload["NextToken"])
}

func TestOrdersHandler_RequiresToken(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	status, _ := doRequest(t, http.MethodGet,
		srv.URL+"/orders/v0/orders?MarketplaceIds=ATVPDKIKX0DER", "", nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestListingLifecycle(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	base := srv.URL + "/listings/2021-08-01/items/A1SELLER/"

	status, _ := doRequest(t, http.MethodGet, base+"NEW-1?marketplaceIds=A1F83G8C2ARO7P", "", spHeader)
	assert.Equal(t, http.StatusNotFound, status)

	status, put := doRequest(t, http.MethodPut, base+"NEW-1?marketplaceIds=A1F83G8C2ARO7P",
		`{"productType":"LAPTOP","attributes":{}}`, spHeader)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ACCEPTED", put["status"])
	ids := put["identifiers"].([]any)
	require.Len(t, ids, 1)
	asin := ids[0].(map[string]any)["asin"]
	assert.NotEmpty(t, asin)

	status, _ = doRequest(t, http.MethodPatch, base+"NEW-1?marketplaceIds=A1F83G8C2ARO7P",
		`{"productType":"LAPTOP","patches":[{"op":"replace","path":"/attributes/purchasable_offer",`+
			`"value":[{"discounted_price":[{"schedule":[{"value_with_tax":42.5}]}]}]}]}`, spHeader)
	require.Equal(t, http.StatusOK, status)

	status, got := doRequest(t, http.MethodGet, base+"NEW-1?marketplaceIds=A1F83G8C2ARO7P", "", spHeader)
	require.Equal(t, http.StatusOK, status)
	summary := got["summaries"].([]any)[0].(map[string]any)
	assert.Equal(t, asin, summary["asin"])
	assert.Equal(t, "LAPTOP", summary["productType"])
	assert.InDelta(t, 42.5, price(t, got), 0)
}

func TestGetListing_Seeded(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	status, got := doRequest(t, http.MethodGet,
		srv.URL+"/listings/2021-08-01/items/A1SELLER/DEMO-1?marketplaceIds=A17E79C6D8DWNP", "", spHeader)
	require.Equal(t, http.StatusOK, status)
	assert.InDelta(t, 19.99, price(t, got), 0)
}

func TestAdsHandlers(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	header := map[string]string{
		"Authorization":                   "Bearer Atza|test",
		"Amazon-Advertising-API-ClientId": "ads-client",
		"Amazon-Advertising-API-Scope":    "1002",
	}

	status, campaigns := doRequest(t, http.MethodPost, srv.URL+"/sp/campaigns/list", `{}`, header)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, campaigns["campaigns"], 2)

	status, usage := doRequest(t, http.MethodPost, srv.URL+"/sp/campaigns/budget/usage",
		`{"campaignIds":["100201","100202"]}`, header)
	require.Equal(t, http.StatusMultiStatus, status)
	assert.Len(t, usage["success"], 2)

	status, _ = doRequest(t, http.MethodGet, srv.URL+"/v2/profiles", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func price(t *testing.T, listing map[string]any) float64 {
	t.Helper()
	attrs := listing["attributes"].(map[string]any)
	offer := attrs["purchasable_offer"].([]any)[0].(map[string]any)
	discount := offer["discounted_price"].([]any)[0].(map[string]any)
	entry := discount["schedule"].([]any)[0].(map[string]any)
	return entry["value_with_tax"].(float64)
}
