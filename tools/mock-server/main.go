// Package main implements a mock Amazon server for local development. It
// stands in for the LWA token endpoint, the Selling Partner API and the
// Advertising API so seller-console can run without real credentials.
// Point the token_url, endpoint and ads_endpoint settings at it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
)

// refreshTokenRevoked is rejected with invalid_grant to exercise token
// failure paths.
const refreshTokenRevoked = "revoked"

type listing struct {
	sku         string
	asin        string
	productType string
	price       float64
	currency    string
}

type mockAmazon struct {
	logger *slog.Logger
	issued atomic.Int64

	mu       sync.Mutex
	listings map[string]*listing // marketplaceId/sku
	nextASIN int
}

func newMockAmazon(logger *slog.Logger, seedSKUs []string) *mockAmazon {
	m := &mockAmazon{logger: logger, listings: make(map[string]*listing), nextASIN: 1000}
	for _, mp := range []struct{ id, currency string }{
		{"ATVPDKIKX0DER", "USD"},
		{"A2EUQ1WTGCTBG2", "CAD"},
		{"A1F83G8C2ARO7P", "GBP"},
		{"A2VIGQ35RCS4UG", "AED"},
		{"A17E79C6D8DWNP", "SAR"},
	} {
		for i, sku := range seedSKUs {
			m.listings[mp.id+"/"+sku] = &listing{
				sku:         sku,
				asin:        fmt.Sprintf("B0SEED%04d", i),
				productType: "PRODUCT",
				price:       19.99,
				currency:    mp.currency,
			}
		}
	}
	return m
}

func (m *mockAmazon) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/o2/token", m.tokenHandler)
	mux.HandleFunc("GET /orders/v0/orders", m.requireSPToken(m.ordersHandler))
	mux.HandleFunc("GET /listings/2021-08-01/items/{seller}/{sku}", m.requireSPToken(m.getListingHandler))
	mux.HandleFunc("PUT /listings/2021-08-01/items/{seller}/{sku}", m.requireSPToken(m.putListingHandler))
	mux.HandleFunc("PATCH /listings/2021-08-01/items/{seller}/{sku}", m.requireSPToken(m.patchListingHandler))
	mux.HandleFunc("GET /v2/profiles", m.requireAdsToken(m.profilesHandler))
	mux.HandleFunc("POST /sp/campaigns/list", m.requireAdsToken(m.campaignsHandler))
	mux.HandleFunc("POST /sp/campaigns/budget/usage", m.requireAdsToken(m.budgetUsageHandler))
	return requestLogger(m.logger, mux)
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	seed := flag.String("seed-skus", "DEMO-1,DEMO-2", "comma-separated SKUs listed in every marketplace")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var skus []string
	for _, s := range strings.Split(*seed, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skus = append(skus, s)
		}
	}

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Amazon server", "addr", addr, "seed_skus", len(skus))

	srv := &http.Server{
		Addr:         addr,
		Handler:      newMockAmazon(logger, skus).routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func writeSPError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]string{{"code": code, "message": message}},
	})
}

func (m *mockAmazon) requireSPToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-amz-access-token") == "" {
			writeSPError(w, http.StatusForbidden, "Unauthorized", "Access to requested resource is denied.")
			return
		}
		next(w, r)
	}
}

func (m *mockAmazon) requireAdsToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") ||
			r.Header.Get("Amazon-Advertising-API-ClientId") == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"code": "UNAUTHORIZED", "details": "Not authorized to access this advertiser",
			})
			return
		}
		next(w, r)
	}
}

func (m *mockAmazon) tokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}
	if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "Client authentication failed",
		})
		return
	}
	refresh := r.PostForm.Get("refresh_token")
	if r.PostForm.Get("grant_type") != "refresh_token" || refresh == "" || refresh == refreshTokenRevoked {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "invalid_grant",
			"error_description": "The request has an invalid grant parameter : refresh_token",
		})
		return
	}

	n := m.issued.Add(1)
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  "Atza|mock-" + strconv.FormatInt(n, 10),
		"refresh_token": refresh,
		"token_type":    "bearer",
		"expires_in":    3600,
	})
	m.logger.Info("issued mock token", "n", n)
}

func (m *mockAmazon) ordersHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	marketplaceID := q.Get("MarketplaceIds")
	if marketplaceID == "" {
		writeSPError(w, http.StatusBadRequest, "InvalidInput", "MarketplaceIds is required")
		return
	}

	order := func(id, status string) map[string]any {
		return map[string]any{
			"AmazonOrderId":          id,
			"PurchaseDate":           time.Now().UTC().Add(-time.Hour).Format(time.RFC3339),
			"LastUpdateDate":         time.Now().UTC().Format(time.RFC3339),
			"OrderStatus":            status,
			"FulfillmentChannel":     "AFN",
			"NumberOfItemsShipped":   1,
			"NumberOfItemsUnshipped": 0,
			"MarketplaceId":          marketplaceID,
			"OrderTotal":             map[string]string{"CurrencyCode": "USD", "Amount": "19.99"},
		}
	}

	payload := map[string]any{}
	if q.Get("NextToken") == "" {
		payload["Orders"] = []map[string]any{order("113-0000001-0000001", "Shipped"), order("113-0000001-0000002", "Unshipped")}
		payload["NextToken"] = "page-2"
	} else {
		payload["Orders"] = []map[string]any{order("113-0000001-0000003", "Shipped")}
	}
	writeJSON(w, http.StatusOK, map[string]any{"payload": payload})
}

func listingKey(r *http.Request) string {
	return r.URL.Query().Get("marketplaceIds") + "/" + r.PathValue("sku")
}

func (l *listing) attributes() map[string]any {
	return map[string]any{
		"purchasable_offer": []any{map[string]any{
			"currency": l.currency,
			"discounted_price": []any{map[string]any{
				"schedule": []any{map[string]any{"value_with_tax": l.price}},
			}},
		}},
	}
}

func (m *mockAmazon) getListingHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	l, ok := m.listings[listingKey(r)]
	m.mu.Unlock()
	if !ok {
		writeSPError(w, http.StatusNotFound, "NOT_FOUND", "SKU not found in marketplace")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sku": l.sku,
		"summaries": []map[string]any{{
			"marketplaceId": r.URL.Query().Get("marketplaceIds"),
			"asin":          l.asin,
			"productType":   l.productType,
			"status":        []string{"BUYABLE", "DISCOVERABLE"},
		}},
		"attributes": l.attributes(),
	})
}

type submission struct {
	ProductType string           `json:"productType"`
	Attributes  map[string]any   `json:"attributes"`
	Patches     []map[string]any `json:"patches"`
}

func (m *mockAmazon) putListingHandler(w http.ResponseWriter, r *http.Request) {
	var body submission
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductType == "" {
		writeSPError(w, http.StatusBadRequest, "InvalidInput", "productType is required")
		return
	}

	key := listingKey(r)
	m.mu.Lock()
	l, ok := m.listings[key]
	if !ok {
		m.nextASIN++
		l = &listing{sku: r.PathValue("sku"), asin: fmt.Sprintf("B0MOCK%04d", m.nextASIN), currency: "USD"}
		m.listings[key] = l
	}
	l.productType = body.ProductType
	m.mu.Unlock()

	m.writeSubmission(w, r, l)
}

func (m *mockAmazon) patchListingHandler(w http.ResponseWriter, r *http.Request) {
	var body submission
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Patches) == 0 {
		writeSPError(w, http.StatusBadRequest, "InvalidInput", "patches are required")
		return
	}

	m.mu.Lock()
	l, ok := m.listings[listingKey(r)]
	if ok {
		for _, p := range body.Patches {
			if p["path"] == "/attributes/purchasable_offer" {
				if price, found := patchedPrice(p["value"]); found {
					l.price = price
				}
			}
		}
	}
	m.mu.Unlock()
	if !ok {
		writeSPError(w, http.StatusNotFound, "NOT_FOUND", "SKU not found in marketplace")
		return
	}

	m.writeSubmission(w, r, l)
}

// patchedPrice reads value_with_tax from the first discounted price
// schedule of a purchasable_offer patch value.
func patchedPrice(v any) (float64, bool) {
	offers, _ := v.([]any)
	for _, o := range offers {
		offer, _ := o.(map[string]any)
		discounts, _ := offer["discounted_price"].([]any)
		for _, d := range discounts {
			discount, _ := d.(map[string]any)
			schedule, _ := discount["schedule"].([]any)
			for _, s := range schedule {
				entry, _ := s.(map[string]any)
				if price, ok := entry["value_with_tax"].(float64); ok {
					return price, true
				}
			}
		}
	}
	return 0, false
}

func (m *mockAmazon) writeSubmission(w http.ResponseWriter, r *http.Request, l *listing) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sku":          l.sku,
		"status":       "ACCEPTED",
		"submissionId": fmt.Sprintf("mock-%d", time.Now().UnixNano()),
		"issues":       []any{},
		"identifiers": []map[string]string{{
			"marketplaceId": r.URL.Query().Get("marketplaceIds"),
			"asin":          l.asin,
		}},
	})
}

func (m *mockAmazon) profilesHandler(w http.ResponseWriter, _ *http.Request) {
	profiles := []map[string]any{}
	for i, p := range []struct{ country, currency, id string }{
		{"US", "USD", "ATVPDKIKX0DER"},
		{"CA", "CAD", "A2EUQ1WTGCTBG2"},
		{"UK", "GBP", "A1F83G8C2ARO7P"},
		{"AE", "AED", "A2VIGQ35RCS4UG"},
		{"SA", "SAR", "A17E79C6D8DWNP"},
	} {
		profiles = append(profiles, map[string]any{
			"profileId":    1000 + i,
			"countryCode":  p.country,
			"currencyCode": p.currency,
			"timezone":     "UTC",
			"accountInfo": map[string]string{
				"marketplaceStringId": p.id,
				"id":                  "ENTITYMOCK",
				"type":                "seller",
				"name":                "Mock Seller",
			},
		})
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (m *mockAmazon) campaignsHandler(w http.ResponseWriter, r *http.Request) {
	scope := r.Header.Get("Amazon-Advertising-API-Scope")
	writeJSON(w, http.StatusOK, map[string]any{
		"campaigns": []map[string]any{
			{
				"campaignId":    scope + "01",
				"name":          "Auto - Demo",
				"state":         "ENABLED",
				"targetingType": "AUTO",
				"budget":        map[string]any{"budget": 25.0, "budgetType": "DAILY"},
			},
			{
				"campaignId":    scope + "02",
				"name":          "Manual - Demo",
				"state":         "PAUSED",
				"targetingType": "MANUAL",
				"budget":        map[string]any{"budget": 10.0, "budgetType": "DAILY"},
			},
		},
		"totalResults": 2,
	})
}

func (m *mockAmazon) budgetUsageHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CampaignIDs []string `json:"campaignIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "BAD_REQUEST", "details": err.Error()})
		return
	}

	success := []map[string]any{}
	for i, id := range body.CampaignIDs {
		success = append(success, map[string]any{
			"campaignId":            id,
			"budget":                25.0,
			"budgetUsagePercent":    float64((i*37)%100) + 0.5,
			"usageUpdatedTimestamp": time.Now().UTC().Format(time.RFC3339),
			"index":                 i,
		})
	}
	writeJSON(w, http.StatusMultiStatus, map[string]any{"success": success, "error": []any{}})
}
