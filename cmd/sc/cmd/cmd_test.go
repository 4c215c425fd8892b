package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadehome/seller-console/internal/amazon"
)

// runSC executes a fresh command tree against srv and returns stdout.
// Commands share viper state, so these tests do not run in parallel.
func runSC(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--server", srv.URL, "--output", "table"}, args...))
	err := root.Execute()
	return out.String(), err
}

// apiServer serves one canned envelope per path.
func apiServer(t *testing.T, routes map[string]map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Not Found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestMarketplacesCommand(t *testing.T) {
	srv := apiServer(t, map[string]map[string]any{
		"GET /api/v1/marketplaces": {
			"success": true,
			"data": []map[string]any{
				{"id": "US", "name": "United States", "currency": "USD"},
				{"id": "AE", "name": "United Arab Emirates", "currency": "AED"},
			},
		},
	})

	out, err := runSC(t, srv, "marketplaces")
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "United Arab Emirates")
	assert.Contains(t, out, "AED")
}

func TestPricesGetAllCommand(t *testing.T) {
	srv := apiServer(t, map[string]map[string]any{
		"GET /api/v1/prices/LT-1": {
			"success": true,
			"data": map[string]any{
				"US": map[string]any{
					"status": "success",
					"data":   map[string]any{"amount": 24.99, "currency_code": "USD"},
				},
				"UK": map[string]any{
					"status":      "not_listed",
					"error":       "refresh token revoked",
					"token_error": true,
				},
			},
		},
	})

	out, err := runSC(t, srv, "prices", "get", "LT-1")
	require.NoError(t, err)
	assert.Contains(t, out, "24.99 USD")
	assert.Contains(t, out, "not_listed")
	assert.Contains(t, out, "token error: refresh token revoked")
}

func TestPricesSetCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		body    map[string]any
		wantErr string
		wantOut string
	}{
		{
			name: "accepted",
			args: []string{"prices", "set", "US", "LT-1", "24.99"},
			body: map[string]any{
				"success": true,
				"data": map[string]any{
					"submission": map[string]any{"sku": "LT-1", "status": "ACCEPTED", "submissionId": "sub-1"},
				},
			},
			wantOut: "ACCEPTED",
		},
		{
			name: "rejected still prints submission",
			args: []string{"prices", "set", "US", "LT-1", "24.99"},
			body: map[string]any{
				"success": false,
				"message": "submission rejected",
				"data": map[string]any{
					"submission": map[string]any{
						"sku":          "LT-1",
						"status":       "INVALID",
						"submissionId": "sub-2",
						"issues": []map[string]any{
							{"code": "90220", "message": "price too low", "severity": "ERROR"},
						},
					},
				},
			},
			wantErr: "submission rejected",
			wantOut: "price too low",
		},
		{
			name:    "invalid price",
			args:    []string{"prices", "set", "US", "LT-1", "abc"},
			wantErr: "invalid price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := apiServer(t, map[string]map[string]any{
				"POST /api/v1/prices/US/LT-1": tt.body,
			})

			out, err := runSC(t, srv, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestServerErrorSurfaces(t *testing.T) {
	srv := apiServer(t, nil)

	_, err := runSC(t, srv, "quota")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestParseCampaignSelectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		selectors []string
		want      map[string][]string
		wantErr   bool
	}{
		{name: "none selects all", selectors: nil, want: nil},
		{
			name:      "bare code and ids",
			selectors: []string{"us=1", "US=2", "uk"},
			want:      map[string][]string{"US": {"1", "2"}, "UK": {}},
		},
		{name: "missing code", selectors: []string{"=123"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseCampaignSelectors(tt.selectors)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPatches(t *testing.T) {
	t.Parallel()

	got, err := buildPatches([]string{"item_name=Acme 14"}, []string{"bullet_point"})
	require.NoError(t, err)
	assert.Equal(t, []amazon.PatchOperation{
		{Op: "replace", Path: "/attributes/item_name", Value: []map[string]string{{"value": "Acme 14"}}},
		{Op: "delete", Path: "/attributes/bullet_point"},
	}, got)

	_, err = buildPatches(nil, nil)
	require.Error(t, err)

	_, err = buildPatches([]string{"no-equals"}, nil)
	require.Error(t, err)
}

func TestMarketplaceList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"US", "CA"}, marketplaceList(" us, ca ,"))
	assert.Nil(t, marketplaceList(""))
}
