package openapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	api := humaecho.New(e, huma.DefaultConfig("Seller Console API", "test"))
	huma.Get(api, "/api/v1/ping", func(_ context.Context, _ *struct{}) (*struct{}, error) {
		return nil, nil
	})
	RegisterRoutes(e, api)
	return e
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantType     string
		wantContains string
	}{
		{"json spec", "/swagger/swagger.json", http.StatusOK, "application/json", `"/api/v1/ping"`},
		{"yaml spec", "/swagger/swagger.yaml", http.StatusOK, "text/yaml", "/api/v1/ping:"},
		{"ui", "/swagger/index.html", http.StatusOK, "text/html", "SwaggerUIBundle"},
		{"redirect", "/swagger", http.StatusMovedPermanently, "", ""},
	}

	e := newTestEcho(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantType != "" {
				assert.Contains(t, rec.Header().Get(echo.HeaderContentType), tt.wantType)
			}
			if tt.wantContains != "" {
				assert.Contains(t, rec.Body.String(), tt.wantContains)
			}
		})
	}
}
