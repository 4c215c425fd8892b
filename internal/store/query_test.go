package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestSKUQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         SKUQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string
		wantDataNotIn []string
	}{
		{
			name:  "empty query lists active skus with defaults",
			query: SKUQuery{},
			wantDataHas: []string{
				"FROM product_sku WHERE is_active",
				"ORDER BY sku_code ASC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantCountSQL: "SELECT COUNT(*) FROM product_sku WHERE is_active",
			wantArgs:     nil,
		},
		{
			name:          "inactive included",
			query:         SKUQuery{ActiveOnly: ptr(false)},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM product_sku",
		},
		{
			name:         "search matches code or name",
			query:        SKUQuery{Search: ptr(" lamp ")},
			wantDataHas:  []string{"(sku_code ILIKE $1 OR product_name ILIKE $1)"},
			wantCountSQL: "SELECT COUNT(*) FROM product_sku WHERE is_active AND (sku_code ILIKE $1 OR product_name ILIKE $1)",
			wantArgs:     []any{"%lamp%"},
		},
		{
			name:          "blank search ignored",
			query:         SKUQuery{Search: ptr("   ")},
			wantDataNotIn: []string{"ILIKE"},
			wantCountSQL:  "SELECT COUNT(*) FROM product_sku WHERE is_active",
		},
		{
			name:         "has asin",
			query:        SKUQuery{HasASIN: ptr(true)},
			wantCountSQL: "SELECT COUNT(*) FROM product_sku WHERE is_active AND COALESCE(asin, '') <> ''",
		},
		{
			name:         "missing asin",
			query:        SKUQuery{HasASIN: ptr(false), ActiveOnly: ptr(false)},
			wantCountSQL: "SELECT COUNT(*) FROM product_sku WHERE COALESCE(asin, '') = ''",
		},
		{
			name:        "limit capped",
			query:       SKUQuery{Limit: 10000, Offset: 20},
			wantDataHas: []string{"LIMIT 500", "OFFSET 20"},
		},
		{
			name:        "negative offset clamped",
			query:       SKUQuery{Limit: 5, Offset: -3},
			wantDataHas: []string{"LIMIT 5", "OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s)
			}
			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s)
			}
			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
