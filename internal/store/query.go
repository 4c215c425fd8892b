package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseSKUSelect = `SELECT sku_id, sku_code, product_name,
	length, width, height, weight,
	has_battery, COALESCE(battery_type, ''), purchase_cost, COALESCE(currency, ''),
	COALESCE(asin, ''), is_active, created_at, updated_at
FROM product_sku`

const countSKUSelect = "SELECT COUNT(*) FROM product_sku"

const skuOrderBy = "sku_code ASC"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT and OFFSET for a SKU query.
// It returns the data query, the count query and their positional
// parameters.
func (q *SKUQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.ActiveOnly == nil || *q.ActiveOnly {
		conditions = append(conditions, "is_active")
	}

	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(sku_code ILIKE $%d OR product_name ILIKE $%d)", paramIdx, paramIdx,
		))
		args = append(args, "%"+strings.TrimSpace(*q.Search)+"%")
		paramIdx++
	}

	if q.HasASIN != nil {
		if *q.HasASIN {
			conditions = append(conditions, "COALESCE(asin, '') <> ''")
		} else {
			conditions = append(conditions, "COALESCE(asin, '') = ''")
		}
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit, offset := q.Page()

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseSKUSelect, whereClause, skuOrderBy, limit, offset,
	)

	countSQL = countSKUSelect + whereClause

	return dataSQL, countSQL, args
}

// Page returns the effective limit and offset after defaults and caps.
func (q *SKUQuery) Page() (limit, offset int) {
	limit = q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return min(limit, maxLimit), max(q.Offset, 0)
}
