package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// SKU queries.
const (
	queryUpsertSKU = `
		INSERT INTO product_sku (
			sku_code, product_name, length, width, height, weight,
			has_battery, battery_type, purchase_cost, currency, asin,
			is_active, created_at, updated_at
		) VALUES (
			@sku_code, @product_name, @length, @width, @height, @weight,
			@has_battery, NULLIF(@battery_type, ''), @purchase_cost, NULLIF(@currency, ''), NULLIF(@asin, ''),
			@is_active, now(), now()
		)
		ON CONFLICT (sku_code) DO UPDATE SET
			product_name = EXCLUDED.product_name,
			length = EXCLUDED.length,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			has_battery = EXCLUDED.has_battery,
			battery_type = EXCLUDED.battery_type,
			purchase_cost = EXCLUDED.purchase_cost,
			currency = EXCLUDED.currency,
			asin = COALESCE(EXCLUDED.asin, product_sku.asin),
			is_active = EXCLUDED.is_active,
			updated_at = now()
		RETURNING sku_id, created_at, updated_at`

	queryGetSKU = baseSKUSelect + `
		WHERE sku_code = $1`

	queryListActiveSKUs = baseSKUSelect + `
		WHERE is_active
		ORDER BY sku_code ASC`

	queryUpdateSKUASIN = `
		UPDATE product_sku SET asin = $2, updated_at = now()
		WHERE sku_code = $1`
)

// Product attribute queries.
const (
	queryListProductAttributes = `
		SELECT id, sku_code, country_code, spec_key, COALESCE(spec_value, '')
		FROM amz_pd_kv
		WHERE sku_code = $1 AND country_code = $2
		ORDER BY spec_key ASC, id ASC`

	queryUpsertProductAttribute = `
		INSERT INTO amz_pd_kv (sku_code, country_code, spec_key, spec_value)
		VALUES (@sku_code, @country_code, @spec_key, @spec_value)
		ON CONFLICT (sku_code, country_code, spec_key) DO UPDATE SET
			spec_value = EXCLUDED.spec_value
		RETURNING id`

	queryDeleteProductAttribute = `
		DELETE FROM amz_pd_kv
		WHERE sku_code = $1 AND country_code = $2 AND spec_key = $3`
)

// Price change queries.
const (
	queryInsertPriceChange = `
		INSERT INTO price_changes (
			sku_code, marketplace, amount, currency, valid_from, valid_to,
			status, submission_id, error_text
		) VALUES (
			@sku_code, @marketplace, @amount, @currency, @valid_from, @valid_to,
			@status, NULLIF(@submission_id, ''), NULLIF(@error_text, '')
		)
		RETURNING id, created_at`

	queryListPriceChanges = `
		SELECT id, sku_code, marketplace, amount, currency, valid_from, valid_to,
			status, COALESCE(submission_id, ''), COALESCE(error_text, ''), created_at
		FROM price_changes
		WHERE sku_code = $1
		ORDER BY created_at DESC
		LIMIT $2`
)
