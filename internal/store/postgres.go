package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/jadehome/seller-console/pkg/types"
)

const (
	defaultPoolSize         = 10
	defaultPriceChangeLimit = 20
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if !strings.Contains(connString, "pool_max_conns") {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertSKU inserts or updates a SKU by sku_code. An empty ASIN never
// clears a stored one.
func (s *PostgresStore) UpsertSKU(ctx context.Context, sku *domain.SKU) error {
	args := pgx.NamedArgs{
		"sku_code":      sku.Code,
		"product_name":  sku.ProductName,
		"length":        sku.Length,
		"width":         sku.Width,
		"height":        sku.Height,
		"weight":        sku.Weight,
		"has_battery":   sku.HasBattery,
		"battery_type":  sku.BatteryType,
		"purchase_cost": sku.PurchaseCost,
		"currency":      sku.Currency,
		"asin":          sku.ASIN,
		"is_active":     sku.Active,
	}

	return s.pool.QueryRow(ctx, queryUpsertSKU, args).Scan(
		&sku.ID, &sku.CreatedAt, &sku.UpdatedAt,
	)
}

// GetSKU retrieves a SKU by code, active or not.
func (s *PostgresStore) GetSKU(ctx context.Context, code string) (*domain.SKU, error) {
	sku := &domain.SKU{}
	err := scanSKU(s.pool.QueryRow(ctx, queryGetSKU, code), sku)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("sku %s: %w", code, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting sku %s: %w", code, err)
	}
	return sku, nil
}

// ListSKUs queries SKUs with optional filters, returning results and total count.
func (s *PostgresStore) ListSKUs(ctx context.Context, q *SKUQuery) ([]domain.SKU, int, error) {
	if q == nil {
		q = &SKUQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting skus: %w", err)
	}

	skus, err := s.querySKUs(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return skus, total, nil
}

// ListActiveSKUs returns every active SKU ordered by code.
func (s *PostgresStore) ListActiveSKUs(ctx context.Context) ([]domain.SKU, error) {
	return s.querySKUs(ctx, queryListActiveSKUs)
}

// UpdateSKUASIN records the ASIN Amazon assigned to a SKU.
func (s *PostgresStore) UpdateSKUASIN(ctx context.Context, code, asin string) error {
	tag, err := s.pool.Exec(ctx, queryUpdateSKUASIN, code, asin)
	if err != nil {
		return fmt.Errorf("updating asin for %s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sku %s: %w", code, ErrNotFound)
	}
	return nil
}

// ListProductAttributes returns the attributes of skuCode for countryCode.
func (s *PostgresStore) ListProductAttributes(
	ctx context.Context,
	skuCode, countryCode string,
) ([]domain.ProductAttribute, error) {
	rows, err := s.pool.Query(ctx, queryListProductAttributes, skuCode, domain.CountryKey(countryCode))
	if err != nil {
		return nil, fmt.Errorf("querying product attributes: %w", err)
	}
	defer rows.Close()

	var attrs []domain.ProductAttribute
	for rows.Next() {
		var a domain.ProductAttribute
		if err := rows.Scan(&a.ID, &a.SKUCode, &a.CountryCode, &a.Key, &a.Value); err != nil {
			return nil, fmt.Errorf("scanning product attribute: %w", err)
		}
		attrs = append(attrs, a)
	}

	return attrs, rows.Err()
}

// UpsertProductAttribute inserts or replaces one attribute value.
func (s *PostgresStore) UpsertProductAttribute(ctx context.Context, a *domain.ProductAttribute) error {
	a.CountryCode = domain.CountryKey(a.CountryCode)
	args := pgx.NamedArgs{
		"sku_code":     a.SKUCode,
		"country_code": a.CountryCode,
		"spec_key":     a.Key,
		"spec_value":   a.Value,
	}
	if err := s.pool.QueryRow(ctx, queryUpsertProductAttribute, args).Scan(&a.ID); err != nil {
		return fmt.Errorf("upserting product attribute %s: %w", a.Key, err)
	}
	return nil
}

// DeleteProductAttribute removes one attribute.
func (s *PostgresStore) DeleteProductAttribute(ctx context.Context, skuCode, countryCode, key string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteProductAttribute, skuCode, domain.CountryKey(countryCode), key)
	if err != nil {
		return fmt.Errorf("deleting product attribute %s: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("attribute %s: %w", key, ErrNotFound)
	}
	return nil
}

// InsertPriceChange records a price submission.
func (s *PostgresStore) InsertPriceChange(ctx context.Context, pc *domain.PriceChange) error {
	args := pgx.NamedArgs{
		"sku_code":      pc.SKUCode,
		"marketplace":   pc.Marketplace,
		"amount":        pc.Amount,
		"currency":      pc.Currency,
		"valid_from":    pc.ValidFrom,
		"valid_to":      pc.ValidTo,
		"status":        string(pc.Status),
		"submission_id": pc.SubmissionID,
		"error_text":    pc.Error,
	}
	if err := s.pool.QueryRow(ctx, queryInsertPriceChange, args).Scan(&pc.ID, &pc.CreatedAt); err != nil {
		return fmt.Errorf("inserting price change: %w", err)
	}
	return nil
}

// ListPriceChanges returns the most recent price changes for skuCode.
func (s *PostgresStore) ListPriceChanges(ctx context.Context, skuCode string, limit int) ([]domain.PriceChange, error) {
	if limit <= 0 {
		limit = defaultPriceChangeLimit
	}
	limit = min(limit, maxLimit)

	rows, err := s.pool.Query(ctx, queryListPriceChanges, skuCode, limit)
	if err != nil {
		return nil, fmt.Errorf("querying price changes: %w", err)
	}
	defer rows.Close()

	var changes []domain.PriceChange
	for rows.Next() {
		var pc domain.PriceChange
		if err := rows.Scan(
			&pc.ID, &pc.SKUCode, &pc.Marketplace, &pc.Amount, &pc.Currency,
			&pc.ValidFrom, &pc.ValidTo, &pc.Status, &pc.SubmissionID, &pc.Error, &pc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning price change: %w", err)
		}
		changes = append(changes, pc)
	}

	return changes, rows.Err()
}

// querySKUs is a helper for SKU list queries.
func (s *PostgresStore) querySKUs(ctx context.Context, query string, args ...any) ([]domain.SKU, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying skus: %w", err)
	}
	defer rows.Close()

	var skus []domain.SKU
	for rows.Next() {
		var sku domain.SKU
		if err := scanSKU(rows, &sku); err != nil {
			return nil, fmt.Errorf("scanning sku: %w", err)
		}
		skus = append(skus, sku)
	}

	return skus, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanSKU scans a full product_sku row selected by baseSKUSelect.
func scanSKU(row scannable, sku *domain.SKU) error {
	return row.Scan(
		&sku.ID, &sku.Code, &sku.ProductName,
		&sku.Length, &sku.Width, &sku.Height, &sku.Weight,
		&sku.HasBattery, &sku.BatteryType, &sku.PurchaseCost, &sku.Currency,
		&sku.ASIN, &sku.Active, &sku.CreatedAt, &sku.UpdatedAt,
	)
}
