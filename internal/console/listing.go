package console

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/fanout"
	"github.com/jadehome/seller-console/internal/marketplace"
	domain "github.com/jadehome/seller-console/pkg/types"
)

const (
	defaultProductType  = "PRODUCT"
	defaultRequirements = "LISTING"
	defaultBrand        = "Generic"

	// productTypeKey is an attribute row that selects the product type
	// instead of becoming a listing attribute.
	productTypeKey = "product_type"
)

// BoardRow is the listing status of one SKU in every marketplace.
type BoardRow struct {
	SKU          string                              `json:"sku_code"`
	ProductName  string                              `json:"product_name"`
	ASIN         string                              `json:"asin,omitempty"`
	Marketplaces fanout.Result[amazon.ListingStatus] `json:"marketplaces"`
}

// ListingBoard checks every active SKU in codes. Token failures show up as
// not_listed with token_error set rather than failing the board.
func (s *Service) ListingBoard(ctx context.Context, codes []marketplace.Code) ([]BoardRow, error) {
	skus, err := s.store.ListActiveSKUs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active skus: %w", err)
	}
	codes = s.codesOrAll(codes)

	rows := make([]BoardRow, len(skus))
	sem := make(chan struct{}, s.boardConcurrency)
	var wg sync.WaitGroup
	for i := range skus {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			sku := skus[i]
			rows[i] = BoardRow{
				SKU:         sku.Code,
				ProductName: sku.ProductName,
				ASIN:        sku.ASIN,
				Marketplaces: fanout.ForEachMarketplace(ctx, codes,
					func(ctx context.Context, code marketplace.Code) (amazon.ListingStatus, error) {
						return s.api.CheckListingStatus(ctx, code, sku.Code)
					},
					fanout.DowngradeTokenErrors(),
					fanout.WithOperationName("listing_status"),
					fanout.WithLogger(s.log),
				),
			}
		}()
	}
	wg.Wait()

	return rows, nil
}

// Publish creates or replaces the listing of sku in code from its master
// data and per-country attributes. A newly reported ASIN is saved back to
// the SKU.
func (s *Service) Publish(ctx context.Context, code marketplace.Code, sku string) (*amazon.ListingSubmission, error) {
	cfg, err := s.registry.Resolve(code)
	if err != nil {
		return nil, err
	}

	rec, err := s.store.GetSKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	attrs, err := s.store.ListProductAttributes(ctx, sku, string(code))
	if err != nil {
		return nil, fmt.Errorf("listing product attributes: %w", err)
	}

	body := BuildListing(rec, cfg, domain.AttributeMap(attrs))
	sub, err := s.api.PublishListing(ctx, code, sku, body)
	if err != nil {
		return nil, err
	}

	if asin := sub.ASIN(); asin != "" && asin != rec.ASIN {
		if err := s.store.UpdateSKUASIN(ctx, sku, asin); err != nil {
			s.log.Error("saving published asin", "sku", sku, "asin", asin, "error", err)
		} else {
			s.log.Info("sku asin updated", "sku", sku, "asin", asin, "marketplace", code)
		}
	}
	return sub, nil
}

// BuildListing assembles a listing body from master data. attrs override
// the derived attributes; a product_type entry selects the product type.
func BuildListing(sku *domain.SKU, cfg marketplace.Config, attrs map[string]string) amazon.ListingPut {
	value := func(v any) []any {
		return []any{map[string]any{"value": v, "marketplace_id": cfg.MarketplaceID}}
	}
	dimension := func(v float64, unit string) map[string]any {
		return map[string]any{"value": v, "unit": unit}
	}

	out := map[string]any{
		"item_name":      value(sku.ProductName),
		"brand":          value(defaultBrand),
		"manufacturer":   value(defaultBrand),
		"condition_type": value("new_new"),
		"item_package_dimensions": []any{map[string]any{
			"marketplace_id": cfg.MarketplaceID,
			"length":         dimension(sku.Length, "centimeters"),
			"width":          dimension(sku.Width, "centimeters"),
			"height":         dimension(sku.Height, "centimeters"),
		}},
		"item_package_weight": []any{map[string]any{
			"marketplace_id": cfg.MarketplaceID,
			"value":          sku.Weight,
			"unit":           "kilograms",
		}},
		"fulfillment_availability": []any{map[string]any{
			"fulfillment_channel_code":   "DEFAULT",
			"lead_time_to_ship_max_days": 2,
		}},
		"batteries_required": value(sku.HasBattery),
	}
	if sku.HasBattery && sku.BatteryType != "" {
		out["battery"] = []any{map[string]any{
			"marketplace_id":   cfg.MarketplaceID,
			"cell_composition": []any{map[string]any{"value": sku.BatteryType}},
		}}
	}

	productType := defaultProductType
	for k, v := range attrs {
		if k == productTypeKey {
			if v != "" {
				productType = v
			}
			continue
		}
		out[k] = value(attributeValue(k, v))
	}

	return amazon.ListingPut{
		ProductType:  productType,
		Requirements: defaultRequirements,
		Attributes:   out,
	}
}

// Attribute keys whose values Amazon's schema types as numbers or booleans.
// Every other value is sent as the stored string, so identifiers such as
// part numbers and UPCs keep their leading zeros.
var (
	numericAttributes = map[string]struct{}{
		"number_of_items":       {},
		"item_package_quantity": {},
		"number_of_boxes":       {},
		"unit_count":            {},
		"max_order_quantity":    {},
	}
	booleanAttributes = map[string]struct{}{
		"batteries_included":          {},
		"batteries_required":          {},
		"is_fragile":                  {},
		"is_expiration_dated_product": {},
	}
)

func attributeValue(key, v string) any {
	if _, ok := booleanAttributes[key]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	if _, ok := numericAttributes[key]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return v
}
