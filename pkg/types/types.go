// Package domain defines the master-data records the seller console reads
// from and writes to its relational store.
package domain

import (
	"strings"
	"time"
)

// SKU is a sellable product variant from product_sku.
type SKU struct {
	ID           int64     `json:"id"`
	Code         string    `json:"sku_code"               example:"LT-2024-WW"`
	ProductName  string    `json:"product_name"`
	Length       float64   `json:"length"`
	Width        float64   `json:"width"`
	Height       float64   `json:"height"`
	Weight       float64   `json:"weight"`
	HasBattery   bool      `json:"has_battery"`
	BatteryType  string    `json:"battery_type,omitempty"`
	PurchaseCost *float64  `json:"purchase_cost,omitempty"`
	Currency     string    `json:"currency,omitempty"`
	ASIN         string    `json:"asin,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductAttribute is one listing attribute for a SKU in one country,
// stored in amz_pd_kv.
type ProductAttribute struct {
	ID          int64  `json:"id"`
	SKUCode     string `json:"sku_code"`
	CountryCode string `json:"country_code" example:"us"`
	Key         string `json:"spec_key"     example:"brand"`
	Value       string `json:"spec_value"`
}

// CountryKey normalizes a marketplace code to the lowercase form used as
// amz_pd_kv.country_code.
func CountryKey(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// AttributeMap flattens attrs into key/value pairs. Later duplicates win.
func AttributeMap(attrs []ProductAttribute) map[string]string {
	out := make(map[string]string, len(attrs))
	for _, a := range attrs {
		out[a.Key] = a.Value
	}
	return out
}

// PriceChangeStatus records what happened to a submitted price change.
type PriceChangeStatus string

// Price change statuses.
const (
	PriceChangeAccepted PriceChangeStatus = "accepted"
	PriceChangeRejected PriceChangeStatus = "rejected"
	PriceChangeFailed   PriceChangeStatus = "failed"
)

// PriceChange is the audit record of one SetListingPrice submission.
type PriceChange struct {
	ID           string            `json:"id"`
	SKUCode      string            `json:"sku_code"`
	Marketplace  string            `json:"marketplace"             example:"US"`
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"                example:"USD"`
	ValidFrom    *time.Time        `json:"valid_from,omitempty"`
	ValidTo      *time.Time        `json:"valid_to,omitempty"`
	Status       PriceChangeStatus `json:"status"                  enum:"accepted,rejected,failed"`
	SubmissionID string            `json:"submission_id,omitempty"`
	Error        string            `json:"error,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
