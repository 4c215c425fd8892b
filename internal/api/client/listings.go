package client

import (
	"context"
	"net/url"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/console"
)

// ListingBoard returns the listing status of every active SKU.
func (c *Client) ListingBoard(ctx context.Context, codes []string) ([]console.BoardRow, error) {
	var out []console.BoardRow
	if err := c.get(ctx, withQuery("/api/v1/listings/status", codesQuery(codes)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func listingPath(code, sku string) string {
	return "/api/v1/listings/" + url.PathEscape(code) + "/" + url.PathEscape(sku)
}

// PublishListing creates the listing of sku from its stored attributes.
func (c *Client) PublishListing(ctx context.Context, code, sku string) (*amazon.ListingSubmission, error) {
	var out amazon.ListingSubmission
	err := c.post(ctx, listingPath(code, sku)+"/publish", nil, &out)
	return &out, err
}

// PatchListing applies JSON-patch operations to a listing.
func (c *Client) PatchListing(
	ctx context.Context,
	code, sku, productType string,
	patches []amazon.PatchOperation,
) (*amazon.ListingSubmission, error) {
	body := struct {
		ProductType string                  `json:"product_type,omitempty"`
		Patches     []amazon.PatchOperation `json:"patches"`
	}{ProductType: productType, Patches: patches}

	var out amazon.ListingSubmission
	err := c.patch(ctx, listingPath(code, sku), body, &out)
	return &out, err
}
