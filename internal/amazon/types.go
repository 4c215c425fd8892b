package amazon

import (
	"time"
)

// Money is the SP-API money type. Amount is a decimal string.
type Money struct {
	CurrencyCode string `json:"CurrencyCode,omitempty" example:"USD"`
	Amount       string `json:"Amount,omitempty"       example:"19.99"`
}

// Order is the subset of the Orders API order record the console uses.
type Order struct {
	AmazonOrderID          string `json:"AmazonOrderId"                    example:"113-1234567-1234567"`
	PurchaseDate           string `json:"PurchaseDate"`
	LastUpdateDate         string `json:"LastUpdateDate"`
	OrderStatus            string `json:"OrderStatus"                      example:"Shipped"`
	FulfillmentChannel     string `json:"FulfillmentChannel,omitempty"     example:"AFN"`
	SalesChannel           string `json:"SalesChannel,omitempty"`
	ShipServiceLevel       string `json:"ShipServiceLevel,omitempty"`
	OrderTotal             *Money `json:"OrderTotal,omitempty"`
	NumberOfItemsShipped   int    `json:"NumberOfItemsShipped"`
	NumberOfItemsUnshipped int    `json:"NumberOfItemsUnshipped"`
	MarketplaceID          string `json:"MarketplaceId"`
	IsPrime                bool   `json:"IsPrime"`
	IsBusinessOrder        bool   `json:"IsBusinessOrder"`
}

// OrdersQuery filters ListOrders. Zero CreatedAfter means the start of the
// current UTC day.
type OrdersQuery struct {
	CreatedAfter  time.Time
	CreatedBefore time.Time
	OrderStatuses []string
	// MaxPages caps NextToken pagination; zero means DefaultMaxOrderPages.
	MaxPages int
}

// OrdersPage is the result of ListOrders across all fetched pages.
type OrdersPage struct {
	Orders []Order `json:"orders"`
	// NextToken is set when MaxPages stopped pagination early.
	NextToken string `json:"next_token,omitempty"`
}

// CatalogSummary is the per-marketplace catalog summary of an ASIN.
type CatalogSummary struct {
	MarketplaceID string `json:"marketplaceId"`
	ItemName      string `json:"itemName,omitempty"`
	BrandName     string `json:"brand,omitempty"`
	Manufacturer  string `json:"manufacturer,omitempty"`
	ModelNumber   string `json:"modelNumber,omitempty"`
}

// CatalogItem is a Catalog Items API record.
type CatalogItem struct {
	ASIN       string           `json:"asin"`
	Summaries  []CatalogSummary `json:"summaries,omitempty"`
	Attributes map[string]any   `json:"attributes,omitempty"`
}

// ListingSummary is the per-marketplace summary of a listing.
type ListingSummary struct {
	MarketplaceID   string   `json:"marketplaceId"`
	ASIN            string   `json:"asin,omitempty"`
	ProductType     string   `json:"productType"`
	ConditionType   string   `json:"conditionType,omitempty"`
	Status          []string `json:"status,omitempty"`
	ItemName        string   `json:"itemName,omitempty"`
	CreatedDate     string   `json:"createdDate,omitempty"`
	LastUpdatedDate string   `json:"lastUpdatedDate,omitempty"`
}

// ListingIssue is a validation or policy issue reported for a listing.
type ListingIssue struct {
	Code           string   `json:"code"`
	Message        string   `json:"message"`
	Severity       string   `json:"severity"`
	AttributeNames []string `json:"attributeNames,omitempty"`
}

// Listing is a Listings Items API record.
type Listing struct {
	SKU        string           `json:"sku"`
	Summaries  []ListingSummary `json:"summaries,omitempty"`
	Attributes map[string]any   `json:"attributes,omitempty"`
	Issues     []ListingIssue   `json:"issues,omitempty"`
}

// summaryFor returns the summary for marketplaceID, or the first one.
func (l *Listing) summaryFor(marketplaceID string) (ListingSummary, bool) {
	for _, s := range l.Summaries {
		if s.MarketplaceID == marketplaceID {
			return s, true
		}
	}
	if len(l.Summaries) > 0 {
		return l.Summaries[0], true
	}
	return ListingSummary{}, false
}

// Price is an effective listing price.
type Price struct {
	Amount       float64 `json:"amount"        example:"19.99"`
	CurrencyCode string  `json:"currency_code" example:"USD"`
}

// ListingStatus is the outcome of CheckListingStatus.
type ListingStatus struct {
	IsListed    bool   `json:"is_listed"`
	Price       Price  `json:"price"`
	ASIN        string `json:"asin,omitempty"`
	ProductType string `json:"product_type,omitempty"`
}

// PriceUpdate describes a new discounted-price schedule for a listing.
type PriceUpdate struct {
	Amount    float64
	ValidFrom time.Time
	ValidTo   time.Time
	// ProductType is looked up from the listing when empty.
	ProductType string
}

// PatchOperation is a JSON Patch operation on listing attributes.
type PatchOperation struct {
	Op    string `json:"op"             enum:"add,replace,merge,delete"`
	Path  string `json:"path"           example:"/attributes/item_name"`
	Value any    `json:"value,omitempty"`
}

// ListingPut is the full listing body submitted by PublishListing.
type ListingPut struct {
	ProductType  string         `json:"productType"`
	Requirements string         `json:"requirements,omitempty"`
	Attributes   map[string]any `json:"attributes"`
}

// ListingIdentifiers are the catalog identifiers of a submitted listing.
type ListingIdentifiers struct {
	MarketplaceID string `json:"marketplaceId"`
	ASIN          string `json:"asin,omitempty"`
}

// ListingSubmission is the Listings Items API response to a mutation.
type ListingSubmission struct {
	SKU          string               `json:"sku"`
	Status       string               `json:"status"                example:"ACCEPTED"`
	SubmissionID string               `json:"submissionId"`
	Issues       []ListingIssue       `json:"issues,omitempty"`
	Identifiers  []ListingIdentifiers `json:"identifiers,omitempty"`
}

// ASIN returns the first ASIN Amazon reported for the submission.
func (s *ListingSubmission) ASIN() string {
	for _, id := range s.Identifiers {
		if id.ASIN != "" {
			return id.ASIN
		}
	}
	return ""
}

// Accepted reports whether Amazon accepted the submission for processing.
func (s *ListingSubmission) Accepted() bool {
	return s.Status == "ACCEPTED" || s.Status == "VALID"
}

// CampaignBudget is a campaign's budget setting.
type CampaignBudget struct {
	Budget     float64 `json:"budget"`
	BudgetType string  `json:"budgetType" example:"DAILY"`
}

// Campaign is a Sponsored Products campaign.
type Campaign struct {
	CampaignID    string          `json:"campaignId"`
	PortfolioID   string          `json:"portfolioId,omitempty"`
	Name          string          `json:"name"`
	State         string          `json:"state"                   example:"ENABLED"`
	TargetingType string          `json:"targetingType,omitempty" example:"AUTO"`
	StartDate     string          `json:"startDate,omitempty"`
	EndDate       string          `json:"endDate,omitempty"`
	Budget        *CampaignBudget `json:"budget,omitempty"`
}

// BudgetUsage is the current spend of one campaign relative to its budget.
type BudgetUsage struct {
	CampaignID            string  `json:"campaignId"`
	Budget                float64 `json:"budget,omitempty"`
	BudgetUsagePercent    float64 `json:"budgetUsagePercent"`
	UsageUpdatedTimestamp string  `json:"usageUpdatedTimestamp,omitempty"`
	Index                 int     `json:"index"`
}

// BudgetUsageError reports a campaign the budget call could not resolve.
type BudgetUsageError struct {
	CampaignID string `json:"campaignId"`
	Index      int    `json:"index"`
	Code       string `json:"code"`
	Details    string `json:"details"`
}

// BudgetUsageResult is the Ads budget-usage response.
type BudgetUsageResult struct {
	Success []BudgetUsage      `json:"success"`
	Error   []BudgetUsageError `json:"error"`
}

// AccountInfo identifies the advertiser behind a profile.
type AccountInfo struct {
	MarketplaceStringID string `json:"marketplaceStringId"`
	ID                  string `json:"id"`
	Type                string `json:"type"`
	Name                string `json:"name"`
}

// Profile is an Advertising API profile.
type Profile struct {
	ProfileID    int64       `json:"profileId"`
	CountryCode  string      `json:"countryCode"`
	CurrencyCode string      `json:"currencyCode"`
	Timezone     string      `json:"timezone"`
	AccountInfo  AccountInfo `json:"accountInfo"`
}
