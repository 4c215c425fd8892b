// Package console implements the seller console operations behind the JSON
// API: single-marketplace calls pass errors through, multi-marketplace calls
// fan out and report per-marketplace outcomes.
package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/fanout"
	"github.com/jadehome/seller-console/internal/marketplace"
	"github.com/jadehome/seller-console/internal/metrics"
	"github.com/jadehome/seller-console/internal/store"
	domain "github.com/jadehome/seller-console/pkg/types"
)

const defaultBoardConcurrency = 4

// Service orchestrates the registry, the Amazon API client and the store.
type Service struct {
	registry *marketplace.Registry
	api      amazon.API
	store    store.Store
	log      *slog.Logger

	boardConcurrency int
	nowFunc          func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithBoardConcurrency bounds how many SKUs the listing board checks at once.
func WithBoardConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.boardConcurrency = n
		}
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(s *Service) {
		s.nowFunc = f
	}
}

// NewService creates a Service with injected dependencies.
func NewService(reg *marketplace.Registry, api amazon.API, st store.Store, opts ...Option) *Service {
	s := &Service{
		registry:         reg,
		api:              api,
		store:            st,
		log:              slog.Default(),
		boardConcurrency: defaultBoardConcurrency,
		nowFunc:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the marketplace registry.
func (s *Service) Registry() *marketplace.Registry {
	return s.registry
}

// Marketplaces lists the configured marketplaces.
func (s *Service) Marketplaces() []marketplace.Summary {
	return s.registry.List()
}

// Quotas reports per-marketplace rate-limit usage.
func (s *Service) Quotas() []amazon.Quota {
	return s.api.Quotas()
}

// Ready reports whether the store is reachable.
func (s *Service) Ready(ctx context.Context) error {
	if s.store == nil {
		return errors.New("store not configured")
	}
	return s.store.Ping(ctx)
}

// Orders lists the orders of one marketplace. A zero CreatedAfter means
// today.
func (s *Service) Orders(ctx context.Context, code marketplace.Code, q amazon.OrdersQuery) (*amazon.OrdersPage, error) {
	return s.api.ListOrders(ctx, code, q)
}

// ListingStatus checks one SKU in one marketplace.
func (s *Service) ListingStatus(ctx context.Context, code marketplace.Code, sku string) (amazon.ListingStatus, error) {
	return s.api.CheckListingStatus(ctx, code, sku)
}

// Prices looks up the price of sku in every code. Unlisted marketplaces and
// token failures are reported as not_listed.
func (s *Service) Prices(ctx context.Context, sku string, codes []marketplace.Code) fanout.Result[amazon.Price] {
	return fanout.ForEachMarketplace(ctx, s.codesOrAll(codes),
		func(ctx context.Context, code marketplace.Code) (amazon.Price, error) {
			return s.api.GetListingPrice(ctx, code, sku)
		},
		fanout.DowngradeTokenErrors(),
		fanout.WithOperationName("prices"),
		fanout.WithLogger(s.log),
	)
}

// SetPrice submits a new price for sku in code and records the attempt in
// the price change audit. The submission is never retried.
func (s *Service) SetPrice(
	ctx context.Context,
	code marketplace.Code,
	sku string,
	u amazon.PriceUpdate,
) (*amazon.ListingSubmission, *domain.PriceChange, error) {
	cfg, err := s.registry.Resolve(code)
	if err != nil {
		return nil, nil, err
	}

	sub, err := s.api.SetListingPrice(ctx, code, sku, u)
	if errors.Is(err, amazon.ErrInvalidRequest) {
		// Nothing reached Amazon.
		return nil, nil, err
	}

	pc := &domain.PriceChange{
		SKUCode:     sku,
		Marketplace: string(code),
		Amount:      u.Amount,
		Currency:    cfg.Currency,
		ValidFrom:   timePtr(u.ValidFrom),
		ValidTo:     timePtr(u.ValidTo),
	}
	switch {
	case err != nil:
		pc.Status = domain.PriceChangeFailed
		pc.Error = err.Error()
	case sub.Accepted():
		pc.Status = domain.PriceChangeAccepted
		pc.SubmissionID = sub.SubmissionID
	default:
		pc.Status = domain.PriceChangeRejected
		pc.SubmissionID = sub.SubmissionID
		pc.Error = issueSummary(sub.Issues)
	}
	metrics.PriceUpdatesTotal.WithLabelValues(string(code), string(pc.Status)).Inc()

	s.recordPriceChange(ctx, pc)

	if err != nil {
		return nil, pc, err
	}
	return sub, pc, nil
}

func (s *Service) recordPriceChange(ctx context.Context, pc *domain.PriceChange) {
	if s.store == nil {
		return
	}
	// The submission already happened; an audit failure must not hide it.
	if err := s.store.InsertPriceChange(context.WithoutCancel(ctx), pc); err != nil {
		s.log.Error("recording price change",
			"sku", pc.SKUCode,
			"marketplace", pc.Marketplace,
			"status", pc.Status,
			"error", err,
		)
	}
}

// PriceHistory returns the most recent recorded price changes for sku.
func (s *Service) PriceHistory(ctx context.Context, sku string, limit int) ([]domain.PriceChange, error) {
	changes, err := s.store.ListPriceChanges(ctx, sku, limit)
	if err != nil {
		return nil, fmt.Errorf("listing price changes: %w", err)
	}
	if changes == nil {
		changes = []domain.PriceChange{}
	}
	return changes, nil
}

// Patch applies JSON patches to a listing.
func (s *Service) Patch(
	ctx context.Context,
	code marketplace.Code,
	sku, productType string,
	patches []amazon.PatchOperation,
) (*amazon.ListingSubmission, error) {
	return s.api.PatchListing(ctx, code, sku, productType, patches)
}

// Campaigns lists the campaigns of one marketplace.
func (s *Service) Campaigns(ctx context.Context, code marketplace.Code) ([]amazon.Campaign, error) {
	return s.api.ListCampaigns(ctx, code)
}

// AllCampaigns lists campaigns in every code.
func (s *Service) AllCampaigns(ctx context.Context, codes []marketplace.Code) fanout.Result[[]amazon.Campaign] {
	return fanout.ForEachMarketplace(ctx, s.codesOrAll(codes),
		s.api.ListCampaigns,
		fanout.WithOperationName("campaigns"),
		fanout.WithLogger(s.log),
	)
}

// BudgetUsage reports budget usage per marketplace. Marketplaces mapped to
// no campaign IDs report on all of their enabled and paused campaigns.
func (s *Service) BudgetUsage(
	ctx context.Context,
	campaignIDs map[marketplace.Code][]string,
) fanout.Result[amazon.BudgetUsageResult] {
	codes := make([]marketplace.Code, 0, len(campaignIDs))
	for code := range campaignIDs {
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		codes = s.registry.Codes()
	}

	return fanout.ForEachMarketplace(ctx, codes,
		func(ctx context.Context, code marketplace.Code) (amazon.BudgetUsageResult, error) {
			ids := campaignIDs[code]
			if len(ids) == 0 {
				campaigns, err := s.api.ListCampaigns(ctx, code)
				if err != nil {
					return amazon.BudgetUsageResult{}, err
				}
				for _, c := range campaigns {
					ids = append(ids, c.CampaignID)
				}
				if len(ids) == 0 {
					return amazon.BudgetUsageResult{Success: []amazon.BudgetUsage{}, Error: []amazon.BudgetUsageError{}}, nil
				}
			}
			res, err := s.api.GetCampaignBudgetUsage(ctx, code, ids)
			if err != nil {
				return amazon.BudgetUsageResult{}, err
			}
			return *res, nil
		},
		fanout.WithOperationName("campaign_budget_usage"),
		fanout.WithLogger(s.log),
	)
}

// SKUs lists master-data SKUs.
func (s *Service) SKUs(ctx context.Context, q *store.SKUQuery) ([]domain.SKU, int, error) {
	skus, total, err := s.store.ListSKUs(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing skus: %w", err)
	}
	if skus == nil {
		skus = []domain.SKU{}
	}
	return skus, total, nil
}

// SetAttributes upserts listing attributes of sku for code.
func (s *Service) SetAttributes(
	ctx context.Context,
	code marketplace.Code,
	sku string,
	values map[string]string,
) ([]domain.ProductAttribute, error) {
	if _, err := s.registry.Resolve(code); err != nil {
		return nil, err
	}
	if _, err := s.store.GetSKU(ctx, sku); err != nil {
		return nil, err
	}

	for key, value := range values {
		a := &domain.ProductAttribute{
			SKUCode:     sku,
			CountryCode: domain.CountryKey(string(code)),
			Key:         key,
			Value:       value,
		}
		if err := s.store.UpsertProductAttribute(ctx, a); err != nil {
			return nil, err
		}
	}

	attrs, err := s.store.ListProductAttributes(ctx, sku, string(code))
	if err != nil {
		return nil, fmt.Errorf("listing product attributes: %w", err)
	}
	return attrs, nil
}

func (s *Service) codesOrAll(codes []marketplace.Code) []marketplace.Code {
	if len(codes) == 0 {
		return s.registry.Codes()
	}
	return codes
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func issueSummary(issues []amazon.ListingIssue) string {
	msg := ""
	for _, is := range issues {
		if is.Severity != "ERROR" {
			continue
		}
		if msg != "" {
			msg += "; "
		}
		msg += is.Code + ": " + is.Message
	}
	return msg
}
