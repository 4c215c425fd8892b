package cmd

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/console"
	"github.com/jadehome/seller-console/internal/fanout"
	"github.com/jadehome/seller-console/internal/marketplace"
	domain "github.com/jadehome/seller-console/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// sortedCodes returns the codes of a fan-out result in a stable order.
func sortedCodes[T any](r fanout.Result[T]) []marketplace.Code {
	codes := make([]marketplace.Code, 0, len(r))
	for code := range r {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// outcomeNote describes a non-success outcome.
func outcomeNote[T any](o fanout.Outcome[T]) string {
	switch {
	case o.TokenError:
		return "token error: " + truncate(o.Error, 50)
	case o.Error != "":
		return truncate(o.Error, 60)
	default:
		return ""
	}
}

func printMarketplaces(w io.Writer, mps []marketplace.Summary) error {
	tw := newTabWriter(w)
	tw.writef("CODE\tNAME\tCURRENCY\n")
	for _, m := range mps {
		tw.writef("%s\t%s\t%s\n", m.ID, m.Name, m.Currency)
	}
	return tw.finish()
}

func printQuota(w io.Writer, quotas []amazon.Quota) error {
	tw := newTabWriter(w)
	tw.writef("MARKETPLACE\tUSED\tLIMIT\tREMAINING\tRESETS\n")
	for _, q := range quotas {
		tw.writef("%s\t%d\t%d\t%d\t%s\n",
			q.Marketplace, q.Used, q.Limit, q.Remaining, q.ResetAt.Local().Format(timeLayout))
	}
	return tw.finish()
}

func printOrders(w io.Writer, orders []amazon.Order) error {
	tw := newTabWriter(w)
	tw.writef("ORDER\tPURCHASED\tSTATUS\tCHANNEL\tTOTAL\tITEMS\n")
	for i := range orders {
		o := &orders[i]
		total := "-"
		if o.OrderTotal != nil {
			total = o.OrderTotal.Amount + " " + o.OrderTotal.CurrencyCode
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%d\n",
			o.AmazonOrderID,
			o.PurchaseDate,
			o.OrderStatus,
			o.FulfillmentChannel,
			total,
			o.NumberOfItemsShipped+o.NumberOfItemsUnshipped,
		)
	}
	return tw.finish()
}

func printListingStatus(w io.Writer, code, sku string, st *amazon.ListingStatus) error {
	tw := newTabWriter(w)
	tw.writef("SKU:\t%s\n", sku)
	tw.writef("Marketplace:\t%s\n", code)
	tw.writef("Listed:\t%v\n", st.IsListed)
	if st.IsListed {
		tw.writef("Price:\t%.2f %s\n", st.Price.Amount, st.Price.CurrencyCode)
		tw.writef("ASIN:\t%s\n", st.ASIN)
		tw.writef("Product Type:\t%s\n", st.ProductType)
	}
	return tw.finish()
}

func printPrices(w io.Writer, r fanout.Result[amazon.Price]) error {
	tw := newTabWriter(w)
	tw.writef("MARKETPLACE\tSTATUS\tPRICE\tNOTE\n")
	for _, code := range sortedCodes(r) {
		o := r[code]
		price := "-"
		if o.Status == fanout.StatusSuccess && o.Data != nil {
			price = fmt.Sprintf("%.2f %s", o.Data.Amount, o.Data.CurrencyCode)
		}
		tw.writef("%s\t%s\t%s\t%s\n", code, o.Status, price, outcomeNote(o))
	}
	return tw.finish()
}

func printPriceHistory(w io.Writer, changes []domain.PriceChange) error {
	tw := newTabWriter(w)
	tw.writef("WHEN\tMARKETPLACE\tPRICE\tSTATUS\tSUBMISSION\tERROR\n")
	for i := range changes {
		c := &changes[i]
		tw.writef("%s\t%s\t%.2f %s\t%s\t%s\t%s\n",
			c.CreatedAt.Local().Format(timeLayout),
			c.Marketplace,
			c.Amount, c.Currency,
			c.Status,
			c.SubmissionID,
			truncate(c.Error, 40),
		)
	}
	return tw.finish()
}

func printSubmission(w io.Writer, s *amazon.ListingSubmission) error {
	tw := newTabWriter(w)
	tw.writef("SKU:\t%s\n", s.SKU)
	tw.writef("Status:\t%s\n", s.Status)
	tw.writef("Submission:\t%s\n", s.SubmissionID)
	if asin := s.ASIN(); asin != "" {
		tw.writef("ASIN:\t%s\n", asin)
	}
	for _, issue := range s.Issues {
		tw.writef("Issue:\t[%s] %s %s\n", issue.Severity, issue.Code, truncate(issue.Message, 80))
	}
	return tw.finish()
}

func printBoard(w io.Writer, rows []console.BoardRow, codes []marketplace.Code) error {
	tw := newTabWriter(w)
	tw.writef("SKU\tPRODUCT")
	for _, code := range codes {
		tw.writef("\t%s", code)
	}
	tw.writef("\n")

	for i := range rows {
		row := &rows[i]
		tw.writef("%s\t%s", row.SKU, truncate(row.ProductName, 30))
		for _, code := range codes {
			o, ok := row.Marketplaces[code]
			cell := "-"
			switch {
			case !ok:
			case o.Status == fanout.StatusSuccess && o.Data != nil && o.Data.IsListed:
				cell = fmt.Sprintf("%.2f", o.Data.Price.Amount)
			case o.TokenError:
				cell = "token?"
			case o.Status == fanout.StatusError:
				cell = "error"
			default:
				cell = "unlisted"
			}
			tw.writef("\t%s", cell)
		}
		tw.writef("\n")
	}
	return tw.finish()
}

func printCampaigns(w io.Writer, code marketplace.Code, campaigns []amazon.Campaign) error {
	tw := newTabWriter(w)
	tw.writef("MARKETPLACE\tCAMPAIGN\tNAME\tSTATE\tTARGETING\tBUDGET\n")
	for i := range campaigns {
		c := &campaigns[i]
		budget := "-"
		if c.Budget != nil {
			budget = fmt.Sprintf("%.2f %s", c.Budget.Budget, c.Budget.BudgetType)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			code, c.CampaignID, truncate(c.Name, 40), c.State, c.TargetingType, budget)
	}
	return tw.finish()
}

func printAllCampaigns(w io.Writer, r fanout.Result[[]amazon.Campaign]) error {
	tw := newTabWriter(w)
	tw.writef("MARKETPLACE\tCAMPAIGN\tNAME\tSTATE\tNOTE\n")
	for _, code := range sortedCodes(r) {
		o := r[code]
		if o.Status != fanout.StatusSuccess || o.Data == nil {
			tw.writef("%s\t-\t-\t%s\t%s\n", code, o.Status, outcomeNote(o))
			continue
		}
		for _, c := range *o.Data {
			tw.writef("%s\t%s\t%s\t%s\t\n", code, c.CampaignID, truncate(c.Name, 40), c.State)
		}
	}
	return tw.finish()
}

func printBudgetUsage(w io.Writer, r fanout.Result[amazon.BudgetUsageResult]) error {
	tw := newTabWriter(w)
	tw.writef("MARKETPLACE\tCAMPAIGN\tBUDGET\tUSED %%\tNOTE\n")
	for _, code := range sortedCodes(r) {
		o := r[code]
		if o.Status != fanout.StatusSuccess || o.Data == nil {
			tw.writef("%s\t-\t-\t-\t%s\n", code, outcomeNote(o))
			continue
		}
		for _, u := range o.Data.Success {
			tw.writef("%s\t%s\t%.2f\t%.1f\t\n", code, u.CampaignID, u.Budget, u.BudgetUsagePercent)
		}
		for _, e := range o.Data.Error {
			tw.writef("%s\t%s\t-\t-\t%s\n", code, e.CampaignID, truncate(e.Code+": "+e.Details, 50))
		}
	}
	return tw.finish()
}

func printSKUs(w io.Writer, skus []domain.SKU) error {
	tw := newTabWriter(w)
	tw.writef("SKU\tPRODUCT\tASIN\tACTIVE\n")
	for i := range skus {
		s := &skus[i]
		asin := s.ASIN
		if asin == "" {
			asin = "-"
		}
		tw.writef("%s\t%s\t%s\t%v\n", s.Code, truncate(s.ProductName, 40), asin, s.Active)
	}
	return tw.finish()
}
