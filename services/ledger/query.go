package ledger

import (
	// Go Internal Packages
	"sort"

	// Local Packages
	models "debt-ledger/models"
	utils "debt-ledger/utils"

	// External Packages
	"github.com/shopspring/decimal"
)

// FilterOptions are AND-combined. Turning both Include toggles off selects
// nothing, which is a valid (empty) result rather than an error. Amount
// bounds are inclusive and apply to the remaining amount.
type FilterOptions struct {
	IncludePaid   bool
	IncludeUnpaid bool
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	SearchQuery   string
}

// DefaultFilterOptions selects every summary.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{IncludePaid: true, IncludeUnpaid: true}
}

type SortBy string

const (
	SortAmountAsc  SortBy = "AMOUNT_ASC"
	SortAmountDesc SortBy = "AMOUNT_DESC"
	SortNameAsc    SortBy = "NAME_ASC"
	SortNameDesc   SortBy = "NAME_DESC"
	SortDateAsc    SortBy = "DATE_ASC"
	SortDateDesc   SortBy = "DATE_DESC"
)

// Filter selects the summaries matching opts, preserving input order.
func Filter(summaries []models.DebtSummary, opts FilterOptions) []models.DebtSummary {
	filtered := make([]models.DebtSummary, 0, len(summaries))
	for _, summary := range summaries {
		if summary.IsPaid && !opts.IncludePaid {
			continue
		}
		if !summary.IsPaid && !opts.IncludeUnpaid {
			continue
		}
		if opts.MinAmount != nil && summary.Remaining.LessThan(*opts.MinAmount) {
			continue
		}
		if opts.MaxAmount != nil && summary.Remaining.GreaterThan(*opts.MaxAmount) {
			continue
		}
		if !utils.ContainsFold(summary.CounterPartyName, opts.SearchQuery) {
			continue
		}
		filtered = append(filtered, summary)
	}
	return filtered
}

// Sort returns a reordered copy of summaries. Ties keep their input order.
// Date sorting uses the last payment date; summaries with no payment yet
// sort before any dated summary ascending and after all of them descending.
func Sort(summaries []models.DebtSummary, sortBy SortBy) []models.DebtSummary {
	sorted := make([]models.DebtSummary, len(summaries))
	copy(sorted, summaries)

	var less func(i, j int) bool
	switch sortBy {
	case SortAmountAsc:
		less = func(i, j int) bool { return sorted[i].Remaining.LessThan(sorted[j].Remaining) }
	case SortAmountDesc:
		less = func(i, j int) bool { return sorted[i].Remaining.GreaterThan(sorted[j].Remaining) }
	case SortNameAsc:
		less = func(i, j int) bool { return sorted[i].CounterPartyName < sorted[j].CounterPartyName }
	case SortNameDesc:
		less = func(i, j int) bool { return sorted[i].CounterPartyName > sorted[j].CounterPartyName }
	case SortDateAsc:
		less = func(i, j int) bool { return paymentDateBefore(sorted[i], sorted[j]) }
	case SortDateDesc:
		less = func(i, j int) bool { return paymentDateBefore(sorted[j], sorted[i]) }
	default:
		return sorted
	}

	sort.SliceStable(sorted, less)
	return sorted
}

// paymentDateBefore orders never-paid summaries ahead of any dated one; the
// descending caller flips the arguments, which puts them after all dated
// summaries there.
func paymentDateBefore(a, b models.DebtSummary) bool {
	if a.LastPaymentDate.IsZero() {
		return !b.LastPaymentDate.IsZero()
	}
	if b.LastPaymentDate.IsZero() {
		return false
	}
	return a.LastPaymentDate.Before(b.LastPaymentDate)
}
