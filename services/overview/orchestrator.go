package overview

import (
	// Go Internal Packages
	"context"
	"sort"
	"sync"
	"time"

	// Local Packages
	errors "debt-ledger/errors"
	models "debt-ledger/models"
	currency "debt-ledger/services/currency"
	ledger "debt-ledger/services/ledger"

	// External Packages
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TxStore interface {
	GetAll(ctx context.Context) ([]models.Transaction, error)
	GetForWallet(ctx context.Context, walletID string) ([]models.Transaction, error)
}

type WalletStore interface {
	GetWallets(ctx context.Context) ([]models.Wallet, error)
}

type SnapshotPublisher interface {
	Publish(ctx context.Context, overview models.DebtOverview) error
}

// Orchestrator owns the active wallet scope and filter state, recomputes the
// debt overview whenever the upstream data changes and keeps the latest
// snapshot in a single slot. A failed refresh reports its error but leaves
// the previous snapshot readable.
type Orchestrator struct {
	Logger        *zap.Logger
	TxStore       TxStore
	Wallets       WalletStore
	Aggregator    *ledger.Aggregator
	Publisher     SnapshotPublisher
	Convert       currency.ConvertFunc
	DefaultSymbol string
	Now           func() time.Time

	mu       sync.Mutex
	walletID string
	filter   ledger.FilterOptions
	sortBy   ledger.SortBy
	seq      uint64
	current  *models.DebtOverview
	lastErr  error
}

func NewOrchestrator(logger *zap.Logger, txStore TxStore, wallets WalletStore, aggregator *ledger.Aggregator, defaultSymbol string) *Orchestrator {
	return &Orchestrator{
		Logger:        logger,
		TxStore:       txStore,
		Wallets:       wallets,
		Aggregator:    aggregator,
		DefaultSymbol: defaultSymbol,
		Now:           time.Now,
		filter:        ledger.DefaultFilterOptions(),
		sortBy:        ledger.SortAmountDesc,
	}
}

// SetWallet changes the wallet scope (empty means all wallets) and
// recomputes.
func (o *Orchestrator) SetWallet(ctx context.Context, walletID string) error {
	o.mu.Lock()
	o.walletID = walletID
	o.mu.Unlock()
	return o.Refresh(ctx)
}

// SetFilter replaces the active filter and sort order and recomputes.
func (o *Orchestrator) SetFilter(ctx context.Context, opts ledger.FilterOptions, sortBy ledger.SortBy) error {
	o.mu.Lock()
	o.filter = opts
	o.sortBy = sortBy
	o.mu.Unlock()
	return o.Refresh(ctx)
}

// ClearFilter restores the default all-inclusive filter and recomputes.
func (o *Orchestrator) ClearFilter(ctx context.Context) error {
	return o.SetFilter(ctx, ledger.DefaultFilterOptions(), ledger.SortAmountDesc)
}

// Current returns the latest published snapshot. ok is false before the
// first successful refresh.
func (o *Orchestrator) Current() (models.DebtOverview, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil {
		return models.DebtOverview{}, false
	}
	return *o.current, true
}

// LastErr returns the error of the most recent refresh, nil after a
// successful one.
func (o *Orchestrator) LastErr() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

// Refresh refetches both stores, reruns the aggregation and query pipeline
// and publishes a new snapshot. Concurrent refreshes resolve last-write-wins:
// only the newest invocation may install its result.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	o.mu.Lock()
	o.seq++
	gen := o.seq
	walletID := o.walletID
	filter := o.filter
	sortBy := o.sortBy
	o.mu.Unlock()

	var txs []models.Transaction
	var err error
	if walletID == "" {
		txs, err = o.TxStore.GetAll(ctx)
	} else {
		txs, err = o.TxStore.GetForWallet(ctx, walletID)
	}
	if err != nil {
		return o.fail(gen, errors.StoreUnavailableErr("transaction", err))
	}

	wallets, err := o.Wallets.GetWallets(ctx)
	if err != nil {
		return o.fail(gen, errors.StoreUnavailableErr("wallet", err))
	}

	snapshot := o.build(walletID, filter, sortBy, txs, wallets)

	o.mu.Lock()
	superseded := gen != o.seq
	if !superseded {
		o.current = &snapshot
		o.lastErr = nil
	}
	o.mu.Unlock()
	if superseded {
		return nil
	}

	if o.Publisher != nil {
		if err := o.Publisher.Publish(ctx, snapshot); err != nil {
			// Publishing is best effort; the in-memory slot is current.
			o.Logger.Error("failed to publish overview snapshot", zap.Error(err))
		}
	}
	return nil
}

func (o *Orchestrator) fail(gen uint64, err error) error {
	o.mu.Lock()
	if gen == o.seq {
		// Keep the stale snapshot; stale-but-valid beats a blank view.
		o.lastErr = err
	}
	o.mu.Unlock()
	o.Logger.Error("debt overview refresh failed", zap.Error(err))
	return err
}

func (o *Orchestrator) build(walletID string, filter ledger.FilterOptions, sortBy ledger.SortBy, txs []models.Transaction, wallets []models.Wallet) models.DebtOverview {
	summaries := o.Aggregator.Aggregate(txs)

	var payable, receivable []models.DebtSummary
	for _, summary := range summaries {
		if summary.Direction == models.Payable {
			payable = append(payable, summary)
		} else {
			receivable = append(receivable, summary)
		}
	}
	// The summary map has no iteration order; anchor the base order by
	// counter-party so the stable sort below resolves ties identically on
	// every recomputation.
	sortByCounterParty(payable)
	sortByCounterParty(receivable)

	// Totals cover the whole scope; the filter only narrows the displayed
	// collections.
	activeWallet := findWallet(wallets, walletID)
	targetCurrency := ""
	if activeWallet != nil {
		targetCurrency = activeWallet.CurrencyCode
	} else if len(wallets) > 0 {
		targetCurrency = wallets[0].CurrencyCode
	}

	totalPayable := o.sumRemaining(payable, targetCurrency, nil)
	totalReceivable := o.sumRemaining(receivable, targetCurrency, nil)
	unpaidOnly := func(s models.DebtSummary) bool { return !s.IsPaid }
	totalUnpaidPayable := o.sumRemaining(payable, targetCurrency, unpaidOnly)
	totalUnpaidReceivable := o.sumRemaining(receivable, targetCurrency, unpaidOnly)
	unpaidPayableCount := countUnpaid(payable)
	unpaidReceivableCount := countUnpaid(receivable)

	payable = ledger.Sort(ledger.Filter(payable, filter), sortBy)
	receivable = ledger.Sort(ledger.Filter(receivable, filter), sortBy)

	unpaidPayable, paidPayable := partitionPaid(payable)
	unpaidReceivable, paidReceivable := partitionPaid(receivable)

	symbol := o.DefaultSymbol
	if activeWallet != nil {
		symbol = activeWallet.CurrencySymbol
	} else if len(wallets) > 0 {
		symbol = wallets[0].CurrencySymbol
	}

	return models.DebtOverview{
		WalletID:              walletID,
		CurrencySymbol:        symbol,
		Payable:               payable,
		Receivable:            receivable,
		UnpaidPayable:         unpaidPayable,
		PaidPayable:           paidPayable,
		UnpaidReceivable:      unpaidReceivable,
		PaidReceivable:        paidReceivable,
		TotalPayable:          totalPayable,
		TotalReceivable:       totalReceivable,
		TotalUnpaidPayable:    totalUnpaidPayable,
		TotalUnpaidReceivable: totalUnpaidReceivable,
		UnpaidPayableCount:    unpaidPayableCount,
		UnpaidReceivableCount: unpaidReceivableCount,
		GeneratedAt:           o.Now(),
	}
}

// sumRemaining adds the remaining amounts of the summaries accepted by keep,
// converting into targetCurrency when a converter is wired. An unknown
// currency keeps the original amount unconverted.
func (o *Orchestrator) sumRemaining(summaries []models.DebtSummary, targetCurrency string, keep func(models.DebtSummary) bool) decimal.Decimal {
	total := decimal.Zero
	for _, summary := range summaries {
		if keep != nil && !keep(summary) {
			continue
		}
		amount := summary.Remaining
		if o.Convert != nil && targetCurrency != "" && summary.Currency != "" {
			converted, ok := o.Convert(amount, summary.Currency, targetCurrency)
			if ok {
				amount = converted
			} else {
				o.Logger.Debug("no rate for currency, keeping original amount",
					zap.String("from", summary.Currency), zap.String("to", targetCurrency))
			}
		}
		total = total.Add(amount)
	}
	return total
}

func sortByCounterParty(summaries []models.DebtSummary) {
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CounterPartyID < summaries[j].CounterPartyID
	})
}

func partitionPaid(summaries []models.DebtSummary) (unpaid, paid []models.DebtSummary) {
	for _, summary := range summaries {
		if summary.IsPaid {
			paid = append(paid, summary)
		} else {
			unpaid = append(unpaid, summary)
		}
	}
	return unpaid, paid
}

func countUnpaid(summaries []models.DebtSummary) int {
	count := 0
	for _, summary := range summaries {
		if !summary.IsPaid {
			count++
		}
	}
	return count
}

func findWallet(wallets []models.Wallet, walletID string) *models.Wallet {
	if walletID == "" {
		return nil
	}
	for i := range wallets {
		if wallets[i].ID == walletID {
			return &wallets[i]
		}
	}
	return nil
}
