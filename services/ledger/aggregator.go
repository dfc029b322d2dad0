package ledger

import (
	// Go Internal Packages
	"sort"
	"time"

	// Local Packages
	models "debt-ledger/models"

	// External Packages
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// recentActivityWindow bounds how far back a settlement still counts as
// recent activity on a summary.
const recentActivityWindow = 30 * 24 * time.Hour

// Aggregator folds an unordered transaction set into per-person,
// per-direction debt summaries. The fold is pure and stateless: the same
// transaction set yields the same summary map regardless of input order.
type Aggregator struct {
	Logger *zap.Logger
	Codec  *Codec
	Refs   *ReferenceGenerator
	Now    func() time.Time
}

func NewAggregator(logger *zap.Logger, codec *Codec, refs *ReferenceGenerator) *Aggregator {
	return &Aggregator{Logger: logger, Codec: codec, Refs: refs, Now: time.Now}
}

type debtGroup struct {
	partyName   string
	originals   []models.Transaction
	settlements []models.Transaction
}

// Aggregate classifies every transaction, fans multi-party transactions out
// to each listed counter-party at full amount, groups by (counter-party,
// direction) and builds one summary per group. Unclassified or
// unattributable transactions are excluded, never fatal.
func (a *Aggregator) Aggregate(txs []models.Transaction) map[models.GroupKey]models.DebtSummary {
	groups := make(map[models.GroupKey]*debtGroup)

	for _, tx := range txs {
		direction, role, ok := Classify(tx.CategoryTag)
		if !ok {
			continue
		}

		parties := a.Codec.DecodeParties(tx.RawParties)
		if len(parties) == 0 {
			// Debt-tagged but unattributable. Expected for partially
			// tagged rows, so not reported as an error.
			a.Logger.Debug("debt transaction without counter-parties", zap.String("transaction_id", tx.ID))
			continue
		}

		for _, party := range parties {
			if party.ID == "" {
				continue
			}
			key := models.GroupKey{CounterPartyID: party.ID, Direction: direction}
			group, found := groups[key]
			if !found {
				group = &debtGroup{partyName: party.Name}
				groups[key] = group
			}
			if group.partyName == "" {
				group.partyName = party.Name
			}
			if role == models.RoleOriginal {
				group.originals = append(group.originals, tx)
			} else {
				group.settlements = append(group.settlements, tx)
			}
		}
	}

	summaries := make(map[models.GroupKey]models.DebtSummary, len(groups))
	for key, group := range groups {
		summaries[key] = a.buildSummary(key, group)
	}
	return summaries
}

func (a *Aggregator) buildSummary(key models.GroupKey, group *debtGroup) models.DebtSummary {
	sortByTimestamp(group.originals)
	sortByTimestamp(group.settlements)

	total := sumAmounts(group.originals)
	paid := sumAmounts(group.settlements)
	remaining := total.Sub(paid)

	var original models.Transaction
	if len(group.originals) > 0 {
		original = group.originals[0]
	} else {
		original = a.placeholderOriginal(key, group)
	}

	debtID := original.DebtReference
	if debtID == "" {
		// Derived, not generated: summaries are rebuilt on every pass and
		// two passes over the same ledger must agree on every field.
		debtID = a.Refs.Derive(key.CounterPartyID, original.Timestamp.UnixMilli(), string(key.Direction))
	}

	var lastPayment time.Time
	if n := len(group.settlements); n > 0 {
		lastPayment = group.settlements[n-1].Timestamp
	}

	isPaid := remaining.Sign() <= 0

	return models.DebtSummary{
		DebtID:              debtID,
		CounterPartyID:      key.CounterPartyID,
		CounterPartyName:    group.partyName,
		Direction:           key.Direction,
		OriginalTransaction: original,
		Settlements:         group.settlements,
		Total:               total,
		Paid:                paid,
		Remaining:           remaining,
		IsPaid:              isPaid,
		Status:              debtStatus(paid, isPaid),
		Progress:            progress(total, paid),
		Currency:            original.Currency,
		PaymentHistory:      paymentHistory(group.settlements),
		LastPaymentDate:     lastPayment,
		HasRecentActivity:   a.hasRecentActivity(group.settlements),
	}
}

// placeholderOriginal synthesizes a zero-amount originating transaction for
// settlement-only groups so a summary can still be built. It borrows the
// wallet, currency and timestamp of the earliest settlement.
func (a *Aggregator) placeholderOriginal(key models.GroupKey, group *debtGroup) models.Transaction {
	tag := TagLoan
	flow := models.Inflow
	if key.Direction == models.Receivable {
		tag = TagDebt
		flow = models.Outflow
	}

	placeholder := models.Transaction{
		Flow:        flow,
		Amount:      decimal.Zero,
		CategoryTag: tag,
	}
	if len(group.settlements) > 0 {
		first := group.settlements[0]
		placeholder.WalletID = first.WalletID
		placeholder.Currency = first.Currency
		placeholder.Timestamp = first.Timestamp
	}
	return placeholder
}

func (a *Aggregator) hasRecentActivity(settlements []models.Transaction) bool {
	cutoff := a.Now().Add(-recentActivityWindow)
	for _, tx := range settlements {
		if tx.Timestamp.After(cutoff) {
			return true
		}
	}
	return false
}

func debtStatus(paid decimal.Decimal, isPaid bool) models.DebtStatus {
	switch {
	case isPaid:
		return models.StatusPaid
	case paid.Sign() > 0:
		return models.StatusPartial
	default:
		return models.StatusUnpaid
	}
}

func progress(total, paid decimal.Decimal) float64 {
	if total.Sign() <= 0 {
		return 0
	}
	ratio, _ := paid.Div(total).Float64()
	return ratio
}

func paymentHistory(settlements []models.Transaction) []models.PaymentRecord {
	if len(settlements) == 0 {
		return nil
	}
	// Settlements arrive oldest-first; the history reads newest-first.
	records := make([]models.PaymentRecord, 0, len(settlements))
	for i := len(settlements) - 1; i >= 0; i-- {
		tx := settlements[i]
		records = append(records, models.PaymentRecord{
			Date:          tx.Timestamp,
			Amount:        tx.Amount,
			Description:   tx.Description,
			TransactionID: tx.ID,
		})
	}
	return records
}

func sumAmounts(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

// sortByTimestamp orders transactions oldest-first, breaking timestamp ties
// by ID so aggregation stays deterministic for any input order.
func sortByTimestamp(txs []models.Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].Timestamp.Equal(txs[j].Timestamp) {
			return txs[i].ID < txs[j].ID
		}
		return txs[i].Timestamp.Before(txs[j].Timestamp)
	})
}
