package ledger_test

import (
	// Go Internal Packages
	"testing"
	"time"

	// Local Packages
	models "debt-ledger/models"
	ledger "debt-ledger/services/ledger"

	// External Packages
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testAggregator() *ledger.Aggregator {
	logger := zap.NewNop()
	codec := ledger.NewCodec(logger)
	refs := ledger.NewReferenceGenerator(func() string { return "fixedsfx" })
	return ledger.NewAggregator(logger, codec, refs)
}

func parties(people ...models.CounterParty) string {
	return ledger.NewCodec(zap.NewNop()).EncodeParties(people)
}

func john() models.CounterParty {
	return models.CounterParty{ID: "john", Name: "John Doe", Initial: "J"}
}

func debtTx(id, tag string, amount int64, ts time.Time, rawParties string) models.Transaction {
	return models.Transaction{
		ID:          id,
		WalletID:    "w1",
		Amount:      decimal.NewFromInt(amount),
		Currency:    "VND",
		Timestamp:   ts,
		CategoryTag: tag,
		RawParties:  rawParties,
	}
}

func TestAggregate_SimpleDebtLifecycle(t *testing.T) {
	agg := testAggregator()
	withJohn := parties(john())

	summaries := agg.Aggregate([]models.Transaction{
		debtTx("t1", ledger.TagLoan, 1000, baseTime, withJohn),
		debtTx("t2", ledger.TagRepayment, 400, baseTime.AddDate(0, 0, 5), withJohn),
	})

	require.Len(t, summaries, 1)
	summary := summaries[models.GroupKey{CounterPartyID: "john", Direction: models.Payable}]
	assert.Equal(t, "John Doe", summary.CounterPartyName)
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.Paid.Equal(decimal.NewFromInt(400)))
	assert.True(t, summary.Remaining.Equal(decimal.NewFromInt(600)))
	assert.False(t, summary.IsPaid)
	assert.Equal(t, models.StatusPartial, summary.Status)
	assert.Equal(t, "t1", summary.OriginalTransaction.ID)
	assert.Equal(t, baseTime.AddDate(0, 0, 5), summary.LastPaymentDate)
	assert.InDelta(t, 0.4, summary.Progress, 1e-9)
}

func TestAggregate_FullSettlement(t *testing.T) {
	agg := testAggregator()
	withJohn := parties(john())

	summaries := agg.Aggregate([]models.Transaction{
		debtTx("t1", ledger.TagLoan, 1000, baseTime, withJohn),
		debtTx("t2", ledger.TagRepayment, 400, baseTime.AddDate(0, 0, 5), withJohn),
		debtTx("t3", ledger.TagRepayment, 600, baseTime.AddDate(0, 0, 9), withJohn),
	})

	summary := summaries[models.GroupKey{CounterPartyID: "john", Direction: models.Payable}]
	assert.True(t, summary.Remaining.IsZero())
	assert.True(t, summary.IsPaid)
	assert.Equal(t, models.StatusPaid, summary.Status)
}

func TestAggregate_MultiPartyFanOut(t *testing.T) {
	agg := testAggregator()
	shared := parties(
		models.CounterParty{ID: "alice", Name: "Alice", Initial: "A"},
		models.CounterParty{ID: "bob", Name: "Bob", Initial: "B"},
	)

	summaries := agg.Aggregate([]models.Transaction{
		debtTx("t1", ledger.TagDebt, 500, baseTime, shared),
	})

	require.Len(t, summaries, 2)
	for _, id := range []string{"alice", "bob"} {
		summary, found := summaries[models.GroupKey{CounterPartyID: id, Direction: models.Receivable}]
		require.True(t, found, id)
		// Full amount to each party, never a split.
		assert.True(t, summary.Total.Equal(decimal.NewFromInt(500)))
	}
}

func TestAggregate_SettlementWithoutOriginal(t *testing.T) {
	agg := testAggregator()

	summaries := agg.Aggregate([]models.Transaction{
		debtTx("t1", ledger.TagDebtCollection, 250, baseTime, parties(john())),
	})

	require.Len(t, summaries, 1)
	summary := summaries[models.GroupKey{CounterPartyID: "john", Direction: models.Receivable}]
	assert.True(t, summary.Total.IsZero())
	assert.True(t, summary.Paid.Equal(decimal.NewFromInt(250)))
	assert.True(t, summary.Remaining.Equal(decimal.NewFromInt(-250)))
	assert.True(t, summary.IsPaid)

	// The synthesized original carries the group's identity at zero amount.
	assert.True(t, summary.OriginalTransaction.Amount.IsZero())
	assert.Equal(t, ledger.TagDebt, summary.OriginalTransaction.CategoryTag)
	assert.Equal(t, "w1", summary.OriginalTransaction.WalletID)
	assert.Equal(t, "VND", summary.OriginalTransaction.Currency)
}

func TestAggregate_BothDirectionsForSameParty(t *testing.T) {
	agg := testAggregator()
	withJohn := parties(john())

	summaries := agg.Aggregate([]models.Transaction{
		debtTx("t1", ledger.TagLoan, 300, baseTime, withJohn),
		debtTx("t2", ledger.TagDebt, 200, baseTime.AddDate(0, 0, 1), withJohn),
	})

	require.Len(t, summaries, 2)
	payable := summaries[models.GroupKey{CounterPartyID: "john", Direction: models.Payable}]
	receivable := summaries[models.GroupKey{CounterPartyID: "john", Direction: models.Receivable}]
	assert.True(t, payable.Total.Equal(decimal.NewFromInt(300)))
	assert.True(t, receivable.Total.Equal(decimal.NewFromInt(200)))
}

func TestAggregate_InterestFoldsAsSettlement(t *testing.T) {
	agg := testAggregator()
	withJohn := parties(john())

	summaries := agg.Aggregate([]models.Transaction{
		debtTx("t1", ledger.TagLoan, 1000, baseTime, withJohn),
		debtTx("t2", ledger.TagPayInterest, 50, baseTime.AddDate(0, 0, 3), withJohn),
	})

	summary := summaries[models.GroupKey{CounterPartyID: "john", Direction: models.Payable}]
	// Interest reduces the balance without creating principal.
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.Paid.Equal(decimal.NewFromInt(50)))
	require.Len(t, summary.PaymentHistory, 1)
	assert.Equal(t, "t2", summary.PaymentHistory[0].TransactionID)
}

func TestAggregate_ExcludesUnclassifiedAndUnattributable(t *testing.T) {
	agg := testAggregator()

	summaries := agg.Aggregate([]models.Transaction{
		debtTx("t1", "GROCERIES", 80, baseTime, parties(john())),
		debtTx("t2", ledger.TagLoan, 100, baseTime, ""),
		debtTx("t3", ledger.TagLoan, 100, baseTime, `[{"id":`),
	})

	assert.Empty(t, summaries)
}

func TestAggregate_ZeroAmountSettlementIsNoOp(t *testing.T) {
	agg := testAggregator()
	withJohn := parties(john())

	base := []models.Transaction{
		debtTx("t1", ledger.TagLoan, 1000, baseTime, withJohn),
		debtTx("t2", ledger.TagRepayment, 400, baseTime.AddDate(0, 0, 5), withJohn),
	}
	withNoOp := append(append([]models.Transaction{}, base...),
		debtTx("t3", ledger.TagRepayment, 0, baseTime.AddDate(0, 0, 6), withJohn))

	key := models.GroupKey{CounterPartyID: "john", Direction: models.Payable}
	before := agg.Aggregate(base)[key]
	after := agg.Aggregate(withNoOp)[key]

	assert.True(t, before.Remaining.Equal(after.Remaining))
	assert.True(t, before.Paid.Equal(after.Paid))
	assert.Equal(t, before.IsPaid, after.IsPaid)
}

func TestAggregate_DeterministicForAnyInputOrder(t *testing.T) {
	agg := testAggregator()
	withJohn := parties(john())

	txs := []models.Transaction{
		debtTx("t1", ledger.TagLoan, 1000, baseTime, withJohn),
		debtTx("t2", ledger.TagRepayment, 400, baseTime.AddDate(0, 0, 5), withJohn),
		debtTx("t3", ledger.TagLoan, 250, baseTime.AddDate(0, 0, 2), withJohn),
		debtTx("t4", ledger.TagRepayment, 100, baseTime.AddDate(0, 0, 7), withJohn),
	}
	reversed := make([]models.Transaction, 0, len(txs))
	for i := len(txs) - 1; i >= 0; i-- {
		reversed = append(reversed, txs[i])
	}

	assert.Equal(t, agg.Aggregate(txs), agg.Aggregate(reversed))
}

func TestAggregate_PaymentHistoryNewestFirst(t *testing.T) {
	agg := testAggregator()
	withJohn := parties(john())

	summaries := agg.Aggregate([]models.Transaction{
		debtTx("t1", ledger.TagLoan, 1000, baseTime, withJohn),
		debtTx("t2", ledger.TagRepayment, 100, baseTime.AddDate(0, 0, 1), withJohn),
		debtTx("t3", ledger.TagRepayment, 200, baseTime.AddDate(0, 0, 3), withJohn),
		debtTx("t4", ledger.TagRepayment, 300, baseTime.AddDate(0, 0, 2), withJohn),
	})

	summary := summaries[models.GroupKey{CounterPartyID: "john", Direction: models.Payable}]
	require.Len(t, summary.PaymentHistory, 3)
	assert.Equal(t, "t3", summary.PaymentHistory[0].TransactionID)
	assert.Equal(t, "t4", summary.PaymentHistory[1].TransactionID)
	assert.Equal(t, "t2", summary.PaymentHistory[2].TransactionID)
	assert.Equal(t, baseTime.AddDate(0, 0, 3), summary.LastPaymentDate)
}

func TestAggregate_RecentActivityWindow(t *testing.T) {
	agg := testAggregator()
	agg.Now = func() time.Time { return baseTime.AddDate(0, 2, 0) }
	withJohn := parties(john())

	summaries := agg.Aggregate([]models.Transaction{
		debtTx("t1", ledger.TagLoan, 1000, baseTime, withJohn),
		debtTx("t2", ledger.TagRepayment, 100, baseTime.AddDate(0, 0, 1), withJohn),
	})
	summary := summaries[models.GroupKey{CounterPartyID: "john", Direction: models.Payable}]
	assert.False(t, summary.HasRecentActivity)

	agg.Now = func() time.Time { return baseTime.AddDate(0, 0, 10) }
	summaries = agg.Aggregate([]models.Transaction{
		debtTx("t1", ledger.TagLoan, 1000, baseTime, withJohn),
		debtTx("t2", ledger.TagRepayment, 100, baseTime.AddDate(0, 0, 1), withJohn),
	})
	summary = summaries[models.GroupKey{CounterPartyID: "john", Direction: models.Payable}]
	assert.True(t, summary.HasRecentActivity)
}

func TestAggregate_FallbackDebtIDStableAcrossPasses(t *testing.T) {
	logger := zap.NewNop()
	agg := ledger.NewAggregator(logger, ledger.NewCodec(logger), ledger.NewReferenceGenerator(nil))
	withJohn := parties(john())

	txs := []models.Transaction{debtTx("t1", ledger.TagLoan, 1000, baseTime, withJohn)}
	key := models.GroupKey{CounterPartyID: "john", Direction: models.Payable}

	// The original carries no reference, so the summary's DebtID is derived.
	// Rebuilding from the same ledger must derive the same one.
	first := agg.Aggregate(txs)[key]
	second := agg.Aggregate(txs)[key]
	assert.NotEmpty(t, first.DebtID)
	assert.Equal(t, first.DebtID, second.DebtID)
}

func TestAggregate_KeepsExistingDebtReference(t *testing.T) {
	agg := testAggregator()
	withJohn := parties(john())

	original := debtTx("t1", ledger.TagLoan, 1000, baseTime, withJohn)
	original.DebtReference = "DEBT_john_1700000000000_known"

	summaries := agg.Aggregate([]models.Transaction{original})
	summary := summaries[models.GroupKey{CounterPartyID: "john", Direction: models.Payable}]
	assert.Equal(t, "DEBT_john_1700000000000_known", summary.DebtID)
}
