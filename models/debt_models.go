package models

import (
	// Go Internal Packages
	"time"

	// External Packages
	"github.com/shopspring/decimal"
)

// Direction tells whether the user owes money (PAYABLE) or is owed money
// (RECEIVABLE) in a debt relationship.
type Direction string

const (
	Payable    Direction = "PAYABLE"
	Receivable Direction = "RECEIVABLE"
)

// Role tells whether a transaction creates a debt or reduces one. Interest
// transactions carry the settlement role: they move money against an existing
// debt but never create principal.
type Role string

const (
	RoleOriginal   Role = "ORIGINAL"
	RoleSettlement Role = "SETTLEMENT"
)

// DebtStatus is the coarse payment state of a summary.
type DebtStatus string

const (
	StatusUnpaid  DebtStatus = "UNPAID"
	StatusPartial DebtStatus = "PARTIAL"
	StatusPaid    DebtStatus = "PAID"
)

// CounterParty is the other person in a debt relationship. The ID is stable
// across transactions; many transactions may reference the same person.
type CounterParty struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Initial string `json:"initial"`
}

// DebtMetadata explains a transaction's role relative to an earlier debt.
type DebtMetadata struct {
	IsPartialPayment bool   `json:"is_partial_payment"`
	OriginalDebtID   string `json:"original_debt_id,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// PaymentRecord is one settlement seen from a summary's payment history.
// Derived on every aggregation pass, never persisted.
type PaymentRecord struct {
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	TransactionID string          `json:"transaction_id"`
}

// GroupKey identifies one debt relationship: a counter-party in one direction.
type GroupKey struct {
	CounterPartyID string
	Direction      Direction
}

// DebtSummary is the fully derived view of all transactions for one
// counter-party and direction. Remaining keeps its true signed value so an
// overpayment stays distinguishable from an exact payoff.
type DebtSummary struct {
	DebtID              string          `json:"debt_id"`
	CounterPartyID      string          `json:"counter_party_id"`
	CounterPartyName    string          `json:"counter_party_name"`
	Direction           Direction       `json:"direction"`
	OriginalTransaction Transaction     `json:"original_transaction"`
	Settlements         []Transaction   `json:"settlements"`
	Total               decimal.Decimal `json:"total"`
	Paid                decimal.Decimal `json:"paid"`
	Remaining           decimal.Decimal `json:"remaining"`
	IsPaid              bool            `json:"is_paid"`
	Status              DebtStatus      `json:"status"`
	Progress            float64         `json:"progress"`
	Currency            string          `json:"currency"`
	PaymentHistory      []PaymentRecord `json:"payment_history"`
	LastPaymentDate     time.Time       `json:"last_payment_date,omitempty"`
	HasRecentActivity   bool            `json:"has_recent_activity"`
}

// DebtOverview is the immutable snapshot the orchestrator publishes after
// every recomputation.
type DebtOverview struct {
	WalletID              string          `json:"wallet_id,omitempty"`
	CurrencySymbol        string          `json:"currency_symbol"`
	Payable               []DebtSummary   `json:"payable"`
	Receivable            []DebtSummary   `json:"receivable"`
	UnpaidPayable         []DebtSummary   `json:"unpaid_payable"`
	PaidPayable           []DebtSummary   `json:"paid_payable"`
	UnpaidReceivable      []DebtSummary   `json:"unpaid_receivable"`
	PaidReceivable        []DebtSummary   `json:"paid_receivable"`
	TotalPayable          decimal.Decimal `json:"total_payable"`
	TotalReceivable       decimal.Decimal `json:"total_receivable"`
	TotalUnpaidPayable    decimal.Decimal `json:"total_unpaid_payable"`
	TotalUnpaidReceivable decimal.Decimal `json:"total_unpaid_receivable"`
	UnpaidPayableCount    int             `json:"unpaid_payable_count"`
	UnpaidReceivableCount int             `json:"unpaid_receivable_count"`
	GeneratedAt           time.Time       `json:"generated_at"`
}
