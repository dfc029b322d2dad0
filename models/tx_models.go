package models

import (
	// Go Internal Packages
	"time"

	// External Packages
	"github.com/shopspring/decimal"
)

// FlowType is the cash direction of a transaction as recorded by the wallet.
type FlowType string

const (
	Inflow  FlowType = "INFLOW"
	Outflow FlowType = "OUTFLOW"
)

// Transaction is the read-only view of a stored transaction. Amount is a
// non-negative magnitude; Flow carries the sign. RawParties and RawMetadata
// hold encoded blobs that only the ledger codec may interpret.
type Transaction struct {
	ID            string          `json:"transaction_id"`
	WalletID      string          `json:"wallet_id"`
	Flow          FlowType        `json:"flow"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Timestamp     time.Time       `json:"timestamp"`
	Description   string          `json:"description"`
	CategoryTag   string          `json:"category_tag"`
	RawParties    string          `json:"with_parties,omitempty"`
	RawMetadata   string          `json:"debt_metadata,omitempty"`
	DebtReference string          `json:"debt_reference,omitempty"`
}

type Wallet struct {
	ID             string `json:"wallet_id"`
	Name           string `json:"name"`
	CurrencyCode   string `json:"currency_code"`
	CurrencySymbol string `json:"currency_symbol"`
}

// MongoTransaction is the storage form of Transaction. Amounts are kept as
// strings so no precision is lost between writes and reads.
type MongoTransaction struct {
	ID            string    `json:"transaction_id" bson:"_id"`
	WalletID      string    `json:"wallet_id" bson:"wallet_id"`
	Flow          string    `json:"flow" bson:"flow"`
	Amount        string    `json:"amount" bson:"amount"`
	Currency      string    `json:"currency" bson:"currency"`
	Timestamp     time.Time `json:"timestamp" bson:"timestamp"`
	Description   string    `json:"description" bson:"description"`
	CategoryTag   string    `json:"category_tag" bson:"category_tag"`
	RawParties    string    `json:"with_parties,omitempty" bson:"with_parties,omitempty"`
	RawMetadata   string    `json:"debt_metadata,omitempty" bson:"debt_metadata,omitempty"`
	DebtReference string    `json:"debt_reference,omitempty" bson:"debt_reference,omitempty"`
}

func (t *MongoTransaction) Transform() (Transaction, error) {
	amount, err := decimal.NewFromString(t.Amount)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:            t.ID,
		WalletID:      t.WalletID,
		Flow:          FlowType(t.Flow),
		Amount:        amount,
		Currency:      t.Currency,
		Timestamp:     t.Timestamp,
		Description:   t.Description,
		CategoryTag:   t.CategoryTag,
		RawParties:    t.RawParties,
		RawMetadata:   t.RawMetadata,
		DebtReference: t.DebtReference,
	}, nil
}

type MongoWallet struct {
	ID             string `json:"wallet_id" bson:"_id"`
	Name           string `json:"name" bson:"name"`
	CurrencyCode   string `json:"currency_code" bson:"currency_code"`
	CurrencySymbol string `json:"currency_symbol" bson:"currency_symbol"`
}

func (w *MongoWallet) Transform() Wallet {
	return Wallet{
		ID:             w.ID,
		Name:           w.Name,
		CurrencyCode:   w.CurrencyCode,
		CurrencySymbol: w.CurrencySymbol,
	}
}
