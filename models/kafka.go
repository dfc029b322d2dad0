package models

import (
	// Go Internal Packages
	"time"
)

type Record struct {
	Key   []byte
	Value []byte
	Topic string
}

// ChangeEvent announces that the transaction or wallet collection changed
// and the derived summaries must be recomputed.
type ChangeEvent struct {
	Entity    string    `json:"entity"` // "transaction" or "wallet"
	EntityID  string    `json:"entity_id"`
	WalletID  string    `json:"wallet_id,omitempty"`
	Op        string    `json:"op"` // "create", "update", "delete"
	Timestamp time.Time `json:"timestamp"`
}
