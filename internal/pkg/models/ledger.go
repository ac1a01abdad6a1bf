package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes the two sides of a settlement
type TransactionType string

const (
	TransactionSent     TransactionType = "sent"
	TransactionReceived TransactionType = "received"
)

// Transaction is an immutable ledger entry recording money having moved,
// from one user's point of view. Entries are appended by the settlement
// engine and never edited or removed.
type Transaction struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	UserID             uuid.UUID       `json:"user_id" db:"user_id"`
	Type               TransactionType `json:"type" db:"type"`
	Amount             float64         `json:"amount" db:"amount"`
	Status             string          `json:"status" db:"status"`
	CounterpartyID     uuid.UUID       `json:"counterparty_id" db:"counterparty_id"`
	TransactionID      string          `json:"transaction_id" db:"transaction_id"`
	PaymentMethod      string          `json:"payment_method" db:"payment_method"`
	VerificationStatus string          `json:"verification_status" db:"verification_status"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
}
