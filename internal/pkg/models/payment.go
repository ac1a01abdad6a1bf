package models

import (
	"time"

	"github.com/google/uuid"
)

// GatewayKind identifies a payment gateway integration
type GatewayKind string

const (
	GatewayStripe   GatewayKind = "stripe"
	GatewayCashfree GatewayKind = "cashfree"
	GatewayRazorpay GatewayKind = "razorpay"
)

// PaymentStatus represents the lifecycle state of a payment request
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentRequest is the payment state embedded on a notification. It is
// created when the payer initiates checkout and only ever mutated by the
// settlement engine or webhook receiver; it is never deleted and serves as
// the audit trail on its parent notification.
type PaymentRequest struct {
	NotificationID uuid.UUID     `json:"notification_id" db:"id"`
	OrderID        string        `json:"order_id" db:"payment_order_id"`
	Gateway        GatewayKind   `json:"gateway" db:"payment_gateway"`
	SessionID      string        `json:"session_id,omitempty" db:"payment_session_id"`
	Amount         float64       `json:"amount" db:"payment_amount"`
	Status         PaymentStatus `json:"status" db:"payment_status"`
	CreatedAt      time.Time     `json:"created_at" db:"payment_created_at"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty" db:"payment_completed_at"`
	TransactionID  string        `json:"transaction_id,omitempty" db:"payment_transaction_id"`

	// Counterparties resolved from the parent notification: the sponsor
	// pays, the seeker receives.
	PayerID uuid.UUID `json:"payer_id" db:"to_user_id"`
	PayeeID uuid.UUID `json:"payee_id" db:"from_user_id"`
}

// PaymentClaim is a caller-supplied assertion that a payment happened. It is
// authenticated against the gateway before any state changes; the claimed
// amount is never used for ledger writes.
type PaymentClaim struct {
	OrderID       string  `json:"order_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Signature     string  `json:"signature,omitempty"`
}

// PaymentOrder is returned to the payer to start a gateway checkout
type PaymentOrder struct {
	OrderID     string      `json:"order_id"`
	ClientToken string      `json:"client_token"`
	Gateway     GatewayKind `json:"gateway"`
	Amount      float64     `json:"amount"`
	Currency    string      `json:"currency"`
}

// Settlement carries the gateway-verified facts applied in the settlement
// transaction.
type Settlement struct {
	OrderID       string
	TransactionID string
	Amount        float64
	Method        string
	CompletedAt   time.Time
}

// SettlementResult is the outcome of a settlement attempt
type SettlementResult struct {
	OrderID        string        `json:"order_id"`
	TransactionID  string        `json:"transaction_id"`
	Amount         float64       `json:"amount"`
	Method         string        `json:"method"`
	Status         PaymentStatus `json:"status"`
	CompletedAt    time.Time     `json:"completed_at"`
	AlreadySettled bool          `json:"already_settled"`
}

// SettlementEvent is published after a settlement commits
type SettlementEvent struct {
	OrderID       string    `json:"order_id"`
	TransactionID string    `json:"transaction_id"`
	PayerID       string    `json:"payer_id"`
	PayeeID       string    `json:"payee_id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Timestamp     time.Time `json:"timestamp"`
}
