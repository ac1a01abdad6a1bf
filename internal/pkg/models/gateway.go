package models

import "time"

// TransactionStatus is the normalized state of a gateway transaction
type TransactionStatus string

const (
	TransactionInitiated TransactionStatus = "initiated"
	TransactionCaptured  TransactionStatus = "captured"
	TransactionFailed    TransactionStatus = "failed"
)

// CreateOrderRequest is the gateway-agnostic input for creating an
// order/intent with a payment provider.
type CreateOrderRequest struct {
	Amount        float64
	Currency      string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	ReferenceID   string // internal correlation id carried in gateway metadata
}

// GatewayOrder is the provider's handle for a newly created order/intent
type GatewayOrder struct {
	OrderID     string
	ClientToken string // client secret / payment session id, opaque to us
}

// GatewayTransaction is the provider's view of a transaction, normalized
type GatewayTransaction struct {
	TransactionID string
	Status        TransactionStatus
	Amount        float64
	Method        string
	Timestamp     time.Time
}
