package payments

import (
	"context"

	"github.com/sponsorlink/payments/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/sponsorlink/payments/services/payments PaymentGateway,GatewayRegistry

// PaymentGateway is the uniform boundary to an external payment provider.
// Implementations perform network calls only and hold no local state.
type PaymentGateway interface {
	// Name identifies the gateway variant.
	Name() models.GatewayKind

	// CreateOrder creates an order/intent with the provider.
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.GatewayOrder, error)

	// FetchTransaction fetches and normalizes the provider's view of a
	// transaction.
	FetchTransaction(ctx context.Context, transactionID string) (*models.GatewayTransaction, error)
}

// SignatureVerifier is implemented by gateways that sign the
// (order id, transaction id) pair, letting claims be authenticated without
// a status fetch. Verification is local and constant-time.
type SignatureVerifier interface {
	VerifySignature(orderID, transactionID, signature string) bool
}

// GatewayRegistry resolves the adapter for a gateway kind. Built once at
// startup from configuration and injected where needed.
type GatewayRegistry interface {
	Get(kind models.GatewayKind) (PaymentGateway, error)
}
