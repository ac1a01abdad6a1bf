package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/sponsorlink/payments/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sponsorlink/payments/services/payments PaymentUseCase,EventPublisher

// PaymentUseCase defines the settlement engine operations
type PaymentUseCase interface {
	// CreateOrder opens a checkout with the chosen gateway and persists a
	// pending payment request on the notification.
	CreateOrder(ctx context.Context, payerID, notificationID uuid.UUID, amount float64, gateway models.GatewayKind) (*models.PaymentOrder, error)

	// Settle authenticates a payment claim against its gateway and, exactly
	// once per real payment, records the settlement in both ledgers.
	Settle(ctx context.Context, claim *models.PaymentClaim) (*models.SettlementResult, error)

	// HandleWebhook verifies and processes an out-of-band gateway event.
	// The result is nil when the event type is recognized but ignored.
	HandleWebhook(ctx context.Context, gateway models.GatewayKind, payload []byte, signature string) (*models.SettlementResult, error)

	// PaymentStatus reports the payment state for a notification.
	PaymentStatus(ctx context.Context, notificationID uuid.UUID) (models.PaymentStatus, error)

	// RecipientDetails returns the payee's payout details for a direct
	// transfer, visible only to the notification's sponsor.
	RecipientDetails(ctx context.Context, requesterID, notificationID uuid.UUID) (*models.RecipientDetails, error)

	// PaymentConfig reports the marketplace payment policy.
	PaymentConfig() models.PaymentConfig
}

// EventPublisher publishes settlement events for downstream consumers
type EventPublisher interface {
	Publish(subject string, message interface{}) error
}
