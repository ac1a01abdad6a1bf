package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/sponsorlink/payments/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sponsorlink/payments/services/payments PaymentRepo

// PaymentRepo defines persistence for payment requests, the transaction
// ledger and user aggregates.
type PaymentRepo interface {
	// GetNotification loads a notification with its embedded payment
	// request, if any.
	GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error)

	// CreatePaymentRequest attaches a pending payment request to the
	// notification.
	CreatePaymentRequest(ctx context.Context, pr *models.PaymentRequest) error

	// GetPaymentRequestByOrderID resolves a payment request by its gateway
	// order id. Returns ErrRequestNotFound when absent; no fallback lookup.
	GetPaymentRequestByOrderID(ctx context.Context, orderID string) (*models.PaymentRequest, error)

	// CompleteSettlement applies the full settlement atomically: status
	// transition, one ledger entry per counterparty, aggregate increments
	// and confirmation notifications. The completed-check is re-evaluated
	// under the row lock; when the request is already completed the prior
	// result is returned with alreadySettled=true and nothing is written.
	CompleteSettlement(ctx context.Context, settlement *models.Settlement) (result *models.SettlementResult, alreadySettled bool, err error)

	// MarkPaymentFailed transitions a still-pending payment request to
	// failed. Completed requests are never downgraded.
	MarkPaymentFailed(ctx context.Context, orderID string) error

	// GetUserPayoutDetails loads a user's payout information.
	GetUserPayoutDetails(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
