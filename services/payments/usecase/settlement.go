package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
)

// settlementSubject is the NATS subject settlement events are published on
const settlementSubject = "payments.settled"

// PaymentUC implements the payments.PaymentUseCase interface
type PaymentUC struct {
	cfg       *models.Config
	repo      payments.PaymentRepo
	gateways  payments.GatewayRegistry
	publisher payments.EventPublisher
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(cfg *models.Config, repo payments.PaymentRepo, gateways payments.GatewayRegistry, publisher payments.EventPublisher) *PaymentUC {
	return &PaymentUC{
		cfg:       cfg,
		repo:      repo,
		gateways:  gateways,
		publisher: publisher,
	}
}

// Settle authenticates a payment claim and records the settlement exactly
// once. Duplicate claims for an already-completed payment return the prior
// result; they are never an error.
func (uc *PaymentUC) Settle(ctx context.Context, claim *models.PaymentClaim) (*models.SettlementResult, error) {
	if claim.OrderID == "" || claim.TransactionID == "" {
		return nil, payments.ErrRequestNotFound
	}

	pr, err := uc.repo.GetPaymentRequestByOrderID(ctx, claim.OrderID)
	if err != nil {
		return nil, err
	}

	// Fast path for redeliveries. The authoritative check runs again under
	// the row lock inside CompleteSettlement.
	if pr.Status == models.PaymentCompleted {
		return priorResult(pr), nil
	}

	gw, err := uc.gateways.Get(pr.Gateway)
	if err != nil {
		return nil, err
	}

	// Gateway I/O happens before any lock is taken
	verified, err := uc.authenticate(ctx, gw, claim)
	if err != nil {
		if errors.Is(err, payments.ErrVerificationFailed) || errors.Is(err, payments.ErrTransactionNotFound) {
			if markErr := uc.repo.MarkPaymentFailed(ctx, claim.OrderID); markErr != nil {
				logrus.WithError(markErr).WithField("order_id", claim.OrderID).
					Error("failed to mark payment failed")
			}
			return nil, fmt.Errorf("order %s: %w", claim.OrderID, payments.ErrVerificationFailed)
		}
		// Transient gateway errors surface to the caller untouched; no
		// state change, safe to retry.
		return nil, err
	}

	completedAt := verified.Timestamp
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	// The ledger records the gateway-verified amount, never the claimed one
	settlement := &models.Settlement{
		OrderID:       claim.OrderID,
		TransactionID: verified.TransactionID,
		Amount:        verified.Amount,
		Method:        verified.Method,
		CompletedAt:   completedAt,
	}

	result, alreadySettled, err := uc.repo.CompleteSettlement(ctx, settlement)
	if err != nil {
		return nil, err
	}

	if !alreadySettled {
		event := models.SettlementEvent{
			OrderID:       result.OrderID,
			TransactionID: result.TransactionID,
			PayerID:       pr.PayerID.String(),
			PayeeID:       pr.PayeeID.String(),
			Amount:        result.Amount,
			Method:        result.Method,
			Timestamp:     result.CompletedAt,
		}
		if err := uc.publisher.Publish(settlementSubject, event); err != nil {
			// The settlement is committed; event delivery is best effort
			logrus.WithError(err).WithField("order_id", result.OrderID).
				Warn("failed to publish settlement event")
		}
	}

	return result, nil
}

// authenticate checks the claim against the gateway. A signature, when the
// gateway supports one and the claim carries one, is verified locally first;
// the transaction is then fetched so the settlement uses the gateway's
// amount and method.
func (uc *PaymentUC) authenticate(ctx context.Context, gw payments.PaymentGateway, claim *models.PaymentClaim) (*models.GatewayTransaction, error) {
	if verifier, ok := gw.(payments.SignatureVerifier); ok && claim.Signature != "" {
		if !verifier.VerifySignature(claim.OrderID, claim.TransactionID, claim.Signature) {
			return nil, fmt.Errorf("signature mismatch for order %s: %w", claim.OrderID, payments.ErrVerificationFailed)
		}
	}

	txn, err := gw.FetchTransaction(ctx, claim.TransactionID)
	if err != nil {
		return nil, err
	}

	if txn.Status != models.TransactionCaptured {
		return nil, fmt.Errorf("transaction %s has status %s: %w",
			claim.TransactionID, txn.Status, payments.ErrVerificationFailed)
	}
	if txn.Amount <= 0 {
		return nil, fmt.Errorf("transaction %s has non-positive amount: %w",
			claim.TransactionID, payments.ErrVerificationFailed)
	}

	return txn, nil
}

func priorResult(pr *models.PaymentRequest) *models.SettlementResult {
	result := &models.SettlementResult{
		OrderID:        pr.OrderID,
		TransactionID:  pr.TransactionID,
		Amount:         pr.Amount,
		Status:         models.PaymentCompleted,
		AlreadySettled: true,
	}
	if pr.CompletedAt != nil {
		result.CompletedAt = *pr.CompletedAt
	}
	return result
}
