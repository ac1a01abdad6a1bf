package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
)

// HandleWebhook verifies the transport-level authenticity of an out-of-band
// gateway event and, for payment-success events, drives settlement.
// Unrecognized event types return (nil, nil) and are acknowledged upstream.
// Redelivery is safe because settlement is idempotent.
func (uc *PaymentUC) HandleWebhook(ctx context.Context, gateway models.GatewayKind, payload []byte, signature string) (*models.SettlementResult, error) {
	secret := uc.webhookSecret(gateway)
	if secret == "" {
		return nil, fmt.Errorf("webhook secret not configured for %s: %w", gateway, payments.ErrGatewayUnavailable)
	}

	if !verifyWebhookSignature(secret, payload, signature) {
		return nil, fmt.Errorf("webhook for %s: %w", gateway, payments.ErrInvalidWebhookSignature)
	}

	claim, ok, err := uc.parseWebhookEvent(ctx, gateway, payload)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Recognized transport, uninteresting event
		return nil, nil
	}

	return uc.Settle(ctx, claim)
}

// webhookSecret returns the shared webhook secret for a gateway. This is
// distinct from the payment signature secret used by SignatureVerifier.
func (uc *PaymentUC) webhookSecret(gateway models.GatewayKind) string {
	switch gateway {
	case models.GatewayStripe:
		return uc.cfg.Gateways.Stripe.WebhookSecret
	case models.GatewayCashfree:
		return uc.cfg.Gateways.Cashfree.WebhookSecret
	case models.GatewayRazorpay:
		return uc.cfg.Gateways.Razorpay.WebhookSecret
	default:
		return ""
	}
}

// verifyWebhookSignature checks an HMAC-SHA256 hex signature over the raw
// payload with a constant-time compare.
func verifyWebhookSignature(secret string, payload []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

type stripeWebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID     string `json:"id"`
			Amount int64  `json:"amount"`
		} `json:"object"`
	} `json:"data"`
}

type cashfreeWebhookEvent struct {
	OrderID       string  `json:"order_id"`
	OrderStatus   string  `json:"order_status"`
	TransactionID string  `json:"transaction_id"`
	OrderAmount   float64 `json:"order_amount"`
}

type razorpayWebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Amount  int64  `json:"amount"`
				Method  string `json:"method"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// parseWebhookEvent maps a gateway event to a payment claim. The second
// return is false when the event type is recognized but carries no payment
// to settle.
func (uc *PaymentUC) parseWebhookEvent(ctx context.Context, gateway models.GatewayKind, payload []byte) (*models.PaymentClaim, bool, error) {
	switch gateway {
	case models.GatewayStripe:
		var event stripeWebhookEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, false, fmt.Errorf("stripe webhook: %w", payments.ErrInvalidWebhookSignature)
		}
		if event.Type != "payment_intent.succeeded" {
			return nil, false, nil
		}
		return &models.PaymentClaim{
			OrderID:       event.Data.Object.ID,
			TransactionID: event.Data.Object.ID,
			Amount:        float64(event.Data.Object.Amount) / 100,
			Method:        "card",
		}, true, nil

	case models.GatewayCashfree:
		var event cashfreeWebhookEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, false, fmt.Errorf("cashfree webhook: %w", payments.ErrInvalidWebhookSignature)
		}
		switch event.OrderStatus {
		case "PAID":
			return &models.PaymentClaim{
				OrderID:       event.OrderID,
				TransactionID: event.OrderID,
				Amount:        event.OrderAmount,
				Method:        "upi",
			}, true, nil
		case "EXPIRED", "TERMINATED":
			if err := uc.repo.MarkPaymentFailed(ctx, event.OrderID); err != nil {
				logrus.WithError(err).WithField("order_id", event.OrderID).
					Error("failed to mark payment failed from webhook")
			}
			return nil, false, nil
		default:
			return nil, false, nil
		}

	case models.GatewayRazorpay:
		var event razorpayWebhookEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, false, fmt.Errorf("razorpay webhook: %w", payments.ErrInvalidWebhookSignature)
		}
		if event.Event != "payment.captured" {
			return nil, false, nil
		}
		entity := event.Payload.Payment.Entity
		return &models.PaymentClaim{
			OrderID:       entity.OrderID,
			TransactionID: entity.ID,
			Amount:        float64(entity.Amount) / 100,
			Method:        entity.Method,
		}, true, nil

	default:
		return nil, false, fmt.Errorf("unsupported gateway %q: %w", gateway, payments.ErrGatewayUnavailable)
	}
}
