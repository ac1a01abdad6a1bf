package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
)

// CreateOrder opens a checkout with the chosen gateway and persists a
// pending payment request on the notification. Only the notification's
// sponsor may pay.
func (uc *PaymentUC) CreateOrder(ctx context.Context, payerID, notificationID uuid.UUID, amount float64, gatewayKind models.GatewayKind) (*models.PaymentOrder, error) {
	if amount < uc.cfg.Payment.MinAmount || amount > uc.cfg.Payment.MaxAmount {
		return nil, fmt.Errorf("amount %.2f outside allowed range: %w", amount, payments.ErrInvalidAmount)
	}

	notification, err := uc.repo.GetNotification(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if notification.ToUserID != payerID {
		return nil, payments.ErrUnauthorized
	}

	gw, err := uc.gateways.Get(gatewayKind)
	if err != nil {
		return nil, err
	}

	payee, err := uc.repo.GetUserPayoutDetails(ctx, notification.FromUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payee: %w", err)
	}

	order, err := gw.CreateOrder(ctx, &models.CreateOrderRequest{
		Amount:        amount,
		Currency:      uc.cfg.Payment.Currency,
		CustomerID:    payerID.String(),
		CustomerName:  payee.FullName,
		CustomerEmail: payee.Email,
		ReferenceID:   notificationID.String(),
	})
	if err != nil {
		return nil, err
	}

	pr := &models.PaymentRequest{
		NotificationID: notificationID,
		OrderID:        order.OrderID,
		Gateway:        gatewayKind,
		SessionID:      order.ClientToken,
		Amount:         amount,
		Status:         models.PaymentPending,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.CreatePaymentRequest(ctx, pr); err != nil {
		return nil, err
	}

	return &models.PaymentOrder{
		OrderID:     order.OrderID,
		ClientToken: order.ClientToken,
		Gateway:     gatewayKind,
		Amount:      amount,
		Currency:    uc.cfg.Payment.Currency,
	}, nil
}

// PaymentStatus reports the payment state for a notification
func (uc *PaymentUC) PaymentStatus(ctx context.Context, notificationID uuid.UUID) (models.PaymentStatus, error) {
	notification, err := uc.repo.GetNotification(ctx, notificationID)
	if err != nil {
		return "", err
	}
	if notification.Payment == nil {
		return models.PaymentPending, nil
	}
	return notification.Payment.Status, nil
}

// RecipientDetails returns the payee's payout details, visible only to the
// notification's sponsor.
func (uc *PaymentUC) RecipientDetails(ctx context.Context, requesterID, notificationID uuid.UUID) (*models.RecipientDetails, error) {
	notification, err := uc.repo.GetNotification(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if notification.ToUserID != requesterID {
		return nil, payments.ErrUnauthorized
	}

	payee, err := uc.repo.GetUserPayoutDetails(ctx, notification.FromUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payee: %w", err)
	}

	details := &models.RecipientDetails{
		RecipientName: payee.FullName,
		UPIID:         payee.UPIID,
		BankDetails:   payee.BankDetails,
	}
	if notification.Payment != nil {
		details.Amount = notification.Payment.Amount
	}
	switch {
	case payee.BankDetails != nil:
		details.PreferredMethod = "bank"
	case payee.UPIID != "":
		details.PreferredMethod = "upi"
	}

	return details, nil
}

// PaymentConfig reports the marketplace payment policy
func (uc *PaymentUC) PaymentConfig() models.PaymentConfig {
	return uc.cfg.Payment
}
