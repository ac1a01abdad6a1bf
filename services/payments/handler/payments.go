package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sponsorlink/payments/internal/pkg/middleware"
	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/internal/utils"
	"github.com/sponsorlink/payments/services/payments"
)

// CreateOrderRequest is the checkout request payload
type CreateOrderRequest struct {
	NotificationID string             `json:"notification_id"`
	Amount         float64            `json:"amount"`
	Gateway        models.GatewayKind `json:"gateway"`
}

// CreateOrder handles checkout initiation requests
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	payerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	notificationID, err := uuid.Parse(req.NotificationID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification ID")
	}

	order, err := h.paymentUC.CreateOrder(c.Request().Context(), payerID, notificationID, req.Amount, req.Gateway)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"notification_id": notificationID.String(),
			"gateway":         string(req.Gateway),
		}).Warn("failed to create payment order")
		return paymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment order created", order)
}

// VerifyPayment handles client-reported payment completion. The claim is
// authenticated against the gateway before anything is recorded.
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	if _, ok := middleware.UserIDFromContext(c); !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var claim models.PaymentClaim
	if err := c.Bind(&claim); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if claim.OrderID == "" || claim.TransactionID == "" {
		return utils.BadRequestResponse(c, "order_id and transaction_id are required")
	}

	result, err := h.paymentUC.Settle(c.Request().Context(), &claim)
	if err != nil {
		logrus.WithError(err).WithField("order_id", claim.OrderID).
			Warn("payment verification failed")
		return paymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment verified", result)
}

// PaymentStatus handles payment state lookups for a notification
func (h *PaymentHandler) PaymentStatus(c echo.Context) error {
	notificationID, err := uuid.Parse(c.Param("notificationID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification ID")
	}

	status, err := h.paymentUC.PaymentStatus(c.Request().Context(), notificationID)
	if err != nil {
		return paymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status retrieved", map[string]interface{}{
		"notification_id": notificationID.String(),
		"status":          status,
	})
}

// Config reports the marketplace payment policy and supported gateways
func (h *PaymentHandler) Config(c echo.Context) error {
	cfg := h.paymentUC.PaymentConfig()
	return utils.SuccessResponse(c, http.StatusOK, "Payment config retrieved", map[string]interface{}{
		"currency":   cfg.Currency,
		"min_amount": cfg.MinAmount,
		"max_amount": cfg.MaxAmount,
		"gateways": []models.GatewayKind{
			models.GatewayStripe, models.GatewayCashfree, models.GatewayRazorpay,
		},
	})
}

// RecipientDetails handles payout detail lookups for direct transfers
func (h *PaymentHandler) RecipientDetails(c echo.Context) error {
	requesterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	notificationID, err := uuid.Parse(c.Param("notificationID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification ID")
	}

	details, err := h.paymentUC.RecipientDetails(c.Request().Context(), requesterID, notificationID)
	if err != nil {
		return paymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Recipient details retrieved", details)
}

// paymentErrorResponse maps settlement engine errors to HTTP responses
func paymentErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, payments.ErrRequestNotFound):
		return utils.NotFoundResponse(c, "Payment request not found")
	case errors.Is(err, payments.ErrVerificationFailed):
		return utils.BadRequestResponse(c, "Payment verification failed")
	case errors.Is(err, payments.ErrInvalidWebhookSignature):
		return utils.BadRequestResponse(c, "Invalid webhook signature")
	case errors.Is(err, payments.ErrInvalidAmount):
		return utils.BadRequestResponse(c, "Invalid payment amount")
	case errors.Is(err, payments.ErrUnauthorized):
		return utils.ForbiddenResponse(c, "")
	case errors.Is(err, payments.ErrGatewayUnavailable):
		return utils.ServiceUnavailableResponse(c, "Payment gateway unavailable")
	case errors.Is(err, payments.ErrGatewayRequestFailed):
		return utils.BadGatewayResponse(c, "Payment gateway request failed")
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}
