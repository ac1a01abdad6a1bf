package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/sponsorlink/payments/services/payments"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUseCase
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// RegisterRoutes wires the payment endpoints. Checkout and verification sit
// behind authentication and the per-user rate limiter; the webhook endpoint
// is unauthenticated and relies on its own signature check.
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, authMW, limiterMW echo.MiddlewareFunc) {
	group := e.Group("/api/v1/payments", authMW)

	group.POST("/orders", h.CreateOrder, limiterMW)
	group.POST("/verify", h.VerifyPayment, limiterMW)
	group.GET("/status/:notificationID", h.PaymentStatus)
	group.GET("/config", h.Config)
	group.GET("/recipient-details/:notificationID", h.RecipientDetails)

	e.POST("/webhooks/payments/:gateway", h.HandleWebhook)
}
