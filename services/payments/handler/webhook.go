package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/internal/utils"
	"github.com/sponsorlink/payments/services/payments"
)

// webhookSignatureHeader carries the HMAC signature of the raw request body
const webhookSignatureHeader = "X-Webhook-Signature"

// HandleWebhook receives out-of-band gateway events. Acknowledged events
// always return 200 so the gateway stops redelivering; redeliveries of
// settled payments are absorbed by the idempotent settlement path.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	gateway := models.GatewayKind(c.Param("gateway"))

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read request body")
	}

	signature := c.Request().Header.Get(webhookSignatureHeader)

	result, err := h.paymentUC.HandleWebhook(c.Request().Context(), gateway, payload, signature)
	if err != nil {
		logrus.WithError(err).WithField("gateway", string(gateway)).
			Warn("webhook processing failed")

		if errors.Is(err, payments.ErrInvalidWebhookSignature) {
			return utils.BadRequestResponse(c, "Invalid webhook signature")
		}
		return paymentErrorResponse(c, err)
	}

	response := map[string]interface{}{"received": true}
	if result != nil {
		response["order_id"] = result.OrderID
		response["status"] = result.Status
	}

	return c.JSON(http.StatusOK, response)
}
