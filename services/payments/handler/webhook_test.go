package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
	"github.com/stretchr/testify/assert"
)

func newWebhookContext(gateway, body, signature string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payments/"+gateway, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(webhookSignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("gateway")
	c.SetParamValues(gateway)
	return c, rec
}

func TestWebhookHandler_Settled(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	payload := `{"event":"payment.captured"}`
	mockUC.EXPECT().
		HandleWebhook(gomock.Any(), models.GatewayRazorpay, []byte(payload), "sig").
		Return(&models.SettlementResult{
			OrderID: "order_123",
			Status:  models.PaymentCompleted,
		}, nil)

	c, rec := newWebhookContext("razorpay", payload, "sig")

	err := h.HandleWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "order_123")
	assert.Contains(t, rec.Body.String(), `"received":true`)
}

func TestWebhookHandler_IgnoredEvent(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	payload := `{"event":"payment.authorized"}`
	mockUC.EXPECT().
		HandleWebhook(gomock.Any(), models.GatewayRazorpay, []byte(payload), "sig").
		Return(nil, nil)

	c, rec := newWebhookContext("razorpay", payload, "sig")

	err := h.HandleWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"received":true`)
}

func TestWebhookHandler_InvalidSignature(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	payload := `{"event":"payment.captured"}`
	mockUC.EXPECT().
		HandleWebhook(gomock.Any(), models.GatewayRazorpay, []byte(payload), "bogus").
		Return(nil, payments.ErrInvalidWebhookSignature)

	c, rec := newWebhookContext("razorpay", payload, "bogus")

	err := h.HandleWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookHandler_UnknownGateway(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	payload := `{}`
	mockUC.EXPECT().
		HandleWebhook(gomock.Any(), models.GatewayKind("paypal"), []byte(payload), "sig").
		Return(nil, payments.ErrGatewayUnavailable)

	c, rec := newWebhookContext("paypal", payload, "sig")

	err := h.HandleWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
