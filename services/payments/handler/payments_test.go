package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
	"github.com/sponsorlink/payments/services/payments/mocks"
	"github.com/stretchr/testify/assert"
)

func setupHandlerTest(t *testing.T) (*PaymentHandler, *mocks.MockPaymentUseCase, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUseCase(ctrl)
	return NewPaymentHandler(mockUC), mockUC, ctrl
}

func newEchoContext(method, path, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set("user_id", userID.String())
	}
	return c, rec
}

func TestCreateOrderHandler_Success(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	payerID := uuid.New()
	notificationID := uuid.New()

	mockUC.EXPECT().
		CreateOrder(gomock.Any(), payerID, notificationID, 500.0, models.GatewayRazorpay).
		Return(&models.PaymentOrder{
			OrderID:     "order_123",
			ClientToken: "rzp_key",
			Gateway:     models.GatewayRazorpay,
			Amount:      500,
			Currency:    "INR",
		}, nil)

	body := `{"notification_id":"` + notificationID.String() + `","amount":500,"gateway":"razorpay"}`
	c, rec := newEchoContext(http.MethodPost, "/api/v1/payments/orders", body, payerID)

	err := h.CreateOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "order_123")
}

func TestCreateOrderHandler_InvalidNotificationID(t *testing.T) {
	h, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	body := `{"notification_id":"not-a-uuid","amount":500,"gateway":"razorpay"}`
	c, rec := newEchoContext(http.MethodPost, "/api/v1/payments/orders", body, uuid.New())

	err := h.CreateOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderHandler_MissingIdentity(t *testing.T) {
	h, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	body := `{"notification_id":"` + uuid.NewString() + `","amount":500,"gateway":"razorpay"}`
	c, rec := newEchoContext(http.MethodPost, "/api/v1/payments/orders", body, uuid.Nil)

	err := h.CreateOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrderHandler_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name         string
		usecaseErr   error
		expectedCode int
	}{
		{"request not found", payments.ErrRequestNotFound, http.StatusNotFound},
		{"invalid amount", payments.ErrInvalidAmount, http.StatusBadRequest},
		{"not the sponsor", payments.ErrUnauthorized, http.StatusForbidden},
		{"gateway unavailable", payments.ErrGatewayUnavailable, http.StatusServiceUnavailable},
		{"gateway request failed", payments.ErrGatewayRequestFailed, http.StatusBadGateway},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, mockUC, ctrl := setupHandlerTest(t)
			defer ctrl.Finish()

			payerID := uuid.New()
			notificationID := uuid.New()

			mockUC.EXPECT().
				CreateOrder(gomock.Any(), payerID, notificationID, 500.0, models.GatewayStripe).
				Return(nil, tc.usecaseErr)

			body := `{"notification_id":"` + notificationID.String() + `","amount":500,"gateway":"stripe"}`
			c, rec := newEchoContext(http.MethodPost, "/api/v1/payments/orders", body, payerID)

			err := h.CreateOrder(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func TestVerifyPaymentHandler_Success(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().Settle(gomock.Any(), gomock.Any()).
		Return(&models.SettlementResult{
			OrderID:       "order_123",
			TransactionID: "pay_456",
			Amount:        500,
			Status:        models.PaymentCompleted,
		}, nil)

	body := `{"order_id":"order_123","transaction_id":"pay_456","signature":"sig"}`
	c, rec := newEchoContext(http.MethodPost, "/api/v1/payments/verify", body, uuid.New())

	err := h.VerifyPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pay_456")
}

func TestVerifyPaymentHandler_MissingFields(t *testing.T) {
	h, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	c, rec := newEchoContext(http.MethodPost, "/api/v1/payments/verify", `{"order_id":""}`, uuid.New())

	err := h.VerifyPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyPaymentHandler_VerificationFailed(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().Settle(gomock.Any(), gomock.Any()).
		Return(nil, payments.ErrVerificationFailed)

	body := `{"order_id":"order_123","transaction_id":"pay_456"}`
	c, rec := newEchoContext(http.MethodPost, "/api/v1/payments/verify", body, uuid.New())

	err := h.VerifyPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentStatusHandler(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	notificationID := uuid.New()
	mockUC.EXPECT().PaymentStatus(gomock.Any(), notificationID).
		Return(models.PaymentCompleted, nil)

	c, rec := newEchoContext(http.MethodGet, "/", "", uuid.New())
	c.SetParamNames("notificationID")
	c.SetParamValues(notificationID.String())

	err := h.PaymentStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "completed")
}

func TestConfigHandler(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().PaymentConfig().Return(models.PaymentConfig{
		Currency:  "INR",
		MinAmount: 1,
		MaxAmount: 100000,
	})

	c, rec := newEchoContext(http.MethodGet, "/api/v1/payments/config", "", uuid.New())

	err := h.Config(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "INR")
	assert.Contains(t, rec.Body.String(), "razorpay")
}

func TestRecipientDetailsHandler_Forbidden(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	notificationID := uuid.New()

	mockUC.EXPECT().RecipientDetails(gomock.Any(), requesterID, notificationID).
		Return(nil, payments.ErrUnauthorized)

	c, rec := newEchoContext(http.MethodGet, "/", "", requesterID)
	c.SetParamNames("notificationID")
	c.SetParamValues(notificationID.String())

	err := h.RecipientDetails(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
