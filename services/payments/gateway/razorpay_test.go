package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
	"github.com/stretchr/testify/assert"
)

func TestRazorpayCreateOrder_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_key", user)
		assert.Equal(t, "rzp_secret", pass)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(50000), body["amount"])
		assert.Equal(t, "INR", body["currency"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_123",
			"amount":   50000,
			"currency": "INR",
			"status":   "created",
		})
	}))
	defer server.Close()

	gw := NewRazorpayGateway(models.GatewayConfig{
		KeyID:     "rzp_key",
		KeySecret: "rzp_secret",
		BaseURL:   server.URL,
	})

	order, err := gw.CreateOrder(context.Background(), &models.CreateOrderRequest{
		Amount:      500,
		Currency:    "INR",
		ReferenceID: "notif-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "order_123", order.OrderID)
	assert.Equal(t, "rzp_key", order.ClientToken)
}

func TestRazorpayCreateOrder_MissingCredentials(t *testing.T) {
	gw := NewRazorpayGateway(models.GatewayConfig{})

	_, err := gw.CreateOrder(context.Background(), &models.CreateOrderRequest{Amount: 500, Currency: "INR"})

	assert.ErrorIs(t, err, payments.ErrGatewayUnavailable)
}

func TestRazorpayCreateOrder_AuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gw := NewRazorpayGateway(models.GatewayConfig{
		KeyID:     "rzp_key",
		KeySecret: "bad_secret",
		BaseURL:   server.URL,
	})

	_, err := gw.CreateOrder(context.Background(), &models.CreateOrderRequest{Amount: 500, Currency: "INR"})

	assert.ErrorIs(t, err, payments.ErrGatewayUnavailable)
}

func TestRazorpayFetchTransaction_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		providerStatus string
		expected       models.TransactionStatus
	}{
		{"captured", "captured", models.TransactionCaptured},
		{"failed", "failed", models.TransactionFailed},
		{"authorized maps to initiated", "authorized", models.TransactionInitiated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/payments/pay_456", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"id":       "pay_456",
					"amount":   50000,
					"status":   tt.providerStatus,
					"method":   "upi",
					"order_id": "order_123",
				})
			}))
			defer server.Close()

			gw := NewRazorpayGateway(models.GatewayConfig{
				KeyID:     "rzp_key",
				KeySecret: "rzp_secret",
				BaseURL:   server.URL,
			})

			txn, err := gw.FetchTransaction(context.Background(), "pay_456")

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, txn.Status)
			assert.Equal(t, 500.0, txn.Amount)
		})
	}
}

func TestRazorpayFetchTransaction_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gw := NewRazorpayGateway(models.GatewayConfig{
		KeyID:     "rzp_key",
		KeySecret: "rzp_secret",
		BaseURL:   server.URL,
	})

	_, err := gw.FetchTransaction(context.Background(), "pay_missing")

	assert.ErrorIs(t, err, payments.ErrTransactionNotFound)
}

func TestRazorpayVerifySignature(t *testing.T) {
	gw := NewRazorpayGateway(models.GatewayConfig{KeySecret: "rzp_secret"})

	mac := hmac.New(sha256.New, []byte("rzp_secret"))
	mac.Write([]byte("order_123|pay_456"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, gw.VerifySignature("order_123", "pay_456", valid))
	assert.False(t, gw.VerifySignature("order_123", "pay_456", "forged"))
	assert.False(t, gw.VerifySignature("order_999", "pay_456", valid))
	assert.False(t, gw.VerifySignature("order_123", "pay_456", ""))
}

func TestRazorpayVerifySignature_NoSecret(t *testing.T) {
	gw := NewRazorpayGateway(models.GatewayConfig{})

	assert.False(t, gw.VerifySignature("order_123", "pay_456", "anything"))
}
