package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
	"github.com/stretchr/testify/assert"
)

func TestStripeCreateOrder_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "50000", r.PostForm.Get("amount"))
		assert.Equal(t, "inr", r.PostForm.Get("currency"))
		assert.Equal(t, "notif-1", r.PostForm.Get("metadata[reference_id]"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":            "pi_789",
			"client_secret": "pi_789_secret_abc",
			"amount":        50000,
			"status":        "requires_payment_method",
		})
	}))
	defer server.Close()

	gw := NewStripeGateway(models.GatewayConfig{
		KeySecret: "sk_test",
		BaseURL:   server.URL,
	})

	order, err := gw.CreateOrder(context.Background(), &models.CreateOrderRequest{
		Amount:      500,
		Currency:    "INR",
		ReferenceID: "notif-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "pi_789", order.OrderID)
	assert.Equal(t, "pi_789_secret_abc", order.ClientToken)
}

func TestStripeCreateOrder_MissingCredentials(t *testing.T) {
	gw := NewStripeGateway(models.GatewayConfig{})

	_, err := gw.CreateOrder(context.Background(), &models.CreateOrderRequest{Amount: 500, Currency: "INR"})

	assert.ErrorIs(t, err, payments.ErrGatewayUnavailable)
}

func TestStripeCreateOrder_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw := NewStripeGateway(models.GatewayConfig{
		KeySecret: "sk_test",
		BaseURL:   server.URL,
	})

	_, err := gw.CreateOrder(context.Background(), &models.CreateOrderRequest{Amount: 500, Currency: "INR"})

	assert.ErrorIs(t, err, payments.ErrGatewayRequestFailed)
}

func TestStripeFetchTransaction_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		providerStatus string
		expected       models.TransactionStatus
	}{
		{"succeeded", "succeeded", models.TransactionCaptured},
		{"canceled", "canceled", models.TransactionFailed},
		{"processing maps to initiated", "processing", models.TransactionInitiated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/payment_intents/pi_789", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"id":     "pi_789",
					"amount": 50000,
					"status": tt.providerStatus,
				})
			}))
			defer server.Close()

			gw := NewStripeGateway(models.GatewayConfig{
				KeySecret: "sk_test",
				BaseURL:   server.URL,
			})

			txn, err := gw.FetchTransaction(context.Background(), "pi_789")

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, txn.Status)
			assert.Equal(t, 500.0, txn.Amount)
			assert.Equal(t, "card", txn.Method)
		})
	}
}

func TestStripeFetchTransaction_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gw := NewStripeGateway(models.GatewayConfig{
		KeySecret: "sk_test",
		BaseURL:   server.URL,
	})

	_, err := gw.FetchTransaction(context.Background(), "pi_missing")

	assert.ErrorIs(t, err, payments.ErrTransactionNotFound)
}
