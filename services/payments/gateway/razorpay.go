package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
)

// RazorpayGateway is the order+signature gateway adapter. In addition to
// order creation and status fetch it verifies the provider's payment
// signature, HMAC-SHA256 over "orderID|paymentID".
type RazorpayGateway struct {
	cfg        models.GatewayConfig
	httpClient *http.Client
}

// NewRazorpayGateway creates a new Razorpay adapter
func NewRazorpayGateway(cfg models.GatewayConfig) *RazorpayGateway {
	return &RazorpayGateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name identifies the gateway variant
func (g *RazorpayGateway) Name() models.GatewayKind {
	return models.GatewayRazorpay
}

type razorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type razorpayPayment struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	OrderID   string `json:"order_id"`
	CreatedAt int64  `json:"created_at"`
}

// CreateOrder creates an order with the provider
func (g *RazorpayGateway) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.GatewayOrder, error) {
	if g.cfg.KeyID == "" || g.cfg.KeySecret == "" {
		return nil, fmt.Errorf("razorpay credentials missing: %w", payments.ErrGatewayUnavailable)
	}

	body := map[string]interface{}{
		"amount":   toMinorUnits(req.Amount),
		"currency": req.Currency,
		"receipt":  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
		"notes": map[string]string{
			"reference_id": req.ReferenceID,
			"customer_id":  req.CustomerID,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("razorpay: failed to marshal order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/v1/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("razorpay: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(g.cfg.KeyID, g.cfg.KeySecret)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("razorpay: %v: %w", err, payments.ErrGatewayRequestFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("razorpay authentication failed: %w", payments.ErrGatewayUnavailable)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("razorpay returned status %d: %w", resp.StatusCode, payments.ErrGatewayRequestFailed)
	}

	var order razorpayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("razorpay: failed to decode response: %w", payments.ErrGatewayRequestFailed)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay returned no order id: %w", payments.ErrGatewayRequestFailed)
	}

	// Checkout on the client side needs the public key id
	return &models.GatewayOrder{
		OrderID:     order.ID,
		ClientToken: g.cfg.KeyID,
	}, nil
}

// FetchTransaction fetches a payment and normalizes its status
func (g *RazorpayGateway) FetchTransaction(ctx context.Context, transactionID string) (*models.GatewayTransaction, error) {
	if g.cfg.KeyID == "" || g.cfg.KeySecret == "" {
		return nil, fmt.Errorf("razorpay credentials missing: %w", payments.ErrGatewayUnavailable)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.cfg.BaseURL+"/v1/payments/"+url.PathEscape(transactionID), nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay: failed to build request: %w", err)
	}
	httpReq.SetBasicAuth(g.cfg.KeyID, g.cfg.KeySecret)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("razorpay: %v: %w", err, payments.ErrGatewayRequestFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
		return nil, fmt.Errorf("razorpay payment %s: %w", transactionID, payments.ErrTransactionNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("razorpay returned status %d: %w", resp.StatusCode, payments.ErrGatewayRequestFailed)
	}

	var payment razorpayPayment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("razorpay: failed to decode response: %w", payments.ErrGatewayRequestFailed)
	}

	var status models.TransactionStatus
	switch payment.Status {
	case "captured":
		status = models.TransactionCaptured
	case "failed":
		status = models.TransactionFailed
	default:
		status = models.TransactionInitiated
	}

	return &models.GatewayTransaction{
		TransactionID: payment.ID,
		Status:        status,
		Amount:        fromMinorUnits(payment.Amount),
		Method:        payment.Method,
		Timestamp:     time.Unix(payment.CreatedAt, 0),
	}, nil
}

// VerifySignature checks the payment signature with a constant-time compare
func (g *RazorpayGateway) VerifySignature(orderID, transactionID, signature string) bool {
	if g.cfg.KeySecret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(g.cfg.KeySecret))
	mac.Write([]byte(orderID + "|" + transactionID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
