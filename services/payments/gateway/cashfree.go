package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
)

const cashfreeAPIVersion = "2022-09-01"

// CashfreeGateway is the UPI/order-based gateway adapter. The order id is
// generated locally and the client token is the provider's payment session
// id. Transactions are fetched by order id.
type CashfreeGateway struct {
	cfg        models.GatewayConfig
	httpClient *http.Client
}

// NewCashfreeGateway creates a new Cashfree adapter
func NewCashfreeGateway(cfg models.GatewayConfig) *CashfreeGateway {
	return &CashfreeGateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name identifies the gateway variant
func (g *CashfreeGateway) Name() models.GatewayKind {
	return models.GatewayCashfree
}

type cashfreeOrder struct {
	OrderID          string  `json:"order_id"`
	OrderStatus      string  `json:"order_status"`
	OrderAmount      float64 `json:"order_amount"`
	PaymentSessionID string  `json:"payment_session_id"`
	CreatedAt        string  `json:"created_at"`
}

func (g *CashfreeGateway) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-version", cashfreeAPIVersion)
	req.Header.Set("x-client-id", g.cfg.KeyID)
	req.Header.Set("x-client-secret", g.cfg.KeySecret)
}

// CreateOrder creates a payment order and session
func (g *CashfreeGateway) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.GatewayOrder, error) {
	if g.cfg.KeyID == "" || g.cfg.KeySecret == "" {
		return nil, fmt.Errorf("cashfree credentials missing: %w", payments.ErrGatewayUnavailable)
	}

	orderID := fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), uuid.New().String()[:8])

	body := map[string]interface{}{
		"order_id":       orderID,
		"order_amount":   req.Amount,
		"order_currency": req.Currency,
		"customer_details": map[string]string{
			"customer_id":    req.CustomerID,
			"customer_name":  req.CustomerName,
			"customer_email": req.CustomerEmail,
		},
		"order_note": req.ReferenceID,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("cashfree: failed to marshal order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("cashfree: failed to build request: %w", err)
	}
	g.setHeaders(httpReq)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("cashfree: %v: %w", err, payments.ErrGatewayRequestFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("cashfree authentication failed: %w", payments.ErrGatewayUnavailable)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("cashfree returned status %d: %w", resp.StatusCode, payments.ErrGatewayRequestFailed)
	}

	var order cashfreeOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("cashfree: failed to decode response: %w", payments.ErrGatewayRequestFailed)
	}
	if order.PaymentSessionID == "" {
		return nil, fmt.Errorf("cashfree returned no payment session: %w", payments.ErrGatewayRequestFailed)
	}

	return &models.GatewayOrder{
		OrderID:     orderID,
		ClientToken: order.PaymentSessionID,
	}, nil
}

// FetchTransaction fetches the order by id and normalizes its status
func (g *CashfreeGateway) FetchTransaction(ctx context.Context, transactionID string) (*models.GatewayTransaction, error) {
	if g.cfg.KeyID == "" || g.cfg.KeySecret == "" {
		return nil, fmt.Errorf("cashfree credentials missing: %w", payments.ErrGatewayUnavailable)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.cfg.BaseURL+"/orders/"+url.PathEscape(transactionID), nil)
	if err != nil {
		return nil, fmt.Errorf("cashfree: failed to build request: %w", err)
	}
	g.setHeaders(httpReq)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("cashfree: %v: %w", err, payments.ErrGatewayRequestFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("cashfree order %s: %w", transactionID, payments.ErrTransactionNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("cashfree returned status %d: %w", resp.StatusCode, payments.ErrGatewayRequestFailed)
	}

	var order cashfreeOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("cashfree: failed to decode response: %w", payments.ErrGatewayRequestFailed)
	}

	var status models.TransactionStatus
	switch order.OrderStatus {
	case "PAID":
		status = models.TransactionCaptured
	case "EXPIRED", "TERMINATED":
		status = models.TransactionFailed
	default:
		status = models.TransactionInitiated
	}

	timestamp, err := time.Parse(time.RFC3339, order.CreatedAt)
	if err != nil {
		timestamp = time.Now()
	}

	return &models.GatewayTransaction{
		TransactionID: order.OrderID,
		Status:        status,
		Amount:        order.OrderAmount,
		Method:        "upi",
		Timestamp:     timestamp,
	}, nil
}
