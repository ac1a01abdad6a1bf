package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
)

// StripeGateway is the card-based intent gateway adapter. An order maps to a
// payment intent; the client token is the intent's client secret.
type StripeGateway struct {
	cfg        models.GatewayConfig
	httpClient *http.Client
}

// NewStripeGateway creates a new Stripe adapter
func NewStripeGateway(cfg models.GatewayConfig) *StripeGateway {
	return &StripeGateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name identifies the gateway variant
func (g *StripeGateway) Name() models.GatewayKind {
	return models.GatewayStripe
}

type stripeIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
	Created      int64  `json:"created"`
}

// CreateOrder creates a payment intent
func (g *StripeGateway) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.GatewayOrder, error) {
	if g.cfg.KeySecret == "" {
		return nil, fmt.Errorf("stripe credentials missing: %w", payments.ErrGatewayUnavailable)
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(toMinorUnits(req.Amount), 10))
	form.Set("currency", strings.ToLower(req.Currency))
	form.Set("metadata[reference_id]", req.ReferenceID)
	form.Set("metadata[customer_id]", req.CustomerID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+g.cfg.KeySecret)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stripe: %v: %w", err, payments.ErrGatewayRequestFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("stripe authentication failed: %w", payments.ErrGatewayUnavailable)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("stripe returned status %d: %w", resp.StatusCode, payments.ErrGatewayRequestFailed)
	}

	var intent stripeIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("stripe: failed to decode response: %w", payments.ErrGatewayRequestFailed)
	}
	if intent.ID == "" || intent.ClientSecret == "" {
		return nil, fmt.Errorf("stripe returned incomplete intent: %w", payments.ErrGatewayRequestFailed)
	}

	return &models.GatewayOrder{
		OrderID:     intent.ID,
		ClientToken: intent.ClientSecret,
	}, nil
}

// FetchTransaction fetches a payment intent and normalizes its status
func (g *StripeGateway) FetchTransaction(ctx context.Context, transactionID string) (*models.GatewayTransaction, error) {
	if g.cfg.KeySecret == "" {
		return nil, fmt.Errorf("stripe credentials missing: %w", payments.ErrGatewayUnavailable)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.cfg.BaseURL+"/v1/payment_intents/"+url.PathEscape(transactionID), nil)
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.cfg.KeySecret)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stripe: %v: %w", err, payments.ErrGatewayRequestFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("stripe intent %s: %w", transactionID, payments.ErrTransactionNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("stripe returned status %d: %w", resp.StatusCode, payments.ErrGatewayRequestFailed)
	}

	var intent stripeIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("stripe: failed to decode response: %w", payments.ErrGatewayRequestFailed)
	}

	var status models.TransactionStatus
	switch intent.Status {
	case "succeeded":
		status = models.TransactionCaptured
	case "canceled":
		status = models.TransactionFailed
	default:
		status = models.TransactionInitiated
	}

	return &models.GatewayTransaction{
		TransactionID: intent.ID,
		Status:        status,
		Amount:        fromMinorUnits(intent.Amount),
		Method:        "card",
		Timestamp:     time.Unix(intent.Created, 0),
	}, nil
}
