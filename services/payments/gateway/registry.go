package gateway

import (
	"fmt"
	"math"

	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
)

// Registry holds the gateway adapters for this process. It is built once at
// startup from configuration and passed to the settlement engine.
type Registry struct {
	gateways map[models.GatewayKind]payments.PaymentGateway
}

// NewRegistry creates a registry with all supported gateway adapters
func NewRegistry(cfg *models.Config) *Registry {
	return &Registry{
		gateways: map[models.GatewayKind]payments.PaymentGateway{
			models.GatewayStripe:   NewStripeGateway(cfg.Gateways.Stripe),
			models.GatewayCashfree: NewCashfreeGateway(cfg.Gateways.Cashfree),
			models.GatewayRazorpay: NewRazorpayGateway(cfg.Gateways.Razorpay),
		},
	}
}

// Get returns the adapter for the gateway kind
func (r *Registry) Get(kind models.GatewayKind) (payments.PaymentGateway, error) {
	gw, ok := r.gateways[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported gateway %q: %w", kind, payments.ErrGatewayUnavailable)
	}
	return gw, nil
}

// toMinorUnits converts a major-unit amount to the gateway's integer minor
// units (cents/paise).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// fromMinorUnits converts integer minor units back to a major-unit amount
func fromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}
