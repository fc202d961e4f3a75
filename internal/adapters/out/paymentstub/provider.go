// Package paymentstub provides a stand-in payment provider for environments
// without a real gateway. It authorizes every charge except cards carrying the
// reserved decline CVV, which lets tests and demos exercise the decline path.
package paymentstub

import (
	"context"

	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/errs"
)

// declineCVV marks a card that every charge attempt must refuse.
const declineCVV = "000"

// Provider is a fake payment gateway client.
type Provider struct {
	name   string
	apiKey string
}

// NewProvider creates a stub gateway client. The name and api key are carried
// for log and wiring parity with a real client; they are never sent anywhere.
func NewProvider(name string, apiKey string) (*Provider, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	return &Provider{name: name, apiKey: apiKey}, nil
}

// Name returns the configured gateway name.
func (p *Provider) Name() string {
	return p.name
}

// TestConnection always reports the gateway as reachable.
func (p *Provider) TestConnection(_ context.Context) error {
	return nil
}

// ProcessTransaction authorizes the charge unless the card carries the
// reserved decline CVV. A refusal is reported as (false, nil).
func (p *Provider) ProcessTransaction(_ context.Context, method *payment.Method, _ float64) (bool, error) {
	if method.CVV() == declineCVV {
		return false, nil
	}
	return true, nil
}
