package commands

import (
	"errors"

	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/guard"
)

var ErrAddPaymentMethodCommandIsNotConstructed = errors.New(
	"AddPaymentMethodCommand must be created via NewAddPaymentMethodCommand constructor",
)

// AddPaymentMethodCommand represents a request to save a payment card to the
// wallet. It carries raw card input; the card is only validated at commit
// time, when the handler runs, so a UI can build the command from partial
// input without raising.
type AddPaymentMethodCommand struct { //nolint:recvcheck //using for validation
	holder   string
	number   string
	expiry   string
	cvv      string
	provider payment.Provider

	guard guard.ConstructorGuard
}

// NewAddPaymentMethodCommand creates a command to save a self-authorizing card.
func NewAddPaymentMethodCommand(holder string, number string, expiry string, cvv string) AddPaymentMethodCommand {
	return AddPaymentMethodCommand{
		holder: holder,
		number: number,
		expiry: expiry,
		cvv:    cvv,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewAddPaymentMethodCommandWithProvider creates a command to save a card that
// delegates charge authorization to the given provider.
func NewAddPaymentMethodCommandWithProvider(
	holder string, number string, expiry string, cvv string, provider payment.Provider,
) AddPaymentMethodCommand {
	cmd := NewAddPaymentMethodCommand(holder, number, expiry, cvv)
	cmd.provider = provider
	return cmd
}

// Validate ensures the command was created through the constructor.
func (c AddPaymentMethodCommand) Validate() error {
	return c.guard.Validate(ErrAddPaymentMethodCommandIsNotConstructed)
}

// Holder returns the cardholder name as entered.
func (c AddPaymentMethodCommand) Holder() string { return c.holder }

// Number returns the card number as entered.
func (c AddPaymentMethodCommand) Number() string { return c.number }

// Expiry returns the MM/YY expiry as entered.
func (c AddPaymentMethodCommand) Expiry() string { return c.expiry }

// CVV returns the card verification value as entered.
func (c AddPaymentMethodCommand) CVV() string { return c.cvv }

// Provider returns the charge authorizer to attach, nil for self-authorizing.
func (c AddPaymentMethodCommand) Provider() payment.Provider { return c.provider }
