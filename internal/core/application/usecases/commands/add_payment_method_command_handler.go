package commands

import (
	"context"

	"eats/internal/core/domain/model/payment"
	"eats/internal/core/ports"
)

// AddPaymentMethodCommandHandler saves a payment card to the wallet.
// Construction of the card never fails; validation runs here, at commit time,
// and the first violated rule surfaces as a typed error.
//
// Cards delegate charge authorization to the handler's default provider
// unless the command carries an explicit one. Only a nil default yields
// self-authorizing cards.
type AddPaymentMethodCommandHandler struct {
	walletRepository ports.PaymentMethodRepository
	defaultProvider  payment.Provider
}

// NewAddPaymentMethodCommandHandler creates a handler for saving cards.
// The default provider authorizes charges for every card stored without an
// explicit provider; pass nil to store self-authorizing cards.
func NewAddPaymentMethodCommandHandler(
	walletRepository ports.PaymentMethodRepository, defaultProvider payment.Provider,
) AddPaymentMethodCommandHandler {
	return AddPaymentMethodCommandHandler{
		walletRepository: walletRepository,
		defaultProvider:  defaultProvider,
	}
}

// Handle builds the payment method from raw input, validates it, and persists
// it on success. Returns the stored method.
func (h *AddPaymentMethodCommandHandler) Handle(
	ctx context.Context, cmd AddPaymentMethodCommand,
) (*payment.Method, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	provider := cmd.Provider()
	if provider == nil {
		provider = h.defaultProvider
	}

	var method *payment.Method
	if provider != nil {
		method = payment.NewMethodWithProvider(cmd.Holder(), cmd.Number(), cmd.Expiry(), cmd.CVV(), provider)
	} else {
		method = payment.NewMethod(cmd.Holder(), cmd.Number(), cmd.Expiry(), cmd.CVV())
	}

	if err := method.Validate(); err != nil {
		return nil, err
	}

	if err := h.walletRepository.Add(ctx, method); err != nil {
		return nil, err
	}

	return method, nil
}
