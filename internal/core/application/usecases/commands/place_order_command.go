package commands

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/menu"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)

	// ErrPaymentMethodIsRequired is returned when no payment method was supplied.
	ErrPaymentMethodIsRequired = errs.NewValueIsRequiredError("payment method")
)

// PlaceOrderCommand represents a request to turn a cart into a confirmed order.
// It carries the line items, the payment method to charge, the delivery
// address, and an optional customer note.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(items, method, "Athens", "no onions")
//	if err != nil {
//	    return err // missing payment method or address
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	items         []menu.Item
	paymentMethod *payment.Method
	address       string
	note          string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Preconditions are checked in a fixed order: a payment method must be
// present, then the address must be non-blank. An empty cart is allowed.
func NewPlaceOrderCommand(
	items []menu.Item, paymentMethod *payment.Method, address string, note string,
) (PlaceOrderCommand, error) {
	if paymentMethod == nil {
		return PlaceOrderCommand{}, ErrPaymentMethodIsRequired
	}
	if strings.TrimSpace(address) == "" {
		return PlaceOrderCommand{}, order.ErrDeliveryAddressIsRequired
	}

	cmd := PlaceOrderCommand{
		items:         make([]menu.Item, len(items)),
		paymentMethod: paymentMethod,
		address:       address,
		note:          note,
		guard:         guard.NewConstructorGuard(),
	}
	copy(cmd.items, items)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Items returns the cart line items.
func (c PlaceOrderCommand) Items() []menu.Item {
	return c.items
}

// PaymentMethod returns the payment method to charge.
func (c PlaceOrderCommand) PaymentMethod() *payment.Method {
	return c.paymentMethod
}

// Address returns the delivery address.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// Note returns the optional customer note.
func (c PlaceOrderCommand) Note() string {
	return c.note
}
