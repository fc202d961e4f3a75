package commands

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
)

// ErrPaymentDeclined is returned when the payment boundary refuses the charge.
var ErrPaymentDeclined = errors.New("payment was declined by the provider")

// PlaceOrderCommandHandler turns a cart and a payment method into a confirmed
// order. This is the one place where validated entities compose into a
// side-effecting decision: the charge.
//
// The operation is all-or-nothing from the caller's perspective: any failure
// surfaces before an order exists, so a declined charge never leaves a partial
// order behind.
type PlaceOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(orderRepository ports.OrderRepository) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the order placement:
//  1. computes the total as the sum of item prices (empty cart yields zero)
//  2. authorizes the charge through the method's provider, or accepts it
//     outright for a self-authorizing method
//  3. on authorization, constructs the order, confirms it, persists it, and
//     returns it
//
// A declined charge fails with ErrPaymentDeclined and no order is created.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	total := 0.0
	for _, item := range cmd.Items() {
		total += item.Price()
	}

	method := cmd.PaymentMethod()
	authorized := true
	if provider := method.Provider(); provider != nil {
		var err error
		authorized, err = provider.ProcessTransaction(ctx, method, total)
		if err != nil {
			return nil, err
		}
	}
	if !authorized {
		return nil, ErrPaymentDeclined
	}

	placed, err := order.NewOrder(kernel.NewUUID(), cmd.Items(), cmd.Address(), cmd.Note())
	if err != nil {
		return nil, err
	}

	if err = placed.Confirm(); err != nil {
		return nil, err
	}

	if err = h.orderRepository.Add(ctx, placed); err != nil {
		return nil, err
	}

	return placed, nil
}
