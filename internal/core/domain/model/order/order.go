package order

import (
	"errors"
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/menu"
	"eats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDeliveryAddressIsRequired is returned when the delivery address is absent or blank.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
)

// Order represents a placed cart. It is the aggregate root that owns the line
// items, the derived total, and the lifecycle status.
//
// Invariants:
//   - Must have a valid unique identifier and a non-blank delivery address
//   - Every line item must be a properly constructed menu item
//   - totalAmount is derived from the items and never negative
//   - Status transitions follow the Pending -> Confirmed | Canceled machine
//
// An empty cart is allowed and yields a total of zero; no minimum-order rule
// is enforced at this layer.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// items are the ordered line items
	items []menu.Item

	// totalAmount is the sum of item prices, derived at construction
	totalAmount float64

	// deliveryAddress is the destination address
	deliveryAddress string

	// customerNote is an optional free-form note ("" means none)
	customerNote string

	// status is the current state in the order lifecycle
	status Status

	// placedAt is the creation timestamp
	placedAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order in Pending status from the given cart.
// The id must be valid, the address non-blank, and every item properly
// constructed. The total is computed here as the sum of item prices.
func NewOrder(id kernel.UUID, items []menu.Item, deliveryAddress string, customerNote string) (*Order, error) {
	o := &Order{
		status:        Pending,
		placedAt:      time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	o.customerNote = customerNote
	return o, nil
}

// Validate ensures the Order was created via NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Items returns a copy of the order's line items in their original order.
func (o *Order) Items() []menu.Item {
	items := make([]menu.Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the derived order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// CustomerNote returns the optional customer note, "" if none was given.
func (o *Order) CustomerNote() string {
	return o.customerNote
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Confirm marks the order as successfully placed.
// Only Pending orders can be confirmed; Confirmed is terminal.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as canceled.
// Only Pending orders can be canceled; Canceled is terminal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setItems validates the line items and derives the total.
func (o *Order) setItems(items []menu.Item) error {
	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Price()
	}

	o.items = make([]menu.Item, len(items))
	copy(o.items, items)
	o.totalAmount = total
	return nil
}

// setDeliveryAddress validates and sets the destination address.
func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	trimmed := strings.TrimSpace(deliveryAddress)
	if trimmed == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = trimmed
	return nil
}
