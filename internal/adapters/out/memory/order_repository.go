package memory

import (
	"context"
	"sync"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"
)

// OrderRepository is an in-memory order log. Orders are returned in
// placement order.
type OrderRepository struct {
	mu       sync.RWMutex
	byID     map[kernel.UUID]*order.Order
	ordering []kernel.UUID
}

// NewOrderRepository creates an empty order log.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID: make(map[kernel.UUID]*order.Order),
	}
}

// Add stores a new order. The aggregate must be valid and its id must not
// already be present.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("order already exists")
	}

	r.byID[aggregate.ID()] = aggregate
	r.ordering = append(r.ordering, aggregate.ID())
	return nil
}

// Get retrieves an order by id.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, exists := r.byID[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

// GetAll retrieves all placed orders in placement order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.ordering))
	for _, id := range r.ordering {
		orders = append(orders, r.byID[id])
	}
	return orders, nil
}
