package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all placed orders in placement order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
