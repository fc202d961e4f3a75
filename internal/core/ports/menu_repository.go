package ports

import (
	"context"

	"eats/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for the restaurant menu.
type MenuRepository interface {
	// Add stores a new menu item.
	Add(ctx context.Context, item menu.Item) error

	// GetAll retrieves all menu items in insertion order.
	GetAll(ctx context.Context) ([]menu.Item, error)
}
