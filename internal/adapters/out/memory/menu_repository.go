package memory

import (
	"context"
	"sync"

	"eats/internal/core/domain/model/menu"
)

// MenuRepository is an in-memory menu store seeded with an initial catalog.
type MenuRepository struct {
	mu    sync.RWMutex
	items []menu.Item
}

// NewMenuRepository creates a menu store holding the given initial items.
func NewMenuRepository(initial []menu.Item) *MenuRepository {
	items := make([]menu.Item, len(initial))
	copy(items, initial)
	return &MenuRepository{items: items}
}

// Add stores a new menu item. The item must be valid.
func (r *MenuRepository) Add(_ context.Context, item menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return nil
}

// GetAll retrieves all menu items in insertion order.
func (r *MenuRepository) GetAll(_ context.Context) ([]menu.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]menu.Item, len(r.items))
	copy(items, r.items)
	return items, nil
}
