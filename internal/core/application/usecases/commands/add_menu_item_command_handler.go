package commands

import (
	"context"

	"eats/internal/core/domain/model/menu"
	"eats/internal/core/ports"
)

// AddMenuItemCommandHandler adds a dish to the restaurant menu.
type AddMenuItemCommandHandler struct {
	menuRepository ports.MenuRepository
}

// NewAddMenuItemCommandHandler creates a handler for menu updates.
func NewAddMenuItemCommandHandler(menuRepository ports.MenuRepository) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		menuRepository: menuRepository,
	}
}

// Handle validates the dish through the menu.Item constructor and stores it.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return menu.Item{}, err
	}

	item, err := menu.NewItem(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category(), cmd.Image())
	if err != nil {
		return menu.Item{}, err
	}

	if err = h.menuRepository.Add(ctx, item); err != nil {
		return menu.Item{}, err
	}

	return item, nil
}
