package commands

import (
	"errors"

	"eats/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents a request to add a dish to the menu.
// Field validation belongs to the menu.Item constructor.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       float64
	category    string
	image       string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a dish from raw input.
func NewAddMenuItemCommand(
	name string, description string, price float64, category string, image string,
) AddMenuItemCommand {
	return AddMenuItemCommand{
		name:        name,
		description: description,
		price:       price,
		category:    category,
		image:       image,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// Name returns the dish name as entered.
func (c AddMenuItemCommand) Name() string { return c.name }

// Description returns the dish description as entered.
func (c AddMenuItemCommand) Description() string { return c.description }

// Price returns the dish price as entered.
func (c AddMenuItemCommand) Price() float64 { return c.price }

// Category returns the dish category as entered.
func (c AddMenuItemCommand) Category() string { return c.category }

// Image returns the opaque image reference as entered.
func (c AddMenuItemCommand) Image() string { return c.image }
