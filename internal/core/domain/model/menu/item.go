package menu

import (
	"strings"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

// Typed validation failures for menu items.
var (
	// ErrItemNameIsRequired is returned when the dish name is blank.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
	// ErrDescriptionIsRequired is returned when the dish description is blank.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrPriceIsInvalid is returned when the price is negative.
	ErrPriceIsInvalid = errs.NewValueIsInvalidError("price must not be negative")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem constructor")
)

// Item is a dish on the menu. It is an immutable value object; the image field
// is an opaque asset reference owned by the presentation layer.
type Item struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       float64
	category    string
	image       string

	guard guard.ConstructorGuard
}

// NewItem creates a menu item with validation: the name and description must be
// non-blank and the price non-negative.
func NewItem(name string, description string, price float64, category string, image string) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(name) == "" {
		return Item{}, ErrItemNameIsRequired
	}
	if strings.TrimSpace(description) == "" {
		return Item{}, ErrDescriptionIsRequired
	}
	if price < 0 {
		return Item{}, ErrPriceIsInvalid
	}

	item.name = strings.TrimSpace(name)
	item.description = strings.TrimSpace(description)
	item.price = price
	item.category = strings.TrimSpace(category)
	item.image = image

	return item, nil
}

// Validate checks if the Item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the dish name.
func (i Item) Name() string {
	return i.name
}

// Description returns the dish description.
func (i Item) Description() string {
	return i.description
}

// Price returns the dish price.
func (i Item) Price() float64 {
	return i.price
}

// Category returns the dish category.
func (i Item) Category() string {
	return i.category
}

// Image returns the opaque asset reference for the dish image.
func (i Item) Image() string {
	return i.image
}
