package menu

import (
	"errors"
	"math"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

// ErrFiltersAreNotConstructed is returned when using improperly initialized Filters.
var ErrFiltersAreNotConstructed = errs.NewValueIsRequiredError(
	"filters must be created via NewFilters constructor")

// Filters bounds a recommendation request: maximum price in euros, maximum
// distance in kilometers, and maximum time in minutes until the meal.
// Negative price or distance limits are rejected at construction.
type Filters struct { //nolint:recvcheck //using for validation
	maxPrice    float64
	maxDistance float64
	maxTime     int

	guard guard.ConstructorGuard
}

// NewFilters creates a validated Filters value object.
// MaxPrice and maxDistance must be non-negative.
func NewFilters(maxPrice float64, maxDistance float64, maxTime int) (Filters, error) {
	filters := Filters{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(filters.setMaxPrice(maxPrice), filters.setMaxDistance(maxDistance)); err != nil {
		return Filters{}, err
	}

	filters.maxTime = maxTime
	return filters, nil
}

// Validate checks if the Filters were created through the constructor.
func (f Filters) Validate() error {
	return f.guard.Validate(ErrFiltersAreNotConstructed)
}

// MaxPrice returns the price ceiling in euros.
func (f Filters) MaxPrice() float64 {
	return f.maxPrice
}

// MaxDistance returns the distance ceiling in kilometers.
func (f Filters) MaxDistance() float64 {
	return f.maxDistance
}

// MaxTime returns the time ceiling in minutes.
func (f Filters) MaxTime() int {
	return f.maxTime
}

func (f *Filters) setMaxPrice(maxPrice float64) error {
	if maxPrice < 0 {
		return errs.NewValueIsOutOfRangeError("maxPrice", maxPrice, 0, math.MaxFloat64)
	}

	f.maxPrice = maxPrice
	return nil
}

func (f *Filters) setMaxDistance(maxDistance float64) error {
	if maxDistance < 0 {
		return errs.NewValueIsOutOfRangeError("maxDistance", maxDistance, 0, math.MaxFloat64)
	}

	f.maxDistance = maxDistance
	return nil
}
