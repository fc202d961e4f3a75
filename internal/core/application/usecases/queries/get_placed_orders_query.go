package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrGetPlacedOrdersQueryIsNotConstructed = errors.New(
	"GetPlacedOrdersQuery must be created via NewGetPlacedOrdersQuery constructor",
)

// GetPlacedOrdersQuery asks for all orders placed so far.
type GetPlacedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlacedOrdersQuery creates the query.
func NewGetPlacedOrdersQuery() GetPlacedOrdersQuery {
	return GetPlacedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPlacedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPlacedOrdersQueryIsNotConstructed)
}

// GetPlacedOrdersQueryResponse is one placed order.
type GetPlacedOrdersQueryResponse struct {
	ID              kernel.UUID
	Status          string
	TotalAmount     float64
	DeliveryAddress string
	CustomerNote    string
	PlacedAt        time.Time
}
