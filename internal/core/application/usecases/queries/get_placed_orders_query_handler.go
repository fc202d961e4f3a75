package queries

import (
	"context"

	"eats/internal/core/ports"
)

// GetPlacedOrdersQueryHandler lists all placed orders.
type GetPlacedOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetPlacedOrdersQueryHandler creates a handler over the order log.
func NewGetPlacedOrdersQueryHandler(orderRepository ports.OrderRepository) GetPlacedOrdersQueryHandler {
	return GetPlacedOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle returns every order placed so far.
func (h GetPlacedOrdersQueryHandler) Handle(
	ctx context.Context, query GetPlacedOrdersQuery,
) ([]GetPlacedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetPlacedOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, GetPlacedOrdersQueryResponse{
			ID:              o.ID(),
			Status:          o.Status().String(),
			TotalAmount:     o.TotalAmount(),
			DeliveryAddress: o.DeliveryAddress(),
			CustomerNote:    o.CustomerNote(),
			PlacedAt:        o.PlacedAt(),
		})
	}

	return responses, nil
}
