package queries

import (
	"context"

	"eats/internal/core/ports"
)

// GetAllCouriersQueryHandler lists the registered delivery persons.
type GetAllCouriersQueryHandler struct {
	courierRepository ports.CourierRepository
}

// NewGetAllCouriersQueryHandler creates a handler over the courier registry.
func NewGetAllCouriersQueryHandler(courierRepository ports.CourierRepository) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{courierRepository: courierRepository}
}

// Handle returns every registered delivery person.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context, query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers, err := h.courierRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetAllCouriersQueryResponse, 0, len(couriers))
	for _, courier := range couriers {
		responses = append(responses, GetAllCouriersQueryResponse{
			ID:           courier.ID(),
			Name:         courier.Name(),
			Email:        courier.Email(),
			VehicleType:  courier.VehicleType(),
			LicensePlate: courier.LicensePlate(),
			Location:     courier.CurrentLocation(),
		})
	}

	return responses, nil
}
