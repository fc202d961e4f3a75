package commands

import (
	"context"

	"eats/internal/core/domain/model/courier"
	"eats/internal/core/ports"
)

// RegisterCourierCommandHandler registers a new delivery person.
// It delegates field validation to the DeliveryPerson constructor and relies
// on the courier registry to enforce email uniqueness.
type RegisterCourierCommandHandler struct {
	courierRepository ports.CourierRepository
}

// NewRegisterCourierCommandHandler creates a handler for courier registration.
func NewRegisterCourierCommandHandler(courierRepository ports.CourierRepository) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		courierRepository: courierRepository,
	}
}

// Handle processes the registration: constructs the delivery person (failing
// fast with the first violated rule) and persists the new account. The
// registry rejects the insert with ports.ErrEmailAlreadyRegistered when the
// email is taken. Returns the registered aggregate.
func (h *RegisterCourierCommandHandler) Handle(
	ctx context.Context, cmd RegisterCourierCommand,
) (*courier.DeliveryPerson, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	person, err := courier.NewDeliveryPerson(
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.VehicleType(),
		cmd.LicensePlate(),
		cmd.Password(),
		cmd.Experience(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.courierRepository.Add(ctx, person); err != nil {
		return nil, err
	}

	return person, nil
}
