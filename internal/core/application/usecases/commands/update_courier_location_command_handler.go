package commands

import (
	"context"

	"eats/internal/core/ports"
)

// UpdateCourierLocationCommandHandler applies a courier's reported position.
// The update itself is unconditional: last write wins.
type UpdateCourierLocationCommandHandler struct {
	courierRepository ports.CourierRepository
}

// NewUpdateCourierLocationCommandHandler creates a handler for location updates.
func NewUpdateCourierLocationCommandHandler(
	courierRepository ports.CourierRepository,
) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		courierRepository: courierRepository,
	}
}

// Handle loads the courier, replaces its current location, and persists it.
func (h *UpdateCourierLocationCommandHandler) Handle(ctx context.Context, cmd UpdateCourierLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	person, err := h.courierRepository.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = person.UpdateLocation(cmd.Location()); err != nil {
		return err
	}

	return h.courierRepository.Update(ctx, person)
}
