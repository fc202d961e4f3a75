package commands

import (
	"errors"

	"eats/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a request to register a new delivery
// person. It carries the raw registration input; field validation belongs to
// the DeliveryPerson constructor, which fails fast with exactly one typed
// error per attempt.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	name         string
	email        string
	phone        string
	vehicleType  string
	licensePlate string
	password     string
	experience   string

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a registration command from raw input.
func NewRegisterCourierCommand(
	name string,
	email string,
	phone string,
	vehicleType string,
	licensePlate string,
	password string,
	experience string,
) RegisterCourierCommand {
	return RegisterCourierCommand{
		name:         name,
		email:        email,
		phone:        phone,
		vehicleType:  vehicleType,
		licensePlate: licensePlate,
		password:     password,
		experience:   experience,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// Name returns the display name as entered.
func (c RegisterCourierCommand) Name() string { return c.name }

// Email returns the registration email as entered.
func (c RegisterCourierCommand) Email() string { return c.email }

// Phone returns the phone number as entered.
func (c RegisterCourierCommand) Phone() string { return c.phone }

// VehicleType returns the vehicle description as entered.
func (c RegisterCourierCommand) VehicleType() string { return c.vehicleType }

// LicensePlate returns the plate as entered.
func (c RegisterCourierCommand) LicensePlate() string { return c.licensePlate }

// Password returns the plaintext password; it is consumed by the domain
// constructor and never stored.
func (c RegisterCourierCommand) Password() string { return c.password }

// Experience returns the experience field as entered.
func (c RegisterCourierCommand) Experience() string { return c.experience }
