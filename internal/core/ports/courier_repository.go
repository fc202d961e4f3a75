package ports

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/courier"
	"eats/internal/core/domain/model/kernel"
)

// ErrEmailAlreadyRegistered is returned by Add when another account already
// uses the registration email.
var ErrEmailAlreadyRegistered = errors.New("account already exists for this email")

// CourierRepository defines the persistence contract for delivery person
// aggregates. It doubles as the caller-owned registry that enforces email
// uniqueness during registration.
type CourierRepository interface {
	// Add persists a new delivery person. The aggregate must be valid and not
	// already exist in the repository. Returns ErrEmailAlreadyRegistered when
	// another account uses the same email; the check happens atomically with
	// the insert, so concurrent registrations cannot both claim an email.
	Add(ctx context.Context, aggregate *courier.DeliveryPerson) error

	// Update persists changes to an existing delivery person.
	Update(ctx context.Context, aggregate *courier.DeliveryPerson) error

	// Get retrieves a delivery person by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.DeliveryPerson, error)

	// GetByEmail retrieves a delivery person by registration email.
	// Returns an ObjectNotFoundError-classed error when no account uses the email.
	GetByEmail(ctx context.Context, email string) (*courier.DeliveryPerson, error)

	// GetAll retrieves all registered delivery persons.
	GetAll(ctx context.Context) ([]*courier.DeliveryPerson, error)
}
