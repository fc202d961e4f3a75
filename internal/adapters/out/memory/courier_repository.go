package memory

import (
	"context"
	"strings"
	"sync"

	"eats/internal/core/domain/model/courier"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// CourierRepository is an in-memory courier registry. It keeps a secondary
// index by lowercased email so registration can cheaply reject duplicates.
// Both indices are kept in sync on every write.
type CourierRepository struct {
	mu       sync.RWMutex
	byID     map[kernel.UUID]*courier.DeliveryPerson
	byEmail  map[string]*courier.DeliveryPerson
	ordering []kernel.UUID
}

// NewCourierRepository creates an empty courier registry.
func NewCourierRepository() *CourierRepository {
	return &CourierRepository{
		byID:    make(map[kernel.UUID]*courier.DeliveryPerson),
		byEmail: make(map[string]*courier.DeliveryPerson),
	}
}

// Add stores a new delivery person. The aggregate must be valid, its id must
// not already be present, and its email must not be claimed by another
// account. The email check shares the write lock with the insert, so two
// concurrent registrations cannot both claim the same address.
func (r *CourierRepository) Add(_ context.Context, aggregate *courier.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("courier already exists")
	}
	if _, exists := r.byEmail[emailKey(aggregate.Email())]; exists {
		return ports.ErrEmailAlreadyRegistered
	}

	r.byID[aggregate.ID()] = aggregate
	r.byEmail[emailKey(aggregate.Email())] = aggregate
	r.ordering = append(r.ordering, aggregate.ID())
	return nil
}

// Update replaces the stored delivery person with the given aggregate.
func (r *CourierRepository) Update(_ context.Context, aggregate *courier.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("courier", aggregate.ID())
	}

	r.byID[aggregate.ID()] = aggregate
	r.byEmail[emailKey(aggregate.Email())] = aggregate
	return nil
}

// Get retrieves a delivery person by id.
func (r *CourierRepository) Get(_ context.Context, id kernel.UUID) (*courier.DeliveryPerson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	person, exists := r.byID[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	return person, nil
}

// GetByEmail retrieves a delivery person by registration email, matched
// case-insensitively.
func (r *CourierRepository) GetByEmail(_ context.Context, email string) (*courier.DeliveryPerson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	person, exists := r.byEmail[emailKey(email)]
	if !exists {
		return nil, errs.NewObjectNotFoundError("email", email)
	}
	return person, nil
}

// GetAll retrieves all registered delivery persons in registration order.
func (r *CourierRepository) GetAll(_ context.Context) ([]*courier.DeliveryPerson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	couriers := make([]*courier.DeliveryPerson, 0, len(r.ordering))
	for _, id := range r.ordering {
		couriers = append(couriers, r.byID[id])
	}
	return couriers, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
