package memory

import (
	"context"
	"sync"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/errs"
)

// PaymentMethodRepository is an in-memory wallet of validated payment methods.
type PaymentMethodRepository struct {
	mu       sync.RWMutex
	byID     map[kernel.UUID]*payment.Method
	ordering []kernel.UUID
}

// NewPaymentMethodRepository creates an empty wallet.
func NewPaymentMethodRepository() *PaymentMethodRepository {
	return &PaymentMethodRepository{
		byID: make(map[kernel.UUID]*payment.Method),
	}
}

// Add stores a new payment method. The method must be valid and its id must
// not already be present.
func (r *PaymentMethodRepository) Add(_ context.Context, method *payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[method.ID()]; exists {
		return errs.NewValueIsInvalidError("payment method already exists")
	}

	r.byID[method.ID()] = method
	r.ordering = append(r.ordering, method.ID())
	return nil
}

// Get retrieves a payment method by id.
func (r *PaymentMethodRepository) Get(_ context.Context, id kernel.UUID) (*payment.Method, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	method, exists := r.byID[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("payment method", id)
	}
	return method, nil
}

// GetAll retrieves all stored payment methods in insertion order.
func (r *PaymentMethodRepository) GetAll(_ context.Context) ([]*payment.Method, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	methods := make([]*payment.Method, 0, len(r.ordering))
	for _, id := range r.ordering {
		methods = append(methods, r.byID[id])
	}
	return methods, nil
}
