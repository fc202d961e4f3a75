package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/payment"
)

// PaymentMethodRepository defines the persistence contract for the wallet of
// validated payment methods. Methods are immutable once stored.
type PaymentMethodRepository interface {
	// Add persists a new payment method.
	Add(ctx context.Context, method *payment.Method) error

	// Get retrieves a payment method by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Method, error)

	// GetAll retrieves all stored payment methods.
	GetAll(ctx context.Context) ([]*payment.Method, error)
}
