package paymentmethod

import "context"

// Repository defines the interface for payment method persistence.
// Lookups that match no record return (nil, nil); errors are reserved for
// storage failures.
type Repository interface {
	// GetAll returns every stored payment method
	GetAll(ctx context.Context) ([]*PaymentMethod, error)

	// Get retrieves a payment method by ID
	Get(ctx context.Context, id string) (*PaymentMethod, error)

	// Create stores a new payment method and returns it with its assigned ID
	Create(ctx context.Context, pm *PaymentMethod) (*PaymentMethod, error)

	// Update replaces the payment method stored at id
	Update(ctx context.Context, id string, pm *PaymentMethod) (*PaymentMethod, error)

	// Delete removes the payment method stored at id
	Delete(ctx context.Context, id string) error
}
