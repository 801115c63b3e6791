package transaction

import "context"

// Repository defines the interface for transaction persistence.
// Lookups that match no record return (nil, nil).
type Repository interface {
	// GetAll returns every stored transaction
	GetAll(ctx context.Context) ([]*Transaction, error)

	// Get retrieves a transaction by ID
	Get(ctx context.Context, id string) (*Transaction, error)

	// Create stores a new transaction and returns it with its assigned ID
	Create(ctx context.Context, tx *Transaction) (*Transaction, error)

	// Update replaces the transaction stored at id
	Update(ctx context.Context, id string, tx *Transaction) (*Transaction, error)

	// ListByStatus returns the transactions currently in the given status
	ListByStatus(ctx context.Context, status Status) ([]*Transaction, error)
}
