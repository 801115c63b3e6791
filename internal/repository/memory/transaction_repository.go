package memory

import (
	"context"
	"sync"

	"github.com/Jeansss/payment-ms/internal/domain/identity"
	"github.com/Jeansss/payment-ms/internal/domain/transaction"
)

// TransactionRepository keeps transactions in process memory in insertion order.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]transaction.Transaction
	order        []string
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		transactions: make(map[string]transaction.Transaction),
	}
}

func (r *TransactionRepository) GetAll(ctx context.Context) ([]*transaction.Transaction, error) {
	return r.filter(func(*transaction.Transaction) bool { return true }), nil
}

func (r *TransactionRepository) ListByStatus(ctx context.Context, status transaction.Status) ([]*transaction.Transaction, error) {
	return r.filter(func(tx *transaction.Transaction) bool { return tx.Status == status }), nil
}

func (r *TransactionRepository) Get(ctx context.Context, id string) (*transaction.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, _ := identity.Normalize(id)
	tx, ok := r.transactions[key]
	if !ok {
		return nil, nil
	}
	return cloneTransaction(tx), nil
}

func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *cloneTransaction(*tx)
	stored.ID = identity.New()
	r.transactions[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return cloneTransaction(stored), nil
}

func (r *TransactionRepository) Update(ctx context.Context, id string, tx *transaction.Transaction) (*transaction.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, _ := identity.Normalize(id)
	if _, ok := r.transactions[key]; !ok {
		return nil, nil
	}
	stored := *cloneTransaction(*tx)
	stored.ID = key
	r.transactions[key] = stored
	return cloneTransaction(stored), nil
}

func (r *TransactionRepository) filter(keep func(*transaction.Transaction) bool) []*transaction.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*transaction.Transaction, 0, len(r.order))
	for _, id := range r.order {
		tx := cloneTransaction(r.transactions[id])
		if keep(tx) {
			result = append(result, tx)
		}
	}
	return result
}

// cloneTransaction detaches the embedded payment method so callers cannot
// mutate stored state through the pointer.
func cloneTransaction(tx transaction.Transaction) *transaction.Transaction {
	if tx.PaymentMethod != nil {
		pm := *tx.PaymentMethod
		tx.PaymentMethod = &pm
	}
	return &tx
}
