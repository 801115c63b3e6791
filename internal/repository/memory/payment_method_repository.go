package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/Jeansss/payment-ms/internal/domain/identity"
	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
)

// PaymentMethodRepository keeps payment methods in process memory. Used for
// local development and the memory storage driver.
type PaymentMethodRepository struct {
	mu      sync.RWMutex
	methods map[string]paymentmethod.PaymentMethod
	order   []string
}

func NewPaymentMethodRepository() *PaymentMethodRepository {
	return &PaymentMethodRepository{
		methods: make(map[string]paymentmethod.PaymentMethod),
	}
}

func (r *PaymentMethodRepository) GetAll(ctx context.Context) ([]*paymentmethod.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*paymentmethod.PaymentMethod, 0, len(r.order))
	for _, id := range r.order {
		pm := r.methods[id]
		result = append(result, &pm)
	}
	return result, nil
}

func (r *PaymentMethodRepository) Get(ctx context.Context, id string) (*paymentmethod.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, _ := identity.Normalize(id)
	pm, ok := r.methods[key]
	if !ok {
		return nil, nil
	}
	return &pm, nil
}

func (r *PaymentMethodRepository) Create(ctx context.Context, pm *paymentmethod.PaymentMethod) (*paymentmethod.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *pm
	stored.ID = identity.New()
	r.methods[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return &stored, nil
}

func (r *PaymentMethodRepository) Update(ctx context.Context, id string, pm *paymentmethod.PaymentMethod) (*paymentmethod.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, _ := identity.Normalize(id)
	if _, ok := r.methods[key]; !ok {
		return nil, nil
	}
	stored := *pm
	stored.ID = key
	r.methods[key] = stored
	return &stored, nil
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, _ := identity.Normalize(id)
	if _, ok := r.methods[key]; !ok {
		return nil
	}
	delete(r.methods, key)
	if i := slices.Index(r.order, key); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return nil
}
