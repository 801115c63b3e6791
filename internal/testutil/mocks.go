package testutil

import (
	"context"
	"sync"

	"github.com/Jeansss/payment-ms/internal/domain/cart"
	"github.com/Jeansss/payment-ms/internal/domain/identity"
	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"github.com/Jeansss/payment-ms/internal/domain/transaction"
)

// --- Payment Method Repository Mock ---

// MockPaymentMethodRepository is a mock implementation of paymentmethod.Repository.
type MockPaymentMethodRepository struct {
	mu      sync.Mutex
	methods map[string]*paymentmethod.PaymentMethod
	calls   map[string]int

	GetAllFunc func(ctx context.Context) ([]*paymentmethod.PaymentMethod, error)
	GetFunc    func(ctx context.Context, id string) (*paymentmethod.PaymentMethod, error)
	CreateFunc func(ctx context.Context, pm *paymentmethod.PaymentMethod) (*paymentmethod.PaymentMethod, error)
	UpdateFunc func(ctx context.Context, id string, pm *paymentmethod.PaymentMethod) (*paymentmethod.PaymentMethod, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func NewMockPaymentMethodRepository() *MockPaymentMethodRepository {
	return &MockPaymentMethodRepository{
		methods: make(map[string]*paymentmethod.PaymentMethod),
		calls:   make(map[string]int),
	}
}

// AddPaymentMethod pre-populates the mock with a payment method.
func (m *MockPaymentMethodRepository) AddPaymentMethod(pm *paymentmethod.PaymentMethod) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.methods[pm.ID] = pm
}

// Calls reports how many times the named method was invoked.
func (m *MockPaymentMethodRepository) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockPaymentMethodRepository) record(method string) {
	m.mu.Lock()
	m.calls[method]++
	m.mu.Unlock()
}

func (m *MockPaymentMethodRepository) GetAll(ctx context.Context) ([]*paymentmethod.PaymentMethod, error) {
	m.record("GetAll")
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*paymentmethod.PaymentMethod, 0, len(m.methods))
	for _, pm := range m.methods {
		result = append(result, pm)
	}
	return result, nil
}

func (m *MockPaymentMethodRepository) Get(ctx context.Context, id string) (*paymentmethod.PaymentMethod, error) {
	m.record("Get")
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	pm, ok := m.methods[id]
	if !ok {
		return nil, nil
	}
	return pm, nil
}

func (m *MockPaymentMethodRepository) Create(ctx context.Context, pm *paymentmethod.PaymentMethod) (*paymentmethod.PaymentMethod, error) {
	m.record("Create")
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pm)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *pm
	stored.ID = identity.New()
	m.methods[stored.ID] = &stored
	return &stored, nil
}

func (m *MockPaymentMethodRepository) Update(ctx context.Context, id string, pm *paymentmethod.PaymentMethod) (*paymentmethod.PaymentMethod, error) {
	m.record("Update")
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, pm)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.methods[id]; !ok {
		return nil, nil
	}
	stored := *pm
	stored.ID = id
	m.methods[id] = &stored
	return &stored, nil
}

func (m *MockPaymentMethodRepository) Delete(ctx context.Context, id string) error {
	m.record("Delete")
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.methods, id)
	return nil
}

// --- Transaction Repository Mock ---

// MockTransactionRepository is a mock implementation of transaction.Repository.
type MockTransactionRepository struct {
	mu           sync.Mutex
	transactions map[string]*transaction.Transaction
	calls        map[string]int

	GetAllFunc       func(ctx context.Context) ([]*transaction.Transaction, error)
	GetFunc          func(ctx context.Context, id string) (*transaction.Transaction, error)
	CreateFunc       func(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error)
	UpdateFunc       func(ctx context.Context, id string, tx *transaction.Transaction) (*transaction.Transaction, error)
	ListByStatusFunc func(ctx context.Context, status transaction.Status) ([]*transaction.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*transaction.Transaction),
		calls:        make(map[string]int),
	}
}

// AddTransaction pre-populates the mock with a transaction.
func (m *MockTransactionRepository) AddTransaction(tx *transaction.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[tx.ID] = tx
}

// GetTransaction returns the stored transaction without counting a call.
func (m *MockTransactionRepository) GetTransaction(id string) *transaction.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transactions[id]
}

// Count returns the number of stored transactions.
func (m *MockTransactionRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.transactions)
}

// Calls reports how many times the named method was invoked.
func (m *MockTransactionRepository) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockTransactionRepository) record(method string) {
	m.mu.Lock()
	m.calls[method]++
	m.mu.Unlock()
}

func (m *MockTransactionRepository) GetAll(ctx context.Context) ([]*transaction.Transaction, error) {
	m.record("GetAll")
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*transaction.Transaction, 0, len(m.transactions))
	for _, tx := range m.transactions {
		result = append(result, tx)
	}
	return result, nil
}

func (m *MockTransactionRepository) Get(ctx context.Context, id string) (*transaction.Transaction, error) {
	m.record("Get")
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.transactions[id]
	if !ok {
		return nil, nil
	}
	return tx, nil
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error) {
	m.record("Create")
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *tx
	stored.ID = identity.New()
	m.transactions[stored.ID] = &stored
	return &stored, nil
}

func (m *MockTransactionRepository) Update(ctx context.Context, id string, tx *transaction.Transaction) (*transaction.Transaction, error) {
	m.record("Update")
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[id]; !ok {
		return nil, nil
	}
	stored := *tx
	stored.ID = id
	m.transactions[id] = &stored
	return &stored, nil
}

func (m *MockTransactionRepository) ListByStatus(ctx context.Context, status transaction.Status) ([]*transaction.Transaction, error) {
	m.record("ListByStatus")
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*transaction.Transaction
	for _, tx := range m.transactions {
		if tx.Status == status {
			result = append(result, tx)
		}
	}
	return result, nil
}

// --- Cart Lookup Mock ---

// MockCartLookup is a mock implementation of cart.Lookup.
type MockCartLookup struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
	calls int

	GetCartByIDFunc func(ctx context.Context, cartID string) (*cart.Cart, error)
}

func NewMockCartLookup() *MockCartLookup {
	return &MockCartLookup{carts: make(map[string]*cart.Cart)}
}

// AddCart pre-populates the mock with a cart.
func (m *MockCartLookup) AddCart(c *cart.Cart) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[c.ID] = c
}

func (m *MockCartLookup) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockCartLookup) GetCartByID(ctx context.Context, cartID string) (*cart.Cart, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.GetCartByIDFunc != nil {
		return m.GetCartByIDFunc(ctx, cartID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[cartID]
	if !ok {
		return nil, cartNotFound(cartID)
	}
	return c, nil
}
