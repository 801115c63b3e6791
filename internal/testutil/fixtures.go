package testutil

import (
	"fmt"
	"time"

	"github.com/Jeansss/payment-ms/internal/domain/cart"
	domainErrors "github.com/Jeansss/payment-ms/internal/domain/errors"
	"github.com/Jeansss/payment-ms/internal/domain/identity"
	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"github.com/Jeansss/payment-ms/internal/domain/transaction"
)

func NewTestPaymentMethod(name, description string) *paymentmethod.PaymentMethod {
	return &paymentmethod.PaymentMethod{
		ID:          identity.New(),
		Name:        name,
		Description: description,
	}
}

func NewTestCart(id string, total float64) *cart.Cart {
	return &cart.Cart{ID: id, Total: total}
}

func NewTestTransaction(pm *paymentmethod.PaymentMethod, cartID string, total float64) *transaction.Transaction {
	var snapshot *paymentmethod.PaymentMethod
	if pm != nil {
		cp := *pm
		snapshot = &cp
	}
	return &transaction.Transaction{
		ID:            identity.New(),
		PaymentMethod: snapshot,
		Total:         total,
		Status:        transaction.StatusPending,
		CartID:        cartID,
		CreatedAt:     time.Now().UTC(),
	}
}

func cartNotFound(cartID string) error {
	return fmt.Errorf("cart %s: %w", cartID, domainErrors.ErrCartNotFound)
}
