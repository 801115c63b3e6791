package paymentmethod

import (
	"strings"

	"github.com/Jeansss/payment-ms/internal/domain/errors"
)

// PaymentMethod represents a payment method offered at checkout
type PaymentMethod struct {
	ID          string
	Name        string
	Description string
}

// New builds an unsaved payment method. Both fields are required.
func New(name, description string) (*PaymentMethod, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.NewValidationError("description", "cannot be empty")
	}
	return &PaymentMethod{
		Name:        name,
		Description: description,
	}, nil
}
