package service

import "github.com/Jeansss/payment-ms/internal/domain/transaction"

// Controllers convert their HTTP DTOs to these types.

type PaymentMethodRequest struct {
	Name        string
	Description string
}

type CreateTransactionRequest struct {
	PaymentMethodID string
	CartID          string
}

// Notification is a status change reported by the payment webhook sender,
// either over HTTP or through the webhook stream.
type Notification struct {
	TransactionID string
	Status        transaction.Status
	OrderID       string
}
