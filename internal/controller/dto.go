package controller

import (
	"time"

	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"github.com/Jeansss/payment-ms/internal/service"
)

// --- Request DTOs ---
// These DTOs handle HTTP/JSON concerns (camelCase names, validation tags).
// Controllers convert these to service layer DTOs before calling business logic.

// PaymentMethodRequest is the body for creating or replacing a payment method.
type PaymentMethodRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// TransactionRequest is the body for creating a transaction against a cart.
type TransactionRequest struct {
	PaymentMethodID string `json:"paymentMethodId" validate:"required"`
}

// WebhookRequest is a status notification from the payment webhook sender.
type WebhookRequest struct {
	Status        string `json:"status" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
	OrderID       string `json:"orderId" validate:"required"`
}

func (r PaymentMethodRequest) toService() service.PaymentMethodRequest {
	return service.PaymentMethodRequest{Name: r.Name, Description: r.Description}
}

func (r WebhookRequest) toService() service.Notification {
	return service.Notification{
		TransactionID: r.TransactionID,
		Status:        transaction.Status(r.Status),
		OrderID:       r.OrderID,
	}
}

// --- Response DTOs ---

// PaymentMethodResponse represents a payment method in API responses.
type PaymentMethodResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TransactionResponse represents a transaction in API responses. PaymentMethod
// is null when the transaction was created without a stored payment method.
type TransactionResponse struct {
	ID            string                 `json:"id"`
	PaymentMethod *PaymentMethodResponse `json:"paymentMethod"`
	Total         float64                `json:"total"`
	Status        string                 `json:"status"`
	CartID        string                 `json:"cartId"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// --- Conversion helpers ---

// FromPaymentMethod converts a domain payment method to API response.
func FromPaymentMethod(pm *paymentmethod.PaymentMethod) *PaymentMethodResponse {
	if pm == nil {
		return nil
	}
	return &PaymentMethodResponse{
		ID:          pm.ID,
		Name:        pm.Name,
		Description: pm.Description,
	}
}

func FromPaymentMethods(pms []*paymentmethod.PaymentMethod) []*PaymentMethodResponse {
	resp := make([]*PaymentMethodResponse, 0, len(pms))
	for _, pm := range pms {
		resp = append(resp, FromPaymentMethod(pm))
	}
	return resp
}

// FromTransaction converts a domain transaction to API response.
func FromTransaction(t *transaction.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:            t.ID,
		PaymentMethod: FromPaymentMethod(t.PaymentMethod),
		Total:         t.Total,
		Status:        string(t.Status),
		CartID:        t.CartID,
		CreatedAt:     t.CreatedAt,
	}
}

func FromTransactions(txs []*transaction.Transaction) []*TransactionResponse {
	resp := make([]*TransactionResponse, 0, len(txs))
	for _, t := range txs {
		resp = append(resp, FromTransaction(t))
	}
	return resp
}
