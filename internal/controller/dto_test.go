package controller

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTransaction_JSONShape(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tx := &transaction.Transaction{
		ID: "6650a1f2c3d4e5f6a7b8c9d0",
		PaymentMethod: &paymentmethod.PaymentMethod{
			ID:          "507f1f77bcf86cd799439011",
			Name:        "Pix",
			Description: "instant transfer",
		},
		Total:     150,
		Status:    transaction.StatusPending,
		CartID:    "cart123",
		CreatedAt: createdAt,
	}

	body, err := json.Marshal(FromTransaction(tx))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "6650a1f2c3d4e5f6a7b8c9d0",
		"paymentMethod": {"id": "507f1f77bcf86cd799439011", "name": "Pix", "description": "instant transfer"},
		"total": 150,
		"status": "Pendente",
		"cartId": "cart123",
		"createdAt": "2024-05-01T12:00:00Z"
	}`, string(body))
}

func TestFromTransaction_NullPaymentMethod(t *testing.T) {
	tx := &transaction.Transaction{ID: "6650a1f2c3d4e5f6a7b8c9d0", Status: transaction.StatusPending, CartID: "cart123"}

	body, err := json.Marshal(FromTransaction(tx))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	v, ok := decoded["paymentMethod"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestFromCollections_EmptyIsArray(t *testing.T) {
	pms, err := json.Marshal(FromPaymentMethods(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(pms))

	txs, err := json.Marshal(FromTransactions(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(txs))
}

func TestWebhookRequest_ToService(t *testing.T) {
	n := WebhookRequest{Status: "Pago", TransactionID: "tx-1", OrderID: "order-9"}.toService()

	assert.Equal(t, transaction.Status("Pago"), n.Status)
	assert.Equal(t, "tx-1", n.TransactionID)
	assert.Equal(t, "order-9", n.OrderID)
}
