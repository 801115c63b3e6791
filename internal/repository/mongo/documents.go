package mongo

import (
	"time"

	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type paymentMethodDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
}

// transactionDocument embeds the payment method by value, never by reference.
type transactionDocument struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty"`
	PaymentMethod *paymentMethodDocument `bson:"paymentMethod,omitempty"`
	Total         float64                `bson:"total"`
	Status        string                 `bson:"status"`
	CartID        string                 `bson:"cartId"`
	CreatedAt     time.Time              `bson:"createdAt"`
}

func toPaymentMethodDocument(pm *paymentmethod.PaymentMethod) *paymentMethodDocument {
	if pm == nil {
		return nil
	}
	doc := &paymentMethodDocument{Name: pm.Name, Description: pm.Description}
	if oid, err := primitive.ObjectIDFromHex(pm.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func (d *paymentMethodDocument) toDomain() *paymentmethod.PaymentMethod {
	if d == nil {
		return nil
	}
	pm := &paymentmethod.PaymentMethod{Name: d.Name, Description: d.Description}
	if !d.ID.IsZero() {
		pm.ID = d.ID.Hex()
	}
	return pm
}

func toTransactionDocument(tx *transaction.Transaction) *transactionDocument {
	return &transactionDocument{
		PaymentMethod: toPaymentMethodDocument(tx.PaymentMethod),
		Total:         tx.Total,
		Status:        string(tx.Status),
		CartID:        tx.CartID,
		CreatedAt:     tx.CreatedAt.UTC().Truncate(time.Millisecond),
	}
}

func (d *transactionDocument) toDomain() *transaction.Transaction {
	return &transaction.Transaction{
		ID:            d.ID.Hex(),
		PaymentMethod: d.PaymentMethod.toDomain(),
		Total:         d.Total,
		Status:        transaction.Status(d.Status),
		CartID:        d.CartID,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}
