package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentMethodRepository implements paymentmethod.Repository on MongoDB.
// Ids that are not ObjectIDs never match a document.
type PaymentMethodRepository struct {
	col *mongo.Collection
}

func NewPaymentMethodRepository(db *mongo.Database) *PaymentMethodRepository {
	return &PaymentMethodRepository{col: db.Collection(paymentMethodsCollection)}
}

func (r *PaymentMethodRepository) GetAll(ctx context.Context) ([]*paymentmethod.PaymentMethod, error) {
	cur, err := r.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	var docs []paymentMethodDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode payment methods: %w", err)
	}

	result := make([]*paymentmethod.PaymentMethod, 0, len(docs))
	for i := range docs {
		result = append(result, docs[i].toDomain())
	}
	return result, nil
}

func (r *PaymentMethodRepository) Get(ctx context.Context, id string) (*paymentmethod.PaymentMethod, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc paymentMethodDocument
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaymentMethodRepository) Create(ctx context.Context, pm *paymentmethod.PaymentMethod) (*paymentmethod.PaymentMethod, error) {
	doc := paymentMethodDocument{
		ID:          primitive.NewObjectID(),
		Name:        pm.Name,
		Description: pm.Description,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaymentMethodRepository) Update(ctx context.Context, id string, pm *paymentmethod.PaymentMethod) (*paymentmethod.PaymentMethod, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	replacement := paymentMethodDocument{ID: oid, Name: pm.Name, Description: pm.Description}
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var doc paymentMethodDocument
	err = r.col.FindOneAndReplace(ctx, bson.M{"_id": oid}, replacement, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	return nil
}
