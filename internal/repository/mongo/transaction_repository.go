package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionRepository implements transaction.Repository on MongoDB.
type TransactionRepository struct {
	col *mongo.Collection
}

// NewTransactionRepository also ensures the status index used by ListByStatus.
func NewTransactionRepository(ctx context.Context, db *mongo.Database) (*TransactionRepository, error) {
	col := db.Collection(transactionsCollection)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction status index: %w", err)
	}

	return &TransactionRepository{col: col}, nil
}

func (r *TransactionRepository) GetAll(ctx context.Context) ([]*transaction.Transaction, error) {
	return r.find(ctx, bson.D{})
}

func (r *TransactionRepository) ListByStatus(ctx context.Context, status transaction.Status) ([]*transaction.Transaction, error) {
	return r.find(ctx, bson.D{{Key: "status", Value: string(status)}})
}

func (r *TransactionRepository) Get(ctx context.Context, id string) (*transaction.Transaction, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc transactionDocument
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error) {
	doc := toTransactionDocument(tx)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TransactionRepository) Update(ctx context.Context, id string, tx *transaction.Transaction) (*transaction.Transaction, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	replacement := toTransactionDocument(tx)
	replacement.ID = oid
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var doc transactionDocument
	err = r.col.FindOneAndReplace(ctx, bson.M{"_id": oid}, replacement, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TransactionRepository) find(ctx context.Context, filter bson.D) ([]*transaction.Transaction, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	var docs []transactionDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	result := make([]*transaction.Transaction, 0, len(docs))
	for i := range docs {
		result = append(result, docs[i].toDomain())
	}
	return result, nil
}
