//go:build integration

package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"github.com/Jeansss/payment-ms/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

func setupDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:6")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, tc.TerminateContainer(container)) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := Connect(ctx, config.MongoConfig{URI: uri, Database: "payment_test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return client.Database("payment_test")
}

func TestRepositories_Integration(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()

	pmRepo := NewPaymentMethodRepository(db)
	txRepo, err := NewTransactionRepository(ctx, db)
	require.NoError(t, err)

	t.Run("payment method round trip", func(t *testing.T) {
		created, err := pmRepo.Create(ctx, &paymentmethod.PaymentMethod{Name: "Credit Card", Description: "Visa"})
		require.NoError(t, err)
		assert.Len(t, created.ID, 24)

		got, err := pmRepo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		updated, err := pmRepo.Update(ctx, created.ID, &paymentmethod.PaymentMethod{Name: "Debit Card", Description: "Elo"})
		require.NoError(t, err)
		assert.Equal(t, &paymentmethod.PaymentMethod{ID: created.ID, Name: "Debit Card", Description: "Elo"}, updated)

		all, err := pmRepo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		require.NoError(t, pmRepo.Delete(ctx, created.ID))
		got, err = pmRepo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := pmRepo.Get(ctx, "507f1f77bcf86cd799439011")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = pmRepo.Get(ctx, "not-an-object-id")
		require.NoError(t, err)
		assert.Nil(t, got)

		updated, err := pmRepo.Update(ctx, "507f1f77bcf86cd799439011", &paymentmethod.PaymentMethod{Name: "a", Description: "b"})
		require.NoError(t, err)
		assert.Nil(t, updated)

		tx, err := txRepo.Get(ctx, "xyz")
		require.NoError(t, err)
		assert.Nil(t, tx)
	})

	t.Run("transaction snapshot and status", func(t *testing.T) {
		pm := &paymentmethod.PaymentMethod{ID: "507f1f77bcf86cd799439011", Name: "Credit Card", Description: "Visa"}
		created, err := txRepo.Create(ctx, transaction.New(pm, "cart123", 100))
		require.NoError(t, err)
		assert.Equal(t, pm, created.PaymentMethod)

		got, err := txRepo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		updated, err := txRepo.Update(ctx, created.ID, got.WithStatus("completed"))
		require.NoError(t, err)
		expected := *created
		expected.Status = "completed"
		assert.Equal(t, &expected, updated)

		completed, err := txRepo.ListByStatus(ctx, "completed")
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, created.ID, completed[0].ID)

		_, err = txRepo.Create(ctx, transaction.New(nil, "cart456", 5))
		require.NoError(t, err)
		all, err := txRepo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
		assert.Nil(t, all[1].PaymentMethod)
	})
}
