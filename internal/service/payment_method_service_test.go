package service

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/Jeansss/payment-ms/internal/domain/errors"
	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"github.com/Jeansss/payment-ms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test Helpers ---

func setupPaymentMethodService() (*PaymentMethodService, *testutil.MockPaymentMethodRepository) {
	repo := testutil.NewMockPaymentMethodRepository()
	return NewPaymentMethodService(repo), repo
}

var malformedIDs = []string{
	"",
	"123",
	"507f1f77bcf86cd79943901",   // 23 chars
	"507f1f77bcf86cd7994390111", // 25 chars
	"507f1f77bcf86cd79943901z",
	"not-an-object-id-at-all!",
}

// --- List Tests ---

func TestPaymentMethodList_Empty(t *testing.T) {
	svc, _ := setupPaymentMethodService()

	pms, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, pms)
	assert.Empty(t, pms)
}

func TestPaymentMethodList_ReturnsAll(t *testing.T) {
	svc, repo := setupPaymentMethodService()
	repo.AddPaymentMethod(testutil.NewTestPaymentMethod("Credit Card", "Visa"))
	repo.AddPaymentMethod(testutil.NewTestPaymentMethod("Pix", "Instant transfer"))

	pms, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, pms, 2)
}

func TestPaymentMethodList_NilFromRepository(t *testing.T) {
	svc, repo := setupPaymentMethodService()
	repo.GetAllFunc = func(ctx context.Context) ([]*paymentmethod.PaymentMethod, error) {
		return nil, nil
	}

	pms, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, pms)
}

// --- Get Tests ---

func TestPaymentMethodGet_Success(t *testing.T) {
	svc, repo := setupPaymentMethodService()
	pm := testutil.NewTestPaymentMethod("Credit Card", "Visa")
	repo.AddPaymentMethod(pm)

	got, err := svc.Get(context.Background(), pm.ID)
	require.NoError(t, err)
	assert.Equal(t, pm, got)
}

func TestPaymentMethodGet_InvalidIdentifier(t *testing.T) {
	for _, id := range malformedIDs {
		t.Run(id, func(t *testing.T) {
			svc, repo := setupPaymentMethodService()

			_, err := svc.Get(context.Background(), id)
			assert.ErrorIs(t, err, domainErrors.ErrInvalidIdentifier)
			assert.Equal(t, 0, repo.Calls("Get"))
		})
	}
}

func TestPaymentMethodGet_InvalidIdentifierMessage(t *testing.T) {
	svc, _ := setupPaymentMethodService()

	_, err := svc.Get(context.Background(), "abc")
	var de *domainErrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "'abc' is not a valid ObjectID", de.Message)
}

func TestPaymentMethodGet_NotFound(t *testing.T) {
	svc, _ := setupPaymentMethodService()

	_, err := svc.Get(context.Background(), "507f1f77bcf86cd799439011")
	assert.ErrorIs(t, err, domainErrors.ErrPaymentMethodNotFound)
	assert.Contains(t, err.Error(), "Payment with id: 507f1f77bcf86cd799439011 not found at database")
}

func TestPaymentMethodGet_UppercaseHexAccepted(t *testing.T) {
	svc, repo := setupPaymentMethodService()
	pm := &paymentmethod.PaymentMethod{ID: "507F1F77BCF86CD799439011", Name: "Boleto", Description: "Bank slip"}
	repo.AddPaymentMethod(pm)

	got, err := svc.Get(context.Background(), pm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Boleto", got.Name)
}

func TestPaymentMethodGet_RepositoryError(t *testing.T) {
	svc, repo := setupPaymentMethodService()
	repo.GetFunc = func(ctx context.Context, id string) (*paymentmethod.PaymentMethod, error) {
		return nil, errors.New("database error")
	}

	_, err := svc.Get(context.Background(), "507f1f77bcf86cd799439011")
	assert.EqualError(t, err, "database error")
}

// --- Create Tests ---

func TestPaymentMethodCreate_RoundTrip(t *testing.T) {
	svc, _ := setupPaymentMethodService()
	ctx := context.Background()

	created, err := svc.Create(ctx, PaymentMethodRequest{Name: "Credit Card", Description: "Visa"})
	require.NoError(t, err)
	assert.Len(t, created.ID, 24)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Credit Card", got.Name)
	assert.Equal(t, "Visa", got.Description)
}

func TestPaymentMethodCreate_MissingFields(t *testing.T) {
	svc, repo := setupPaymentMethodService()

	_, err := svc.Create(context.Background(), PaymentMethodRequest{Name: "Credit Card"})
	assert.ErrorIs(t, err, domainErrors.ErrValidationFailed)
	assert.Equal(t, 0, repo.Calls("Create"))
}

func TestPaymentMethodCreate_RepositoryError(t *testing.T) {
	svc, repo := setupPaymentMethodService()
	repo.CreateFunc = func(ctx context.Context, pm *paymentmethod.PaymentMethod) (*paymentmethod.PaymentMethod, error) {
		return nil, errors.New("database error")
	}

	_, err := svc.Create(context.Background(), PaymentMethodRequest{Name: "Credit Card", Description: "Visa"})
	assert.EqualError(t, err, "database error")
}

// --- Update Tests ---

func TestPaymentMethodUpdate_ReplacesBothFields(t *testing.T) {
	svc, repo := setupPaymentMethodService()
	ctx := context.Background()
	pm := testutil.NewTestPaymentMethod("Credit Card", "Visa")
	repo.AddPaymentMethod(pm)

	updated, err := svc.Update(ctx, pm.ID, PaymentMethodRequest{Name: "Debit Card", Description: "Mastercard"})
	require.NoError(t, err)
	assert.Equal(t, pm.ID, updated.ID)

	got, err := svc.Get(ctx, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Debit Card", got.Name)
	assert.Equal(t, "Mastercard", got.Description)
}

func TestPaymentMethodUpdate_NoExistenceCheckBeforeUpdate(t *testing.T) {
	svc, repo := setupPaymentMethodService()
	pm := testutil.NewTestPaymentMethod("Credit Card", "Visa")
	repo.AddPaymentMethod(pm)

	_, err := svc.Update(context.Background(), pm.ID, PaymentMethodRequest{Name: "Pix", Description: "Instant"})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.Calls("Get"))
	assert.Equal(t, 1, repo.Calls("Update"))
}

func TestPaymentMethodUpdate_NoMatch(t *testing.T) {
	svc, _ := setupPaymentMethodService()

	_, err := svc.Update(context.Background(), "507f1f77bcf86cd799439011", PaymentMethodRequest{Name: "Pix", Description: "Instant"})
	assert.ErrorIs(t, err, domainErrors.ErrPaymentMethodNotFound)
}

func TestPaymentMethodUpdate_MissingFields(t *testing.T) {
	svc, repo := setupPaymentMethodService()

	_, err := svc.Update(context.Background(), "507f1f77bcf86cd799439011", PaymentMethodRequest{Description: "Instant"})
	assert.ErrorIs(t, err, domainErrors.ErrValidationFailed)
	assert.Equal(t, 0, repo.Calls("Update"))
}

// --- Delete Tests ---

func TestPaymentMethodDelete_Success(t *testing.T) {
	svc, repo := setupPaymentMethodService()
	ctx := context.Background()
	pm := testutil.NewTestPaymentMethod("Credit Card", "Visa")
	repo.AddPaymentMethod(pm)

	require.NoError(t, svc.Delete(ctx, pm.ID))

	_, err := svc.Get(ctx, pm.ID)
	assert.ErrorIs(t, err, domainErrors.ErrPaymentMethodNotFound)
}

func TestPaymentMethodDelete_InvalidIdentifier(t *testing.T) {
	for _, id := range malformedIDs {
		t.Run(id, func(t *testing.T) {
			svc, repo := setupPaymentMethodService()

			err := svc.Delete(context.Background(), id)
			assert.ErrorIs(t, err, domainErrors.ErrInvalidIdentifier)
			assert.Equal(t, 0, repo.Calls("Get"))
			assert.Equal(t, 0, repo.Calls("Delete"))
		})
	}
}

func TestPaymentMethodDelete_NotFound(t *testing.T) {
	svc, repo := setupPaymentMethodService()

	err := svc.Delete(context.Background(), "507f1f77bcf86cd799439011")
	assert.ErrorIs(t, err, domainErrors.ErrPaymentMethodNotFound)
	assert.Equal(t, 0, repo.Calls("Delete"))
}
