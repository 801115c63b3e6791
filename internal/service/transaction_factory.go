package service

import (
	"context"

	"github.com/Jeansss/payment-ms/internal/domain/cart"
	domainErrors "github.com/Jeansss/payment-ms/internal/domain/errors"
	"github.com/Jeansss/payment-ms/internal/domain/identity"
	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"golang.org/x/sync/errgroup"
)

// TransactionFactory assembles unsaved transactions from a payment method and
// the cart held by the order service.
type TransactionFactory struct {
	paymentMethods       paymentmethod.Repository
	carts                cart.Lookup
	requirePaymentMethod bool
}

func NewTransactionFactory(paymentMethods paymentmethod.Repository, carts cart.Lookup, opts ...FactoryOption) *TransactionFactory {
	f := &TransactionFactory{
		paymentMethods: paymentMethods,
		carts:          carts,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type FactoryOption func(*TransactionFactory)

// RequirePaymentMethod makes the factory fail when the payment method id is
// malformed or unknown instead of embedding a nil snapshot.
func RequirePaymentMethod(required bool) FactoryOption {
	return func(f *TransactionFactory) {
		f.requirePaymentMethod = required
	}
}

// NewTransaction runs both lookups concurrently. A cart failure aborts the
// whole assembly and is returned unchanged.
func (f *TransactionFactory) NewTransaction(ctx context.Context, paymentMethodID, cartID string) (*transaction.Transaction, error) {
	if f.requirePaymentMethod && !identity.IsValid(paymentMethodID) {
		return nil, domainErrors.InvalidIdentifier(paymentMethodID)
	}

	var (
		pm *paymentmethod.PaymentMethod
		c  *cart.Cart
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pm, err = f.paymentMethods.Get(gctx, paymentMethodID)
		return err
	})
	g.Go(func() error {
		var err error
		c, err = f.carts.GetCartByID(gctx, cartID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if pm == nil && f.requirePaymentMethod {
		return nil, domainErrors.NotFound("Payment", paymentMethodID, domainErrors.ErrPaymentMethodNotFound)
	}

	return transaction.New(pm, cartID, c.Total), nil
}
