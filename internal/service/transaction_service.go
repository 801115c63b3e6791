package service

import (
	"context"

	domainErrors "github.com/Jeansss/payment-ms/internal/domain/errors"
	"github.com/Jeansss/payment-ms/internal/domain/identity"
	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"github.com/rs/zerolog/log"
)

// TransactionService creates, reads and updates the status of transactions.
type TransactionService struct {
	repo     transaction.Repository
	factory  *TransactionFactory
	statuses transaction.StatusSet
}

func NewTransactionService(repo transaction.Repository, factory *TransactionFactory, statuses transaction.StatusSet) *TransactionService {
	return &TransactionService{
		repo:     repo,
		factory:  factory,
		statuses: statuses,
	}
}

func (s *TransactionService) Get(ctx context.Context, id string) (*transaction.Transaction, error) {
	if !identity.IsValid(id) {
		return nil, domainErrors.InvalidIdentifier(id)
	}
	tx, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domainErrors.NotFound("Transaction", id, domainErrors.ErrTransactionNotFound)
	}
	return tx, nil
}

// Create persists a new pending transaction. Nothing is stored when the
// factory fails.
func (s *TransactionService) Create(ctx context.Context, req CreateTransactionRequest) (*transaction.Transaction, error) {
	tx, err := s.factory.NewTransaction(ctx, req.PaymentMethodID, req.CartID)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, tx)
}

// UpdateStatus applies a webhook notification. The id comes from a trusted
// sender so its format is not pre-checked; an unknown id is NotFound and no
// update is issued.
func (s *TransactionService) UpdateStatus(ctx context.Context, n Notification) (*transaction.Transaction, error) {
	if err := s.statuses.Validate(n.Status); err != nil {
		return nil, err
	}

	current, err := s.repo.Get(ctx, n.TransactionID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domainErrors.NotFound("Transaction", n.TransactionID, domainErrors.ErrTransactionNotFound)
	}

	updated, err := s.repo.Update(ctx, n.TransactionID, current.WithStatus(n.Status))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domainErrors.NotFound("Transaction", n.TransactionID, domainErrors.ErrTransactionNotFound)
	}

	log.Info().
		Str("transaction_id", n.TransactionID).
		Str("order_id", n.OrderID).
		Str("from", string(current.Status)).
		Str("to", string(updated.Status)).
		Msg("transaction status updated")

	return updated, nil
}

// List returns every transaction, or only those in status when it is set.
func (s *TransactionService) List(ctx context.Context, status transaction.Status) ([]*transaction.Transaction, error) {
	var (
		txs []*transaction.Transaction
		err error
	)
	if status == "" {
		txs, err = s.repo.GetAll(ctx)
	} else {
		txs, err = s.repo.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []*transaction.Transaction{}
	}
	return txs, nil
}
