package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jeansss/payment-ms/internal/domain/identity"
	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, payment_method, total, status, cart_id, created_at`

// paymentMethodSnapshot is the JSONB shape of the embedded payment method.
type paymentMethodSnapshot struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toSnapshot(pm *paymentmethod.PaymentMethod) *paymentMethodSnapshot {
	if pm == nil {
		return nil
	}
	return &paymentMethodSnapshot{ID: pm.ID, Name: pm.Name, Description: pm.Description}
}

// TransactionRepository implements transaction.Repository using PostgreSQL.
type TransactionRepository struct {
	db DBTX
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// scanTransaction returns nil when the row does not exist.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var (
		tx       transaction.Transaction
		snapshot *paymentMethodSnapshot
		status   string
	)
	if err := s.Scan(&tx.ID, &snapshot, &tx.Total, &status, &tx.CartID, &tx.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	if snapshot != nil {
		tx.PaymentMethod = &paymentmethod.PaymentMethod{
			ID:          snapshot.ID,
			Name:        snapshot.Name,
			Description: snapshot.Description,
		}
	}
	tx.Status = transaction.Status(status)
	tx.CreatedAt = tx.CreatedAt.UTC()
	return &tx, nil
}

func (r *TransactionRepository) GetAll(ctx context.Context) ([]*transaction.Transaction, error) {
	return r.list(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY created_at, id`)
}

func (r *TransactionRepository) ListByStatus(ctx context.Context, status transaction.Status) ([]*transaction.Transaction, error) {
	return r.list(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE status = $1 ORDER BY created_at, id`,
		string(status))
}

func (r *TransactionRepository) Get(ctx context.Context, id string) (*transaction.Transaction, error) {
	key, ok := identity.Normalize(id)
	if !ok {
		return nil, nil
	}
	return scanTransaction(r.db.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, key))
}

func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error) {
	created, err := scanTransaction(r.db.QueryRow(ctx,
		`INSERT INTO transactions (`+transactionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+transactionColumns,
		identity.New(), toSnapshot(tx.PaymentMethod), tx.Total, string(tx.Status), tx.CartID,
		tx.CreatedAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return created, nil
}

func (r *TransactionRepository) Update(ctx context.Context, id string, tx *transaction.Transaction) (*transaction.Transaction, error) {
	key, ok := identity.Normalize(id)
	if !ok {
		return nil, nil
	}
	return scanTransaction(r.db.QueryRow(ctx,
		`UPDATE transactions
		 SET payment_method = $1, total = $2, status = $3, cart_id = $4, created_at = $5
		 WHERE id = $6
		 RETURNING `+transactionColumns,
		toSnapshot(tx.PaymentMethod), tx.Total, string(tx.Status), tx.CartID,
		tx.CreatedAt.UTC().Truncate(time.Microsecond), key,
	))
}

func (r *TransactionRepository) list(ctx context.Context, sql string, args ...any) ([]*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	result := make([]*transaction.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}
