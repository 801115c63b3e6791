package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jeansss/payment-ms/internal/domain/identity"
	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"github.com/jackc/pgx/v5"
)

// PaymentMethodRepository implements paymentmethod.Repository using PostgreSQL.
type PaymentMethodRepository struct {
	db DBTX
}

// NewPaymentMethodRepository creates a new PaymentMethodRepository.
func NewPaymentMethodRepository(db DBTX) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

// scanPaymentMethod returns nil when the row does not exist.
func scanPaymentMethod(s scanner) (*paymentmethod.PaymentMethod, error) {
	pm := &paymentmethod.PaymentMethod{}
	if err := s.Scan(&pm.ID, &pm.Name, &pm.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment method: %w", err)
	}
	return pm, nil
}

func (r *PaymentMethodRepository) GetAll(ctx context.Context) ([]*paymentmethod.PaymentMethod, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description FROM payment_methods ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	result := make([]*paymentmethod.PaymentMethod, 0)
	for rows.Next() {
		pm, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, pm)
	}
	return result, rows.Err()
}

func (r *PaymentMethodRepository) Get(ctx context.Context, id string) (*paymentmethod.PaymentMethod, error) {
	key, ok := identity.Normalize(id)
	if !ok {
		return nil, nil
	}
	return scanPaymentMethod(r.db.QueryRow(ctx,
		`SELECT id, name, description FROM payment_methods WHERE id = $1`, key))
}

func (r *PaymentMethodRepository) Create(ctx context.Context, pm *paymentmethod.PaymentMethod) (*paymentmethod.PaymentMethod, error) {
	created, err := scanPaymentMethod(r.db.QueryRow(ctx,
		`INSERT INTO payment_methods (id, name, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, description`,
		identity.New(), pm.Name, pm.Description,
	))
	if err != nil {
		return nil, fmt.Errorf("insert payment method: %w", err)
	}
	return created, nil
}

func (r *PaymentMethodRepository) Update(ctx context.Context, id string, pm *paymentmethod.PaymentMethod) (*paymentmethod.PaymentMethod, error) {
	key, ok := identity.Normalize(id)
	if !ok {
		return nil, nil
	}
	return scanPaymentMethod(r.db.QueryRow(ctx,
		`UPDATE payment_methods SET name = $1, description = $2
		 WHERE id = $3
		 RETURNING id, name, description`,
		pm.Name, pm.Description, key,
	))
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id string) error {
	key, ok := identity.Normalize(id)
	if !ok {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1`, key); err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}
