package service

import (
	"context"

	domainErrors "github.com/Jeansss/payment-ms/internal/domain/errors"
	"github.com/Jeansss/payment-ms/internal/domain/identity"
	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
)

// PaymentMethodService handles CRUD over payment methods.
type PaymentMethodService struct {
	repo paymentmethod.Repository
}

func NewPaymentMethodService(repo paymentmethod.Repository) *PaymentMethodService {
	return &PaymentMethodService{repo: repo}
}

func (s *PaymentMethodService) List(ctx context.Context) ([]*paymentmethod.PaymentMethod, error) {
	pms, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if pms == nil {
		pms = []*paymentmethod.PaymentMethod{}
	}
	return pms, nil
}

// Get validates the id format before touching the repository.
func (s *PaymentMethodService) Get(ctx context.Context, id string) (*paymentmethod.PaymentMethod, error) {
	if !identity.IsValid(id) {
		return nil, domainErrors.InvalidIdentifier(id)
	}
	pm, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if pm == nil {
		return nil, domainErrors.NotFound("Payment", id, domainErrors.ErrPaymentMethodNotFound)
	}
	return pm, nil
}

func (s *PaymentMethodService) Create(ctx context.Context, req PaymentMethodRequest) (*paymentmethod.PaymentMethod, error) {
	pm, err := paymentmethod.New(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, pm)
}

// Update overwrites both fields. Existence is left to the repository, which
// reports no match as a nil result.
func (s *PaymentMethodService) Update(ctx context.Context, id string, req PaymentMethodRequest) (*paymentmethod.PaymentMethod, error) {
	pm, err := paymentmethod.New(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, pm)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domainErrors.NotFound("Payment", id, domainErrors.ErrPaymentMethodNotFound)
	}
	return updated, nil
}

func (s *PaymentMethodService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
