package transaction

import (
	"strings"
	"time"

	"github.com/Jeansss/payment-ms/internal/domain/errors"
	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
)

// Status is the transaction state as reported by the payment webhook sender
type Status string

// StatusPending is the state every transaction starts in.
const StatusPending Status = "Pendente"

// Transaction is a point-in-time snapshot of a checkout: the payment method and
// cart total are copied at creation and never recomputed.
type Transaction struct {
	ID            string
	PaymentMethod *paymentmethod.PaymentMethod
	Total         float64
	Status        Status
	CartID        string
	CreatedAt     time.Time
}

// New builds an unsaved pending transaction. A nil payment method is kept as nil.
func New(pm *paymentmethod.PaymentMethod, cartID string, total float64) *Transaction {
	var snapshot *paymentmethod.PaymentMethod
	if pm != nil {
		cp := *pm
		snapshot = &cp
	}
	return &Transaction{
		PaymentMethod: snapshot,
		Total:         total,
		Status:        StatusPending,
		CartID:        cartID,
		CreatedAt:     time.Now().UTC(),
	}
}

// WithStatus returns a copy of t with only the status replaced.
func (t *Transaction) WithStatus(status Status) *Transaction {
	updated := *t
	updated.Status = status
	return &updated
}

// StatusSet is the enumerated set of status strings accepted from webhooks.
// It carries no transition graph: any accepted status may overwrite any other.
// An empty set accepts every non-empty status.
type StatusSet struct {
	allowed map[Status]struct{}
}

// NewStatusSet builds a set from the configured status names.
func NewStatusSet(statuses ...string) StatusSet {
	set := StatusSet{allowed: make(map[Status]struct{}, len(statuses))}
	for _, s := range statuses {
		if s = strings.TrimSpace(s); s != "" {
			set.allowed[Status(s)] = struct{}{}
		}
	}
	if len(set.allowed) > 0 {
		set.allowed[StatusPending] = struct{}{}
	}
	return set
}

// Validate checks that status may be stored.
func (s StatusSet) Validate(status Status) error {
	if strings.TrimSpace(string(status)) == "" {
		return errors.NewValidationError("status", "cannot be empty")
	}
	if len(s.allowed) == 0 {
		return nil
	}
	if _, ok := s.allowed[status]; !ok {
		return errors.NewDomainError("invalid_status", "status '"+string(status)+"' is not accepted", errors.ErrUnknownStatus)
	}
	return nil
}
