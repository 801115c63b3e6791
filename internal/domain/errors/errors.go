package errors

import (
	"errors"
	"fmt"
)

var (
	// Identifier errors
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// Payment method errors
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUnknownStatus       = errors.New("unknown transaction status")

	// Cart errors
	ErrCartNotFound    = errors.New("cart not found")
	ErrCartUnavailable = errors.New("cart service unavailable")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// DomainError wraps errors with additional context
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidIdentifier reports an id that is not a 24 character hex string.
func InvalidIdentifier(id string) *DomainError {
	return NewDomainError("invalid_id", fmt.Sprintf("'%s' is not a valid ObjectID", id), ErrInvalidIdentifier)
}

// NotFound reports a well-formed id with no backing record of the given kind.
func NotFound(kind string, id string, err error) *DomainError {
	return NewDomainError("not_found", fmt.Sprintf("%s with id: %s not found at database", kind, id), err)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// Is lets callers match any validation error against ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
