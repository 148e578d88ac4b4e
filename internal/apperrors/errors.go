package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates that an account balance cannot cover a payment.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrConflict indicates a concurrent write lost a race and may be retried.
var ErrConflict = errors.New("conflicting concurrent update")

// ErrUnauthorized indicates the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// Kind values are stable, machine-checkable identifiers for error categories.
const (
	KindNotFound          = "not_found"
	KindValidation        = "validation"
	KindDuplicate         = "duplicate"
	KindInsufficientFunds = "insufficient_funds"
	KindConflict          = "conflict"
	KindUnauthorized      = "unauthorized"
	KindForbidden         = "forbidden"
	KindInternal          = "internal"
)

// Kind classifies err into one of the Kind* constants.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrDuplicate):
		return KindDuplicate
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	default:
		return KindInternal
	}
}

// AppError carries an HTTP-ish status code alongside a wrapped cause.
// It is used for infrastructure failures (database, cache) that have no sentinel.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
