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

// ErrUnauthorized indicates a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates a verified caller that lacks the required role or ownership.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is not in a state that allows the operation,
// e.g. a request that was already approved or rejected.
var ErrConflict = errors.New("conflicting resource state")

// ErrInsufficientInventory indicates an asset has no available quantity left.
var ErrInsufficientInventory = errors.New("insufficient inventory")

// ErrGateway indicates a failure talking to the payment gateway.
var ErrGateway = errors.New("payment gateway error")

// AppError carries an HTTP-ish status code together with a safe message.
// The wrapped error is for logs only.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError.
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
