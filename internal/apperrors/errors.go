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

// ErrForbidden indicates that the caller is authenticated but may not touch the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// AppError wraps an infrastructure failure with the HTTP status it should surface as.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
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

// NewNotFoundError returns a 404 AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(404, message, ErrNotFound)
}

// NewConflictError returns a 409 AppError that matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return NewAppError(409, message, ErrDuplicate)
}

// NewValidationFailedError returns a 400 AppError that matches ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return NewAppError(400, message, ErrValidation)
}
