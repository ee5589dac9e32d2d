package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind classifies failures surfaced to API clients.
type ErrorKind string

const (
	ValidationFailed ErrorKind = "ValidationFailed"
	InvalidParameter ErrorKind = "InvalidParameter"
	Unauthorized     ErrorKind = "Unauthorized"
	Forbidden        ErrorKind = "Forbidden"
	NotFound         ErrorKind = "NotFound"
	DuplicateKey     ErrorKind = "DuplicateKey"
	ServerError      ErrorKind = "ServerError"
)

// Status maps the kind to its HTTP status code.
func (k ErrorKind) Status() int {
	switch k {
	case ValidationFailed, InvalidParameter, DuplicateKey:
		return fiber.StatusBadRequest
	case Unauthorized:
		return fiber.StatusUnauthorized
	case Forbidden:
		return fiber.StatusForbidden
	case NotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the error type returned by handlers. The Fiber error handler
// renders it into the response envelope.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Validation(fields []FieldError) *AppError {
	return &AppError{Kind: ValidationFailed, Message: "Validation failed", Fields: fields}
}

func InvalidParam(name string, format string, args ...interface{}) *AppError {
	return &AppError{
		Kind:    InvalidParameter,
		Message: fmt.Sprintf(format, args...),
		Fields:  []FieldError{{Field: name, Message: fmt.Sprintf(format, args...)}},
	}
}

// Internal wraps an unexpected error. The message is what clients see; err is
// only logged.
func Internal(message string, err error) *AppError {
	return &AppError{Kind: ServerError, Message: message, Err: err}
}
