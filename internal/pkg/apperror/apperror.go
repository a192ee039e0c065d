// Package apperror carries the request-level error taxonomy: every business
// failure a handler can surface is an *AppError with an HTTP status, a
// machine-readable code and a user-facing message. Anything else reaching the
// request boundary is an internal error.
package apperror

import "github.com/gofiber/fiber/v2"

type AppError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func New(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

func NewValidation(code, message string, details interface{}) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Code: code, Message: message, Details: details}
}

func NewBadRequest(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

func NewNotFound(code, message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Code: code, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Status: fiber.StatusConflict, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Status: fiber.StatusForbidden, Message: message}
}
