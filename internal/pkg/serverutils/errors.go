package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is an error with an HTTP status attached. Services return these;
// the error handler middleware turns them into JSON responses.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func NewProcessingError(message string) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: message}
}
