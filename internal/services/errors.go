package services

import (
	"fmt"
	"time"
)

// Stable error codes for client-side branching.
const (
	CodeValidation             = "VALIDATION_ERROR"
	CodeInvalidCredentials     = "INVALID_CREDENTIALS"
	CodeRateLimited            = "RATE_LIMITED"
	CodeInvalidToken           = "INVALID_TOKEN"
	CodeGameFull               = "GAME_FULL"
	CodeDuplicateRegistration  = "DUPLICATE_REGISTRATION"
	CodeCancellationNotAllowed = "CANCELLATION_NOT_ALLOWED"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeInternal               = "INTERNAL_ERROR"
)

// Error is a business-rule violation carrying a stable code and a
// human-readable message. Infrastructure failures are returned as plain
// errors instead and surface as generic 500s.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error variables
var (
	ErrInvalidCredentials     = &Error{Code: CodeInvalidCredentials, Message: "Email o contraseña incorrectos"}
	ErrInvalidToken           = &Error{Code: CodeInvalidToken, Message: "El enlace no es válido o ya no está disponible"}
	ErrGameFull               = &Error{Code: CodeGameFull, Message: "El partido ya está completo"}
	ErrDuplicateRegistration  = &Error{Code: CodeDuplicateRegistration, Message: "Ese teléfono ya está anotado en este partido"}
	ErrCancellationNotAllowed = &Error{Code: CodeCancellationNotAllowed, Message: "Ya no se puede cancelar esta inscripción"}
)

// NewValidationError builds a VALIDATION_ERROR with a field-specific message.
func NewValidationError(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// RateLimitError is returned when an action is rate limited. RetryAfter is
// surfaced to the client via the Retry-After header.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: retry after %s", CodeRateLimited, e.RetryAfter)
}
