// Package errors defines the application error taxonomy surfaced at the HTTP boundary.
package errors

import (
	"net/http"

	"newsadmin/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// API-key authentication errors. Rate-limited requests surface 401 like
	// every other key rejection; the error code disambiguates for clients.
	ErrAPIKeyMissing = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_CREDENTIAL",
		"Authorization header with a Bearer API key is required",
		"",
	)

	ErrAPIKeyInvalid = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_KEY",
		"Unknown API key",
		"",
	)

	ErrAPIKeyInactive = NewBaseError(
		http.StatusUnauthorized,
		"KEY_INACTIVE",
		"API key has been deactivated",
		"",
	)

	ErrAPIKeyExpired = NewBaseError(
		http.StatusUnauthorized,
		"KEY_EXPIRED",
		"API key has expired",
		"",
	)

	ErrAPIKeyRateLimited = NewBaseError(
		http.StatusUnauthorized,
		"RATE_LIMITED",
		"API key request quota exhausted for the current window",
		"",
	)

	ErrInsufficientPermission = NewBaseError(
		http.StatusForbidden,
		"INSUFFICIENT_PERMISSION",
		"API key does not hold the required permission",
		"",
	)

	// Admin session errors
	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Invalid or expired admin session",
		"",
	)

	// Notification lifecycle errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrNotificationAlreadySent = NewBaseError(
		http.StatusBadRequest,
		"NOTIFICATION_ALREADY_SENT",
		"Notification has already been dispatched; create a new one to resend",
		"",
	)

	ErrTargetResolutionEmpty = NewBaseError(
		http.StatusBadRequest,
		"TARGET_RESOLUTION_EMPTY",
		"No active device tokens match the notification target",
		"",
	)

	ErrDispatchTransport = NewBaseError(
		http.StatusBadGateway,
		"DISPATCH_TRANSPORT_FAILED",
		"Push gateway call failed; no deliveries were made",
		"",
	)

	// Token registration errors
	ErrDeliveryRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_RECORD_NOT_FOUND",
		"No delivery record for the given notification and token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the wrapped database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
