// Package errors defines the application error taxonomy. Every failure that
// crosses the credential service boundary is one of the AppError values below;
// internal detail stays in logs and wrapped causes, never in responses.
package errors

import (
	"net/http"

	"passport/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Client-facing error message
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

// Message returns the client-facing error message
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

// Predefined error types. The messages are the full client-facing contract:
// signup distinguishes only "taken" from "failed", while login and refresh
// collapse every internal failure into one uniform message each.
var (
	// ErrCredentialsTaken is returned when signup hits the unique email constraint.
	ErrCredentialsTaken = NewBaseError(
		http.StatusBadRequest,
		"CREDENTIALS_TAKEN",
		"Credentials taken",
		"",
	)

	// ErrSignupFailed covers every other signup failure.
	ErrSignupFailed = NewBaseError(
		http.StatusBadRequest,
		"SIGNUP_FAILED",
		"Unable to sign up",
		"",
	)

	// ErrLoginFailed is the single client-facing login failure. Unknown email
	// and wrong password must be indistinguishable through this error.
	ErrLoginFailed = NewBaseError(
		http.StatusBadRequest,
		"LOGIN_FAILED",
		"Unable to login",
		"",
	)

	// ErrRefreshFailed is the single client-facing refresh failure.
	ErrRefreshFailed = NewBaseError(
		http.StatusBadRequest,
		"REFRESH_FAILED",
		"Unable to refresh token",
		"",
	)

	// ErrUnauthorized rejects requests carrying a missing, malformed,
	// expired or otherwise unverifiable access token.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired token",
		"",
	)

	// ErrValidationFailed rejects malformed input before it reaches the
	// credential service.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request payload",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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

// Message returns the client-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
