// Package errors defines the application-level error contract: typed errors
// carrying an HTTP status, a stable business code and a user-facing message.
package errors

import (
	"net/http"

	"warung/internal/errors"
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

// Predefined error types. One per error kind the mutation contracts can raise.
var (
	// ErrUnauthorized covers every failed role or ownership check, including an
	// acting user that does not resolve to a known account.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"you are not allowed to perform this action",
		"",
	)

	// ErrNotFound covers a referenced order, item, menu entry, user or payment
	// that does not exist.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"the requested resource was not found",
		"",
	)

	// ErrOrderNotOpen is raised when an item or payment mutation targets an
	// order whose status is not open.
	ErrOrderNotOpen = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_OPEN",
		"the order is not open for changes",
		"",
	)

	// ErrInvalidArgument covers malformed input: non-positive price, quantity
	// or amount, empty names, malformed usernames.
	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ARGUMENT",
		"invalid input",
		"",
	)

	// ErrBalanceExceeded is raised when an item mutation would push a
	// participant's total above their recorded payment, or a payment change
	// would drop below the participant's current total.
	ErrBalanceExceeded = NewBaseError(
		http.StatusUnprocessableEntity,
		"BALANCE_EXCEEDED",
		"the recorded payment does not cover the item total",
		"",
	)

	// ErrConflict covers duplicate unique-constraint targets.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"the resource conflicts with an existing one",
		"",
	)

	// ErrUsernameTaken is raised on registration with an already used username.
	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"this username is already taken",
		"",
	)

	// ErrInvalidCredentials is raised on a failed login attempt.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	// ErrInvalidToken is raised when an access or refresh token fails validation.
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"invalid or expired token",
		"",
	)

	// ErrInternalError is the fallback for unexpected failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
