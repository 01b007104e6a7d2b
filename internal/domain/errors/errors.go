package errors

import (
	"net/http"
	"strconv"

	"surplus/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Numeric client error code, e.g. "701"
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

// ErrorCode returns the client error code
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

// Is makes copies produced by WithDetails match the predefined error they came from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.message == t.message
}

// Client error codes. The mobile application switches on these values, so they never change.
const (
	CodeInvalidCredentials = "701"
	CodeUserAlreadyExists  = "702"
	CodeProductNotInCart   = "703"
	CodeEmptyCart          = "704"
)

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		CodeInvalidCredentials,
		"wrong username or password",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusUnauthorized,
		CodeUserAlreadyExists,
		"user already exists",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		strconv.Itoa(http.StatusUnauthorized),
		"invalid token",
		"",
	)

	// Cart-related errors
	ErrProductNotInCart = NewBaseError(
		http.StatusUnauthorized,
		CodeProductNotInCart,
		"product is not in the cart",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusUnauthorized,
		CodeEmptyCart,
		"empty cart",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		strconv.Itoa(http.StatusNotFound),
		"product not found",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		strconv.Itoa(http.StatusNotFound),
		"order not found",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		strconv.Itoa(http.StatusNotFound),
		"user not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		strconv.Itoa(http.StatusBadRequest),
		"validation failed",
		"",
	)

	// Concurrency-related errors. Retried internally and only surfaced when retries are exhausted.
	ErrStoreConflict = NewBaseError(
		http.StatusInternalServerError,
		strconv.Itoa(http.StatusInternalServerError),
		"concurrent modification",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		strconv.Itoa(http.StatusNotFound),
		"not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		strconv.Itoa(http.StatusInternalServerError),
		"internal server error",
		"",
	)
)

// ValidationError carries field-level validation failures.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from a field → message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return ErrValidationFailed.Message()
}

// Is lets callers match any ValidationError against ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return ErrValidationFailed.HTTPCode()
}

// ErrorCode returns the client error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return ""
}

// Fields returns the failing fields and their messages.
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

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

// Unwrap exposes the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the client error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return strconv.Itoa(http.StatusInternalServerError)
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
