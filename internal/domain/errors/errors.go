package errors

import (
	"autoparts/internal/errors"
)

// Kind classifies a failure so callers can tell "nothing there" apart from "refused" and "broken".
type Kind string

const (
	KindConstraintViolation Kind = "constraint_violation"
	KindNotFound            Kind = "not_found"
	KindStorageFailure      Kind = "storage_failure"
	KindParseFailure        Kind = "parse_failure"
	KindValidation          Kind = "validation"
	KindUnauthorized        Kind = "unauthorized"
	KindForbidden           Kind = "forbidden"
	KindInternal            Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure class
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Kind returns the failure class
func (e *BaseError) Kind() Kind {
	return e.kind
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

// Is matches on error code so that copies made by WithDetails still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindConstraintViolation,
		"USER_ALREADY_EXISTS",
		"email or phone is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		KindNotFound,
		"INVALID_CREDENTIALS",
		"wrong login or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"password could not be processed",
		"",
	)

	// Session-related errors
	ErrNoSession = NewBaseError(
		KindUnauthorized,
		"NO_SESSION",
		"nobody is logged in",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		"FORBIDDEN",
		"administrator rights required",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		KindNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrArticleAlreadyExists = NewBaseError(
		KindConstraintViolation,
		"ARTICLE_ALREADY_EXISTS",
		"a product with this article already exists",
		"",
	)

	// Cart-related errors
	ErrCartLineNotFound = NewBaseError(
		KindNotFound,
		"CART_LINE_NOT_FOUND",
		"product is not in the cart",
		"",
	)

	ErrEmptyCart = NewBaseError(
		KindValidation,
		"EMPTY_CART",
		"cart is empty",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		KindNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrOrderTotalMismatch = NewBaseError(
		KindValidation,
		"ORDER_TOTAL_MISMATCH",
		"order total does not match its line items",
		"",
	)

	ErrItemsParseFailed = NewBaseError(
		KindParseFailure,
		"ORDER_ITEMS_MALFORMED",
		"order line items could not be read",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Schema-related errors
	ErrSchemaMigrationFailed = NewBaseError(
		KindStorageFailure,
		"SCHEMA_MIGRATION_FAILED",
		"database schema could not be prepared",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		KindStorageFailure,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"internal error",
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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the failure class
func (e *DatabaseExecuteError) Kind() Kind {
	return KindStorageFailure
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "storage is unavailable"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
