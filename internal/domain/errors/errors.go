package errors

import (
	"net/http"

	"campus/internal/errors"
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

// Is matches errors carrying the same business error code, so the detailed
// copies produced by WithDetails still satisfy errors.Is against the
// predefined values.
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
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors, recoverable at the request boundary.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Submitted data failed validation",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"Only PDF documents are accepted",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"Uploaded document exceeds the size limit",
		"",
	)

	// Authentication: no valid session. The client should log in.
	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"You must be signed in to access this resource",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrSessionUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"SESSION_UNAVAILABLE",
		"Session storage is temporarily unavailable",
		"",
	)

	// Authorization: valid session but insufficient role. Distinct from
	// authentication failures so the client can render the right message.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	// Resource errors.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No account matches this identity",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email address is already registered",
		"",
	)

	ErrAdmissionNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMISSION_NOT_FOUND",
		"No admission record matches this id",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"The request conflicts with existing data",
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

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// StorageExecuteError represents an object-storage failure. The operation and
// key are kept in details so the fault can be traced without leaking
// credentials into client responses.
type StorageExecuteError struct {
	err     error
	details string
}

// NewStorageExecuteError creates an object-storage-related error
func NewStorageExecuteError(err error, details string) AppError {
	return &StorageExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageExecuteError) Error() string {
	return errors.Wrap(e.err, "object storage operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageExecuteError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *StorageExecuteError) ErrorCode() string {
	return "STORAGE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageExecuteError) Message() string {
	return "Document storage operation failed"
}

// Details returns detailed error information
func (e *StorageExecuteError) Details() string {
	return e.details
}
