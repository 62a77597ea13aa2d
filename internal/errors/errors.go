package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// User errors
	ErrUserNotFound       = NewDomainError("USER_NOT_FOUND", "user not found")
	ErrUserExists         = NewDomainError("USER_EXISTS", "user already exists")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "invalid credentials")
	ErrAdminOnly          = NewDomainError("ADMIN_ONLY", "only admin users can access this resource")

	// Authentication errors
	ErrUnauthorized     = NewDomainError("UNAUTHORIZED", "unauthorized")
	ErrInvalidToken     = NewDomainError("INVALID_TOKEN", "invalid or expired token")
	ErrInvalidTokenType = NewDomainError("INVALID_TOKEN_TYPE", "invalid token type")
	ErrTokenRevoked     = NewDomainError("TOKEN_REVOKED", "token has been revoked")

	// Resource errors
	ErrNotFound           = NewDomainError("NOT_FOUND", "resource not found")
	ErrAlreadyExists      = NewDomainError("ALREADY_EXISTS", "resource already exists")
	ErrParentAreaNotFound = NewDomainError("PARENT_AREA_NOT_FOUND", "parent coverage area not found")
	ErrSelfParent         = NewDomainError("SELF_PARENT", "coverage area cannot be its own parent")

	// Validation errors
	ErrInvalidInput     = NewDomainError("INVALID_INPUT", "invalid input")
	ErrInvalidFilter    = NewDomainError("INVALID_FILTER", "invalid filter parameter")
	ErrBulkLimit        = NewDomainError("BULK_LIMIT", "too many items in bulk request")
	ErrEmptyBulkRequest = NewDomainError("EMPTY_BULK_REQUEST", "at least one item is required")

	// System errors
	ErrInternal = NewDomainError("INTERNAL_ERROR", "internal server error")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes.
// This should only be used in the handler/presentation layer.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	case "INVALID_INPUT", "INVALID_FILTER", "BULK_LIMIT", "EMPTY_BULK_REQUEST",
		"PARENT_AREA_NOT_FOUND", "SELF_PARENT", "USER_EXISTS", "ALREADY_EXISTS":
		return http.StatusBadRequest

	case "UNAUTHORIZED", "INVALID_CREDENTIALS", "INVALID_TOKEN",
		"INVALID_TOKEN_TYPE", "TOKEN_REVOKED":
		return http.StatusUnauthorized

	case "ADMIN_ONLY":
		return http.StatusForbidden

	case "USER_NOT_FOUND", "NOT_FOUND":
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
