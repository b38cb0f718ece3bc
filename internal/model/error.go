package model

import "fmt"

// Standard error codes shared by all resource services.
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeInvalidArgument  = "INVALID_ARGUMENT"
	ErrCodeInvalidState     = "INVALID_STATE"
	ErrCodeUnauthenticated  = "UNAUTHENTICATED"
	ErrCodePermissionDenied = "PERMISSION_DENIED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a deliberate, user-facing failure raised at the service
// layer. Anything else that reaches a handler is treated as internal.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NotFoundf creates a NOT_FOUND domain error with a formatted message.
func NotFoundf(format string, args ...any) *DomainError {
	return NewDomainError(ErrCodeNotFound, fmt.Sprintf(format, args...))
}

// Conflictf creates a CONFLICT domain error with a formatted message.
func Conflictf(format string, args ...any) *DomainError {
	return NewDomainError(ErrCodeConflict, fmt.Sprintf(format, args...))
}

// InvalidStatef creates an INVALID_STATE domain error with a formatted message.
func InvalidStatef(format string, args ...any) *DomainError {
	return NewDomainError(ErrCodeInvalidState, fmt.Sprintf(format, args...))
}

// Common domain errors
var (
	ErrNoFieldsToUpdate   = NewDomainError(ErrCodeInvalidArgument, "no fields to update")
	ErrInvalidRole        = NewDomainError(ErrCodeInvalidArgument, "role must be either 'admin' or 'user'")
	ErrInvalidCredentials = NewDomainError(ErrCodeUnauthenticated, "invalid email or password")
	ErrAccountDeactivated = NewDomainError(ErrCodePermissionDenied, "account is deactivated")
	ErrInvalidFileType    = NewDomainError(ErrCodeInvalidArgument, "invalid file type, only images are allowed")
)
