// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package domain

import "errors"

// ErrorType represents the semantic category of an error
type ErrorType int

const (
	ErrorTypeValidation   ErrorType = iota // Input validation errors (400 Bad Request)
	ErrorTypeAuth                          // Authentication errors (401 Unauthorized)
	ErrorTypeNotFound                      // Resource not found errors (404 Not Found)
	ErrorTypeConflict                      // Resource conflict errors (409 Conflict)
	ErrorTypeTransport                     // Remote API unreachable (network-level failures)
	ErrorTypeRemoteStatus                  // Remote API replied with a non-success status
	ErrorTypeParse                         // Remote API response could not be decoded
	ErrorTypeMapping                       // Remote record could not be mapped to local fields
	ErrorTypeInternal                      // Internal server errors (500 Internal Server Error)
	ErrorTypeUnavailable                   // Service unavailable errors (503 Service Unavailable)
)

// DomainError represents an error with semantic type information
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error // underlying error for wrapping
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// GetErrorType returns the semantic type of an error
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ErrorTypeInternal // default fallback
}

// Error constructors for different types
func NewValidationError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeValidation, Message: message, Err: errors.Join(err...)}
}

func NewAuthError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeAuth, Message: message, Err: errors.Join(err...)}
}

func NewNotFoundError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeNotFound, Message: message, Err: errors.Join(err...)}
}

func NewConflictError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeConflict, Message: message, Err: errors.Join(err...)}
}

func NewTransportError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeTransport, Message: message, Err: errors.Join(err...)}
}

func NewRemoteStatusError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeRemoteStatus, Message: message, Err: errors.Join(err...)}
}

func NewParseError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeParse, Message: message, Err: errors.Join(err...)}
}

func NewMappingError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeMapping, Message: message, Err: errors.Join(err...)}
}

func NewInternalError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeInternal, Message: message, Err: errors.Join(err...)}
}

func NewUnavailableError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeUnavailable, Message: message, Err: errors.Join(err...)}
}

// Sentinel errors shared across repositories and services.
var (
	// ErrWebinarNotFound is returned when a webinar lookup misses.
	ErrWebinarNotFound = NewNotFoundError("webinar not found")
	// ErrRevisionMismatch is returned when a store update races a concurrent writer.
	ErrRevisionMismatch = NewConflictError("revision mismatch")
	// ErrValidationFailed is returned when input fails validation.
	ErrValidationFailed = NewValidationError("validation failed")
	// ErrUnmarshal is returned when stored or remote data cannot be decoded.
	ErrUnmarshal = NewParseError("unmarshal error")
	// ErrInternal is returned for unexpected internal failures.
	ErrInternal = NewInternalError("internal error")
	// ErrServiceUnavailable is returned when a dependency is not ready.
	ErrServiceUnavailable = NewUnavailableError("service unavailable")
)
