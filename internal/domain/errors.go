// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/CLI output by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates user input failed business rules.
	ErrValidation = errors.New("validation failed")

	// ErrFormat indicates an imported payload has the wrong shape.
	ErrFormat = errors.New("invalid format")

	// ErrNetwork indicates the remote copy could not be reached or understood.
	ErrNetwork = errors.New("network failure")

	// ErrStorage indicates durable storage rejected a write or read.
	ErrStorage = errors.New("storage failure")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// FormatError reports an import payload that is not a JSON array of quotes.
type FormatError struct {
	// Index is the offending element, or -1 when the payload as a whole is wrong.
	Index  int
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid format at element %d: %s", e.Index, e.Reason)
	}

	return "invalid format: " + e.Reason
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// NewFormatError creates a format error for the whole payload.
func NewFormatError(reason string) error {
	return &FormatError{Index: -1, Reason: reason}
}

// NewElementFormatError creates a format error for one element of the payload.
func NewElementFormatError(index int, reason string) error {
	return &FormatError{Index: index, Reason: reason}
}

// NetworkError provides context for remote gateway failures.
type NetworkError struct {
	Service string
	Op      string
	Reason  string
	Cause   error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	msg := fmt.Sprintf("service %q %s failed", e.Service, e.Op)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NetworkError) Unwrap() error {
	return ErrNetwork
}

// NewNetworkError creates a network error with context.
func NewNetworkError(service, op, reason string) error {
	return &NetworkError{Service: service, Op: op, Reason: reason}
}

// NewNetworkErrorWithCause creates a network error keeping the transport error for logging.
func NewNetworkErrorWithCause(service, op string, cause error) error {
	reason := ""
	if cause != nil {
		reason = cause.Error()
	}

	return &NetworkError{Service: service, Op: op, Reason: reason, Cause: cause}
}

// StorageError reports a failed durable storage operation.
type StorageError struct {
	Op    string
	Key   string
	Cause error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	msg := fmt.Sprintf("storage %s %q failed", e.Op, e.Key)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *StorageError) Unwrap() error {
	return ErrStorage
}

// NewStorageError creates a storage error with context.
func NewStorageError(op, key string, cause error) error {
	return &StorageError{Op: op, Key: key, Cause: cause}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsFormat checks if an error is a format error.
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsNetwork checks if an error is a network error.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsStorage checks if an error is a storage error.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
