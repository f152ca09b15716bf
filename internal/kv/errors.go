package kv

import "fmt"

// ============================================================================
// KV ERROR CODES
// ============================================================================
// These constants mirror domain error codes to avoid circular imports.
// The handler layer maps these to HTTP status codes.

const (
	codeInvalid  = "invalid"
	codeNotFound = "not_found"
)

// StoreError represents a kv-specific error with a code and message.
// It follows the domain.Error pattern for consistent HTTP status mapping.
type StoreError struct {
	Code    string
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *StoreError) ErrorCode() string {
	return e.Code
}

// ErrKeyNotFound is returned by Get when the key is absent.
var ErrKeyNotFound = &StoreError{Code: codeNotFound, Message: "key not found"}

// ErrUnknownProvider creates an error for unknown kv providers.
func ErrUnknownProvider(provider string) error {
	return &StoreError{
		Code:    codeInvalid,
		Message: fmt.Sprintf("unknown kv provider: %s", provider),
	}
}
