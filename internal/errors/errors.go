// Package errors provides shared error types for the PokéAPI client.
package errors

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the upstream API returned 404 for a named entity.
// Context is a human-readable label for what was looked up, e.g.
// `Pokémon "mewtwo"`, `Type "fire"`, `Generation 12`.
type NotFoundError struct {
	Context string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Context)
}

// NewNotFoundError creates a NotFoundError with the given context label.
func NewNotFoundError(context string) *NotFoundError {
	return &NotFoundError{Context: context}
}

// UpstreamError indicates a non-404 error status from the upstream API,
// or a failure at the network layer. For network failures StatusCode is 0
// and Cause holds the original error for diagnostics.
type UpstreamError struct {
	Context    string
	StatusCode int
	Cause      error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: upstream API returned status %d", e.Context, e.StatusCode)
	}
	return fmt.Sprintf("%s: network error: %v", e.Context, e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// NewUpstreamError creates an UpstreamError for an HTTP error status.
func NewUpstreamError(context string, statusCode int) *UpstreamError {
	return &UpstreamError{Context: context, StatusCode: statusCode}
}

// NewNetworkError creates an UpstreamError for a network-layer failure.
func NewNetworkError(context string, cause error) *UpstreamError {
	return &UpstreamError{Context: context, Cause: cause}
}

// ValidationError indicates invalid input parameters or an upstream
// response body that failed shape validation.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsUpstream returns true if the error is an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
