// Package errors defines the error taxonomy shared by the catalog service.
// CatalogError carries a type classification so handlers can map failures
// to HTTP statuses without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// CatalogError represents a classified failure inside the catalog service.
type CatalogError struct {
	Type     string
	Message  string
	Endpoint string // provider endpoint for upstream failures
	Status   int    // provider HTTP status, 0 when the call never completed
	Cause    error
}

func (e *CatalogError) Error() string {
	prefix := e.Type
	if e.Endpoint != "" {
		prefix = fmt.Sprintf("%s [%s]", e.Type, e.Endpoint)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeValidation           = "VALIDATION"
	ErrorTypeUpstream             = "UPSTREAM"
	ErrorTypePartialFailure       = "PARTIAL_FAILURE"
	ErrorTypeConfigurationInvalid = "CONFIGURATION_INVALID"
)

// NewCatalogError creates a new CatalogError
func NewCatalogError(errorType, message string, cause error) *CatalogError {
	return &CatalogError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError reports a missing or invalid caller-supplied parameter.
func NewValidationError(format string, args ...interface{}) *CatalogError {
	return NewCatalogError(ErrorTypeValidation, fmt.Sprintf(format, args...), nil)
}

// NewUpstreamError reports a failed provider call on the given endpoint.
func NewUpstreamError(endpoint string, status int, message string, cause error) *CatalogError {
	return &CatalogError{
		Type:     ErrorTypeUpstream,
		Message:  message,
		Endpoint: endpoint,
		Status:   status,
		Cause:    cause,
	}
}

// NewPartialFailure wraps a failed secondary fetch.
func NewPartialFailure(feature string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypePartialFailure, fmt.Sprintf("%s unavailable", feature), cause)
}

// NewConfigurationError creates a configuration-related error
func NewConfigurationError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeConfigurationInvalid, message, cause)
}

// TypeOf returns the classification of err, or "" when err is not a CatalogError.
func TypeOf(err error) string {
	var ce *CatalogError
	if stderrors.As(err, &ce) {
		return ce.Type
	}
	return ""
}

func IsValidation(err error) bool {
	return TypeOf(err) == ErrorTypeValidation
}

func IsUpstream(err error) bool {
	return TypeOf(err) == ErrorTypeUpstream
}
