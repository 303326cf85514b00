// ABOUTME: Error types and handling for the Content Studio library
// ABOUTME: Provides structured errors with context for library operations

package studio

import (
	stderrors "errors"
	"fmt"

	coreerrors "studio-app-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeExtraction indicates that no strategy could extract the article
	ErrorTypeExtraction ErrorType = "extraction"

	// ErrorTypeTransformation indicates a failed rewrite or translation
	ErrorTypeTransformation ErrorType = "transformation"

	// ErrorTypeNetwork indicates a network or upstream error
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// fromCoreError classifies an error returned by a core service
func fromCoreError(err error) error {
	if err == nil {
		return nil
	}

	var extractionErr *coreerrors.ExtractionFailedError
	if stderrors.As(err, &extractionErr) {
		// the per-strategy errors are not exposed
		return NewError(ErrorTypeExtraction, coreerrors.ExtractionFailedMessage).
			WithContext("url", extractionErr.URL)
	}

	if coreerrors.IsValidation(err) {
		return NewError(ErrorTypeValidation, err.Error()).WithCause(err)
	}

	var transformErr *coreerrors.TransformationError
	if stderrors.As(err, &transformErr) {
		return NewError(ErrorTypeTransformation, transformErr.Operation+" failed").
			WithCause(transformErr.Cause).
			WithContext("operation", transformErr.Operation)
	}

	if coreerrors.IsExternalAPI(err) {
		return NewError(ErrorTypeNetwork, "upstream request failed").WithCause(err)
	}

	return NewError(ErrorTypeInternal, "unexpected error").WithCause(err)
}

func isType(err error, errType ErrorType) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == errType
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsExtractionError checks if no strategy could extract the article
func IsExtractionError(err error) bool {
	return isType(err, ErrorTypeExtraction)
}

// IsTransformationError checks if a rewrite or translation failed
func IsTransformationError(err error) bool {
	return isType(err, ErrorTypeTransformation)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}
