// ABOUTME: Custom error types for the core business logic
// ABOUTME: Separates soft extraction failures, consolidated extraction failures and upstream errors

package errors

import (
	"errors"
	"fmt"
)

// ExtractionFailedMessage is the only message shown when every extraction strategy failed
const ExtractionFailedMessage = "content could not be extracted by any available method"

// ErrContentTooShort marks a strategy result whose body is below the minimum length
var ErrContentTooShort = errors.New("extracted content is too short")

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a failure reported by an upstream service,
// either through its HTTP status or through a {"status":"error"} body
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// StrategyFailure records why one extraction strategy did not produce an article
type StrategyFailure struct {
	Strategy string
	Soft     bool
	Err      error
}

// ExtractionFailedError is returned when every extraction strategy failed.
// It does not unwrap to the per-strategy errors.
type ExtractionFailedError struct {
	URL      string
	Failures []StrategyFailure
}

// Error implements the error interface
func (e *ExtractionFailedError) Error() string {
	return ExtractionFailedMessage
}

// TransformationError wraps any failure of a rewrite or translate call
type TransformationError struct {
	Operation string
	Cause     error
}

// Error implements the error interface
func (e *TransformationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s failed", e.Operation)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Cause)
}

// Unwrap returns the underlying cause
func (e *TransformationError) Unwrap() error {
	return e.Cause
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsExtractionFailed checks if an error is an ExtractionFailedError
func IsExtractionFailed(err error) bool {
	var extractionErr *ExtractionFailedError
	return errors.As(err, &extractionErr)
}

// IsTransformation checks if an error is a TransformationError
func IsTransformation(err error) bool {
	var transformErr *TransformationError
	return errors.As(err, &transformErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
