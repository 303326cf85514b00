// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"github.com/danielgtaylor/huma/v2"

	"studio-app-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	var extractionErr *errors.ExtractionFailedError
	if stderrors.As(err, &extractionErr) {
		// Only the consolidated message and the requested URL leave the service
		return huma.Error422UnprocessableEntity(errors.ExtractionFailedMessage, &huma.ErrorDetail{
			Message:  "requested url",
			Location: "query.url",
			Value:    extractionErr.URL,
		})
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	var transformErr *errors.TransformationError
	if stderrors.As(err, &transformErr) {
		return huma.Error502BadGateway(transformErr.Error())
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
