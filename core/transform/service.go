// ABOUTME: Service layer for AI rewrite and translation of article bodies
// ABOUTME: Chooses the operation from the target language and normalizes both response shapes

package transform

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studio-app-api/core/domain"
	coreerrors "studio-app-api/core/errors"
	"studio-app-api/core/interfaces"
	"studio-app-api/core/upstream"
)

// Options configures the transformation service
type Options struct {
	// GeneratorBaseURL is the base URL of the generation backend
	GeneratorBaseURL string
}

// Service implements interfaces.TransformService
type Service struct {
	baseURL string
	client  interfaces.HTTPClient
	logger  interfaces.Logger
}

// generationRequest is the body sent to both operations
type generationRequest struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	SearchGrounding bool   `json:"search_grounding"`
}

// NewService creates a new transformation service
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	return &Service{
		baseURL: strings.TrimRight(opts.GeneratorBaseURL, "/"),
		client:  deps.HTTPClient,
		logger:  deps.LoggerOrNop(),
	}
}

// Transform translates the article when the target language is en-US and
// rewrites it otherwise. Upstream failures come back as one TransformationError.
func (s *Service) Transform(ctx context.Context, req domain.TransformationRequest) (*domain.TransformationResult, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, &coreerrors.ValidationError{Field: "content", Message: "content is required"}
	}

	operation := domain.OperationFor(req.TargetLanguage)
	endpoint := fmt.Sprintf("%s/%s", s.baseURL, operation)

	record, err := s.call(ctx, endpoint, generationRequest{
		Title:           req.Title,
		Content:         req.Content,
		SearchGrounding: req.Grounding,
	})
	if err != nil {
		s.logger.Error("Transformation failed", map[string]interface{}{
			"operation":       string(operation),
			"target_language": req.TargetLanguage,
			"error":           err.Error(),
		})
		return nil, &coreerrors.TransformationError{Operation: string(operation), Cause: err}
	}

	result := &domain.TransformationResult{
		Title:             upstream.Resolve(record, titleAccessors...),
		AlternativeTitles: record.AlternativeTitles.Strings(),
		Content:           upstream.Resolve(record, contentAccessors...),
		MetaDescription:   record.MetaDescription.String(),
		Operation:         operation,
	}
	if len(result.AlternativeTitles) == 0 {
		result.AlternativeTitles = nil
	}

	if result.Content == "" {
		s.logger.Warn("Transformation returned no content", map[string]interface{}{
			"operation": string(operation),
		})
	} else {
		s.logger.Info("Transformation completed", map[string]interface{}{
			"operation":      string(operation),
			"content_length": len(result.Content),
			"grounding":      req.Grounding,
		})
	}

	return result, nil
}

func (s *Service) call(ctx context.Context, endpoint string, body generationRequest) (generationRecord, error) {
	var record generationRecord

	resp, err := s.client.PostJSON(ctx, endpoint, body)
	if err != nil {
		return record, err
	}

	payload, err := upstream.Decode(resp, "generation backend")
	if err != nil {
		return record, err
	}

	if err := json.Unmarshal(payload, &record); err != nil {
		return record, fmt.Errorf("failed to decode generation response: %w", err)
	}
	return record, nil
}
