// ABOUTME: Transform handler for the Huma API
// ABOUTME: Exposes AI rewrite and translation of article bodies

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"studio-app-api/api/dto/requests"
	"studio-app-api/core/domain"
	"studio-app-api/core/interfaces"
)

// TransformHandler handles article transformation requests
type TransformHandler struct {
	transformService interfaces.TransformService
}

// NewTransformHandler creates a new transform handler
func NewTransformHandler(transformService interfaces.TransformService) *TransformHandler {
	return &TransformHandler{transformService: transformService}
}

// RegisterRoutes registers the transformation route
func (h *TransformHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transformArticle",
		Method:      http.MethodPost,
		Path:        "/transform",
		Summary:     "Rewrite or translate an article",
		Description: "Translates into English when target_language is en-US, otherwise rewrites in the original language",
		Tags:        []string{"Transform"},
	}, h.Transform)
}

// TransformInput defines the input for the Transform operation
type TransformInput struct {
	Body requests.TransformRequest
}

// TransformOutput defines the output for the Transform operation
type TransformOutput struct {
	Body *domain.TransformationResult
}

// Transform handles a rewrite or translation request
func (h *TransformHandler) Transform(ctx context.Context, input *TransformInput) (*TransformOutput, error) {
	result, err := h.transformService.Transform(ctx, input.Body.ToDomain())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &TransformOutput{Body: result}, nil
}
