// ABOUTME: Reader handler for the Huma API
// ABOUTME: Provides HTTP endpoints for extracting clean article content from web pages

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"studio-app-api/api/dto/requests"
	"studio-app-api/api/dto/responses"
	"studio-app-api/core/domain"
	"studio-app-api/core/interfaces"
)

// ReaderHandler handles reader view extraction requests
type ReaderHandler struct {
	readerService interfaces.ReaderService
}

// NewReaderHandler creates a new reader handler
func NewReaderHandler(readerService interfaces.ReaderService) *ReaderHandler {
	return &ReaderHandler{
		readerService: readerService,
	}
}

// RegisterRoutes registers all reader-related routes
func (h *ReaderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "readArticle",
		Method:      http.MethodGet,
		Path:        "/read",
		Summary:     "Extract one article",
		Description: "Extracts an article through the backend, WordPress and readability strategies in order",
		Tags:        []string{"Reader"},
	}, h.ReadArticle)

	huma.Register(api, huma.Operation{
		OperationID: "getReaderView",
		Method:      http.MethodPost,
		Path:        "/getreaderview",
		Summary:     "Extract reader view from URLs",
		Description: "Extracts clean article content from several web pages, reporting a status per URL",
		Tags:        []string{"Reader"},
	}, h.GetReaderView)
}

// ReadArticleInput defines the input for the ReadArticle operation
type ReadArticleInput struct {
	URL string `query:"url" required:"true" doc:"Absolute http(s) URL of the article"`
}

// ReadArticleOutput defines the output for the ReadArticle operation
type ReadArticleOutput struct {
	Body *domain.Article
}

// ReadArticle handles single article extraction
func (h *ReaderHandler) ReadArticle(ctx context.Context, input *ReadArticleInput) (*ReadArticleOutput, error) {
	article, err := h.readerService.ReadArticle(ctx, domain.ArticleReference{URL: input.URL})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ReadArticleOutput{Body: article}, nil
}

// GetReaderViewInput defines the input for the GetReaderView operation
type GetReaderViewInput struct {
	Body requests.ReaderViewRequest
}

// GetReaderViewOutput defines the output for the GetReaderView operation
type GetReaderViewOutput struct {
	Body responses.ReaderViewResponse
}

// GetReaderView handles reader view extraction
func (h *ReaderHandler) GetReaderView(ctx context.Context, input *GetReaderViewInput) (*GetReaderViewOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	views := h.readerService.ReadArticles(ctx, input.Body.URLs)

	return &GetReaderViewOutput{
		Body: responses.NewReaderViewResponse(views),
	}, nil
}
