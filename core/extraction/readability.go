package extraction

import (
	"context"
	"fmt"
	"io"
	"net/url"

	readability "github.com/go-shiori/go-readability"

	"studio-app-api/core/domain"
	coreerrors "studio-app-api/core/errors"
	"studio-app-api/core/interfaces"
	"studio-app-api/pkg/utils/html"
)

// StrategyReadability is the name of the local readability strategy
const StrategyReadability = "readability"

const maxPageSize = 10 << 20

// ReadabilityStrategy fetches the page directly and extracts it locally
type ReadabilityStrategy struct {
	client interfaces.HTTPClient
}

// NewReadabilityStrategy creates the readability strategy
func NewReadabilityStrategy(client interfaces.HTTPClient) *ReadabilityStrategy {
	return &ReadabilityStrategy{client: client}
}

// Attempt implements AttemptFunc
func (r *ReadabilityStrategy) Attempt(ctx context.Context, ref domain.ArticleReference) (*domain.Article, error) {
	pageURL, err := url.Parse(ref.URL)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Get(ctx, ref.URL)
	if err != nil {
		return nil, fmt.Errorf("page request failed: %w", err)
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "page could not be fetched",
			API:        pageURL.Hostname(),
		}
	}

	parsed, err := readability.FromReader(io.LimitReader(body, maxPageSize), pageURL)
	if err != nil {
		return nil, fmt.Errorf("readability failed: %w", err)
	}

	content, err := html.StripVideoEmbeds(parsed.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to clean page content: %w", err)
	}

	return &domain.Article{
		Title:    parsed.Title,
		Content:  content,
		Excerpt:  parsed.Excerpt,
		Byline:   JoinAuthors([]string{parsed.Byline}),
		SiteName: parsed.SiteName,
		URL:      ref.URL,
		Image:    parsed.Image,
	}, nil
}

// Strategy returns the pipeline entry for readability
func (r *ReadabilityStrategy) Strategy(minContentLength int) Strategy {
	return Strategy{
		Name:             StrategyReadability,
		Attempt:          r.Attempt,
		MinContentLength: minContentLength,
	}
}
