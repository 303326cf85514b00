package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"studio-app-api/core/domain"
	"studio-app-api/core/interfaces"
	"studio-app-api/core/upstream"
)

// StrategyBackend is the name of the extraction backend strategy
const StrategyBackend = "backend"

// backendRecord lists the field aliases the extraction backend has used
type backendRecord struct {
	Title         upstream.Text     `json:"title"`
	Content       string            `json:"content"`
	HTML          string            `json:"html"`
	TextContent   string            `json:"textContent"`
	TextSnake     string            `json:"text_content"`
	Text          string            `json:"text"`
	Excerpt       string            `json:"excerpt"`
	Description   string            `json:"description"`
	Authors       upstream.TextList `json:"authors"`
	Author        upstream.TextList `json:"author"`
	Byline        upstream.TextList `json:"byline"`
	SiteName      upstream.Text     `json:"siteName"`
	SiteNameSnake upstream.Text     `json:"site_name"`
	Source        upstream.Text     `json:"source"`
	URL           string            `json:"url"`
	Image         string            `json:"image"`
	TopImage      string            `json:"top_image"`
	LeadImage     string            `json:"lead_image_url"`
}

// BackendStrategy fetches articles from the remote extraction backend
type BackendStrategy struct {
	baseURL string
	client  interfaces.HTTPClient
}

// NewBackendStrategy creates the backend strategy for an extractor base URL
func NewBackendStrategy(baseURL string, client interfaces.HTTPClient) *BackendStrategy {
	return &BackendStrategy{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Attempt implements AttemptFunc
func (b *BackendStrategy) Attempt(ctx context.Context, ref domain.ArticleReference) (*domain.Article, error) {
	endpoint := fmt.Sprintf("%s/read?url=%s", b.baseURL, url.QueryEscape(ref.URL))

	resp, err := b.client.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("extraction backend request failed: %w", err)
	}

	payload, err := upstream.Decode(resp, "extraction backend")
	if err != nil {
		return nil, err
	}

	var record backendRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to decode extraction backend response: %w", err)
	}

	authors := record.Authors.Strings()
	if len(authors) == 0 {
		authors = record.Author.Strings()
	}
	if len(authors) == 0 {
		authors = record.Byline.Strings()
	}

	return &domain.Article{
		Title:       record.Title.String(),
		Content:     upstream.FirstNonEmpty(record.Content, record.HTML),
		TextContent: upstream.FirstNonEmpty(record.TextContent, record.TextSnake, record.Text),
		Excerpt:     upstream.FirstNonEmpty(record.Excerpt, record.Description),
		Byline:      JoinAuthors(authors),
		SiteName:    upstream.FirstNonEmpty(record.SiteName.String(), record.SiteNameSnake.String(), record.Source.String()),
		URL:         upstream.FirstNonEmpty(record.URL, ref.URL),
		Image:       upstream.FirstNonEmpty(record.Image, record.TopImage, record.LeadImage),
	}, nil
}

// Strategy returns the pipeline entry for this backend
func (b *BackendStrategy) Strategy(minContentLength int) Strategy {
	return Strategy{
		Name:             StrategyBackend,
		Attempt:          b.Attempt,
		MinContentLength: minContentLength,
	}
}
