// ABOUTME: Service layer for article extraction used by the reader endpoints
// ABOUTME: Validates references, runs the fallback pipeline and reads batches concurrently

package extraction

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"studio-app-api/core/domain"
	coreerrors "studio-app-api/core/errors"
	"studio-app-api/core/interfaces"
)

// DefaultMinContentLength is the plain-text length below which a body is a soft failure
const DefaultMinContentLength = 100

const maxConcurrentReads = 8

// Options configures the extraction service
type Options struct {
	// ExtractorBaseURL is the base URL of the extraction backend
	ExtractorBaseURL string

	// MinContentLength overrides DefaultMinContentLength when positive
	MinContentLength int

	// DirectReadability appends the local readability strategy
	DirectReadability bool

	// Markdown adds a Markdown rendition to every article
	Markdown bool
}

// Service implements interfaces.ReaderService
type Service struct {
	pipeline *Pipeline
	logger   interfaces.Logger
	markdown bool
}

// NewService builds the default pipeline: backend, then WordPress, then
// readability when enabled
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	minLength := opts.MinContentLength
	if minLength <= 0 {
		minLength = DefaultMinContentLength
	}

	strategies := []Strategy{
		NewBackendStrategy(opts.ExtractorBaseURL, deps.HTTPClient).Strategy(minLength),
		NewWordPressStrategy(deps.HTTPClient).Strategy(),
	}
	if opts.DirectReadability {
		strategies = append(strategies, NewReadabilityStrategy(deps.HTTPClient).Strategy(minLength))
	}

	return NewServiceWithPipeline(NewPipeline(deps.LoggerOrNop(), strategies...), deps.LoggerOrNop(), opts.Markdown)
}

// NewServiceWithPipeline creates a service around a custom pipeline
func NewServiceWithPipeline(pipeline *Pipeline, logger interfaces.Logger, markdown bool) *Service {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Service{
		pipeline: pipeline,
		logger:   logger,
		markdown: markdown,
	}
}

// ValidateReference checks that a reference is an absolute http(s) URL
func ValidateReference(ref domain.ArticleReference) (domain.ArticleReference, error) {
	raw := strings.TrimSpace(ref.URL)
	if raw == "" {
		return ref, &coreerrors.ValidationError{Field: "url", Message: "url is required"}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ref, &coreerrors.ValidationError{Field: "url", Message: "url is not valid"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ref, &coreerrors.ValidationError{Field: "url", Message: "url must use http or https"}
	}
	if u.Host == "" {
		return ref, &coreerrors.ValidationError{Field: "url", Message: "url must be absolute"}
	}

	return domain.ArticleReference{URL: raw}, nil
}

// ReadArticle extracts a single article
func (s *Service) ReadArticle(ctx context.Context, ref domain.ArticleReference) (*domain.Article, error) {
	ref, err := ValidateReference(ref)
	if err != nil {
		return nil, err
	}

	article, err := s.pipeline.Run(ctx, ref)
	if err != nil {
		fields := map[string]interface{}{"url": ref.URL}
		var failed *coreerrors.ExtractionFailedError
		if errors.As(err, &failed) {
			for _, failure := range failed.Failures {
				fields[failure.Strategy] = failure.Err.Error()
			}
		}
		s.logger.Error("Article extraction failed", fields)
		return nil, err
	}

	if s.markdown && article.Content != "" {
		markdown, err := ToMarkdown(article.Title, article.Byline, article.SiteName, article.Content)
		if err != nil {
			s.logger.Debug("Failed to convert HTML to markdown", map[string]interface{}{
				"url":   ref.URL,
				"error": err.Error(),
			})
		} else {
			article.Markdown = markdown
		}
	}

	return article, nil
}

// ReadArticles extracts many URLs concurrently. Results keep the input order.
func (s *Service) ReadArticles(ctx context.Context, urls []string) []domain.ReaderView {
	results := make([]domain.ReaderView, len(urls))
	sem := make(chan struct{}, maxConcurrentReads)
	var wg sync.WaitGroup

	for i, rawURL := range urls {
		wg.Add(1)
		go func(index int, rawURL string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[index] = s.readView(ctx, rawURL)
		}(i, rawURL)
	}

	wg.Wait()
	return results
}

func (s *Service) readView(ctx context.Context, rawURL string) domain.ReaderView {
	view := domain.ReaderView{URL: rawURL}

	article, err := s.ReadArticle(ctx, domain.ArticleReference{URL: rawURL})
	if err != nil {
		view.Status = domain.ReaderStatusError
		view.Error = err.Error()
		return view
	}

	view.Status = domain.ReaderStatusOK
	view.Article = article
	return view
}
