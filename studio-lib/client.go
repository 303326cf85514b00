// ABOUTME: Main client for the Content Studio library
// ABOUTME: Offers article extraction, transformation and listings without HTTP server dependencies

package studio

import (
	"context"
	"strings"
	"time"

	"studio-app-api/core/domain"
	"studio-app-api/core/extraction"
	"studio-app-api/core/interfaces"
	"studio-app-api/core/listing"
	"studio-app-api/core/transform"
	"studio-app-api/pkg/featureflags"
)

// Client is the main entry point for the Content Studio library
type Client struct {
	readerService    interfaces.ReaderService
	transformService interfaces.TransformService
	listingService   interfaces.ListingService

	config Config
}

// Config holds the configuration for the client
type Config struct {
	// Cache stores successful live listings; nil disables listing caching
	Cache interfaces.Cache

	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger

	ExtractorBaseURL string
	GeneratorBaseURL string
	NewsBaseURL      string

	// MinContentLength of zero uses the extraction default
	MinContentLength  int
	DirectReadability bool
	Markdown          bool

	// ListingCacheTTL of zero uses the listing default
	ListingCacheTTL time.Duration

	// TimeZone of nil uses the listing default
	TimeZone *time.Location

	// Flags, when set, overrides DirectReadability and Markdown and can switch off listing caching
	Flags featureflags.Manager
}

// NewClient creates a new Content Studio client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	applyFlags(&config)

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
	}

	return &Client{
		readerService: extraction.NewService(deps, extraction.Options{
			ExtractorBaseURL:  config.ExtractorBaseURL,
			MinContentLength:  config.MinContentLength,
			DirectReadability: config.DirectReadability,
			Markdown:          config.Markdown,
		}),
		transformService: transform.NewService(deps, transform.Options{
			GeneratorBaseURL: config.GeneratorBaseURL,
		}),
		listingService: listing.NewService(deps, listing.Options{
			NewsBaseURL:  config.NewsBaseURL,
			CacheEnabled: config.Cache != nil,
			CacheTTL:     config.ListingCacheTTL,
			TimeZone:     config.TimeZone,
		}),
		config: config,
	}, nil
}

// ReadArticle extracts one article, trying every strategy in order
func (c *Client) ReadArticle(ctx context.Context, url string) (*Article, error) {
	article, err := c.readerService.ReadArticle(ctx, domain.ArticleReference{URL: url})
	if err != nil {
		return nil, fromCoreError(err)
	}
	return article, nil
}

// ReadArticles extracts several articles concurrently; failures are reported per URL
func (c *Client) ReadArticles(ctx context.Context, urls []string) []ReaderView {
	return c.readerService.ReadArticles(ctx, urls)
}

// Transform rewrites or translates an article body
func (c *Client) Transform(ctx context.Context, req TransformationRequest) (*TransformationResult, error) {
	result, err := c.transformService.Transform(ctx, req)
	if err != nil {
		return nil, fromCoreError(err)
	}
	return result, nil
}

// Topics returns the topic listing
func (c *Client) Topics(ctx context.Context) TopicListing {
	return c.listingService.Topics(ctx)
}

// News returns the news listing for a topic
func (c *Client) News(ctx context.Context, topic string, opts ...NewsOption) NewsListing {
	o := applyNewsOptions(opts)
	return c.listingService.News(ctx, domain.NewsQuery{
		Topic:   topic,
		Limit:   o.limit,
		Country: o.country,
		Locale:  o.locale,
	})
}

// Discover returns the discover feed
func (c *Client) Discover(ctx context.Context, opts ...NewsOption) NewsListing {
	o := applyNewsOptions(opts)
	return c.listingService.Discover(ctx, domain.DiscoverQuery{
		Country: o.country,
		Locale:  o.locale,
		Limit:   o.limit,
	})
}

// applyFlags resolves flag-controlled settings once at construction
func applyFlags(config *Config) {
	if config.Flags == nil {
		return
	}
	ctx := context.Background()
	config.DirectReadability = config.Flags.IsEnabled(ctx, featureflags.DirectReadability)
	config.Markdown = config.Flags.IsEnabled(ctx, featureflags.MarkdownOutput)
	if !config.Flags.IsEnabled(ctx, featureflags.ListingCache) {
		config.Cache = nil
	}
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	upstreams := []struct{ name, baseURL string }{
		{"extractor", config.ExtractorBaseURL},
		{"generator", config.GeneratorBaseURL},
		{"news", config.NewsBaseURL},
	}
	for _, u := range upstreams {
		if !strings.HasPrefix(u.baseURL, "http://") && !strings.HasPrefix(u.baseURL, "https://") {
			return NewError(ErrorTypeConfiguration, u.name+" base url must be an absolute http(s) url").
				WithContext("url", u.baseURL)
		}
	}

	return nil
}
