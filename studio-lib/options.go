// ABOUTME: Configuration options for the Content Studio library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package studio

import (
	"time"

	"studio-app-api/core/interfaces"
	"studio-app-api/pkg/featureflags"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation used for listings
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithExtractorURL sets the base URL of the extraction backend
func WithExtractorURL(baseURL string) Option {
	return func(c *Config) error {
		c.ExtractorBaseURL = baseURL
		return nil
	}
}

// WithGeneratorURL sets the base URL of the generation backend
func WithGeneratorURL(baseURL string) Option {
	return func(c *Config) error {
		c.GeneratorBaseURL = baseURL
		return nil
	}
}

// WithNewsURL sets the base URL of the listing backend
func WithNewsURL(baseURL string) Option {
	return func(c *Config) error {
		c.NewsBaseURL = baseURL
		return nil
	}
}

// WithMinContentLength sets the body length below which a strategy result is rejected
func WithMinContentLength(length int) Option {
	return func(c *Config) error {
		if length < 1 {
			return NewError(ErrorTypeConfiguration, "minimum content length must be positive").
				WithContext("length", length)
		}
		c.MinContentLength = length
		return nil
	}
}

// WithDirectReadability enables the local readability strategy
func WithDirectReadability(enabled bool) Option {
	return func(c *Config) error {
		c.DirectReadability = enabled
		return nil
	}
}

// WithMarkdown adds a Markdown rendition to every article
func WithMarkdown(enabled bool) Option {
	return func(c *Config) error {
		c.Markdown = enabled
		return nil
	}
}

// WithFeatureFlags lets a flag manager decide direct readability, Markdown
// output and listing caching. It takes precedence over WithDirectReadability
// and WithMarkdown.
func WithFeatureFlags(flags featureflags.Manager) Option {
	return func(c *Config) error {
		c.Flags = flags
		return nil
	}
}

// WithListingCacheTTL caches successful live listings for ttl
func WithListingCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl <= 0 {
			return NewError(ErrorTypeConfiguration, "listing cache ttl must be positive")
		}
		c.ListingCacheTTL = ttl
		return nil
	}
}

// WithTimeZone sets the reference zone of listing display dates
func WithTimeZone(name string) Option {
	return func(c *Config) error {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "unknown time zone").
				WithCause(err).
				WithContext("time_zone", name)
		}
		c.TimeZone = loc
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		HTTPClient:       DefaultHTTPClient(),
		Logger:           QuietLogger(),
		ExtractorBaseURL: "http://localhost:8081",
		GeneratorBaseURL: "http://localhost:8082",
		NewsBaseURL:      "http://localhost:8083",
	}
}
