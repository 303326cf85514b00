// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package studio

import (
	"time"

	"studio-app-api/core/interfaces"
	"studio-app-api/infrastructure/cache/memory"
	"studio-app-api/infrastructure/cache/redis"
	httpInfra "studio-app-api/infrastructure/http/standard"
	"studio-app-api/infrastructure/logger/structured"
	"studio-app-api/pkg/config"
)

const defaultUserAgent = "ContentStudio-Library/1.0"

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30*time.Second, httpInfra.WithUserAgent(defaultUserAgent))
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultRedisCache connects to Redis at address
func DefaultRedisCache(address string) (interfaces.Cache, error) {
	return redis.NewRedisCache(config.RedisConfig{
		Address:   address,
		KeyPrefix: "studio:",
	})
}

// DefaultLogger creates a default logger that writes JSON to stderr
func DefaultLogger() interfaces.Logger {
	return structured.New(structured.Options{Level: "info", Format: "json"})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NopLogger{}
}

// CacheOption represents cache configuration options
type CacheOption struct {
	Type    CacheType
	Address string // For Redis cache
	TTL     time.Duration
}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeRedis  CacheType = "redis"
)

// WithCacheOption creates a listing cache based on the provided options
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeRedis:
			if opt.Address == "" {
				opt.Address = "localhost:6379"
			}
			cache, err := DefaultRedisCache(opt.Address)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "redis cache unavailable").
					WithCause(err).
					WithContext("address", opt.Address)
			}
			c.Cache = cache
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type").
				WithContext("type", string(opt.Type))
		}
		if opt.TTL > 0 {
			c.ListingCacheTTL = opt.TTL
		}
		return nil
	}
}

// WithDefaultDependencies fills in every dependency that is still unset
func WithDefaultDependencies() Option {
	return func(c *Config) error {
		if c.HTTPClient == nil {
			c.HTTPClient = DefaultHTTPClient()
		}
		if c.Cache == nil {
			c.Cache = DefaultMemoryCache()
		}
		if c.Logger == nil {
			c.Logger = DefaultLogger()
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// HTTPClientConfig holds configuration for HTTP client
type HTTPClientConfig struct {
	Timeout   time.Duration
	UserAgent string
	// LogRequests logs every upstream request at debug level through the client logger
	LogRequests bool
}

// DefaultHTTPClientConfig returns default HTTP client configuration
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:   30 * time.Second,
		UserAgent: defaultUserAgent,
	}
}

// WithHTTPClientConfig creates an HTTP client with custom configuration.
// Apply it after WithLogger when LogRequests is set.
func WithHTTPClientConfig(cfg HTTPClientConfig) Option {
	return func(c *Config) error {
		if cfg.Timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "http timeout must be positive")
		}
		opts := []httpInfra.Option{httpInfra.WithUserAgent(cfg.UserAgent)}
		if cfg.LogRequests {
			opts = append(opts, httpInfra.WithLogger(c.Logger))
		}
		c.HTTPClient = httpInfra.NewStandardHTTPClient(cfg.Timeout, opts...)
		return nil
	}
}
