// ABOUTME: Configuration management for the application with YAML file and environment variable support
// ABOUTME: Defines configuration structures for server, upstream backends, cache and logging

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the environment variable holding an optional YAML config path
const ConfigFileEnv = "STUDIO_CONFIG"

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Upstreams contains the backend base URLs and client settings
	Upstreams UpstreamConfig `yaml:"upstreams"`

	// Extraction contains extraction pipeline settings
	Extraction ExtractionConfig `yaml:"extraction"`

	// Listing contains listing helper settings
	Listing ListingConfig `yaml:"listing"`

	// Cache contains cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Log contains logging configuration
	Log LogConfig `yaml:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`

	// RateLimit is the sustained requests per second allowed per client
	RateLimit float64 `yaml:"rate_limit"`

	// RateBurst is the burst size allowed per client
	RateBurst int `yaml:"rate_burst"`

	// AllowedOrigins lists CORS origins; empty allows every origin
	AllowedOrigins []string `yaml:"allowed_origins"`

	// TrustProxyHeaders keys rate limiting on X-Forwarded-For and X-Real-IP.
	// Enable only behind a reverse proxy that overwrites them.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

// UpstreamConfig holds the backend endpoints
type UpstreamConfig struct {
	ExtractorBaseURL string        `yaml:"extractor_base_url"`
	GeneratorBaseURL string        `yaml:"generator_base_url"`
	NewsBaseURL      string        `yaml:"news_base_url"`
	Timeout          time.Duration `yaml:"timeout"`
	UserAgent        string        `yaml:"user_agent"`
}

// ExtractionConfig holds extraction pipeline settings
type ExtractionConfig struct {
	// MinContentLength is the plain-text length below which a result is a soft failure
	MinContentLength int `yaml:"min_content_length"`
}

// ListingConfig holds listing settings
type ListingConfig struct {
	// TimeZone is the IANA zone display dates are rendered in
	TimeZone string `yaml:"time_zone"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (none/memory/redis)
	Type string `yaml:"type"`

	// ListingTTL is how long successful listings are cached
	ListingTTL time.Duration `yaml:"listing_ttl"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `yaml:"redis"`

	// Memory contains in-memory cache configuration
	Memory MemoryConfig `yaml:"memory"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `yaml:"address"`

	// Password is the Redis authentication password
	Password string `yaml:"password"`

	// DB is the Redis database number
	DB int `yaml:"db"`

	// KeyPrefix namespaces every key written by this service
	KeyPrefix string `yaml:"key_prefix"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      "8000",
			RateLimit: 10,
			RateBurst: 20,
		},
		Upstreams: UpstreamConfig{
			ExtractorBaseURL: "http://localhost:8081",
			GeneratorBaseURL: "http://localhost:8082",
			NewsBaseURL:      "http://localhost:8083",
			Timeout:          30 * time.Second,
			UserAgent:        "ContentStudio/1.0",
		},
		Extraction: ExtractionConfig{
			MinContentLength: 100,
		},
		Listing: ListingConfig{
			TimeZone: "Asia/Jakarta",
		},
		Cache: CacheConfig{
			Type:       "none",
			ListingTTL: 5 * time.Minute,
			Redis: RedisConfig{
				Address:   "localhost:6379",
				KeyPrefix: "studio:",
			},
			Memory: MemoryConfig{
				CleanupInterval: 10 * time.Minute,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadFromEnv builds configuration from defaults, the optional YAML file
// named by STUDIO_CONFIG, then environment variables
func LoadFromEnv() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile builds configuration from defaults overlaid with a YAML file
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)
	c.Server.RateLimit = getEnvAsFloatOrDefault("RATE_LIMIT_RPS", c.Server.RateLimit)
	c.Server.RateBurst = getEnvAsIntOrDefault("RATE_LIMIT_BURST", c.Server.RateBurst)
	c.Server.TrustProxyHeaders = getEnvAsBoolOrDefault("TRUST_PROXY_HEADERS", c.Server.TrustProxyHeaders)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		c.Server.AllowedOrigins = splitList(origins)
	}

	c.Upstreams.ExtractorBaseURL = getEnvOrDefault("EXTRACTOR_BASE_URL", c.Upstreams.ExtractorBaseURL)
	c.Upstreams.GeneratorBaseURL = getEnvOrDefault("GENERATOR_BASE_URL", c.Upstreams.GeneratorBaseURL)
	c.Upstreams.NewsBaseURL = getEnvOrDefault("NEWS_BASE_URL", c.Upstreams.NewsBaseURL)
	c.Upstreams.UserAgent = getEnvOrDefault("USER_AGENT", c.Upstreams.UserAgent)

	timeout, err := getEnvAsDurationOrDefault("UPSTREAM_TIMEOUT", c.Upstreams.Timeout)
	if err != nil {
		return err
	}
	c.Upstreams.Timeout = timeout

	c.Extraction.MinContentLength = getEnvAsIntOrDefault("EXTRACTION_MIN_CONTENT_LENGTH", c.Extraction.MinContentLength)
	c.Listing.TimeZone = getEnvOrDefault("LISTING_TIME_ZONE", c.Listing.TimeZone)

	c.Cache.Type = strings.ToLower(getEnvOrDefault("CACHE_TYPE", c.Cache.Type))
	ttl, err := getEnvAsDurationOrDefault("CACHE_LISTING_TTL", c.Cache.ListingTTL)
	if err != nil {
		return err
	}
	c.Cache.ListingTTL = ttl
	c.Cache.Redis.Address = getEnvOrDefault("REDIS_ADDRESS", c.Cache.Redis.Address)
	c.Cache.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", c.Cache.Redis.Password)
	c.Cache.Redis.DB = getEnvAsIntOrDefault("REDIS_DB", c.Cache.Redis.DB)
	c.Cache.Redis.KeyPrefix = getEnvOrDefault("REDIS_KEY_PREFIX", c.Cache.Redis.KeyPrefix)

	c.Log.Level = getEnvOrDefault("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnvOrDefault("LOG_FORMAT", c.Log.Format)
	c.Log.File = getEnvOrDefault("LOG_FILE", c.Log.File)
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts a Go duration ("45s") or whole seconds ("45")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, value)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	upstreams := []struct{ name, url string }{
		{"extractor", c.Upstreams.ExtractorBaseURL},
		{"generator", c.Upstreams.GeneratorBaseURL},
		{"news", c.Upstreams.NewsBaseURL},
	}
	for _, upstream := range upstreams {
		if err := validateBaseURL(upstream.url); err != nil {
			return fmt.Errorf("%s base url %w", upstream.name, err)
		}
	}

	if c.Upstreams.Timeout <= 0 {
		return errors.New("upstream timeout must be positive")
	}

	if c.Extraction.MinContentLength < 1 {
		return errors.New("minimum content length must be at least 1")
	}

	if _, err := time.LoadLocation(c.Listing.TimeZone); err != nil {
		return fmt.Errorf("unknown listing time zone %q", c.Listing.TimeZone)
	}

	switch c.Cache.Type {
	case "none", "memory":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	default:
		return errors.New("cache type must be 'none', 'memory' or 'redis'")
	}

	if c.Cache.Type != "none" && c.Cache.ListingTTL <= 0 {
		return errors.New("listing cache ttl must be positive")
	}

	return nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return errors.New("cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an absolute http(s) url")
	}
	return nil
}
