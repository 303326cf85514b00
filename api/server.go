// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"studio-app-api/api/middleware"
	"studio-app-api/core/interfaces"
)

const (
	apiTitle   = "Content Studio API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	RateLimit      float64 // requests per second per client IP, 0 disables limiting
	RateBurst      int
	AllowedOrigins []string

	// TrustProxyHeaders keys rate limiting on forwarding headers instead of the peer address
	TrustProxyHeaders bool
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Extracts readable articles, rewrites or translates them and serves news listings"
	return config
}

// NewAPI creates and configures a new Huma API instance without logging or rate limiting
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured.
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run first so preflight requests are never rate limited
	router.Use(cors.New(corsOptions(cfg.AllowedOrigins)).Handler)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		limiter.TrustProxyHeaders = cfg.TrustProxyHeaders
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	api := humachi.New(router, humaConfig())

	return api, router
}
