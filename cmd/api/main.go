// ABOUTME: Main entry point for the Content Studio API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"studio-app-api/api"
	"studio-app-api/api/handlers"
	"studio-app-api/core/extraction"
	"studio-app-api/core/interfaces"
	"studio-app-api/core/listing"
	"studio-app-api/core/transform"
	"studio-app-api/infrastructure/cache/memory"
	"studio-app-api/infrastructure/cache/redis"
	stdhttp "studio-app-api/infrastructure/http/standard"
	"studio-app-api/infrastructure/logger/structured"
	"studio-app-api/pkg/config"
	"studio-app-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	logger.Info("Starting Content Studio API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	cache, closeCache := newCache(cfg.Cache, logger)
	defer closeCache()

	flags := featureflags.NewEnvManager("FEATURE_")
	if cache == nil {
		flags.SetEnabled(featureflags.ListingCache, false)
	}
	enabled := flags.GetAllFlags()
	logger.Info("Feature flags resolved", map[string]interface{}{"flags": enabled})

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Upstreams.Timeout,
		stdhttp.WithUserAgent(cfg.Upstreams.UserAgent),
		stdhttp.WithLogger(logger),
	)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Validate has already loaded the zone once
	zone, _ := time.LoadLocation(cfg.Listing.TimeZone)

	readerService := extraction.NewService(deps, extraction.Options{
		ExtractorBaseURL:  cfg.Upstreams.ExtractorBaseURL,
		MinContentLength:  cfg.Extraction.MinContentLength,
		DirectReadability: enabled[featureflags.DirectReadability],
		Markdown:          enabled[featureflags.MarkdownOutput],
	})
	transformService := transform.NewService(deps, transform.Options{
		GeneratorBaseURL: cfg.Upstreams.GeneratorBaseURL,
	})
	listingService := listing.NewService(deps, listing.Options{
		NewsBaseURL:  cfg.Upstreams.NewsBaseURL,
		CacheEnabled: enabled[featureflags.ListingCache],
		CacheTTL:     cfg.Cache.ListingTTL,
		TimeZone:     zone,
	})

	apiConfig := api.APIConfig{
		Logger:            logger,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		TrustProxyHeaders: cfg.Server.TrustProxyHeaders,
	}
	if enabled[featureflags.RateLimitEnabled] {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateBurst = cfg.Server.RateBurst
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewReaderHandler(readerService).RegisterRoutes(humaAPI)
	handlers.NewTransformHandler(transformService).RegisterRoutes(humaAPI)
	handlers.NewListingHandler(listingService).RegisterRoutes(humaAPI)

	// Generation calls can take as long as the upstream timeout
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Upstreams.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the listing cache selected by the configuration.
// A nil cache disables listing caching.
func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func()) {
	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return newMemoryCache(cfg.Memory, logger)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return redisCache, func() {
			if err := redisCache.Close(); err != nil {
				logger.Warn("Failed to close Redis cache", map[string]interface{}{"error": err.Error()})
			}
		}
	case "memory":
		logger.Info("Using memory cache", nil)
		return newMemoryCache(cfg.Memory, logger)
	default:
		return nil, func() {}
	}
}

func newMemoryCache(cfg config.MemoryConfig, logger interfaces.Logger) (interfaces.Cache, func()) {
	memCache := memory.NewMemoryCacheWithCleanup(cfg.CleanupInterval)
	return memCache, func() {
		logger.Info("Memory cache released", map[string]interface{}{"entries": memCache.Count()})
	}
}

func init() {
	fmt.Println(`
   ____            _             _     ____  _             _ _
  / ___|___  _ __ | |_ ___ _ __ | |_  / ___|| |_ _   _  __| (_) ___
 | |   / _ \| '_ \| __/ _ \ '_ \| __| \___ \| __| | | |/ _' | |/ _ \
 | |__| (_) | | | | ||  __/ | | | |_   ___) | |_| |_| | (_| | | (_) |
  \____\___/|_| |_|\__\___|_| |_|\__| |____/ \__|\__,_|\__,_|_|\___/
	`)
}
