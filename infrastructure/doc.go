// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
//   - cache/memory: in-process cache backed by patrickmn/go-cache
//   - cache/redis: Redis cache backed by go-redis, keys share a prefix
//   - http/standard: net/http client with GET retries and request logging
//   - logger/structured: logrus logger with optional lumberjack file rotation
//
// Caches only ever hold successful live listing responses.
package infrastructure
