// Package api provides the HTTP API layer for Content Studio.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request validation and a uniform handler signature.
//
// # Architecture
//
//   - server.go: Huma API configuration, CORS and middleware wiring
//   - handlers/: reader, transform and listing handlers
//   - dto/: request and response bodies that differ from the domain types
//   - middleware/: request logging with request IDs and per-IP rate limiting
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 10,
//	    RateBurst: 20,
//	})
//	handlers.NewReaderHandler(readerService).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Validation errors map to 400,
// articles that no strategy could extract to 422 and failed transformations
// to 502. Listings never fail.
package api
