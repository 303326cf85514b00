package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for calls to upstream services.
// This abstraction allows fake upstreams in tests and switching between
// different HTTP client implementations.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Implementations may retry transient failures.
	Get(ctx context.Context, url string) (Response, error)

	// PostJSON encodes payload as JSON and POSTs it to the specified URL.
	// POSTs are never retried.
	PostJSON(ctx context.Context, url string, payload interface{}) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Header names are case-insensitive.
	Header(key string) string
}
