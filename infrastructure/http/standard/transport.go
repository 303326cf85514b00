package standard

import (
	"net/http"
	"time"

	"studio-app-api/core/interfaces"
)

// LoggingRoundTripper logs outgoing upstream requests
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip implements http.RoundTripper
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	start := time.Now()
	resp, err := transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.Logger.Debug("Upstream request failed", map[string]interface{}{
			"method":   req.Method,
			"host":     req.URL.Host,
			"path":     req.URL.Path,
			"duration": duration.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Upstream request completed", map[string]interface{}{
		"method":      req.Method,
		"host":        req.URL.Host,
		"path":        req.URL.Path,
		"status":      resp.StatusCode,
		"duration_ms": duration.Milliseconds(),
	})
	return resp, nil
}
