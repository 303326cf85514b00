package interfaces

// Logger defines the interface for logging throughout the application.
//
// Example usage:
//
//	logger.Warn("Listing backend unavailable, serving fallback", map[string]interface{}{
//		"endpoint": "https://news.example.com/topics",
//		"error":    err.Error(),
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs issues that were recovered from, such as degraded listings.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures surfaced to the caller.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
