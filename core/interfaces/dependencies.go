// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache stores successful listing responses; nil disables caching
	Cache Cache

	// HTTPClient talks to the extraction, generation and listing backends
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}

// LoggerOrNop returns the configured logger, or a logger that discards output
func (d Dependencies) LoggerOrNop() Logger {
	if d.Logger == nil {
		return NopLogger{}
	}
	return d.Logger
}
