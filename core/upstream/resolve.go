package upstream

import "strings"

// Accessor reads one candidate field from an upstream record
type Accessor[T any] func(T) string

// Resolve evaluates accessors in order and returns the first non-blank value.
// The order of the accessors is the precedence order of the aliases.
func Resolve[T any](record T, accessors ...Accessor[T]) string {
	for _, access := range accessors {
		if value := strings.TrimSpace(access(record)); value != "" {
			return value
		}
	}
	return ""
}

// FirstNonEmpty returns the first non-blank value
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
