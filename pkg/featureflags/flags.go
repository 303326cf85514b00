// ABOUTME: Feature flag management for optional extraction and serving behaviour
// ABOUTME: Provides interface-based feature toggling backed by environment variables or static maps

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags
const (
	// DirectReadability appends the local readability strategy to the extraction pipeline
	DirectReadability FeatureFlag = "direct_readability"

	// MarkdownOutput adds a Markdown rendition to extracted articles
	MarkdownOutput FeatureFlag = "markdown_output"

	// ListingCache caches successful live listings
	ListingCache FeatureFlag = "listing_cache"

	// RateLimitEnabled enables per-client rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"
)

// AllFlags lists every defined flag
var AllFlags = []FeatureFlag{DirectReadability, MarkdownOutput, ListingCache, RateLimitEnabled}

// Manager resolves feature flag states
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled pins a flag's state, overriding its source
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of every flag in AllFlags
	GetAllFlags() map[FeatureFlag]bool
}

// ParseValue reports whether an environment value switches a flag on.
// "true", "1" and "enabled" are accepted in any case.
func ParseValue(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "enabled":
		return true
	default:
		return false
	}
}

// EnvManager reads flags from environment variables named prefix + upper-case flag
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates an environment-backed manager; an empty prefix means FEATURE_
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// EnvKey returns the environment variable that controls flag
func (m *EnvManager) EnvKey(flag FeatureFlag) string {
	return m.prefix + strings.ToUpper(string(flag))
}

// IsEnabled returns the pinned state of flag, or else its environment value
func (m *EnvManager) IsEnabled(_ context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	enabled, pinned := m.overrides[flag]
	m.mu.RUnlock()
	if pinned {
		return enabled
	}
	return ParseValue(os.Getenv(m.EnvKey(flag)))
}

// SetEnabled pins a flag regardless of the environment
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	m.overrides[flag] = enabled
	m.mu.Unlock()
}

// GetAllFlags returns the state of every flag in AllFlags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	return snapshot(m)
}

// StaticManager holds flag states in memory. Flags it does not know are off.
type StaticManager struct {
	mu    sync.RWMutex
	flags map[FeatureFlag]bool
}

// NewStaticManager creates a manager from a copy of flags
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	m := &StaticManager{flags: make(map[FeatureFlag]bool, len(flags))}
	for flag, enabled := range flags {
		m.flags[flag] = enabled
	}
	return m
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(_ context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns the state of every flag in AllFlags
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	return snapshot(m)
}

func snapshot(m Manager) map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(AllFlags))
	for _, flag := range AllFlags {
		flags[flag] = m.IsEnabled(ctx, flag)
	}
	return flags
}
