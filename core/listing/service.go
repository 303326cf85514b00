// ABOUTME: Service layer for topic, news and discover listings
// ABOUTME: Degrades to embedded fallback data on any upstream failure and never returns an error

package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"studio-app-api/core/domain"
	"studio-app-api/core/interfaces"
	"studio-app-api/core/upstream"
)

// DefaultCacheTTL applies when listing caching is enabled without a TTL
const DefaultCacheTTL = 5 * time.Minute

const cachePrefix = "listing:"

// Options configures the listing service
type Options struct {
	// NewsBaseURL is the base URL of the listing backend
	NewsBaseURL string

	// CacheEnabled stores successful live listings in the cache dependency
	CacheEnabled bool

	// CacheTTL is how long cached listings are served
	CacheTTL time.Duration

	// TimeZone is the reference zone for display dates; nil means DefaultTimeZone
	TimeZone *time.Location
}

// Service implements interfaces.ListingService
type Service struct {
	baseURL string
	client  interfaces.HTTPClient
	cache   interfaces.Cache
	logger  interfaces.Logger
	dates   *DateFormatter
	ttl     time.Duration
}

// NewService creates a new listing service
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	s := &Service{
		baseURL: strings.TrimRight(opts.NewsBaseURL, "/"),
		client:  deps.HTTPClient,
		logger:  deps.LoggerOrNop(),
		dates:   NewDateFormatter(opts.TimeZone),
		ttl:     opts.CacheTTL,
	}
	if opts.CacheEnabled && deps.Cache != nil {
		s.cache = deps.Cache
		if s.ttl <= 0 {
			s.ttl = DefaultCacheTTL
		}
	}
	return s
}

// Topics returns the topic listing
func (s *Service) Topics(ctx context.Context) domain.TopicListing {
	endpoint := s.baseURL + "/topics"
	cacheKey := cachePrefix + "topics"

	var cached []string
	if s.fromCache(ctx, cacheKey, &cached) {
		return domain.TopicListing{Topics: cached, Source: domain.ListingSourceCache}
	}

	payload, err := s.fetch(ctx, endpoint)
	if err == nil {
		var topics []string
		if topics, err = decodeTopics(payload); err == nil {
			s.toCache(ctx, cacheKey, topics)
			return domain.TopicListing{Topics: topics, Source: domain.ListingSourceLive}
		}
	}

	s.warnFallback("topics", endpoint, err)
	return domain.TopicListing{Topics: FallbackTopics(), Source: domain.ListingSourceFallback}
}

// News returns the news listing for a topic
func (s *Service) News(ctx context.Context, query domain.NewsQuery) domain.NewsListing {
	params := url.Values{}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Country != "" {
		params.Set("country", query.Country)
	}
	if query.Locale != "" {
		params.Set("locale", query.Locale)
	}

	endpoint := fmt.Sprintf("%s/news/%s", s.baseURL, url.PathEscape(query.Topic))
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	cacheKey := fmt.Sprintf("%snews:%s|%d|%s|%s", cachePrefix, query.Topic, query.Limit, query.Country, query.Locale)
	return s.newsListing(ctx, "news", endpoint, cacheKey, query.Limit, query.Locale, func() []domain.NewsItem {
		return FallbackNews(query.Topic)
	})
}

// Discover returns the discover feed
func (s *Service) Discover(ctx context.Context, query domain.DiscoverQuery) domain.NewsListing {
	params := url.Values{}
	if query.Country != "" {
		params.Set("country", query.Country)
	}
	if query.Locale != "" {
		params.Set("locale", query.Locale)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	endpoint := s.baseURL + "/discover"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	cacheKey := fmt.Sprintf("%sdiscover:%d|%s|%s", cachePrefix, query.Limit, query.Country, query.Locale)
	return s.newsListing(ctx, "discover", endpoint, cacheKey, query.Limit, query.Locale, FallbackDiscover)
}

func (s *Service) newsListing(ctx context.Context, name, endpoint, cacheKey string, limit int, locale string, fallbackItems func() []domain.NewsItem) domain.NewsListing {
	var cached []domain.NewsItem
	if s.fromCache(ctx, cacheKey, &cached) {
		return domain.NewsListing{Items: cached, Source: domain.ListingSourceCache}
	}

	payload, err := s.fetch(ctx, endpoint)
	if err == nil {
		var items []domain.NewsItem
		if items, err = decodeNews(payload); err == nil {
			items = s.present(truncate(items, limit), locale)
			s.toCache(ctx, cacheKey, items)
			return domain.NewsListing{Items: items, Source: domain.ListingSourceLive}
		}
	}

	s.warnFallback(name, endpoint, err)
	return domain.NewsListing{
		Items:  s.present(truncate(fallbackItems(), limit), locale),
		Source: domain.ListingSourceFallback,
	}
}

func (s *Service) fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	resp, err := s.client.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return upstream.Decode(resp, "listing backend")
}

// present fills display dates for a locale; items must already be a private copy
func (s *Service) present(items []domain.NewsItem, locale string) []domain.NewsItem {
	if locale == "" {
		return items
	}
	for i := range items {
		items[i].DisplayDate = s.dates.Format(items[i].PublishedAt, locale)
	}
	return items
}

func truncate(items []domain.NewsItem, limit int) []domain.NewsItem {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func (s *Service) warnFallback(listing, endpoint string, err error) {
	fields := map[string]interface{}{
		"listing":  listing,
		"endpoint": endpoint,
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	s.logger.Warn("Listing backend unavailable, serving fallback data", fields)
}

func (s *Service) fromCache(ctx context.Context, key string, target interface{}) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		s.logger.Debug("Discarding unreadable cached listing", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	return true
}

func (s *Service) toCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Debug("Failed to cache listing", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
