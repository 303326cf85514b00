// ABOUTME: Public types for the Content Studio library API
// ABOUTME: Re-exports the domain models so callers never import core packages

package studio

import "studio-app-api/core/domain"

type (
	// Article is a normalized extracted article
	Article = domain.Article

	// ReaderView is the outcome of reading one URL of a batch
	ReaderView = domain.ReaderView

	// TransformationRequest asks for a rewrite or translation
	TransformationRequest = domain.TransformationRequest

	// TransformationResult is the normalized rewrite or translation
	TransformationResult = domain.TransformationResult

	// TopicListing is a list of topics with its data source
	TopicListing = domain.TopicListing

	// NewsListing is a news or discover listing with its data source
	NewsListing = domain.NewsListing

	// NewsItem is one listing entry
	NewsItem = domain.NewsItem
)

// Listing sources
const (
	SourceLive     = domain.ListingSourceLive
	SourceCache    = domain.ListingSourceCache
	SourceFallback = domain.ListingSourceFallback
)

// NewsOption narrows a news or discover listing
type NewsOption func(*newsOptions)

type newsOptions struct {
	limit   int
	country string
	locale  string
}

// WithLimit caps the number of returned items
func WithLimit(limit int) NewsOption {
	return func(o *newsOptions) { o.limit = limit }
}

// WithCountry selects the country edition
func WithCountry(country string) NewsOption {
	return func(o *newsOptions) { o.country = country }
}

// WithLocale adds display dates formatted for the locale
func WithLocale(locale string) NewsOption {
	return func(o *newsOptions) { o.locale = locale }
}

func applyNewsOptions(opts []NewsOption) newsOptions {
	var o newsOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
