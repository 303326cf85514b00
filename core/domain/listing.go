// ABOUTME: Domain models for topic, news and discover listings
// ABOUTME: Listings always carry data; Source tells live data apart from fallback data

package domain

// ListingSource describes where listing data came from
type ListingSource string

const (
	ListingSourceLive     ListingSource = "live"
	ListingSourceCache    ListingSource = "cache"
	ListingSourceFallback ListingSource = "fallback"
)

// NewsItem is a single entry of a news or discover listing
type NewsItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source,omitempty"`
	Image       string `json:"image,omitempty"`
	Snippet     string `json:"snippet,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	DisplayDate string `json:"displayDate,omitempty"`
}

// TopicListing is the result of a topic listing request
type TopicListing struct {
	Topics []string      `json:"topics"`
	Source ListingSource `json:"source"`
}

// NewsListing is the result of a news or discover listing request
type NewsListing struct {
	Items  []NewsItem    `json:"items"`
	Source ListingSource `json:"source"`
}

// NewsQuery selects news for a topic
type NewsQuery struct {
	Topic   string
	Limit   int
	Country string
	Locale  string
}

// DiscoverQuery selects the discover feed
type DiscoverQuery struct {
	Country string
	Locale  string
	Limit   int
}
