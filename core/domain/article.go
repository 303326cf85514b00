// ABOUTME: Domain models for article references and extracted articles
// ABOUTME: Defines the normalized record produced by the extraction pipeline

package domain

// ContentFormatHTML tags article content as HTML markup
const ContentFormatHTML = "html"

// ArticleReference identifies a remote document to extract
type ArticleReference struct {
	URL string `json:"url"`
}

// Article is the normalized record produced by the extraction pipeline.
// It is built once per read request and never modified afterwards.
type Article struct {
	Title       string `json:"title"`
	Content     string `json:"content"`     // HTML content
	TextContent string `json:"textContent"` // Plain text content
	Markdown    string `json:"markdown,omitempty"`
	Excerpt     string `json:"excerpt"`
	Byline      string `json:"byline"`
	SiteName    string `json:"siteName"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Format      string `json:"format"`
	Strategy    string `json:"strategy"` // Name of the strategy that produced the record
}
