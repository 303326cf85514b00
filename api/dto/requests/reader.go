// ABOUTME: Request DTOs for reader view API endpoints
// ABOUTME: Defines the structure for single and batch article extraction requests

package requests

// ReaderViewRequest represents a request to extract reader views from URLs
type ReaderViewRequest struct {
	// URLs to extract reader views from
	URLs []string `json:"urls" required:"true" minItems:"1" maxItems:"50" example:"[\"https://example.com/article\"]" doc:"List of URLs to extract reader views from"`
}
