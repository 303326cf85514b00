// ABOUTME: Domain models for batch reader view results
// ABOUTME: Wraps extracted articles with a per-URL status

package domain

// Reader view statuses
const (
	ReaderStatusOK    = "ok"
	ReaderStatusError = "error"
)

// ReaderView is the outcome of reading a single URL as part of a batch
type ReaderView struct {
	URL     string   `json:"url"`
	Status  string   `json:"status"`
	Article *Article `json:"article,omitempty"`
	Error   string   `json:"error,omitempty"`
}
