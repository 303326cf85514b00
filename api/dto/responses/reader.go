// ABOUTME: Response DTOs for reader view API endpoints
// ABOUTME: Defines the structure for batch extraction responses

package responses

import "studio-app-api/core/domain"

// ReaderViewResponse represents the response for reader view extraction
type ReaderViewResponse struct {
	Views  []domain.ReaderView `json:"views"`
	OK     int                 `json:"ok" doc:"Number of URLs that were extracted"`
	Failed int                 `json:"failed" doc:"Number of URLs that could not be extracted"`
}

// NewReaderViewResponse counts the outcomes of a batch
func NewReaderViewResponse(views []domain.ReaderView) ReaderViewResponse {
	resp := ReaderViewResponse{Views: views}
	for _, v := range views {
		if v.Status == domain.ReaderStatusOK {
			resp.OK++
		} else {
			resp.Failed++
		}
	}
	return resp
}
