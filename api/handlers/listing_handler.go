// ABOUTME: Listing handler for the Huma API
// ABOUTME: Serves topic, news and discover listings that always carry data

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"studio-app-api/core/domain"
	"studio-app-api/core/interfaces"
)

// ListingHandler handles listing requests
type ListingHandler struct {
	listingService interfaces.ListingService
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingService interfaces.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// RegisterRoutes registers all listing routes
func (h *ListingHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listTopics",
		Method:      http.MethodGet,
		Path:        "/topics",
		Summary:     "List topics",
		Tags:        []string{"Listings"},
	}, h.Topics)

	huma.Register(api, huma.Operation{
		OperationID: "listNews",
		Method:      http.MethodGet,
		Path:        "/news/{topic}",
		Summary:     "List news for a topic",
		Description: "Falls back to a bundled dataset when the news backend is unavailable",
		Tags:        []string{"Listings"},
	}, h.News)

	huma.Register(api, huma.Operation{
		OperationID: "discover",
		Method:      http.MethodGet,
		Path:        "/discover",
		Summary:     "Discover feed",
		Description: "Falls back to a bundled dataset when the news backend is unavailable",
		Tags:        []string{"Listings"},
	}, h.Discover)
}

// TopicsOutput defines the output for the Topics operation
type TopicsOutput struct {
	Body domain.TopicListing
}

// Topics returns the topic listing
func (h *ListingHandler) Topics(ctx context.Context, _ *struct{}) (*TopicsOutput, error) {
	return &TopicsOutput{Body: h.listingService.Topics(ctx)}, nil
}

// NewsInput defines the input for the News operation
type NewsInput struct {
	Topic   string `path:"topic" minLength:"1" doc:"Topic slug"`
	Limit   int    `query:"limit" minimum:"0" maximum:"100" doc:"Maximum number of items, 0 for no limit"`
	Country string `query:"country" example:"ID" doc:"Country code"`
	Locale  string `query:"locale" example:"id-ID" doc:"Locale for display dates"`
}

// ListingOutput defines the output for news and discover listings
type ListingOutput struct {
	Body domain.NewsListing
}

// News returns the news listing for a topic
func (h *ListingHandler) News(ctx context.Context, input *NewsInput) (*ListingOutput, error) {
	listing := h.listingService.News(ctx, domain.NewsQuery{
		Topic:   input.Topic,
		Limit:   input.Limit,
		Country: input.Country,
		Locale:  input.Locale,
	})
	return &ListingOutput{Body: listing}, nil
}

// DiscoverInput defines the input for the Discover operation
type DiscoverInput struct {
	Country string `query:"country" example:"ID" doc:"Country code"`
	Locale  string `query:"locale" example:"id-ID" doc:"Locale for display dates"`
	Limit   int    `query:"limit" minimum:"0" maximum:"100" doc:"Maximum number of items, 0 for no limit"`
}

// Discover returns the discover feed
func (h *ListingHandler) Discover(ctx context.Context, input *DiscoverInput) (*ListingOutput, error) {
	listing := h.listingService.Discover(ctx, domain.DiscoverQuery{
		Country: input.Country,
		Locale:  input.Locale,
		Limit:   input.Limit,
	})
	return &ListingOutput{Body: listing}, nil
}
