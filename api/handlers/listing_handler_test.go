package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studio-app-api/core/domain"
)

func TestListingHandler_Topics(t *testing.T) {
	service := &MockListingService{}
	service.On("Topics", mock.Anything).Return(domain.TopicListing{
		Topics: []string{"teknologi", "ekonomi"},
		Source: domain.ListingSourceFallback,
	})

	_, api := humatest.New(t)
	NewListingHandler(service).RegisterRoutes(api)

	resp := api.Get("/topics")

	require.Equal(t, http.StatusOK, resp.Code)
	var listing domain.TopicListing
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listing))
	assert.Equal(t, []string{"teknologi", "ekonomi"}, listing.Topics)
	assert.Equal(t, domain.ListingSourceFallback, listing.Source)
}

func TestListingHandler_News(t *testing.T) {
	service := &MockListingService{}
	service.On("News", mock.Anything, domain.NewsQuery{
		Topic:   "teknologi",
		Limit:   2,
		Country: "ID",
		Locale:  "id-ID",
	}).Return(domain.NewsListing{
		Items:  []domain.NewsItem{{Title: "Satu", URL: "https://news.example.com/1", DisplayDate: "14 Mei 2024, 09.30 WIB"}},
		Source: domain.ListingSourceLive,
	})

	_, api := humatest.New(t)
	NewListingHandler(service).RegisterRoutes(api)

	resp := api.Get("/news/teknologi?limit=2&country=ID&locale=id-ID")

	require.Equal(t, http.StatusOK, resp.Code)
	var listing domain.NewsListing
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listing))
	require.Len(t, listing.Items, 1)
	assert.Equal(t, "14 Mei 2024, 09.30 WIB", listing.Items[0].DisplayDate)
	service.AssertExpectations(t)
}

func TestListingHandler_News_LimitOutOfRange(t *testing.T) {
	service := &MockListingService{}
	_, api := humatest.New(t)
	NewListingHandler(service).RegisterRoutes(api)

	resp := api.Get("/news/teknologi?limit=500")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	service.AssertNotCalled(t, "News", mock.Anything, mock.Anything)
}

func TestListingHandler_Discover(t *testing.T) {
	service := &MockListingService{}
	service.On("Discover", mock.Anything, domain.DiscoverQuery{Country: "ID"}).Return(domain.NewsListing{
		Items:  []domain.NewsItem{{Title: "Pilihan", URL: "https://news.example.com/p"}},
		Source: domain.ListingSourceCache,
	})

	_, api := humatest.New(t)
	NewListingHandler(service).RegisterRoutes(api)

	resp := api.Get("/discover?country=ID")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"source":"cache"`)
	service.AssertExpectations(t)
}
