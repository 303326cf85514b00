// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts consumed by the API handlers and the library client

package interfaces

import (
	"context"

	"studio-app-api/core/domain"
)

// ReaderService extracts articles for the reader view
type ReaderService interface {
	ReadArticle(ctx context.Context, ref domain.ArticleReference) (*domain.Article, error)
	ReadArticles(ctx context.Context, urls []string) []domain.ReaderView
}

// TransformService rewrites or translates article bodies
type TransformService interface {
	Transform(ctx context.Context, req domain.TransformationRequest) (*domain.TransformationResult, error)
}

// ListingService serves topic, news and discover listings. It never fails.
type ListingService interface {
	Topics(ctx context.Context) domain.TopicListing
	News(ctx context.Context, query domain.NewsQuery) domain.NewsListing
	Discover(ctx context.Context, query domain.DiscoverQuery) domain.NewsListing
}
