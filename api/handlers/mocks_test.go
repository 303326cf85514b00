package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studio-app-api/core/domain"
)

type MockReaderService struct {
	mock.Mock
}

func (m *MockReaderService) ReadArticle(ctx context.Context, ref domain.ArticleReference) (*domain.Article, error) {
	args := m.Called(ctx, ref)
	if article := args.Get(0); article != nil {
		return article.(*domain.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReaderService) ReadArticles(ctx context.Context, urls []string) []domain.ReaderView {
	args := m.Called(ctx, urls)
	return args.Get(0).([]domain.ReaderView)
}

type MockTransformService struct {
	mock.Mock
}

func (m *MockTransformService) Transform(ctx context.Context, req domain.TransformationRequest) (*domain.TransformationResult, error) {
	args := m.Called(ctx, req)
	if result := args.Get(0); result != nil {
		return result.(*domain.TransformationResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) Topics(ctx context.Context) domain.TopicListing {
	return m.Called(ctx).Get(0).(domain.TopicListing)
}

func (m *MockListingService) News(ctx context.Context, query domain.NewsQuery) domain.NewsListing {
	return m.Called(ctx, query).Get(0).(domain.NewsListing)
}

func (m *MockListingService) Discover(ctx context.Context, query domain.DiscoverQuery) domain.NewsListing {
	return m.Called(ctx, query).Get(0).(domain.NewsListing)
}
