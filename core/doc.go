// Package core contains the business logic for Content Studio.
// It has no web framework dependencies and can be embedded through the
// studio library as well as served through the HTTP API.
//
// Sub-packages:
//
//   - domain: article, transformation and listing models
//   - extraction: the ordered fallback pipeline that turns a URL into an Article
//   - transform: rewrite and translation calls to the generation backend
//   - listing: topic, news and discover listings with bundled fallback data
//   - upstream: the shared response envelope of the backend services
//   - errors: typed errors mapped to HTTP statuses by the API layer
//   - interfaces: contracts for cache, HTTP client, logger and services
//
// All infrastructure is injected through interfaces.Dependencies:
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: standard.NewStandardHTTPClient(30 * time.Second),
//	    Logger:     structured.New(structured.Options{Level: "info"}),
//	}
//	reader := extraction.NewService(deps, extraction.Options{
//	    ExtractorBaseURL: "http://localhost:8081",
//	})
//	article, err := reader.ReadArticle(ctx, domain.ArticleReference{URL: articleURL})
package core
