package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"studio-app-api/core/domain"
	coreerrors "studio-app-api/core/errors"
	"studio-app-api/core/interfaces"
	"studio-app-api/core/upstream"
	"studio-app-api/pkg/utils/html"
)

// StrategyWordPress is the name of the WordPress REST API strategy
const StrategyWordPress = "wordpress"

// DefaultWordPressByline is used when the post embeds no author
const DefaultWordPressByline = "WordPress"

var (
	errEmptySlug = errors.New("url has no path segment to use as a slug")
	errEmptyPost = errors.New("wordpress post has no content")
)

type wpRendered struct {
	Rendered string `json:"rendered"`
}

type wpPost struct {
	Link                    string     `json:"link"`
	Title                   wpRendered `json:"title"`
	Content                 wpRendered `json:"content"`
	Excerpt                 wpRendered `json:"excerpt"`
	JetpackFeaturedMediaURL string     `json:"jetpack_featured_media_url"`
	Embedded                struct {
		Author []struct {
			Name string `json:"name"`
		} `json:"author"`
		FeaturedMedia []struct {
			SourceURL string `json:"source_url"`
		} `json:"wp:featuredmedia"`
	} `json:"_embedded"`
}

// SlugFromURL returns the last non-empty path segment without a .html or .htm extension
func SlugFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		segment := strings.TrimSpace(segments[i])
		if segment == "" {
			continue
		}
		lower := strings.ToLower(segment)
		for _, ext := range []string{".html", ".htm"} {
			if strings.HasSuffix(lower, ext) {
				segment = segment[:len(segment)-len(ext)]
				break
			}
		}
		if segment == "" {
			return "", errEmptySlug
		}
		return segment, nil
	}
	return "", errEmptySlug
}

// WordPressStrategy reads posts from the article site's own WordPress REST API
type WordPressStrategy struct {
	client interfaces.HTTPClient
}

// NewWordPressStrategy creates the WordPress strategy
func NewWordPressStrategy(client interfaces.HTTPClient) *WordPressStrategy {
	return &WordPressStrategy{client: client}
}

// Attempt implements AttemptFunc
func (w *WordPressStrategy) Attempt(ctx context.Context, ref domain.ArticleReference) (*domain.Article, error) {
	u, err := url.Parse(ref.URL)
	if err != nil {
		return nil, err
	}

	slug, err := SlugFromURL(ref.URL)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s://%s/wp-json/wp/v2/posts?slug=%s&_embed", u.Scheme, u.Host, url.QueryEscape(slug))
	resp, err := w.client.Get(ctx, endpoint)
	if err != nil {
		return nil, coreerrors.WrapError(err, "wordpress request failed")
	}

	payload, err := upstream.Decode(resp, "wordpress")
	if err != nil {
		return nil, err
	}

	var posts []wpPost
	if err := json.Unmarshal(payload, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode wordpress response: %w", err)
	}
	if len(posts) == 0 {
		return nil, &coreerrors.NotFoundError{Resource: "wordpress post", ID: slug}
	}
	post := posts[0]

	content, err := html.StripVideoEmbeds(post.Content.Rendered)
	if err != nil {
		return nil, fmt.Errorf("failed to clean wordpress content: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, errEmptyPost
	}

	byline := DefaultWordPressByline
	if len(post.Embedded.Author) > 0 {
		byline = upstream.FirstNonEmpty(post.Embedded.Author[0].Name, DefaultWordPressByline)
	}

	image := post.JetpackFeaturedMediaURL
	if len(post.Embedded.FeaturedMedia) > 0 {
		image = upstream.FirstNonEmpty(post.Embedded.FeaturedMedia[0].SourceURL, image)
	}

	return &domain.Article{
		Title:    html.SanitizeText(post.Title.Rendered),
		Content:  content,
		Excerpt:  html.SanitizeText(post.Excerpt.Rendered),
		Byline:   byline,
		SiteName: u.Hostname(),
		URL:      upstream.FirstNonEmpty(post.Link, ref.URL),
		Image:    image,
	}, nil
}

// Strategy returns the pipeline entry for WordPress
func (w *WordPressStrategy) Strategy() Strategy {
	return Strategy{
		Name:    StrategyWordPress,
		Attempt: w.Attempt,
	}
}
