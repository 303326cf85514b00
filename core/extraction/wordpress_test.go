package extraction

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-app-api/core/domain"
	coreerrors "studio-app-api/core/errors"
)

func TestSlugFromURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"plain slug", "https://blog.example.com/2024/05/harga-beras/", "harga-beras", false},
		{"html extension", "https://blog.example.com/harga-beras.html", "harga-beras", false},
		{"htm extension upper case", "https://blog.example.com/news/Harga-Beras.HTM", "Harga-Beras", false},
		{"query ignored", "https://blog.example.com/harga-beras?utm=1", "harga-beras", false},
		{"root path", "https://blog.example.com/", "", true},
		{"extension only", "https://blog.example.com/.html", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SlugFromURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const wordpressPost = `[{
	"link": "https://blog.example.com/harga-beras/",
	"title": {"rendered": "Harga &amp; <em>Beras</em> Naik"},
	"content": {"rendered": "<p>Harga beras naik lagi.</p><figure class=\"wp-block-embed is-provider-youtube\"><div class=\"wp-block-embed__wrapper\"><iframe src=\"https://www.youtube.com/embed/abc123\"></iframe></div></figure><p>Pedagang mengeluh.</p>"},
	"excerpt": {"rendered": "<p>Harga beras naik&hellip;</p>\n"},
	"jetpack_featured_media_url": "https://blog.example.com/jetpack.jpg",
	"_embedded": {
		"author": [{"name": "Sari"}],
		"wp:featuredmedia": [{"source_url": "https://blog.example.com/featured.jpg"}]
	}
}]`

func newWordPressServer(t *testing.T, body string, gotQuery *string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/posts" {
			http.NotFound(w, r)
			return
		}
		if gotQuery != nil {
			*gotQuery = r.URL.RawQuery
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestWordPressStrategy_ReadsPost(t *testing.T) {
	var query string
	server := newWordPressServer(t, wordpressPost, &query)
	ref := domain.ArticleReference{URL: server.URL + "/2024/05/harga-beras.html"}

	article, err := NewWordPressStrategy(&testHTTPClient{}).Attempt(context.Background(), ref)

	require.NoError(t, err)
	assert.Equal(t, "slug=harga-beras&_embed", query)
	assert.Equal(t, "Harga & Beras Naik", article.Title)
	assert.NotContains(t, article.Content, "youtube.com")
	assert.NotContains(t, article.Content, "<iframe")
	assert.NotContains(t, article.Content, "wp-block-embed")
	assert.Contains(t, article.Content, "Harga beras naik lagi.")
	assert.Contains(t, article.Content, "Pedagang mengeluh.")
	assert.Equal(t, "Harga beras naik…", article.Excerpt)
	assert.Equal(t, "Sari", article.Byline)
	assert.Equal(t, "https://blog.example.com/featured.jpg", article.Image)
	assert.Equal(t, "127.0.0.1", article.SiteName)
	assert.Equal(t, "https://blog.example.com/harga-beras/", article.URL)
}

func TestWordPressStrategy_Defaults(t *testing.T) {
	server := newWordPressServer(t, `[{
		"title": {"rendered": "Judul"},
		"content": {"rendered": "<p>Isi</p>"},
		"jetpack_featured_media_url": "https://blog.example.com/jetpack.jpg"
	}]`, nil)
	ref := domain.ArticleReference{URL: server.URL + "/judul/"}

	article, err := NewWordPressStrategy(&testHTTPClient{}).Attempt(context.Background(), ref)

	require.NoError(t, err)
	assert.Equal(t, DefaultWordPressByline, article.Byline)
	assert.Equal(t, "https://blog.example.com/jetpack.jpg", article.Image)
	assert.Equal(t, ref.URL, article.URL)
}

func TestWordPressStrategy_HardFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
		path string
	}{
		{"empty content", `[{"title": {"rendered": "T"}, "content": {"rendered": "  "}}]`, "/empty/"},
		{"only a video", `[{"content": {"rendered": "<iframe src=\"https://player.vimeo.com/video/1\"></iframe>"}}]`, "/video/"},
		{"no slug", wordpressPost, "/"},
		{"not a post list", `{"code": "rest_no_route"}`, "/post/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newWordPressServer(t, tt.body, nil)

			article, err := NewWordPressStrategy(&testHTTPClient{}).Attempt(context.Background(), domain.ArticleReference{URL: server.URL + tt.path})

			assert.Error(t, err)
			assert.Nil(t, article)
		})
	}
}

func TestWordPressStrategy_NoPostForSlug(t *testing.T) {
	server := newWordPressServer(t, `[]`, nil)

	article, err := NewWordPressStrategy(&testHTTPClient{}).Attempt(context.Background(), domain.ArticleReference{URL: server.URL + "/missing-post/"})

	require.Error(t, err)
	assert.Nil(t, article)
	assert.True(t, coreerrors.IsNotFound(err))
	assert.Equal(t, "wordpress post not found: missing-post", err.Error())
}

func TestWordPressStrategy_NotWordPress(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := NewWordPressStrategy(&testHTTPClient{}).Attempt(context.Background(), domain.ArticleReference{URL: server.URL + "/post/"})

	assert.Error(t, err)
}
