package extraction

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "studio-app-api/core/errors"
)

func TestBackendStrategy_DecodesEnvelope(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/read", r.URL.Path)
		gotURL = r.URL.Query().Get("url")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"title": "Harga beras naik",
				"content": "<p>Body</p>",
				"text_content": "Body",
				"authors": ["A", "B"],
				"site_name": {"name": "Kabar"},
				"top_image": "https://cdn.example.com/a.jpg"
			}
		}`))
	}))
	defer server.Close()

	strategy := NewBackendStrategy(server.URL+"/", &testHTTPClient{})
	article, err := strategy.Attempt(context.Background(), testRef)

	require.NoError(t, err)
	assert.Equal(t, testRef.URL, gotURL)
	assert.Equal(t, "Harga beras naik", article.Title)
	assert.Equal(t, "<p>Body</p>", article.Content)
	assert.Equal(t, "Body", article.TextContent)
	assert.Equal(t, "A, B", article.Byline)
	assert.Equal(t, "Kabar", article.SiteName)
	assert.Equal(t, "https://cdn.example.com/a.jpg", article.Image)
	assert.Equal(t, testRef.URL, article.URL)
}

func TestBackendStrategy_MissingAuthor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title": "T", "textContent": "Body", "author": null}`))
	}))
	defer server.Close()

	article, err := NewBackendStrategy(server.URL, &testHTTPClient{}).Attempt(context.Background(), testRef)

	require.NoError(t, err)
	assert.Equal(t, UnknownAuthor, article.Byline)
}

func TestBackendStrategy_SingleAuthorString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title": "T", "textContent": "Body", "author": "Dewi"}`))
	}))
	defer server.Close()

	article, err := NewBackendStrategy(server.URL, &testHTTPClient{}).Attempt(context.Background(), testRef)

	require.NoError(t, err)
	assert.Equal(t, "Dewi", article.Byline)
}

func TestBackendStrategy_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "message": "paywalled"}`))
	}))
	defer server.Close()

	article, err := NewBackendStrategy(server.URL, &testHTTPClient{}).Attempt(context.Background(), testRef)

	assert.Nil(t, article)
	require.True(t, coreerrors.IsExternalAPI(err))
	assert.Contains(t, err.Error(), "paywalled")
}

func TestBackendStrategy_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewBackendStrategy(server.URL, &testHTTPClient{}).Attempt(context.Background(), testRef)

	assert.True(t, coreerrors.IsExternalAPI(err))
}

func TestBackendStrategy_UndecodablePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["not", "an", "article"]`))
	}))
	defer server.Close()

	_, err := NewBackendStrategy(server.URL, &testHTTPClient{}).Attempt(context.Background(), testRef)

	assert.Error(t, err)
}
