package responses

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studio-app-api/core/domain"
)

func TestNewReaderViewResponse(t *testing.T) {
	views := []domain.ReaderView{
		{URL: "https://a.example.com", Status: domain.ReaderStatusOK, Article: &domain.Article{Title: "A"}},
		{URL: "https://b.example.com", Status: domain.ReaderStatusError, Error: "boom"},
		{URL: "https://c.example.com", Status: domain.ReaderStatusOK, Article: &domain.Article{Title: "C"}},
	}

	resp := NewReaderViewResponse(views)

	assert.Equal(t, 2, resp.OK)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, views, resp.Views)
}

func TestNewReaderViewResponse_Empty(t *testing.T) {
	resp := NewReaderViewResponse(nil)
	assert.Zero(t, resp.OK)
	assert.Zero(t, resp.Failed)
}
