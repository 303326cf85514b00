package listing

import (
	"bytes"
	"encoding/json"
	"errors"

	"studio-app-api/core/domain"
	"studio-app-api/core/upstream"
)

// collectionKeys are the members a listing object may hold its array under
var collectionKeys = []string{"articles", "items", "news", "topics"}

var errNoCollection = errors.New("listing payload holds no collection")

// collection returns the array in a listing payload
func collection(payload json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed, nil
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &object); err != nil {
		return nil, err
	}
	for _, key := range collectionKeys {
		if value, ok := object[key]; ok {
			value = bytes.TrimSpace(value)
			if len(value) > 0 && value[0] == '[' {
				return value, nil
			}
		}
	}
	return nil, errNoCollection
}

type newsRecord struct {
	Title          upstream.Text `json:"title"`
	URL            string        `json:"url"`
	Link           string        `json:"link"`
	Source         upstream.Text `json:"source"`
	Publisher      upstream.Text `json:"publisher"`
	Image          string        `json:"image"`
	ImageURL       string        `json:"image_url"`
	Thumbnail      string        `json:"thumbnail"`
	Snippet        string        `json:"snippet"`
	Description    string        `json:"description"`
	Summary        string        `json:"summary"`
	PublishedAt    upstream.Text `json:"publishedAt"`
	PublishedSnake upstream.Text `json:"published_at"`
	Date           upstream.Text `json:"date"`
	PubDate        upstream.Text `json:"pubDate"`
}

func (r newsRecord) item() domain.NewsItem {
	return domain.NewsItem{
		Title:       r.Title.String(),
		URL:         upstream.FirstNonEmpty(r.URL, r.Link),
		Source:      upstream.FirstNonEmpty(r.Source.String(), r.Publisher.String()),
		Image:       upstream.FirstNonEmpty(r.Image, r.ImageURL, r.Thumbnail),
		Snippet:     upstream.FirstNonEmpty(r.Snippet, r.Description, r.Summary),
		PublishedAt: upstream.FirstNonEmpty(r.PublishedAt.String(), r.PublishedSnake.String(), r.Date.String(), r.PubDate.String()),
	}
}

func decodeNews(payload json.RawMessage) ([]domain.NewsItem, error) {
	list, err := collection(payload)
	if err != nil {
		return nil, err
	}

	var records []newsRecord
	if err := json.Unmarshal(list, &records); err != nil {
		return nil, err
	}

	items := make([]domain.NewsItem, 0, len(records))
	for _, record := range records {
		item := record.item()
		if item.Title == "" && item.URL == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeTopics(payload json.RawMessage) ([]string, error) {
	list, err := collection(payload)
	if err != nil {
		return nil, err
	}

	var topics upstream.TextList
	if err := json.Unmarshal(list, &topics); err != nil {
		return nil, err
	}
	return topics.Strings(), nil
}
