package listing

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"studio-app-api/core/domain"
)

//go:embed fallback/*.json
var fallbackFiles embed.FS

const defaultFallbackTopic = "default"

// fallbackData is parsed once and never written afterwards
type fallbackData struct {
	topics   []string
	news     map[string][]domain.NewsItem
	discover []domain.NewsItem
}

var fallback = mustLoadFallback()

func mustLoadFallback() fallbackData {
	var data fallbackData
	mustDecode("fallback/topics.json", &data.topics)
	mustDecode("fallback/news.json", &data.news)
	mustDecode("fallback/discover.json", &data.discover)

	if len(data.news[defaultFallbackTopic]) == 0 {
		panic("listing: fallback news has no default entry")
	}
	return data
}

func mustDecode(name string, target interface{}) {
	raw, err := fallbackFiles.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("listing: %s: %v", name, err))
	}
	if err := json.Unmarshal(raw, target); err != nil {
		panic(fmt.Sprintf("listing: %s: %v", name, err))
	}
}

// FallbackTopics returns a copy of the fallback topic list
func FallbackTopics() []string {
	return append([]string(nil), fallback.topics...)
}

// FallbackNews returns a copy of the fallback items for a topic
func FallbackNews(topic string) []domain.NewsItem {
	items, ok := fallback.news[strings.ToLower(strings.TrimSpace(topic))]
	if !ok {
		items = fallback.news[defaultFallbackTopic]
	}
	return append([]domain.NewsItem(nil), items...)
}

// FallbackDiscover returns a copy of the fallback discover feed
func FallbackDiscover() []domain.NewsItem {
	return append([]domain.NewsItem(nil), fallback.discover...)
}
