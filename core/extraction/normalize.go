package extraction

import (
	"strings"
	"unicode/utf8"

	"studio-app-api/core/domain"
	"studio-app-api/pkg/utils/html"
)

// UnknownAuthor is the byline used when the backend names no author
const UnknownAuthor = "Unknown"

// JoinAuthors joins author names with ", " and defaults to UnknownAuthor
func JoinAuthors(authors []string) string {
	names := make([]string, 0, len(authors))
	for _, author := range authors {
		if name := strings.TrimSpace(author); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return UnknownAuthor
	}
	return strings.Join(names, ", ")
}

// Normalize fills derived fields so that content and textContent are both
// present whenever either is. Markup is stripped to text; text is wrapped
// into escaped paragraphs.
func Normalize(article domain.Article, ref domain.ArticleReference, strategy string) domain.Article {
	article.Title = strings.TrimSpace(article.Title)
	article.Content = strings.TrimSpace(article.Content)
	article.TextContent = strings.TrimSpace(article.TextContent)
	article.Excerpt = strings.TrimSpace(article.Excerpt)
	article.Byline = strings.TrimSpace(article.Byline)
	article.SiteName = strings.TrimSpace(article.SiteName)
	article.Image = strings.TrimSpace(article.Image)

	switch {
	case article.Content == "" && article.TextContent != "":
		article.Content = html.TextToHTML(article.TextContent)
	case article.TextContent == "" && article.Content != "":
		article.TextContent = html.StripHTML(article.Content)
	}

	if strings.TrimSpace(article.URL) == "" {
		article.URL = ref.URL
	}
	article.Format = domain.ContentFormatHTML
	article.Strategy = strategy
	return article
}

// ContentLength is the number of characters of trimmed plain text
func ContentLength(article domain.Article) int {
	text := article.TextContent
	if text == "" && article.Content != "" {
		text = html.StripHTML(article.Content)
	}
	return utf8.RuneCountInString(strings.TrimSpace(text))
}
