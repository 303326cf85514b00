package transform

import "studio-app-api/core/upstream"

// generationRecord holds every field alias either generation operation returns
type generationRecord struct {
	RewrittenTitle    upstream.Text     `json:"rewritten_title"`
	TranslatedTitle   upstream.Text     `json:"translated_title"`
	Title             upstream.Text     `json:"title"`
	OriginalTitle     upstream.Text     `json:"original_title"`
	RewrittenContent  upstream.Text     `json:"rewritten_content"`
	TranslatedContent upstream.Text     `json:"translated_content"`
	Content           upstream.Text     `json:"content"`
	AlternativeTitles upstream.TextList `json:"alternative_titles"`
	MetaDescription   upstream.Text     `json:"meta_description"`
}

// Precedence order of the title aliases
var titleAccessors = []upstream.Accessor[generationRecord]{
	func(r generationRecord) string { return r.RewrittenTitle.String() },
	func(r generationRecord) string { return r.TranslatedTitle.String() },
	func(r generationRecord) string { return r.Title.String() },
	func(r generationRecord) string { return r.OriginalTitle.String() },
}

// Precedence order of the content aliases
var contentAccessors = []upstream.Accessor[generationRecord]{
	func(r generationRecord) string { return r.RewrittenContent.String() },
	func(r generationRecord) string { return r.TranslatedContent.String() },
	func(r generationRecord) string { return r.Content.String() },
}
