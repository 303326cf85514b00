// ABOUTME: Domain models for AI rewrite and translation requests
// ABOUTME: Holds the two-way operation switch keyed on the target language tag

package domain

// TranslateLanguageTag is the target language that selects translation.
// Every other tag selects a rewrite.
const TranslateLanguageTag = "en-US"

// TransformOperation names an operation of the generation backend
type TransformOperation string

const (
	// OperationTranslate translates the article into English
	OperationTranslate TransformOperation = "translate"

	// OperationRewrite rewrites the article in its original language
	OperationRewrite TransformOperation = "rewrite"
)

// OperationFor returns the operation for a target language tag
func OperationFor(targetLanguage string) TransformOperation {
	if targetLanguage == TranslateLanguageTag {
		return OperationTranslate
	}
	return OperationRewrite
}

// TransformationRequest asks the generation backend for a new version of an article
type TransformationRequest struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	TargetLanguage string `json:"targetLanguage"`
	Grounding      bool   `json:"grounding"`
}

// TransformationResult is the normalized response of either operation.
// Only Content is always present; empty optional fields mean the backend did not supply them.
type TransformationResult struct {
	Title             string             `json:"title,omitempty"`
	AlternativeTitles []string           `json:"alternativeTitles,omitempty"`
	Content           string             `json:"content"`
	MetaDescription   string             `json:"metaDescription,omitempty"`
	Operation         TransformOperation `json:"operation"`
}
