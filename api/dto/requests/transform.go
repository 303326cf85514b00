// ABOUTME: Request DTOs for the article transformation endpoint
// ABOUTME: Maps the public snake_case body onto the domain transformation request

package requests

import "studio-app-api/core/domain"

// TransformRequest asks for a rewrite or an English translation of an article
type TransformRequest struct {
	Title          string `json:"title,omitempty" doc:"Article title"`
	Content        string `json:"content" required:"true" doc:"Article body to rewrite or translate"`
	TargetLanguage string `json:"target_language" required:"true" example:"en-US" doc:"en-US translates into English, any other tag rewrites in the original language"`
	Grounding      bool   `json:"grounding,omitempty" doc:"Let the generation backend use search grounding"`
}

// ToDomain converts the request into the domain type
func (r TransformRequest) ToDomain() domain.TransformationRequest {
	return domain.TransformationRequest{
		Title:          r.Title,
		Content:        r.Content,
		TargetLanguage: r.TargetLanguage,
		Grounding:      r.Grounding,
	}
}
