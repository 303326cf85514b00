package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studio-app-api/core/domain"
)

func TestTransformRequest_ToDomain(t *testing.T) {
	req := TransformRequest{
		Title:          "Judul",
		Content:        "<p>Isi</p>",
		TargetLanguage: "id-ID",
		Grounding:      true,
	}

	assert.Equal(t, domain.TransformationRequest{
		Title:          "Judul",
		Content:        "<p>Isi</p>",
		TargetLanguage: "id-ID",
		Grounding:      true,
	}, req.ToDomain())
}
