package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsVideoSource(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"https://www.youtube.com/embed/abc123", true},
		{"//www.youtube-nocookie.com/embed/abc", true},
		{"https://youtu.be/abc", true},
		{"https://player.vimeo.com/video/123", true},
		{"https://www.facebook.com/plugins/video.php?href=x", true},
		{"https://www.facebook.com/plugins/post.php?href=x", false},
		{"www.youtube.com/embed/abc", true},
		{"https://embed.example.com/player?url=https://www.youtube.com/watch?v=abc", true},
		{"https://PLAYER.VIMEO.COM/video/1", true},
		{"https://example.com/embed/abc", false},
		{"https://maps.google.com/embed?pb=1", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsVideoSource(tt.src), tt.src)
	}
}

func TestStripVideoEmbeds_RemovesYouTubeIframe(t *testing.T) {
	input := `<p>Intro</p><iframe src="https://www.youtube.com/embed/xyz" width="560"></iframe><p>Outro</p>`

	out, err := StripVideoEmbeds(input)
	require.NoError(t, err)

	assert.NotContains(t, out, "youtube.com")
	assert.NotContains(t, out, "<iframe")
	assert.Contains(t, out, "<p>Intro</p>")
	assert.Contains(t, out, "<p>Outro</p>")
}

func TestStripVideoEmbeds_RemovesProxiedYouTubeIframe(t *testing.T) {
	input := `<p>keep</p><iframe src="https://embed.example.com/player?url=https://www.youtube.com/watch?v=abc"></iframe>`

	out, err := StripVideoEmbeds(input)
	require.NoError(t, err)

	assert.NotContains(t, out, "youtube.com")
	assert.NotContains(t, out, "<iframe")
	assert.Contains(t, out, "<p>keep</p>")
}

func TestStripVideoEmbeds_RemovesWordPressWrapper(t *testing.T) {
	input := `<p>Before</p>
<figure class="wp-block-embed is-type-video is-provider-youtube wp-block-embed-youtube">
<div class="wp-block-embed__wrapper"><iframe title="Clip" src="https://www.youtube.com/embed/abc?feature=oembed"></iframe></div>
<figcaption>Watch the clip</figcaption>
</figure>
<p>After</p>`

	out, err := StripVideoEmbeds(input)
	require.NoError(t, err)

	assert.NotContains(t, out, "wp-block-embed")
	assert.NotContains(t, out, "Watch the clip")
	assert.Contains(t, out, "Before")
	assert.Contains(t, out, "After")
}

func TestStripVideoEmbeds_KeepsOtherEmbeds(t *testing.T) {
	input := `<iframe src="https://maps.google.com/maps?q=jakarta"></iframe>`

	out, err := StripVideoEmbeds(input)
	require.NoError(t, err)
	assert.Contains(t, out, "maps.google.com")
}

func TestStripVideoEmbeds_ObjectAndVideo(t *testing.T) {
	input := `<object><param name="movie" value="https://www.youtube.com/v/abc"></object>` +
		`<video controls><source src="https://vimeo.com/clip.mp4"></video>` +
		`<embed src="https://www.dailymotion.com/embed/video/x1">` +
		`<video src="/media/local.mp4"></video>`

	out, err := StripVideoEmbeds(input)
	require.NoError(t, err)

	assert.NotContains(t, out, "youtube.com")
	assert.NotContains(t, out, "vimeo.com")
	assert.NotContains(t, out, "dailymotion.com")
	assert.True(t, strings.Contains(out, "/media/local.mp4"), "local video should be kept")
}

func TestStripVideoEmbeds_Empty(t *testing.T) {
	out, err := StripVideoEmbeds("   ")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
