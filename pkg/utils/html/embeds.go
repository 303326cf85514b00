package html

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// videoHosts are domains whose embeds cannot be rendered in the sandboxed reader
var videoHosts = []string{
	"youtube.com",
	"youtu.be",
	"youtube-nocookie.com",
	"vimeo.com",
	"dailymotion.com",
	"dai.ly",
	"tiktok.com",
	"twitch.tv",
	"wistia.com",
	"wistia.net",
	"streamable.com",
}

// embedWrappers are containers that only exist to hold an embed
const embedWrappers = "figure.wp-block-embed, div.wp-block-embed, .wp-block-video, .jetpack-video-wrapper, .embed-youtube, .embed-vimeo"

// IsVideoSource reports whether src points at a known video host or
// mentions one anywhere, e.g. a player that proxies a YouTube URL
func IsVideoSource(src string) bool {
	src = strings.TrimSpace(src)
	if src == "" {
		return false
	}

	if u, err := url.Parse(src); err == nil && u.Host != "" {
		host := strings.ToLower(u.Hostname())
		for _, videoHost := range videoHosts {
			if host == videoHost || strings.HasSuffix(host, "."+videoHost) {
				return true
			}
		}
	}

	lower := strings.ToLower(src)
	for _, videoHost := range videoHosts {
		if strings.Contains(lower, videoHost) {
			return true
		}
	}
	return strings.Contains(lower, "facebook.com/plugins/video")
}

// StripVideoEmbeds removes iframe, embed, object and video elements that
// load from a video host. A WordPress embed wrapper around such an
// element is removed with it.
func StripVideoEmbeds(markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}

	doc.Find("iframe, embed, object, video").Each(func(_ int, s *goquery.Selection) {
		if !embedsVideo(s) {
			return
		}
		if wrapper := s.Closest(embedWrappers); wrapper.Length() > 0 {
			wrapper.Remove()
			return
		}
		s.Remove()
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func embedsVideo(s *goquery.Selection) bool {
	for _, attr := range []string{"src", "data-src", "data-lazy-src", "data"} {
		if value, ok := s.Attr(attr); ok && IsVideoSource(value) {
			return true
		}
	}

	found := false
	s.Find("param[name=movie], param[name=src], source").EachWithBreak(func(_ int, child *goquery.Selection) bool {
		value := child.AttrOr("value", child.AttrOr("src", ""))
		found = IsVideoSource(value)
		return !found
	})
	return found
}
