package extraction

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

var (
	excessNewlines   = regexp.MustCompile(`\n{3,}`)
	trailingSpace    = regexp.MustCompile(`[ \t]+\n`)
	leadingSpace     = regexp.MustCompile(`\n[ \t]+`)
	headingBefore    = regexp.MustCompile(`\n(#{1,6} )`)
	headingAfter     = regexp.MustCompile(`(#{1,6} [^\n]+)\n([^\n])`)
	collapseHeadings = regexp.MustCompile(`\n{3,}(#{1,6} )`)
)

// ToMarkdown renders article content as Markdown with a metadata header
func ToMarkdown(title, author, siteName, content string) (string, error) {
	converter := md.NewConverter("", true, nil)
	body, err := converter.ConvertString(content)
	if err != nil {
		return "", err
	}
	return buildMarkdownWithMetadata(title, author, siteName, body), nil
}

func buildMarkdownWithMetadata(title, author, siteName, content string) string {
	var markdown strings.Builder

	if title != "" {
		markdown.WriteString("# ")
		markdown.WriteString(title)
		markdown.WriteString("\n\n")
	}

	var metadataItems []string
	if author != "" && author != UnknownAuthor {
		metadataItems = append(metadataItems, fmt.Sprintf("**Author:** %s", author))
	}
	if siteName != "" {
		metadataItems = append(metadataItems, fmt.Sprintf("**Source:** %s", siteName))
	}
	if len(metadataItems) > 0 {
		markdown.WriteString(strings.Join(metadataItems, " | "))
		markdown.WriteString("\n\n---\n\n")
	}

	markdown.WriteString(cleanMarkdown(content))
	return markdown.String()
}

// cleanMarkdown removes excessive newlines and tidies heading spacing
func cleanMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")

	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")
	markdown = trailingSpace.ReplaceAllString(markdown, "\n")
	markdown = leadingSpace.ReplaceAllString(markdown, "\n")

	markdown = headingBefore.ReplaceAllString(markdown, "\n\n$1")
	markdown = headingAfter.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = collapseHeadings.ReplaceAllString(markdown, "\n\n$1")

	return strings.TrimSpace(markdown)
}
