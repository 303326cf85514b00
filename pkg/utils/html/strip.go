// ABOUTME: HTML utilities for converting between markup and plain text
// ABOUTME: Plain text keeps paragraph breaks so it can be wrapped back into paragraphs

package html

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	blockElements = map[atom.Atom]bool{
		atom.P: true, atom.Div: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
		atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
		atom.Blockquote: true, atom.Pre: true, atom.Table: true, atom.Tr: true,
		atom.Section: true, atom.Article: true, atom.Figure: true, atom.Figcaption: true,
		atom.Header: true, atom.Footer: true, atom.Hr: true,
	}

	skippedElements = map[atom.Atom]bool{
		atom.Script: true, atom.Style: true, atom.Noscript: true, atom.Template: true,
		atom.Iframe: true, atom.Object: true, atom.Embed: true,
	}

	inlineSpace    = regexp.MustCompile(`[ \t\f\r\v\x{00a0}]+`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	blankLines     = regexp.MustCompile(`\n[ \t]*\n`)
	anySpace       = regexp.MustCompile(`[\s\x{00a0}]+`)

	// bluemonday policies are safe for concurrent use once built
	strictPolicy = bluemonday.StrictPolicy()
)

// StripHTML converts markup to plain text. Block elements become
// paragraphs separated by a blank line; line breaks become newlines.
func StripHTML(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return SanitizeText(markup)
	}

	var b strings.Builder
	for _, node := range doc.Find("body").Nodes {
		writeText(&b, node)
	}
	return normalizeText(b.String())
}

func writeText(b *strings.Builder, n *xhtml.Node) {
	switch n.Type {
	case xhtml.TextNode:
		b.WriteString(strings.ReplaceAll(n.Data, "\n", " "))
		return
	case xhtml.ElementNode:
		if skippedElements[n.DataAtom] {
			return
		}
		if n.DataAtom == atom.Br {
			b.WriteString("\n")
			return
		}
	}

	block := n.Type == xhtml.ElementNode && blockElements[n.DataAtom]
	if block {
		b.WriteString("\n\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteString("\n\n")
	}
}

func normalizeText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	}
	joined := excessNewlines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(joined)
}

// TextToHTML wraps plain text into paragraph markup. Blank lines separate
// paragraphs and single newlines become <br>. All text is escaped.
func TextToHTML(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return ""
	}

	var b strings.Builder
	for _, paragraph := range blankLines.Split(text, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		lines := strings.Split(paragraph, "\n")
		escaped := make([]string, 0, len(lines))
		for _, line := range lines {
			if line = strings.TrimSpace(line); line != "" {
				escaped = append(escaped, xhtml.EscapeString(line))
			}
		}

		b.WriteString("<p>")
		b.WriteString(strings.Join(escaped, "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}

// SanitizeText removes every tag, decodes entities and collapses whitespace.
// Used for single-line fields such as titles and excerpts.
func SanitizeText(markup string) string {
	text := xhtml.UnescapeString(strictPolicy.Sanitize(markup))
	return strings.TrimSpace(anySpace.ReplaceAllString(text, " "))
}
