// Package content pulls story metadata out of fetched HTML.
package content

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// TitleExtractor extracts story titles from HTML using goquery.
type TitleExtractor struct{}

func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// ExtractTitle returns the page title, preferring <title> then og:title, and
// falls back to storyURL when the page has neither. The result is at most
// maxLen runes.
func (e *TitleExtractor) ExtractTitle(html, storyURL string, maxLen int) string {
	title := ""
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		title = extractPageTitle(doc)
	}
	if title == "" {
		title = storyURL
	}
	return truncateRunes(title, maxLen)
}

func extractPageTitle(doc *goquery.Document) string {
	if title := collapseSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}

	if ogTitle, exists := doc.Find("meta[property='og:title']").Attr("content"); exists {
		return collapseSpace(ogTitle)
	}

	return ""
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}
