// ABOUTME: Content processing for game descriptions sourced from external catalogs and feeds
// ABOUTME: Detects HTML, converts it to Markdown, and produces plain-text excerpts for cards

package content

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// htmlTagPattern matches common HTML tags
var htmlTagPattern = regexp.MustCompile(`<\s*(p|div|span|a|br|img|h[1-6]|ul|ol|li|table|tr|td|th|strong|em|b|i|code|pre|blockquote)[^>]*>`)

// markdownMarkup matches markdown syntax stripped by Excerpt.
var markdownMarkup = regexp.MustCompile(`[*_` + "`" + `#>\[\]()]+`)

// IsHTML checks if a description appears to be HTML rather than plain text.
func IsHTML(description string) bool {
	if strings.Contains(description, "<!DOCTYPE") || strings.Contains(description, "<html") {
		return true
	}
	return htmlTagPattern.MatchString(description)
}

// ToMarkdown converts an HTML description to Markdown for terminal
// rendering. Non-HTML input and conversion failures pass through
// unchanged.
func ToMarkdown(description string) string {
	if description == "" || !IsHTML(description) {
		return description
	}

	markdown, err := htmltomarkdown.ConvertString(description)
	if err != nil {
		return description
	}
	return strings.TrimSpace(markdown)
}

// Excerpt reduces a description to a single plain line of at most maxLen
// runes, for card subtitles and list rows.
func Excerpt(description string, maxLen int) string {
	s := ToMarkdown(description)
	s = markdownMarkup.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if maxLen > 0 && len(runes) > maxLen {
		s = strings.TrimSpace(string(runes[:maxLen-1])) + "…"
	}
	return s
}
