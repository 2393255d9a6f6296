// Package views projects resolved collections into page view models with
// pre-rendered HTML fragments. Projections are pure functions: no fetching,
// no mutation. Binding the fragments into a page is the caller's job.
package views

import (
	stdhtml "html"
	"html/template"
	"regexp"
	"strings"
)

const excerptLimit = 200

var tagPattern = regexp.MustCompile(`<[^>]+>`)

func escape(value string) string {
	return template.HTMLEscapeString(value)
}

// stripTags reduces rendered HTML to its text content.
func stripTags(html string) string {
	text := tagPattern.ReplaceAllString(html, " ")
	text = stdhtml.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

// excerpt trims text to the card limit, appending an ellipsis when content
// was cut.
func excerpt(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= excerptLimit {
		return text
	}
	return strings.TrimSpace(string(runes[:excerptLimit])) + "..."
}
