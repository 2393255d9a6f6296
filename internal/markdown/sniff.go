package markdown

import (
	"regexp"
	"strings"
)

var (
	headingLine = regexp.MustCompile(`^#{1,2}\s+(.+)$`)
	isoDate     = regexp.MustCompile(`\b(20\d{2}-\d{2}-\d{2})\b`)
)

// SniffTitle returns the first level-1 or level-2 heading of the markdown
// source, or fallback when no heading is present. Used by the homepage news
// pipeline where posts are bare markdown files without frontmatter.
func SniffTitle(source, fallback string) string {
	for _, line := range strings.Split(source, "\n") {
		if m := headingLine.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return fallback
}

// SniffDate returns the first ISO date token found anywhere in the source,
// or the empty string.
func SniffDate(source string) string {
	if m := isoDate.FindString(source); m != "" {
		return m
	}
	return ""
}
