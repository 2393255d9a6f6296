package markdown

import (
	"html"
	"regexp"
	"strings"

	"github.com/deltahub/go-hub/pkg/interfaces"
)

var blankLines = regexp.MustCompile(`\n{2,}`)

// FallbackParser is the minimal renderer used when no markdown engine is
// configured: it HTML-escapes the source, wraps blank-line-separated blocks
// in paragraph tags, and converts single newlines to line breaks. Because
// the input is escaped wholesale its output needs no sanitizer pass.
type FallbackParser struct{}

// NewFallbackParser constructs the minimal renderer.
func NewFallbackParser() *FallbackParser {
	return &FallbackParser{}
}

// Parse implements interfaces.MarkdownParser.
func (p *FallbackParser) Parse(markdown []byte) ([]byte, error) {
	return p.ParseWithOptions(markdown, interfaces.ParseOptions{})
}

// ParseWithOptions implements interfaces.MarkdownParser. Options are ignored;
// the fallback has a single rendering mode.
func (p *FallbackParser) ParseWithOptions(markdown []byte, _ interfaces.ParseOptions) ([]byte, error) {
	text := strings.TrimSpace(string(markdown))
	if text == "" {
		return nil, nil
	}

	escaped := html.EscapeString(text)
	blocks := blankLines.Split(escaped, -1)

	var out strings.Builder
	for i, block := range blocks {
		if i > 0 {
			out.WriteByte('\n')
		}
		out.WriteString("<p>")
		out.WriteString(strings.ReplaceAll(block, "\n", "<br>"))
		out.WriteString("</p>")
	}
	return []byte(out.String()), nil
}
