package interfaces

import "context"

// Metadata is the flat key/value mapping extracted from a document's
// frontmatter block. Values are stringified; nested structures are not
// preserved.
type Metadata map[string]string

// Document is a resolved markdown resource: parsed frontmatter, the raw
// markdown body, and the sanitized HTML rendering of that body.
type Document struct {
	// Path is the resource path the document was fetched from.
	Path string
	// Metadata holds the parsed frontmatter, empty when the source carries
	// no frontmatter block.
	Metadata Metadata
	// Body is the markdown source without the frontmatter delimiters.
	Body string
	// HTML is the rendered and sanitized body.
	HTML string
}

// ParseOptions configure markdown rendering.
type ParseOptions struct {
	// Extensions selects parser extensions by name (e.g. "gfm", "table").
	Extensions []string
	// HardWraps renders single newlines as <br> elements.
	HardWraps bool
	// Sanitize runs the rendered HTML through the sanitizer. Enabled by
	// default at the resolver level.
	Sanitize bool
}

// MarkdownParser converts markdown source into HTML.
type MarkdownParser interface {
	Parse(markdown []byte) ([]byte, error)
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// MarkdownResolver fetches a markdown resource and turns it into a Document.
type MarkdownResolver interface {
	Resolve(ctx context.Context, path string) (*Document, error)
}

// Source abstracts where raw resources (JSON seeds, markdown files) are
// fetched from: an HTTP endpoint for deployed sites, a filesystem for
// bundled data and tests.
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}
