package markdown

import (
	"context"
	"fmt"

	"github.com/deltahub/go-hub/internal/logging"
	"github.com/deltahub/go-hub/pkg/interfaces"
)

// Resolver fetches markdown resources and turns them into documents:
// frontmatter parsed, body rendered to HTML, HTML sanitized.
type Resolver struct {
	source    interfaces.Source
	parser    interfaces.MarkdownParser
	sanitizer Sanitizer
	opts      interfaces.ParseOptions
	logger    interfaces.Logger
}

// Option mutates the resolver configuration.
type Option func(*Resolver)

// WithParser overrides the markdown engine. Passing nil keeps the default.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(r *Resolver) {
		if parser != nil {
			r.parser = parser
		}
	}
}

// WithSanitizer overrides the HTML sanitizer. Passing nil keeps the default.
func WithSanitizer(sanitizer Sanitizer) Option {
	return func(r *Resolver) {
		if sanitizer != nil {
			r.sanitizer = sanitizer
		}
	}
}

// WithParseOptions sets the default parse options applied on every resolve.
func WithParseOptions(opts interfaces.ParseOptions) Option {
	return func(r *Resolver) {
		r.opts = opts
	}
}

// WithLogger injects the resolver logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver constructs a resolver reading from the supplied source. The
// default pipeline is goldmark followed by the bluemonday sanitizer; when a
// FallbackParser is injected the passthrough sanitizer pairs with it since
// its output is already escaped.
func NewResolver(source interfaces.Source, opts ...Option) *Resolver {
	r := &Resolver{
		source: source,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.parser == nil {
		r.parser = NewGoldmarkParser(r.opts)
	}
	if r.sanitizer == nil {
		if _, fallback := r.parser.(*FallbackParser); fallback {
			r.sanitizer = PassthroughSanitizer{}
		} else {
			r.sanitizer = NewSanitizer()
		}
	}
	return r
}

// Resolve fetches the resource at path and produces the parsed document.
// Fetch failures propagate wrapped so callers can skip the item; an empty
// resource resolves to an empty document without error.
func (r *Resolver) Resolve(ctx context.Context, path string) (*interfaces.Document, error) {
	source, err := r.source.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("markdown resolve %s: %w", path, err)
	}

	rendered, err := r.parser.ParseWithOptions(body, r.opts)
	if err != nil {
		return nil, fmt.Errorf("markdown render %s: %w", path, err)
	}

	return &interfaces.Document{
		Path:     path,
		Metadata: meta,
		Body:     string(body),
		HTML:     string(r.sanitizer.Sanitize(rendered)),
	}, nil
}

var _ interfaces.MarkdownResolver = (*Resolver)(nil)
