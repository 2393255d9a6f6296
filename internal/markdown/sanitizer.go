package markdown

import "github.com/microcosm-cc/bluemonday"

// Sanitizer scrubs script-executing constructs from rendered HTML.
type Sanitizer interface {
	Sanitize(html []byte) []byte
}

// BluemondaySanitizer applies a bluemonday policy to rendered output. The
// UGC policy keeps formatting, links, and images while dropping scripts,
// event handlers, and iframes.
type BluemondaySanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds the default user-generated-content sanitizer.
func NewSanitizer() *BluemondaySanitizer {
	return &BluemondaySanitizer{policy: bluemonday.UGCPolicy()}
}

// Sanitize implements Sanitizer.
func (s *BluemondaySanitizer) Sanitize(html []byte) []byte {
	return s.policy.SanitizeBytes(html)
}

// PassthroughSanitizer returns rendered HTML unchanged. It exists for the
// fallback renderer whose output is already fully escaped.
type PassthroughSanitizer struct{}

// Sanitize implements Sanitizer.
func (PassthroughSanitizer) Sanitize(html []byte) []byte { return html }
