// Package markdown resolves markdown resources into sanitized HTML
// documents: optional frontmatter parsing, goldmark rendering with a
// minimal escaping fallback, and a bluemonday sanitizer pass.
package markdown
