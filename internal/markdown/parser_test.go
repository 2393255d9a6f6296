package markdown

import (
	"strings"
	"testing"

	"github.com/deltahub/go-hub/pkg/interfaces"
)

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParser_HardWraps(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

func TestFallbackParser_EscapesAndParagraphs(t *testing.T) {
	parser := NewFallbackParser()

	html, err := parser.Parse([]byte("first block\nstill first\n\nsecond <script>block</script>"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<p>first block<br>still first</p>") {
		t.Fatalf("expected paragraph with line break, got %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("raw HTML should be escaped, got %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag, got %q", got)
	}
}

func TestFallbackParser_EmptyInput(t *testing.T) {
	parser := NewFallbackParser()

	html, err := parser.Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(html) != 0 {
		t.Fatalf("expected empty output, got %q", string(html))
	}
}

func TestSanitizer_StripsScripts(t *testing.T) {
	s := NewSanitizer()

	out := string(s.Sanitize([]byte(`<p onclick="evil()">ok</p><script>alert(1)</script><img src="a.png">`)))
	if strings.Contains(out, "script") || strings.Contains(out, "onclick") {
		t.Fatalf("expected scripts and handlers stripped, got %q", out)
	}
	if !strings.Contains(out, "<p>ok</p>") {
		t.Fatalf("expected benign markup kept, got %q", out)
	}
	if !strings.Contains(out, "<img") {
		t.Fatalf("expected images kept, got %q", out)
	}
}
