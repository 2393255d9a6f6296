package markdown

import (
	"os"
	"strings"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/frontmatter.md")

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if meta["title"] != "Hello" {
		t.Fatalf("title mismatch: %q", meta["title"])
	}
	if meta["date"] != "2025-01-01" {
		t.Fatalf("date mismatch: %q", meta["date"])
	}
	if meta["author"] != "Maria Ionescu" {
		t.Fatalf("author mismatch: %q", meta["author"])
	}
	if strings.TrimSpace(string(body)) != "Body text" {
		t.Fatalf("body mismatch: %q", string(body))
	}
}

func TestParseFrontMatter_NoDelimiter(t *testing.T) {
	source := []byte("Just a plain document.\n\nNo metadata here.")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if len(meta) != 0 {
		t.Fatalf("expected empty metadata, got %#v", meta)
	}
	if string(body) != string(source) {
		t.Fatalf("body should equal full input, got %q", string(body))
	}
}

func TestParseFrontMatter_UnterminatedBlock(t *testing.T) {
	source := []byte("---\ntitle: Broken\nBody that never closes the block")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if len(meta) != 0 {
		t.Fatalf("expected empty metadata for unterminated block, got %#v", meta)
	}
	if string(body) != string(source) {
		t.Fatalf("expected full input as body, got %q", string(body))
	}
}

func TestParseFrontMatter_EmptyInput(t *testing.T) {
	meta, body, err := ParseFrontMatter(nil)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if len(meta) != 0 || len(body) != 0 {
		t.Fatalf("expected empty output, got %#v %q", meta, string(body))
	}
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
