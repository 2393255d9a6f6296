package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/deltahub/go-hub/pkg/interfaces"
)

// ParseFrontMatter extracts the leading frontmatter block and the markdown
// body from the provided source bytes. The metadata is flattened into a
// string-to-string mapping; quoted values arrive unquoted courtesy of the
// YAML decoder.
//
// A document without a frontmatter block, or with an unterminated one,
// yields empty metadata and the full source as body. The parser never
// partially consumes input.
func ParseFrontMatter(source []byte) (interfaces.Metadata, []byte, error) {
	if len(bytes.TrimSpace(source)) == 0 {
		return interfaces.Metadata{}, nil, nil
	}

	var raw map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
	if err != nil {
		// Malformed or unterminated delimiters: treat the whole document as body.
		return interfaces.Metadata{}, source, nil
	}

	return flatten(raw), body, nil
}

func flatten(raw map[string]any) interfaces.Metadata {
	meta := make(interfaces.Metadata, len(raw))
	for key, value := range raw {
		meta[key] = stringify(value)
	}
	return meta
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		// Dates without a time component keep the ISO date form used across
		// the collections.
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
