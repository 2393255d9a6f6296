// Package validation checks imported content bundles against a JSON schema
// before they replace anything already stored.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrPayloadValidation = errors.New("import payload validation failed")

// importSchema describes the accepted bundle shape. Every collection is
// optional so partial bundles can replace a subset of collections, but any
// collection that is present must carry well formed items.
const importSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "news": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title"],
        "properties": {
          "id": {"type": ["string", "number"]},
          "title": {"type": "string", "minLength": 1}
        }
      }
    },
    "workshops": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title"],
        "properties": {
          "id": {"type": ["string", "number"]},
          "title": {"type": "string", "minLength": 1}
        }
      }
    },
    "research": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title"],
        "properties": {
          "id": {"type": ["string", "number"]},
          "title": {"type": "string", "minLength": 1}
        }
      }
    },
    "partners": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": ["string", "number"]},
          "name": {"type": "string", "minLength": 1}
        }
      }
    },
    "measurements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": ["string", "number"]},
          "name": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledSchema, compileErr = jsonschema.CompileString("import.json", importSchema)
	})
	return compiledSchema, compileErr
}

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with their locations.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrPayloadValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrPayloadValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// ValidateImportPayload checks raw bundle bytes against the import schema.
func ValidateImportPayload(payload []byte) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return &PayloadValidationError{
			Issues: []ValidationIssue{{Message: "empty payload"}},
		}
	}

	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return &PayloadValidationError{
			Issues: []ValidationIssue{{Message: "invalid JSON: " + err.Error()}},
			Cause:  err,
		}
	}

	sch, err := schema()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPayloadValidation, err)
	}
	if err := sch.Validate(value); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
