package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateImportPayloadAcceptsPartialBundle(t *testing.T) {
	payload := []byte(`{
		"news": [
			{"id": 1, "title": "Delta survey published", "content": "Body"},
			{"id": "1700000000000", "title": "New monitoring station"}
		]
	}`)
	if err := ValidateImportPayload(payload); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidateImportPayloadAcceptsMeasurements(t *testing.T) {
	payload := []byte(`{
		"measurements": [
			{"id": "st1", "name": "Sulina", "timeseries": [{"t": "2025-01-01T00:00:00Z", "level": 1.2}]}
		]
	}`)
	if err := ValidateImportPayload(payload); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidateImportPayloadRejectsMissingTitle(t *testing.T) {
	payload := []byte(`{"news": [{"id": 1}]}`)
	err := ValidateImportPayload(payload)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrPayloadValidation) {
		t.Fatalf("expected ErrPayloadValidation, got %v", err)
	}
	issues := Issues(err)
	if len(issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	found := false
	for _, issue := range issues {
		if strings.Contains(issue.Location, "/news/0") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected issue located at /news/0, got %+v", issues)
	}
}

func TestValidateImportPayloadRejectsUnknownCollection(t *testing.T) {
	payload := []byte(`{"galleries": []}`)
	if err := ValidateImportPayload(payload); err == nil {
		t.Fatal("expected validation error for unknown collection")
	}
}

func TestValidateImportPayloadRejectsMalformedJSON(t *testing.T) {
	err := ValidateImportPayload([]byte(`{"news": [`))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var payloadErr *PayloadValidationError
	if !errors.As(err, &payloadErr) {
		t.Fatalf("expected PayloadValidationError, got %T", err)
	}
}

func TestValidateImportPayloadRejectsEmpty(t *testing.T) {
	if err := ValidateImportPayload([]byte("  ")); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
