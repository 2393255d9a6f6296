package commands

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/deltahub/go-hub/store"
)

func TestHandlerWrapsValidationFailure(t *testing.T) {
	handler := NewAddNewsHandler(store.New(), nil)

	err := handler.Execute(context.Background(), AddNewsCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.HasCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestHandlerWrapsExecutionFailure(t *testing.T) {
	handler := NewDeleteNewsHandler(store.New(), nil)

	err := handler.Execute(context.Background(), DeleteNewsCommand{ID: "unknown"})
	if err == nil {
		t.Fatal("expected execution error for unknown id")
	}
	if !goerrors.HasCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerNilContext(t *testing.T) {
	s := store.New()
	handler := NewAddWorkshopHandler(s, nil)

	//nolint:staticcheck
	err := handler.Execute(nil, AddWorkshopCommand{Title: "T", Date: "2025-09-01"})
	if err != nil {
		t.Fatalf("expected nil context to be tolerated: %v", err)
	}
	if len(s.Workshops()) != 1 {
		t.Fatal("workshop not created")
	}
}

func TestHandlerCanceledContext(t *testing.T) {
	handler := NewAddWorkshopHandler(store.New(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, AddWorkshopCommand{Title: "T", Date: "2025-09-01"})
	if err == nil {
		t.Fatal("expected context error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}

func TestNewHandlerNilFuncPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil handler func")
		}
	}()
	NewHandler[AddNewsCommand](nil)
}
