package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deltahub/go-hub/content"
	"github.com/deltahub/go-hub/internal/storage"
	"github.com/deltahub/go-hub/internal/validation"
)

// collectNotifier records every deletion event it receives.
type collectNotifier struct {
	events []DeletionEvent
}

func (c *collectNotifier) NotifyDeletion(_ context.Context, event DeletionEvent) {
	c.events = append(c.events, event)
}

func fixedClock(value string) func() time.Time {
	parsed, _ := time.Parse("2006-01-02", value)
	return func() time.Time { return parsed }
}

func TestAddNewsItemDefaultsAndPrepends(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	s := New(WithRepository(repo), WithClock(fixedClock("2025-06-01")))

	first, err := s.AddNewsItem(ctx, AddNewsInput{Title: "Older", Content: "body"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := s.AddNewsItem(ctx, AddNewsInput{Title: "Newer", Content: "body"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if first.Author != DefaultAuthor {
		t.Fatalf("expected default author, got %q", first.Author)
	}
	if first.Date != "2025-06-01" {
		t.Fatalf("expected today's date, got %q", first.Date)
	}
	if first.ID == second.ID {
		t.Fatalf("ids collided: %s", first.ID)
	}
	if first.Slug == "" {
		t.Fatal("expected a slug derived from the title")
	}

	news := s.News()
	if len(news) != 2 || news[0].ID != second.ID {
		t.Fatalf("expected newest item first, got %+v", news)
	}

	// mutation persisted the whole collection
	if _, err := repo.Get(ctx, StorageKey(content.CollectionNews)); err != nil {
		t.Fatalf("news not persisted: %v", err)
	}
}

func TestAddNewsItemValidation(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.AddNewsItem(ctx, AddNewsInput{Content: "body"}); !errors.Is(err, content.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := s.AddNewsItem(ctx, AddNewsInput{Title: "T"}); !errors.Is(err, content.ErrContentRequired) {
		t.Fatalf("expected ErrContentRequired, got %v", err)
	}
	// a content_file reference satisfies the content requirement
	if _, err := s.AddNewsItem(ctx, AddNewsInput{Title: "T", ContentFile: "articles/a.md"}); err != nil {
		t.Fatalf("content_file should satisfy validation: %v", err)
	}
	if len(s.News()) != 1 {
		t.Fatal("failed validations must not touch the collection")
	}
}

func TestAddWorkshopAppendsAndValidates(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.AddWorkshop(ctx, AddWorkshopInput{Date: "2025-09-01"}); !errors.Is(err, content.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := s.AddWorkshop(ctx, AddWorkshopInput{Title: "T"}); !errors.Is(err, content.ErrDateRequired) {
		t.Fatalf("expected ErrDateRequired, got %v", err)
	}

	first, err := s.AddWorkshop(ctx, AddWorkshopInput{Title: "First", Date: "2025-09-01"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := s.AddWorkshop(ctx, AddWorkshopInput{Title: "Second", Date: "2025-10-01"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	workshops := s.Workshops()
	if len(workshops) != 2 || workshops[0].ID != first.ID || workshops[1].ID != second.ID {
		t.Fatalf("expected append order, got %+v", workshops)
	}
}

func TestDeleteNewsItemEmitsEvent(t *testing.T) {
	ctx := context.Background()
	notifier := &collectNotifier{}
	s := New(WithNotifier(notifier))

	item, err := s.AddNewsItem(ctx, AddNewsInput{Title: "Doomed", Content: "body", ContentFile: "articles/doomed.md"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	ok, err := s.DeleteNewsItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !ok {
		t.Fatal("expected delete to report success")
	}
	if len(s.News()) != 0 {
		t.Fatal("item still present after delete")
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected one deletion event, got %d", len(notifier.events))
	}
	event := notifier.events[0]
	if event.ID != item.ID || event.Title != "Doomed" || event.ContentFile != "articles/doomed.md" {
		t.Fatalf("unexpected event payload: %+v", event)
	}
	if event.EventID == "" {
		t.Fatal("expected a populated event id")
	}
}

func TestDeleteNewsItemUnknownID(t *testing.T) {
	ctx := context.Background()
	notifier := &collectNotifier{}
	s := New(WithNotifier(notifier))

	if _, err := s.AddNewsItem(ctx, AddNewsInput{Title: "Keep", Content: "body"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	ok, err := s.DeleteNewsItem(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok {
		t.Fatal("expected delete of unknown id to report false")
	}
	if len(s.News()) != 1 {
		t.Fatal("collection changed on unknown-id delete")
	}
	if len(notifier.events) != 0 {
		t.Fatal("no event should fire for unknown ids")
	}
}

func TestImportReplacesNamedCollectionsOnly(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.AddNewsItem(ctx, AddNewsInput{Title: "Old", Content: "body"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddWorkshop(ctx, AddWorkshopInput{Title: "Kept", Date: "2025-09-01"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	bundle := []byte(`{"news":[{"id":99,"title":"Imported","content":"body"}]}`)
	if err := s.Import(ctx, bundle); err != nil {
		t.Fatalf("import: %v", err)
	}

	news := s.News()
	if len(news) != 1 || news[0].Title != "Imported" {
		t.Fatalf("expected imported news to replace the collection, got %+v", news)
	}
	if len(s.Workshops()) != 1 {
		t.Fatal("absent collections must stay untouched")
	}
}

func TestImportInvalidPayloadLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.AddNewsItem(ctx, AddNewsInput{Title: "Old", Content: "body"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	err := s.Import(ctx, []byte(`{"news":[{"id":1}]}`))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, validation.ErrPayloadValidation) {
		t.Fatalf("expected ErrPayloadValidation, got %v", err)
	}
	if s.News()[0].Title != "Old" {
		t.Fatal("invalid import mutated the store")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(WithClock(fixedClock("2025-06-01")))

	if _, err := s.AddNewsItem(ctx, AddNewsInput{Title: "One", Content: "body"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddWorkshop(ctx, AddWorkshopInput{Title: "W", Date: "2025-09-01"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	exported, err := s.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	fresh := New()
	if err := fresh.Import(ctx, exported); err != nil {
		t.Fatalf("import exported bundle: %v", err)
	}
	if len(fresh.News()) != 1 || len(fresh.Workshops()) != 1 {
		t.Fatalf("round trip lost data: %+v", fresh.Snapshot())
	}
}
