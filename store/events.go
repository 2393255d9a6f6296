package store

import (
	"context"

	"github.com/deltahub/go-hub/content"
)

// DeletionEvent announces a deleted news item so an external sync
// collaborator can remove the backing resources. The store itself never
// performs that cleanup.
type DeletionEvent struct {
	// EventID uniquely identifies this emission.
	EventID string `json:"event_id"`
	// ID is the deleted item's collection id.
	ID content.ID `json:"id"`
	// Title is the deleted item's title.
	Title string `json:"title"`
	// ContentFile is the markdown reference the item carried, when any.
	ContentFile string `json:"content_file,omitempty"`
}

// Notifier consumes deletion events.
type Notifier interface {
	NotifyDeletion(ctx context.Context, event DeletionEvent)
}

// NoopNotifier drops every event.
type NoopNotifier struct{}

// NotifyDeletion implements Notifier.
func (NoopNotifier) NotifyDeletion(context.Context, DeletionEvent) {}
