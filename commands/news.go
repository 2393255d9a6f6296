package commands

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/deltahub/go-hub/content"
	"github.com/deltahub/go-hub/pkg/interfaces"
	"github.com/deltahub/go-hub/store"
)

const (
	addNewsMessageType    = "hub.news.add"
	deleteNewsMessageType = "hub.news.delete"
)

// AddNewsCommand creates a news item.
type AddNewsCommand struct {
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	ContentFile string `json:"content_file,omitempty"`
	Author      string `json:"author,omitempty"`
	Date        string `json:"date,omitempty"`
	MediaType   string `json:"media_type,omitempty"`
	MediaURL    string `json:"media_url,omitempty"`
}

// Type implements command.Message.
func (AddNewsCommand) Type() string { return addNewsMessageType }

// Validate ensures the message carries the required fields before reaching
// handlers.
func (m AddNewsCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Title) == "" {
		errs["title"] = validation.NewError("hub.news.add.title_required", "title is required")
	}
	if strings.TrimSpace(m.Content) == "" && strings.TrimSpace(m.ContentFile) == "" {
		errs["content"] = validation.NewError("hub.news.add.content_required", "content or content_file is required")
	}
	if m.Date != "" {
		if err := validation.Validate(m.Date, validation.Date("2006-01-02")); err != nil {
			errs["date"] = validation.NewError("hub.news.add.date_invalid", "date must be YYYY-MM-DD")
		}
	}
	if m.MediaURL != "" && m.MediaType != string(content.MediaImage) && m.MediaType != string(content.MediaVideo) {
		errs["media_type"] = validation.NewError("hub.news.add.media_type_invalid", "media type must be image or video")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddNewsHandler creates news items through the store.
type AddNewsHandler struct {
	inner *Handler[AddNewsCommand]
}

// NewAddNewsHandler constructs a handler wired to the provided store.
func NewAddNewsHandler(s *store.Store, logger interfaces.Logger, opts ...HandlerOption[AddNewsCommand]) *AddNewsHandler {
	exec := func(ctx context.Context, msg AddNewsCommand) error {
		input := store.AddNewsInput{
			Title:       msg.Title,
			Content:     msg.Content,
			ContentFile: msg.ContentFile,
			Author:      msg.Author,
			Date:        msg.Date,
		}
		if msg.MediaURL != "" {
			input.Media = &content.Media{
				Type: content.MediaType(msg.MediaType),
				URL:  msg.MediaURL,
			}
		}
		_, err := s.AddNewsItem(ctx, input)
		return err
	}

	handlerOpts := []HandlerOption[AddNewsCommand]{
		WithLogger[AddNewsCommand](logger),
		WithOperation[AddNewsCommand]("news.add"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AddNewsHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[AddNewsCommand].Execute.
func (h *AddNewsHandler) Execute(ctx context.Context, msg AddNewsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteNewsCommand removes a news item by id.
type DeleteNewsCommand struct {
	ID content.ID `json:"id"`
}

// Type implements command.Message.
func (DeleteNewsCommand) Type() string { return deleteNewsMessageType }

// Validate ensures an id is present.
func (m DeleteNewsCommand) Validate() error {
	errs := validation.Errors{}
	if m.ID.IsZero() {
		errs["id"] = validation.NewError("hub.news.delete.id_required", "id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteNewsHandler removes news items through the store. Unknown ids fail
// the command so callers can report them.
type DeleteNewsHandler struct {
	inner *Handler[DeleteNewsCommand]
}

// NewDeleteNewsHandler constructs a handler wired to the provided store.
func NewDeleteNewsHandler(s *store.Store, logger interfaces.Logger, opts ...HandlerOption[DeleteNewsCommand]) *DeleteNewsHandler {
	exec := func(ctx context.Context, msg DeleteNewsCommand) error {
		ok, err := s.DeleteNewsItem(ctx, msg.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("news item %s not found", msg.ID)
		}
		return nil
	}

	handlerOpts := []HandlerOption[DeleteNewsCommand]{
		WithLogger[DeleteNewsCommand](logger),
		WithOperation[DeleteNewsCommand]("news.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteNewsHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DeleteNewsCommand].Execute.
func (h *DeleteNewsHandler) Execute(ctx context.Context, msg DeleteNewsCommand) error {
	return h.inner.Execute(ctx, msg)
}
