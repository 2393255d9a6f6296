package commands

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/deltahub/go-hub/pkg/interfaces"
	"github.com/deltahub/go-hub/store"
)

const addWorkshopMessageType = "hub.workshops.add"

// AddWorkshopCommand schedules a workshop.
type AddWorkshopCommand struct {
	Title            string `json:"title"`
	Date             string `json:"date"`
	Location         string `json:"location,omitempty"`
	Description      string `json:"description,omitempty"`
	RegistrationLink string `json:"registration_link,omitempty"`
	MaterialsLink    string `json:"materials_link,omitempty"`
}

// Type implements command.Message.
func (AddWorkshopCommand) Type() string { return addWorkshopMessageType }

// Validate ensures the message carries the required fields before reaching
// handlers.
func (m AddWorkshopCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Title) == "" {
		errs["title"] = validation.NewError("hub.workshops.add.title_required", "title is required")
	}
	if strings.TrimSpace(m.Date) == "" {
		errs["date"] = validation.NewError("hub.workshops.add.date_required", "date is required")
	} else if err := validation.Validate(m.Date, validation.Date("2006-01-02")); err != nil {
		errs["date"] = validation.NewError("hub.workshops.add.date_invalid", "date must be YYYY-MM-DD")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddWorkshopHandler schedules workshops through the store.
type AddWorkshopHandler struct {
	inner *Handler[AddWorkshopCommand]
}

// NewAddWorkshopHandler constructs a handler wired to the provided store.
func NewAddWorkshopHandler(s *store.Store, logger interfaces.Logger, opts ...HandlerOption[AddWorkshopCommand]) *AddWorkshopHandler {
	exec := func(ctx context.Context, msg AddWorkshopCommand) error {
		_, err := s.AddWorkshop(ctx, store.AddWorkshopInput{
			Title:            msg.Title,
			Date:             msg.Date,
			Location:         msg.Location,
			Description:      msg.Description,
			RegistrationLink: msg.RegistrationLink,
			MaterialsLink:    msg.MaterialsLink,
		})
		return err
	}

	handlerOpts := []HandlerOption[AddWorkshopCommand]{
		WithLogger[AddWorkshopCommand](logger),
		WithOperation[AddWorkshopCommand]("workshops.add"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AddWorkshopHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[AddWorkshopCommand].Execute.
func (h *AddWorkshopHandler) Execute(ctx context.Context, msg AddWorkshopCommand) error {
	return h.inner.Execute(ctx, msg)
}
