package commands

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/deltahub/go-hub/pkg/interfaces"
	"github.com/deltahub/go-hub/store"
)

const importBundleMessageType = "hub.bundle.import"

// ImportBundleCommand replaces the collections named in a JSON bundle.
type ImportBundleCommand struct {
	Payload []byte `json:"payload"`
}

// Type implements command.Message.
func (ImportBundleCommand) Type() string { return importBundleMessageType }

// Validate ensures a payload is present; schema validation happens in the
// store so invalid bundles never touch the collections.
func (m ImportBundleCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Payload) == 0 {
		errs["payload"] = validation.NewError("hub.bundle.import.payload_required", "payload is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportBundleHandler imports bundles through the store.
type ImportBundleHandler struct {
	inner *Handler[ImportBundleCommand]
}

// NewImportBundleHandler constructs a handler wired to the provided store.
func NewImportBundleHandler(s *store.Store, logger interfaces.Logger, opts ...HandlerOption[ImportBundleCommand]) *ImportBundleHandler {
	exec := func(ctx context.Context, msg ImportBundleCommand) error {
		return s.Import(ctx, msg.Payload)
	}

	handlerOpts := []HandlerOption[ImportBundleCommand]{
		WithLogger[ImportBundleCommand](logger),
		WithOperation[ImportBundleCommand]("bundle.import"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportBundleHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ImportBundleCommand].Execute.
func (h *ImportBundleHandler) Execute(ctx context.Context, msg ImportBundleCommand) error {
	return h.inner.Execute(ctx, msg)
}
