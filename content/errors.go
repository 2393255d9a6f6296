package content

import "errors"

var (
	ErrUnknownCollection = errors.New("content: unknown collection")
	ErrTitleRequired     = errors.New("content: title is required")
	ErrContentRequired   = errors.New("content: content is required")
	ErrDateRequired      = errors.New("content: date is required")
)
