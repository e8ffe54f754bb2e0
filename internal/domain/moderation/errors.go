package moderation

import "errors"

var (
	ErrUnknownEntityType = errors.New("unknown entity type")
	ErrUnknownStatus     = errors.New("unknown status for entity type")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
