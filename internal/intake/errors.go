package intake

import "errors"

// Domain-specific errors for the intake package.
var (
	ErrEmptyText  = errors.New("text is empty")
	ErrEmptyAudio = errors.New("audio content is empty")
)
