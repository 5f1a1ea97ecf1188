package repository

import "errors"

// Repository-level errors shared by implementations.
var (
	ErrEmptyUpdate        = errors.New("update contains no fields")
	ErrMissingBacklogList = errors.New("backlog list id is not configured")
)
