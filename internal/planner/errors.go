package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrNoSprintSelected = errors.New("no sprint selected")
	ErrUnknownSprint    = errors.New("sprint not found in calendar")
	ErrUnknownTask      = errors.New("task not found in current sprint")
	ErrUnknownDay       = errors.New("day not in current sprint window")
	ErrUnknownPerson    = errors.New("person not found in team directory")
	ErrTaskBusy         = errors.New("task has a mutation pending")
	ErrEmptyUpdate      = errors.New("update contains no fields")
	ErrInvalidHours     = errors.New("hours must be a non-negative number")
	ErrNoNextSprint     = errors.New("no next sprint in calendar")
	ErrFetchSuperseded  = errors.New("fetch superseded by a newer sprint selection")
)
