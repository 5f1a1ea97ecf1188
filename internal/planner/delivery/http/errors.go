package http

import (
	"errors"

	"voice-sprint-planner/internal/planner"
	pkgErrors "voice-sprint-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, planner.ErrUnknownSprint):
		return pkgErrors.NewHTTPError(404, "sprint not found")
	case errors.Is(err, planner.ErrUnknownTask):
		return pkgErrors.NewHTTPError(404, "task not found in current sprint")
	case errors.Is(err, planner.ErrUnknownPerson):
		return pkgErrors.NewHTTPError(404, "person not found")
	case errors.Is(err, planner.ErrNoNextSprint):
		return pkgErrors.NewHTTPError(404, "no next sprint in calendar")
	case errors.Is(err, planner.ErrUnknownDay):
		return pkgErrors.NewHTTPError(400, "day is not in the sprint window")
	case errors.Is(err, planner.ErrEmptyUpdate):
		return pkgErrors.NewHTTPError(400, "update contains no fields")
	case errors.Is(err, planner.ErrInvalidHours):
		return pkgErrors.NewHTTPError(400, "hours must be a non-negative number")
	case errors.Is(err, planner.ErrNoSprintSelected):
		return pkgErrors.NewHTTPError(409, "no sprint selected")
	case errors.Is(err, planner.ErrTaskBusy):
		return pkgErrors.NewHTTPError(409, "task has a mutation pending")
	case errors.Is(err, planner.ErrFetchSuperseded):
		return pkgErrors.NewHTTPError(409, "selection superseded by a newer one")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
