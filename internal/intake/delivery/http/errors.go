package http

import (
	"errors"

	"voice-sprint-planner/internal/intake"
	pkgErrors "voice-sprint-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intake.ErrEmptyText):
		return pkgErrors.NewHTTPError(400, "text is empty")
	case errors.Is(err, intake.ErrEmptyAudio):
		return pkgErrors.NewHTTPError(400, "audio content is empty")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
