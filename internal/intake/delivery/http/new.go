package http

import (
	"voice-sprint-planner/internal/intake"
	"voice-sprint-planner/pkg/log"
)

// Handler is the public interface for the intake HTTP delivery layer.
type Handler interface {
	FromText(c interface{})
	FromAudio(c interface{})
}

type handler struct {
	l  log.Logger
	uc intake.UseCase
}

// New creates a new HTTP handler for the intake domain.
func New(l log.Logger, uc intake.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
