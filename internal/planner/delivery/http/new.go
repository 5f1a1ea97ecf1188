package http

import (
	"voice-sprint-planner/internal/planner"
	"voice-sprint-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Bootstrap(c interface{})
	Agenda(c interface{})
	SelectSprint(c interface{})
	SelectPerson(c interface{})
	Sprints(c interface{})
	Members(c interface{})
	MoveTask(c interface{})
	SaveTask(c interface{})
	AdvanceTask(c interface{})
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
