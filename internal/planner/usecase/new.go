package usecase

import (
	"context"
	"sync"
	"time"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner/repository"
	"voice-sprint-planner/internal/planner/schedule"
	pkgLog "voice-sprint-planner/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	tracker    repository.TrackerRepository
	metadata   repository.MetadataRepository
	loc        *time.Location
	thresholds schedule.Thresholds
	now        func() time.Time

	mu         sync.Mutex
	sprint     model.Sprint
	sprintDays []model.SprintDay
	tasks      []model.PlannerTask
	personID   string
	busy       map[string]bool
	fetchGen   uint64
	fetchStop  context.CancelFunc
}

// New creates a new planner UseCase instance.
func New(
	l pkgLog.Logger,
	tracker repository.TrackerRepository,
	metadata repository.MetadataRepository,
	loc *time.Location,
	thresholds schedule.Thresholds,
) *implUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &implUseCase{
		l:          l,
		tracker:    tracker,
		metadata:   metadata,
		loc:        loc,
		thresholds: thresholds,
		now:        time.Now,
		busy:       make(map[string]bool),
	}
}
