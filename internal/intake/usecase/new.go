package usecase

import (
	"voice-sprint-planner/internal/intake"
	"voice-sprint-planner/internal/intake/repository"
	"voice-sprint-planner/pkg/gemini"
	pkgLog "voice-sprint-planner/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	llm         gemini.IGemini
	transcriber intake.Transcriber
	tracker     repository.TrackerRepository
	queue       repository.QueueRepository
}

// New creates a new intake UseCase instance. The transcriber and queue are
// optional; without a transcriber FromAudio fails, without a queue created
// tasks are not recorded for review.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	transcriber intake.Transcriber,
	tracker repository.TrackerRepository,
	queue repository.QueueRepository,
) *implUseCase {
	return &implUseCase{
		l:           l,
		llm:         llm,
		transcriber: transcriber,
		tracker:     tracker,
		queue:       queue,
	}
}
