package repository

import (
	"context"

	"voice-sprint-planner/internal/model"
)

// TrackerRepository writes new tasks to the external tracking service.
type TrackerRepository interface {
	// CreateTask creates a task in the backlog list, optionally adding it
	// to a sprint list as a secondary location.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.PlannerTask, error)
}

// QueueRepository records created tasks for later review.
type QueueRepository interface {
	Enqueue(ctx context.Context, item PendingIntake) error
}
