package repository

import (
	"context"

	"voice-sprint-planner/internal/model"
)

// TrackerRepository is the gateway to the external task-tracking service.
type TrackerRepository interface {
	// FetchSprintTasks returns the resolved sprint metadata and every task
	// belonging to the sprint window, merged from the sprint's own list and
	// the shared backlog list, de-duplicated by id.
	FetchSprintTasks(ctx context.Context, opt FetchSprintTasksOptions) (SprintTasksResult, error)

	// UpdateTask applies a partial update and returns the server's
	// authoritative task.
	UpdateTask(ctx context.Context, taskID string, opt UpdateTaskOptions) (model.PlannerTask, error)

	// MoveTaskToNextSprint re-homes a task from the current sprint's list to
	// the next sprint's list, re-dating it only when its due date falls
	// inside the current sprint's window.
	MoveTaskToNextSprint(ctx context.Context, opt MoveToNextSprintOptions) error
}

// MetadataRepository reads sprint calendar and team directory documents.
type MetadataRepository interface {
	SprintCalendar(ctx context.Context) (map[string]model.Sprint, error)
	TeamDirectory(ctx context.Context) (map[string]model.TeamMember, error)
}
