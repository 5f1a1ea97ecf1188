package planner

import (
	"context"

	"voice-sprint-planner/internal/model"
)

// UseCase defines the business logic interface for the sprint agenda domain.
type UseCase interface {
	// Bootstrap performs initial sprint and person selection and loads the
	// selected sprint's tasks.
	Bootstrap(ctx context.Context, sc model.Scope) (BootstrapOutput, error)

	// SelectSprint switches the selected sprint and re-fetches its tasks,
	// superseding any fetch still in flight for the previous sprint.
	SelectSprint(ctx context.Context, sc model.Scope, sprintID string) error

	// SelectPerson changes the assignee filter. Pure re-derivation: no fetch.
	SelectPerson(ctx context.Context, sc model.Scope, personID string) error

	// Agenda returns the visible day buckets, the unplanned bucket, and the
	// workload summary for the current sprint and person filter.
	Agenda(ctx context.Context, sc model.Scope) (AgendaOutput, error)

	// MoveTask re-dates a task to a sprint day or to the unplanned bucket,
	// optimistically with rollback on remote failure.
	MoveTask(ctx context.Context, sc model.Scope, input MoveTaskInput) error

	// SaveTaskEdits applies a partial field edit to a task, optimistically
	// with rollback on remote failure.
	SaveTaskEdits(ctx context.Context, sc model.Scope, input SaveTaskEditsInput) error

	// AdvanceTaskToNextSprint moves a task into the next sprint's list,
	// re-dating it only when its due date lies inside the current window.
	AdvanceTaskToNextSprint(ctx context.Context, sc model.Scope, taskID string) error

	// Sprints lists the sprint calendar.
	Sprints(ctx context.Context) ([]model.Sprint, error)

	// Members lists the team directory.
	Members(ctx context.Context) ([]model.TeamMember, error)
}
