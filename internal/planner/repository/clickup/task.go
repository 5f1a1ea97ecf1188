package clickup

import (
	"context"
	"fmt"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner/repository"
	clickupAPI "voice-sprint-planner/pkg/clickup"
	pkgLog "voice-sprint-planner/pkg/log"
)

type implRepository struct {
	client        *clickupAPI.Client
	metadata      repository.MetadataRepository
	backlogListID string
	l             pkgLog.Logger
}

// New creates a new tracking-service repository.
func New(client *clickupAPI.Client, metadata repository.MetadataRepository, backlogListID string, l pkgLog.Logger) repository.TrackerRepository {
	return &implRepository{
		client:        client,
		metadata:      metadata,
		backlogListID: backlogListID,
		l:             l,
	}
}

func (r *implRepository) FetchSprintTasks(ctx context.Context, opt repository.FetchSprintTasksOptions) (repository.SprintTasksResult, error) {
	// Configuration errors abort before any network call.
	if r.backlogListID == "" {
		return repository.SprintTasksResult{}, repository.ErrMissingBacklogList
	}

	cal, err := r.metadata.SprintCalendar(ctx)
	if err != nil {
		return repository.SprintTasksResult{}, fmt.Errorf("failed to load sprint calendar: %w", err)
	}

	sprint, ok := cal[opt.SprintID]
	if !ok {
		// Callers tolerate minimal sprint metadata.
		sprint = model.Sprint{ID: opt.SprintID}
	}

	listID := sprint.ListID
	if listID == "" {
		listID = opt.SprintID
	}

	listOpt := clickupAPI.ListTasksOptions{IncludeClosed: opt.IncludeDone, Subtasks: true}

	sprintTasks, err := r.client.ListTasks(ctx, listID, listOpt)
	if err != nil {
		return repository.SprintTasksResult{}, err
	}

	backlogTasks, err := r.client.ListTasks(ctx, r.backlogListID, listOpt)
	if err != nil {
		return repository.SprintTasksResult{}, err
	}

	seen := make(map[string]bool, len(sprintTasks))
	merged := make([]clickupAPI.Task, 0, len(sprintTasks))
	for _, t := range sprintTasks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		merged = append(merged, t)
	}
	for _, t := range backlogTasks {
		if seen[t.ID] || !taskInList(t, listID) {
			continue
		}
		seen[t.ID] = true
		merged = append(merged, t)
	}

	tasks := make([]model.PlannerTask, 0, len(merged))
	for _, t := range merged {
		if !opt.IncludeDone && isDoneStatus(t.Status.Status) {
			continue
		}
		m := taskToModel(t)
		if opt.AssigneeID != "" && !m.HasAssignee(opt.AssigneeID) {
			continue
		}
		tasks = append(tasks, m)
	}

	return repository.SprintTasksResult{Sprint: sprint, Tasks: tasks}, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, taskID string, opt repository.UpdateTaskOptions) (model.PlannerTask, error) {
	if opt.IsEmpty() {
		return model.PlannerTask{}, repository.ErrEmptyUpdate
	}

	updated, err := r.client.UpdateTask(ctx, taskID, buildPatch(opt))
	if err != nil {
		r.l.Errorf(ctx, "tracker repository: failed to update task %s: %v", taskID, err)
		return model.PlannerTask{}, err
	}

	return taskToModel(*updated), nil
}

func (r *implRepository) MoveTaskToNextSprint(ctx context.Context, opt repository.MoveToNextSprintOptions) error {
	if r.backlogListID == "" {
		return repository.ErrMissingBacklogList
	}

	task, err := r.client.GetTask(ctx, opt.TaskID)
	if err != nil {
		return err
	}

	if err := r.client.AddTaskToList(ctx, opt.NextSprintListID, opt.TaskID); err != nil {
		return err
	}

	// A list cannot be removed while it is the task's home, so a task homed
	// in the current sprint is re-homed to the backlog first.
	if task.List.ID == opt.CurrentSprintListID {
		if _, err := r.client.UpdateTask(ctx, opt.TaskID, clickupAPI.TaskPatch{"home_list": r.backlogListID}); err != nil {
			r.l.Errorf(ctx, "tracker repository: task %s added to next sprint but re-home failed: %v", opt.TaskID, err)
			return err
		}
	}

	if err := r.client.RemoveTaskFromList(ctx, opt.CurrentSprintListID, opt.TaskID); err != nil {
		r.l.Errorf(ctx, "tracker repository: task %s added to next sprint but removal from current failed: %v", opt.TaskID, err)
		return err
	}

	// Re-date only tasks the current sprint actually scheduled; a due date
	// outside the window belongs to the task, not the sprint.
	if dueInWindow(opt.TaskDueDate, opt.CurrentSprintStart, opt.CurrentSprintEnd) {
		patch := clickupAPI.TaskPatch{
			"due_date":   opt.NextSprintFirstMonday,
			"start_date": opt.NextSprintFirstMonday,
		}
		if _, err := r.client.UpdateTask(ctx, opt.TaskID, patch); err != nil {
			r.l.Errorf(ctx, "tracker repository: task %s moved to next sprint but re-date failed: %v", opt.TaskID, err)
			return err
		}
	}

	return nil
}

func dueInWindow(due, start, end *int64) bool {
	if due == nil || start == nil || end == nil {
		return false
	}
	return *due >= *start && *due <= *end
}
