package usecase

import (
	"context"
	"fmt"
	"time"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner"
	"voice-sprint-planner/internal/planner/repository"
)

func (uc *implUseCase) AdvanceTaskToNextSprint(ctx context.Context, sc model.Scope, taskID string) error {
	calendar, err := uc.metadata.SprintCalendar(ctx)
	if err != nil {
		return fmt.Errorf("planner usecase: %w", err)
	}

	uc.mu.Lock()
	if uc.sprint.ID == "" {
		uc.mu.Unlock()
		return planner.ErrNoSprintSelected
	}
	idx := findTask(uc.tasks, taskID)
	if idx < 0 {
		uc.mu.Unlock()
		return planner.ErrUnknownTask
	}
	if uc.busy[taskID] {
		uc.mu.Unlock()
		return planner.ErrTaskBusy
	}

	next, ok := nextSprint(calendar, uc.sprint)
	if !ok {
		uc.mu.Unlock()
		return planner.ErrNoNextSprint
	}

	opt := repository.MoveToNextSprintOptions{
		TaskID:              taskID,
		CurrentSprintListID: uc.sprint.ListID,
		NextSprintListID:    next.ListID,
	}
	if anchor, ok := next.WindowAnchor(); ok {
		opt.NextSprintFirstMonday = anchor
		opt.TaskDueDate = uc.tasks[idx].DueDate
		opt.CurrentSprintStart, opt.CurrentSprintEnd = uc.currentSprintBoundsLocked()
	}

	// Optimistic removal: the task leaves the local list immediately and is
	// restored in place if the tracker calls fail.
	snapshot := cloneTask(uc.tasks[idx])
	snapshotIdx := idx
	uc.busy[taskID] = true
	gen := uc.fetchGen
	uc.tasks = append(uc.tasks[:idx], uc.tasks[idx+1:]...)
	uc.mu.Unlock()

	moveErr := uc.tracker.MoveTaskToNextSprint(ctx, opt)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.busy, taskID)

	if gen != uc.fetchGen {
		if moveErr != nil {
			return fmt.Errorf("planner usecase: failed to move task %s to next sprint: %w", taskID, moveErr)
		}
		return nil
	}

	if moveErr != nil {
		if snapshotIdx > len(uc.tasks) {
			snapshotIdx = len(uc.tasks)
		}
		uc.tasks = append(uc.tasks[:snapshotIdx], append([]model.PlannerTask{snapshot}, uc.tasks[snapshotIdx:]...)...)
		uc.l.Warnf(ctx, "planner usecase: move of task %s to next sprint failed, restored: %v", taskID, moveErr)
		return fmt.Errorf("planner usecase: failed to move task %s to next sprint: %w", taskID, moveErr)
	}

	uc.l.Infof(ctx, "planner usecase: task %s moved to sprint %s", taskID, next.ID)
	return nil
}

// currentSprintBoundsLocked resolves the selected sprint's [start, end]
// range for the due-date rewrite check. The calendar's StartDate/EndDate
// are authoritative; the 7-day display window only fills in missing ends.
// Callers hold uc.mu.
func (uc *implUseCase) currentSprintBoundsLocked() (*int64, *int64) {
	var start, end *int64
	if uc.sprint.StartDate != nil {
		v := *uc.sprint.StartDate
		start = &v
	} else if len(uc.sprintDays) > 0 {
		v := uc.sprintDays[0].Date.UnixMilli()
		start = &v
	}
	if uc.sprint.EndDate != nil {
		v := *uc.sprint.EndDate
		end = &v
	} else if len(uc.sprintDays) > 0 {
		v := uc.sprintDays[len(uc.sprintDays)-1].Date.Add(24*time.Hour).UnixMilli() - 1
		end = &v
	}
	return start, end
}
