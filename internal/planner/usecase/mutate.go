package usecase

import (
	"context"
	"fmt"
	"math"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner"
	"voice-sprint-planner/internal/planner/repository"
	"voice-sprint-planner/internal/planner/schedule"
)

const msPerHour = 3_600_000

func (uc *implUseCase) MoveTask(ctx context.Context, sc model.Scope, input planner.MoveTaskInput) error {
	var opt repository.UpdateTaskOptions

	return uc.mutateTask(ctx, input.TaskID,
		func(current model.PlannerTask) (repository.UpdateTaskOptions, error) {
			var err error
			opt, err = uc.assignmentUpdateLocked(input.Target)
			return opt, err
		},
		func(t *model.PlannerTask) {
			t.DueDate = opt.DueDate
			t.StartDate = opt.StartDate
		},
	)
}

func (uc *implUseCase) SaveTaskEdits(ctx context.Context, sc model.Scope, input planner.SaveTaskEditsInput) error {
	if input.IsEmpty() {
		return planner.ErrEmptyUpdate
	}
	if input.Hours != nil && (*input.Hours < 0 || math.IsNaN(*input.Hours)) {
		return planner.ErrInvalidHours
	}

	var opt repository.UpdateTaskOptions
	var name, objective, criteria string

	return uc.mutateTask(ctx, input.TaskID,
		func(current model.PlannerTask) (repository.UpdateTaskOptions, error) {
			opt = repository.UpdateTaskOptions{
				Name:        input.Name,
				CurrentName: current.Name,
				SetAssignee: input.SetAssignee,
				AssigneeID:  input.AssigneeID,
			}

			// Description edits send the full recombined text, so the
			// untouched section is carried over from the current task.
			name = current.Name
			if input.Name != nil {
				name = *input.Name
			}
			objective = current.Objective
			if input.Objective != nil {
				objective = *input.Objective
			}
			criteria = current.AcceptanceCriteria
			if input.AcceptanceCriteria != nil {
				criteria = *input.AcceptanceCriteria
			}
			if input.Objective != nil || input.AcceptanceCriteria != nil {
				opt.Objective = &objective
				opt.AcceptanceCriteria = &criteria
			}

			if input.Target != nil {
				dates, err := uc.assignmentUpdateLocked(*input.Target)
				if err != nil {
					return repository.UpdateTaskOptions{}, err
				}
				opt.SetDueDate = dates.SetDueDate
				opt.DueDate = dates.DueDate
				opt.SetStartDate = dates.SetStartDate
				opt.StartDate = dates.StartDate
			}

			if input.Hours != nil {
				opt.SetTimeEstimate = true
				// Zero hours clears the estimate rather than storing 0.
				if *input.Hours > 0 {
					ms := int64(math.Round(*input.Hours * msPerHour))
					opt.TimeEstimateMs = &ms
				}
			}

			return opt, nil
		},
		func(t *model.PlannerTask) {
			if input.Name != nil {
				t.Name = *input.Name
			}
			if input.Objective != nil || input.AcceptanceCriteria != nil {
				t.Objective = objective
				t.AcceptanceCriteria = criteria
				t.Description = planner.FormatDescription(name, objective, criteria)
			}
			if input.SetAssignee {
				if input.AssigneeID == nil {
					t.AssigneeIDs = nil
				} else {
					t.AssigneeIDs = []string{*input.AssigneeID}
				}
			}
			if input.Target != nil {
				t.DueDate = opt.DueDate
				t.StartDate = opt.StartDate
			}
			if input.Hours != nil {
				t.TimeEstimateMs = opt.TimeEstimateMs
			}
		},
	)
}

// assignmentUpdateLocked translates a day assignment into the date fields
// of an update. Unplanned clears both dates; a day inside the window sets
// both to that day's local midnight. Callers hold uc.mu.
func (uc *implUseCase) assignmentUpdateLocked(target model.DayAssignment) (repository.UpdateTaskOptions, error) {
	opt := repository.UpdateTaskOptions{SetDueDate: true, SetStartDate: true}

	key, scheduled := target.DayKey()
	if !scheduled {
		return opt, nil
	}

	valid := false
	for _, d := range uc.sprintDays {
		if d.Key == key {
			valid = true
			break
		}
	}
	if !valid {
		return repository.UpdateTaskOptions{}, planner.ErrUnknownDay
	}

	day, err := schedule.ParseDayKey(key, uc.loc)
	if err != nil {
		return repository.UpdateTaskOptions{}, planner.ErrUnknownDay
	}

	ms := day.UnixMilli()
	opt.DueDate = &ms
	opt.StartDate = &ms
	return opt, nil
}

// mutateTask runs one optimistic task mutation: the local copy is updated
// speculatively under the lock, the tracker call runs outside it, and the
// result either commits the server's authoritative task or rolls the local
// copy back to its snapshot. A task with a mutation already in flight is
// rejected rather than queued.
func (uc *implUseCase) mutateTask(
	ctx context.Context,
	taskID string,
	prepare func(current model.PlannerTask) (repository.UpdateTaskOptions, error),
	apply func(t *model.PlannerTask),
) error {
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

	opt, err := prepare(uc.tasks[idx])
	if err != nil {
		uc.mu.Unlock()
		return err
	}
	if opt.IsEmpty() {
		uc.mu.Unlock()
		return planner.ErrEmptyUpdate
	}

	snapshot := cloneTask(uc.tasks[idx])
	uc.busy[taskID] = true
	gen := uc.fetchGen
	apply(&uc.tasks[idx])
	uc.mu.Unlock()

	updated, updateErr := uc.tracker.UpdateTask(ctx, taskID, opt)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.busy, taskID)

	// A sprint switch while the call was in flight replaced the task list;
	// there is nothing left to commit or roll back.
	if gen != uc.fetchGen {
		if updateErr != nil {
			return fmt.Errorf("planner usecase: failed to update task %s: %w", taskID, updateErr)
		}
		return nil
	}

	idx = findTask(uc.tasks, taskID)

	if updateErr != nil {
		if idx >= 0 {
			uc.tasks[idx] = snapshot
		}
		uc.l.Warnf(ctx, "planner usecase: update of task %s failed, rolled back: %v", taskID, updateErr)
		return fmt.Errorf("planner usecase: failed to update task %s: %w", taskID, updateErr)
	}

	if idx >= 0 {
		merged := updated
		// The tracker has been seen returning a narrowed assignee list after
		// a partial update. When the edit never touched assignees, the
		// server's list is trusted only if it is non-empty and still carries
		// the selected person; otherwise committing it would make the task
		// vanish from that person's filtered view, so the local list wins.
		if !opt.SetAssignee && !uc.coversSelectedPersonLocked(merged.AssigneeIDs) {
			merged.AssigneeIDs = uc.tasks[idx].AssigneeIDs
		}
		uc.tasks[idx] = merged
	}
	return nil
}

// coversSelectedPersonLocked reports whether a server-returned assignee list
// can be trusted against the current person filter. Callers hold uc.mu.
func (uc *implUseCase) coversSelectedPersonLocked(assignees []string) bool {
	if len(assignees) == 0 {
		return false
	}
	if uc.personID == "" {
		return true
	}
	for _, a := range assignees {
		if a == uc.personID {
			return true
		}
	}
	return false
}
