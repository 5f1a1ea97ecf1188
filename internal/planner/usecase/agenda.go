package usecase

import (
	"context"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner"
	"voice-sprint-planner/internal/planner/schedule"
)

func (uc *implUseCase) Agenda(ctx context.Context, sc model.Scope) (planner.AgendaOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.sprint.ID == "" {
		return planner.AgendaOutput{}, planner.ErrNoSprintSelected
	}

	// The person filter is applied locally so switching people never
	// refetches.
	visible := uc.tasks
	if uc.personID != "" {
		visible = make([]model.PlannerTask, 0, len(uc.tasks))
		for _, t := range uc.tasks {
			if t.HasAssignee(uc.personID) {
				visible = append(visible, t)
			}
		}
	}

	buckets, unplanned := schedule.BuildDayBuckets(visible, uc.sprintDays, uc.loc)

	loads := make(map[string]planner.DayLoad, len(buckets))
	for _, b := range buckets {
		hours := schedule.DayHours(b)
		loads[b.Day.Key] = planner.DayLoad{
			Hours: hours,
			Level: uc.thresholds.Classify(hours),
		}
	}

	return planner.AgendaOutput{
		Sprint:     uc.sprint,
		Days:       uc.sprintDays,
		Buckets:    buckets,
		Unplanned:  unplanned,
		PersonID:   uc.personID,
		TotalHours: schedule.TotalHours(visible),
		DayLoads:   loads,
	}, nil
}
