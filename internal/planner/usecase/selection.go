package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner"
	"voice-sprint-planner/internal/planner/repository"
	"voice-sprint-planner/internal/planner/schedule"
)

func (uc *implUseCase) Bootstrap(ctx context.Context, sc model.Scope) (planner.BootstrapOutput, error) {
	calendar, err := uc.metadata.SprintCalendar(ctx)
	if err != nil {
		return planner.BootstrapOutput{}, fmt.Errorf("planner usecase: %w", err)
	}

	sprints := make([]model.Sprint, 0, len(calendar))
	for _, s := range calendar {
		sprints = append(sprints, s)
	}
	sprint, ok := selectInitialSprint(sprints, uc.now())
	if !ok {
		return planner.BootstrapOutput{}, planner.ErrUnknownSprint
	}

	directory, err := uc.metadata.TeamDirectory(ctx)
	if err != nil {
		return planner.BootstrapOutput{}, fmt.Errorf("planner usecase: %w", err)
	}

	uc.mu.Lock()
	uc.personID = firstPerson(directory)
	personID := uc.personID
	uc.mu.Unlock()

	if err := uc.loadSprint(ctx, sprint); err != nil {
		return planner.BootstrapOutput{}, err
	}

	uc.l.Infof(ctx, "planner usecase: bootstrapped with sprint %s, person %s", sprint.ID, personID)
	return planner.BootstrapOutput{Sprint: sprint, PersonID: personID}, nil
}

func (uc *implUseCase) SelectSprint(ctx context.Context, sc model.Scope, sprintID string) error {
	calendar, err := uc.metadata.SprintCalendar(ctx)
	if err != nil {
		return fmt.Errorf("planner usecase: %w", err)
	}

	sprint, ok := calendar[sprintID]
	if !ok {
		return planner.ErrUnknownSprint
	}

	return uc.loadSprint(ctx, sprint)
}

// loadSprint fetches the sprint's tasks and installs them as the current
// working set. A newer selection supersedes an older fetch still in flight:
// the older fetch is cancelled and its result, if it arrives anyway, is
// discarded.
func (uc *implUseCase) loadSprint(ctx context.Context, sprint model.Sprint) error {
	fetchCtx, cancel := context.WithCancel(ctx)

	uc.mu.Lock()
	if uc.fetchStop != nil {
		uc.fetchStop()
	}
	uc.fetchStop = cancel
	uc.fetchGen++
	gen := uc.fetchGen
	uc.mu.Unlock()

	res, err := uc.tracker.FetchSprintTasks(fetchCtx, repository.FetchSprintTasksOptions{
		SprintID: sprint.ID,
	})

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if gen != uc.fetchGen {
		// The newer selection already cancelled this fetch.
		return planner.ErrFetchSuperseded
	}
	uc.fetchStop = nil
	cancel()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return planner.ErrFetchSuperseded
		}
		return fmt.Errorf("planner usecase: failed to fetch sprint tasks: %w", err)
	}

	uc.sprint = sprint
	uc.sprintDays = schedule.BuildSprintDays(sprint, uc.loc)
	uc.tasks = res.Tasks
	uc.busy = make(map[string]bool)

	uc.l.Debugf(ctx, "planner usecase: loaded %d tasks for sprint %s", len(res.Tasks), sprint.ID)
	return nil
}

func (uc *implUseCase) SelectPerson(ctx context.Context, sc model.Scope, personID string) error {
	directory, err := uc.metadata.TeamDirectory(ctx)
	if err != nil {
		return fmt.Errorf("planner usecase: %w", err)
	}

	// An empty id clears the filter; a non-empty id must exist.
	if personID != "" {
		if _, ok := directory[personID]; !ok {
			return planner.ErrUnknownPerson
		}
	}

	uc.mu.Lock()
	uc.personID = personID
	uc.mu.Unlock()
	return nil
}

func (uc *implUseCase) Sprints(ctx context.Context) ([]model.Sprint, error) {
	calendar, err := uc.metadata.SprintCalendar(ctx)
	if err != nil {
		return nil, fmt.Errorf("planner usecase: %w", err)
	}

	sprints := make([]model.Sprint, 0, len(calendar))
	for _, s := range calendar {
		sprints = append(sprints, s)
	}
	sortSprints(sprints)
	return sprints, nil
}

func (uc *implUseCase) Members(ctx context.Context) ([]model.TeamMember, error) {
	directory, err := uc.metadata.TeamDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("planner usecase: %w", err)
	}

	members := make([]model.TeamMember, 0, len(directory))
	for _, m := range directory {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].Name != members[j].Name {
			return members[i].Name < members[j].Name
		}
		return members[i].ID < members[j].ID
	})
	return members, nil
}
