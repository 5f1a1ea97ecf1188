package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner"
	"voice-sprint-planner/internal/planner/repository"
	"voice-sprint-planner/internal/planner/schedule"
)

func TestSelectInitialSprint(t *testing.T) {
	sprints := []model.Sprint{
		testCalendar()["s1"],
		testCalendar()["s2"],
	}

	t.Run("Window Containing Now Wins", func(t *testing.T) {
		now := time.Date(2025, time.November, 19, 10, 0, 0, 0, time.UTC)
		s, ok := selectInitialSprint(sprints, now)
		if !ok || s.ID != "s1" {
			t.Errorf("expected s1, got %v %v", s.ID, ok)
		}
	})

	t.Run("Earliest Future When Nothing Contains Now", func(t *testing.T) {
		now := time.Date(2025, time.November, 10, 10, 0, 0, 0, time.UTC)
		s, ok := selectInitialSprint(sprints, now)
		if !ok || s.ID != "s1" {
			t.Errorf("expected earliest future sprint s1, got %v %v", s.ID, ok)
		}
	})

	t.Run("Latest Past When All Windows Ended", func(t *testing.T) {
		now := time.Date(2025, time.December, 15, 10, 0, 0, 0, time.UTC)
		s, ok := selectInitialSprint(sprints, now)
		if !ok || s.ID != "s2" {
			t.Errorf("expected latest past sprint s2, got %v %v", s.ID, ok)
		}
	})

	t.Run("Explicit End Date Beats A Later Sprint", func(t *testing.T) {
		nov10 := time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC).UnixMilli()
		nov23End := time.Date(2025, time.November, 23, 23, 59, 59, 0, time.UTC).UnixMilli()
		nov24 := time.Date(2025, time.November, 24, 0, 0, 0, 0, time.UTC).UnixMilli()
		// A two-week sprint whose end runs past its anchor's seventh day.
		long := []model.Sprint{
			{ID: "s2", Name: "Sprint 2", StartDate: msPtr(nov10), EndDate: msPtr(nov23End), FirstMonday: msPtr(nov10)},
			{ID: "s3", Name: "Sprint 3", StartDate: msPtr(nov24), FirstMonday: msPtr(nov24)},
		}
		now := time.Date(2025, time.November, 20, 10, 0, 0, 0, time.UTC)
		s, ok := selectInitialSprint(long, now)
		if !ok || s.ID != "s2" {
			t.Errorf("expected the sprint whose start/end range contains now, got %v %v", s.ID, ok)
		}
	})

	t.Run("Latest Past Is Chosen By End Date", func(t *testing.T) {
		oct1 := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
		oct31 := time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC).UnixMilli()
		nov3 := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC).UnixMilli()
		nov9 := time.Date(2025, time.November, 9, 0, 0, 0, 0, time.UTC).UnixMilli()
		// pA anchors later but pB runs longer; latest end wins.
		past := []model.Sprint{
			{ID: "pA", Name: "Past A", StartDate: msPtr(nov3), EndDate: msPtr(nov9), FirstMonday: msPtr(nov3)},
			{ID: "pB", Name: "Past B", StartDate: msPtr(oct1), EndDate: msPtr(nov9 + 1), FirstMonday: msPtr(oct31)},
		}
		now := time.Date(2025, time.December, 15, 10, 0, 0, 0, time.UTC)
		s, ok := selectInitialSprint(past, now)
		if !ok || s.ID != "pB" {
			t.Errorf("expected the past sprint with the latest end date, got %v %v", s.ID, ok)
		}
	})

	t.Run("Unanchored Calendar Falls Back To First", func(t *testing.T) {
		bare := []model.Sprint{{ID: "b", Name: "B"}, {ID: "a", Name: "A"}}
		s, ok := selectInitialSprint(bare, time.Now())
		if !ok || s.ID != "a" {
			t.Errorf("expected first sorted sprint, got %v %v", s.ID, ok)
		}
	})

	t.Run("Empty Calendar", func(t *testing.T) {
		if _, ok := selectInitialSprint(nil, time.Now()); ok {
			t.Errorf("expected no selection from empty calendar")
		}
	})
}

func TestBootstrap(t *testing.T) {
	uc := newTestUseCase(t, &fakeTracker{})

	out, err := uc.Bootstrap(context.Background(), model.Scope{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Sprint.ID != "s1" {
		t.Errorf("expected sprint containing the frozen clock, got %s", out.Sprint.ID)
	}
	if out.PersonID != "u1" {
		t.Errorf("expected alphabetically first member, got %s", out.PersonID)
	}

	agenda, err := uc.Agenda(context.Background(), model.Scope{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(agenda.Days) != 7 {
		t.Errorf("expected a 7-day window, got %d", len(agenda.Days))
	}
}

func TestSelectSprint(t *testing.T) {
	t.Run("Unknown Sprint", func(t *testing.T) {
		uc := newTestUseCase(t, &fakeTracker{})
		err := uc.SelectSprint(context.Background(), model.Scope{}, "missing")
		if !errors.Is(err, planner.ErrUnknownSprint) {
			t.Errorf("expected ErrUnknownSprint, got %v", err)
		}
	})

	t.Run("Slow Fetch Superseded By Newer Selection", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})

		tracker := &fakeTracker{
			fetchFunc: func(ctx context.Context, opt repository.FetchSprintTasksOptions) (repository.SprintTasksResult, error) {
				if opt.SprintID == "s1" {
					close(started)
					select {
					case <-release:
					case <-ctx.Done():
						return repository.SprintTasksResult{}, ctx.Err()
					}
				}
				return repository.SprintTasksResult{
					Sprint: testCalendar()[opt.SprintID],
					Tasks:  []model.PlannerTask{{ID: "task-" + opt.SprintID}},
				}, nil
			},
		}

		meta := &fakeMetadata{
			calendarFunc: func(ctx context.Context) (map[string]model.Sprint, error) { return testCalendar(), nil },
		}
		uc := New(&mockLogger{}, tracker, meta, testLoc, schedule.DefaultThresholds())

		var wg sync.WaitGroup
		var slowErr error
		wg.Add(1)
		go func() {
			defer wg.Done()
			slowErr = uc.SelectSprint(context.Background(), model.Scope{}, "s1")
		}()

		<-started
		if err := uc.SelectSprint(context.Background(), model.Scope{}, "s2"); err != nil {
			t.Fatalf("unexpected error selecting s2: %v", err)
		}
		close(release)
		wg.Wait()

		if !errors.Is(slowErr, planner.ErrFetchSuperseded) {
			t.Errorf("expected ErrFetchSuperseded for the older fetch, got %v", slowErr)
		}

		agenda, err := uc.Agenda(context.Background(), model.Scope{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agenda.Sprint.ID != "s2" {
			t.Errorf("expected the newer sprint to win, got %s", agenda.Sprint.ID)
		}
	})
}

func TestSelectPerson(t *testing.T) {
	t.Run("Unknown Person", func(t *testing.T) {
		uc := newTestUseCase(t, &fakeTracker{})
		err := uc.SelectPerson(context.Background(), model.Scope{}, "ghost")
		if !errors.Is(err, planner.ErrUnknownPerson) {
			t.Errorf("expected ErrUnknownPerson, got %v", err)
		}
	})

	t.Run("Switching Person Never Refetches", func(t *testing.T) {
		var fetches int
		tracker := &fakeTracker{
			fetchFunc: func(ctx context.Context, opt repository.FetchSprintTasksOptions) (repository.SprintTasksResult, error) {
				fetches++
				return repository.SprintTasksResult{Sprint: testCalendar()[opt.SprintID], Tasks: testTasks()}, nil
			},
		}
		uc := newTestUseCase(t, tracker)

		if err := uc.SelectPerson(context.Background(), model.Scope{}, "u2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		agenda, err := uc.Agenda(context.Background(), model.Scope{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agenda.PersonID != "u2" {
			t.Errorf("expected filter u2, got %s", agenda.PersonID)
		}
		if len(agenda.Unplanned.Tasks) != 1 || agenda.Unplanned.Tasks[0].ID != "t2" {
			t.Errorf("expected only u2's task visible, got %+v", agenda.Unplanned.Tasks)
		}
		if fetches != 1 {
			t.Errorf("expected a single fetch, got %d", fetches)
		}
	})

	t.Run("Empty Person Clears Filter", func(t *testing.T) {
		uc := newTestUseCase(t, &fakeTracker{})
		if err := uc.SelectPerson(context.Background(), model.Scope{}, "u2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.SelectPerson(context.Background(), model.Scope{}, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		agenda, _ := uc.Agenda(context.Background(), model.Scope{})
		total := len(agenda.Unplanned.Tasks)
		for _, b := range agenda.Buckets {
			total += len(b.Segments)
		}
		if total != 2 {
			t.Errorf("expected both tasks visible with no filter, got %d entries", total)
		}
	})
}
