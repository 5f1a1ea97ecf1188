package usecase

import (
	"context"
	"testing"
	"time"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner/repository"
	"voice-sprint-planner/internal/planner/schedule"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Fake tracker repository with per-test function fields.
type fakeTracker struct {
	fetchFunc  func(ctx context.Context, opt repository.FetchSprintTasksOptions) (repository.SprintTasksResult, error)
	updateFunc func(ctx context.Context, taskID string, opt repository.UpdateTaskOptions) (model.PlannerTask, error)
	moveFunc   func(ctx context.Context, opt repository.MoveToNextSprintOptions) error
}

func (f *fakeTracker) FetchSprintTasks(ctx context.Context, opt repository.FetchSprintTasksOptions) (repository.SprintTasksResult, error) {
	if f.fetchFunc != nil {
		return f.fetchFunc(ctx, opt)
	}
	return repository.SprintTasksResult{Sprint: model.Sprint{ID: opt.SprintID}}, nil
}

func (f *fakeTracker) UpdateTask(ctx context.Context, taskID string, opt repository.UpdateTaskOptions) (model.PlannerTask, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, taskID, opt)
	}
	return model.PlannerTask{ID: taskID}, nil
}

func (f *fakeTracker) MoveTaskToNextSprint(ctx context.Context, opt repository.MoveToNextSprintOptions) error {
	if f.moveFunc != nil {
		return f.moveFunc(ctx, opt)
	}
	return nil
}

// Fake metadata repository with per-test function fields.
type fakeMetadata struct {
	calendarFunc func(ctx context.Context) (map[string]model.Sprint, error)
	teamFunc     func(ctx context.Context) (map[string]model.TeamMember, error)
}

func (f *fakeMetadata) SprintCalendar(ctx context.Context) (map[string]model.Sprint, error) {
	if f.calendarFunc != nil {
		return f.calendarFunc(ctx)
	}
	return map[string]model.Sprint{}, nil
}

func (f *fakeMetadata) TeamDirectory(ctx context.Context) (map[string]model.TeamMember, error) {
	if f.teamFunc != nil {
		return f.teamFunc(ctx)
	}
	return map[string]model.TeamMember{}, nil
}

func strPtr(s string) *string   { return &s }
func msPtr(v int64) *int64      { return &v }
func f64Ptr(v float64) *float64 { return &v }

// Fixtures: a two-sprint calendar anchored on consecutive Mondays.
var (
	testLoc = time.UTC

	sprint1Monday = time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC).UnixMilli()
	sprint2Monday = time.Date(2025, time.November, 24, 0, 0, 0, 0, time.UTC).UnixMilli()
)

func testCalendar() map[string]model.Sprint {
	return map[string]model.Sprint{
		"s1": {ID: "s1", Name: "Sprint 1", Number: 1, FirstMonday: msPtr(sprint1Monday), ListID: "list-1"},
		"s2": {ID: "s2", Name: "Sprint 2", Number: 2, FirstMonday: msPtr(sprint2Monday), ListID: "list-2"},
	}
}

func testDirectory() map[string]model.TeamMember {
	return map[string]model.TeamMember{
		"u1": {ID: "u1", Name: "An", Aliases: []string{"An"}},
		"u2": {ID: "u2", Name: "Binh", Aliases: []string{"Binh"}},
	}
}

func testTasks() []model.PlannerTask {
	return []model.PlannerTask{
		{ID: "t1", Name: "Alpha", DueDate: msPtr(sprint1Monday), StartDate: msPtr(sprint1Monday),
			TimeEstimateMs: msPtr(2 * 3_600_000), AssigneeIDs: []string{"u1"}},
		{ID: "t2", Name: "Beta", AssigneeIDs: []string{"u2"}},
	}
}

// newTestUseCase builds a usecase over the fixtures with sprint s1 already
// selected, a frozen clock inside s1's window, and no person filter.
func newTestUseCase(t *testing.T, tracker *fakeTracker) *implUseCase {
	t.Helper()

	if tracker.fetchFunc == nil {
		tracker.fetchFunc = func(ctx context.Context, opt repository.FetchSprintTasksOptions) (repository.SprintTasksResult, error) {
			return repository.SprintTasksResult{
				Sprint: testCalendar()[opt.SprintID],
				Tasks:  testTasks(),
			}, nil
		}
	}

	meta := &fakeMetadata{
		calendarFunc: func(ctx context.Context) (map[string]model.Sprint, error) { return testCalendar(), nil },
		teamFunc:     func(ctx context.Context) (map[string]model.TeamMember, error) { return testDirectory(), nil },
	}

	uc := New(&mockLogger{}, tracker, meta, testLoc, schedule.DefaultThresholds())
	uc.now = func() time.Time {
		return time.Date(2025, time.November, 19, 10, 0, 0, 0, time.UTC)
	}
	if err := uc.SelectSprint(context.Background(), model.Scope{}, "s1"); err != nil {
		t.Fatalf("failed to select fixture sprint: %v", err)
	}
	return uc
}
