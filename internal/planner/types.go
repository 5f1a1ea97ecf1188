package planner

import (
	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner/schedule"
)

// BootstrapOutput reports the initial selection.
type BootstrapOutput struct {
	Sprint   model.Sprint
	PersonID string
}

// MoveTaskInput moves one task to a day or to the unplanned bucket.
type MoveTaskInput struct {
	TaskID string
	Target model.DayAssignment
}

// SaveTaskEditsInput is a partial edit of one task. Nil pointers leave the
// field untouched. SetAssignee distinguishes "clear the assignee"
// (AssigneeID nil) from "leave assignees alone".
type SaveTaskEditsInput struct {
	TaskID             string
	Name               *string
	Objective          *string
	AcceptanceCriteria *string
	SetAssignee        bool
	AssigneeID         *string
	Target             *model.DayAssignment
	Hours              *float64
}

// IsEmpty reports whether the edit changes nothing.
func (i SaveTaskEditsInput) IsEmpty() bool {
	return i.Name == nil &&
		i.Objective == nil &&
		i.AcceptanceCriteria == nil &&
		!i.SetAssignee &&
		i.Target == nil &&
		i.Hours == nil
}

// DayLoad is one day's aggregated workload.
type DayLoad struct {
	Hours float64
	Level schedule.LoadLevel
}

// AgendaOutput is the derived planning view for the UI layer.
type AgendaOutput struct {
	Sprint     model.Sprint
	Days       []model.SprintDay
	Buckets    []model.DayBucket
	Unplanned  model.UnplannedBucket
	PersonID   string
	TotalHours float64
	DayLoads   map[string]DayLoad // keyed by day key
}
