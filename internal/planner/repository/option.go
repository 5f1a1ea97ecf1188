package repository

import "voice-sprint-planner/internal/model"

// FetchSprintTasksOptions selects the task set to fetch.
type FetchSprintTasksOptions struct {
	SprintID    string
	AssigneeID  string // optional: keep only tasks assigned to this member
	IncludeDone bool   // keep done/closed/complete tasks
}

// SprintTasksResult carries the resolved sprint metadata alongside the
// tasks. Sprint may be a minimal {ID} value when the calendar holds no
// entry for the requested sprint.
type SprintTasksResult struct {
	Sprint model.Sprint
	Tasks  []model.PlannerTask
}

// UpdateTaskOptions is the abstract partial-update field set. Nil pointers
// leave a field untouched; the Set* flags distinguish "clear this field"
// (flag set, pointer nil) from "do not touch it".
type UpdateTaskOptions struct {
	Name               *string
	Objective          *string
	AcceptanceCriteria *string

	// CurrentName is the task's name at the time of the edit. Description
	// rebuilds need it so an empty objective can default to the name even
	// when the edit itself does not rename the task. Context only, never a
	// patched field.
	CurrentName string

	SetAssignee bool
	AssigneeID  *string // nil clears all assignees; non-nil sets a single one

	SetDueDate bool
	DueDate    *int64 // epoch ms; nil clears

	SetStartDate bool
	StartDate    *int64 // epoch ms; nil clears

	SetTimeEstimate bool
	TimeEstimateMs  *int64 // nil clears
}

// IsEmpty reports whether the update sets no fields.
func (o UpdateTaskOptions) IsEmpty() bool {
	return o.Name == nil &&
		o.Objective == nil &&
		o.AcceptanceCriteria == nil &&
		!o.SetAssignee &&
		!o.SetDueDate &&
		!o.SetStartDate &&
		!o.SetTimeEstimate
}

// MoveToNextSprintOptions describes a move into the next sprint.
type MoveToNextSprintOptions struct {
	TaskID                string
	CurrentSprintListID   string
	NextSprintListID      string
	NextSprintFirstMonday int64  // epoch ms
	CurrentSprintStart    *int64 // epoch ms
	CurrentSprintEnd      *int64 // epoch ms
	TaskDueDate           *int64 // epoch ms
}
