package repository

import "time"

// CreateTaskOptions describes one task to create.
type CreateTaskOptions struct {
	Name           string
	Description    string
	TimeEstimateMs *int64
	AssigneeID     string // empty leaves the task unassigned
	SprintListID   string // empty keeps the task in the backlog only
}

// PendingIntake is one review-queue entry for a created task.
type PendingIntake struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"taskId"`
	TaskName   string    `json:"taskName"`
	RawText    string    `json:"rawText"`
	Transcript string    `json:"transcript,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
