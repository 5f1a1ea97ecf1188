package model

import "time"

// SprintDay is one derived calendar day of a sprint window.
// Key is the canonical local-time "YYYY-MM-DD" string used as the join key
// everywhere else; parsing a key and reformatting it yields the same key.
type SprintDay struct {
	Key   string
	Label string
	Date  time.Time // local midnight
}

// TaskSegment is the portion of a task's estimated duration attributed to
// one day it spans. Never persisted.
type TaskSegment struct {
	Task    PlannerTask
	DayKey  string
	Hours   float64
	IsStart bool
	IsEnd   bool
}

// DayBucket holds the segments attributed to one sprint day.
type DayBucket struct {
	Day      SprintDay
	Segments []TaskSegment
}

// UnplannedBucket holds whole tasks with no resolvable day in the window.
type UnplannedBucket struct {
	Tasks []PlannerTask
}

// DayAssignment is the target of a task move: either a concrete sprint day
// or the unplanned bucket. The zero value is unplanned, so a stray string
// can never collide with a sentinel.
type DayAssignment struct {
	key string
}

// ScheduledDay returns an assignment to the day with the given key.
func ScheduledDay(key string) DayAssignment {
	return DayAssignment{key: key}
}

// UnplannedAssignment returns the unplanned assignment.
func UnplannedAssignment() DayAssignment {
	return DayAssignment{}
}

// DayKey returns the target day key and true, or false for unplanned.
func (d DayAssignment) DayKey() (string, bool) {
	if d.key == "" {
		return "", false
	}
	return d.key, true
}

// IsUnplanned reports whether the assignment targets the unplanned bucket.
func (d DayAssignment) IsUnplanned() bool {
	return d.key == ""
}
