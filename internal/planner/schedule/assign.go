package schedule

import (
	"time"

	"voice-sprint-planner/internal/model"
)

// AssignTaskDays determines which sprint days a task occupies, in
// chronological order. validKeys is the sprint window's day-key set.
//
// A task with both start and due dates occupies every calendar day of the
// range that falls inside the window; if the range misses the window
// entirely, it falls back to the due day alone. A task with only a due date
// occupies that single day. In every case a day outside the window routes
// the task to unplanned (nil result); due-only occupancy is clamped by the
// same rule as ranges.
func AssignTaskDays(task model.PlannerTask, validKeys map[string]bool, loc *time.Location) []string {
	if task.DueDate == nil {
		return nil
	}

	dueKey := DayKey(time.UnixMilli(*task.DueDate), loc)

	if task.StartDate != nil {
		start := StartOfDay(time.UnixMilli(*task.StartDate), loc)
		due := StartOfDay(time.UnixMilli(*task.DueDate), loc)

		var keys []string
		for d := start; !d.After(due); d = d.AddDate(0, 0, 1) {
			if k := DayKey(d, loc); validKeys[k] {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			return keys
		}
		// Range missed the window: fall back to the due day alone.
	}

	if validKeys[dueKey] {
		return []string{dueKey}
	}
	return nil
}
