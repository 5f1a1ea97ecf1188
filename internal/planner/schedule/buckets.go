package schedule

import (
	"time"

	"voice-sprint-planner/internal/model"
)

// BuildDayBuckets distributes tasks over the sprint days. It returns exactly
// one bucket per day in window order, plus the synthetic unplanned bucket
// holding whole tasks with no resolvable day.
func BuildDayBuckets(tasks []model.PlannerTask, days []model.SprintDay, loc *time.Location) ([]model.DayBucket, model.UnplannedBucket) {
	validKeys := make(map[string]bool, len(days))
	for _, d := range days {
		validKeys[d.Key] = true
	}

	byKey := make(map[string]*model.DayBucket, len(days))
	buckets := make([]model.DayBucket, len(days))
	for i, d := range days {
		buckets[i] = model.DayBucket{Day: d}
		byKey[d.Key] = &buckets[i]
	}

	var unplanned model.UnplannedBucket
	for _, task := range tasks {
		keys := AssignTaskDays(task, validKeys, loc)
		if len(keys) == 0 {
			unplanned.Tasks = append(unplanned.Tasks, task)
			continue
		}
		for _, seg := range SegmentTask(task, keys) {
			b := byKey[seg.DayKey]
			b.Segments = append(b.Segments, seg)
		}
	}

	return buckets, unplanned
}
