package schedule

import (
	"math"

	"voice-sprint-planner/internal/model"
)

const msPerHour = 3_600_000

// EstimateHours converts an estimate in milliseconds to hours, rounded to
// one decimal. A nil or negative estimate counts as zero.
func EstimateHours(estimateMs *int64) float64 {
	if estimateMs == nil || *estimateMs < 0 {
		return 0
	}
	return math.Round(float64(*estimateMs)/msPerHour*10) / 10
}

// SegmentTask splits a task's total estimated duration evenly across the
// days it occupies. dayKeys must be in occupancy order; IsStart marks the
// first segment and IsEnd the last (a single-day task has both). Zero days
// yields zero segments.
//
// The sum of segment hours equals the one-decimal-rounded total within
// floating rounding; this is display arithmetic, not billing arithmetic.
func SegmentTask(task model.PlannerTask, dayKeys []string) []model.TaskSegment {
	if len(dayKeys) == 0 {
		return nil
	}

	perDay := EstimateHours(task.TimeEstimateMs) / float64(len(dayKeys))

	segments := make([]model.TaskSegment, 0, len(dayKeys))
	for i, key := range dayKeys {
		segments = append(segments, model.TaskSegment{
			Task:    task,
			DayKey:  key,
			Hours:   perDay,
			IsStart: i == 0,
			IsEnd:   i == len(dayKeys)-1,
		})
	}
	return segments
}
