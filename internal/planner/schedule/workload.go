package schedule

import "voice-sprint-planner/internal/model"

// LoadLevel is the ordinal daily-load classification used for visual triage.
type LoadLevel string

const (
	LoadUnder   LoadLevel = "under"
	LoadNominal LoadLevel = "nominal"
	LoadOver    LoadLevel = "over"
)

// Thresholds are the daily-load boundaries in hours. They are a display
// policy, not an enforced invariant, so callers may override them from
// configuration.
type Thresholds struct {
	Under float64 // below this is "under"
	Over  float64 // above this is "over"
}

// DefaultThresholds returns the standard 6.5h / 8h working-day boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Under: 6.5, Over: 8.0}
}

// Classify maps a day's total hours onto the load scale.
func (t Thresholds) Classify(hours float64) LoadLevel {
	switch {
	case hours < t.Under:
		return LoadUnder
	case hours > t.Over:
		return LoadOver
	default:
		return LoadNominal
	}
}

// TotalHours sums the estimates of the given tasks in hours.
func TotalHours(tasks []model.PlannerTask) float64 {
	var total float64
	for _, t := range tasks {
		total += EstimateHours(t.TimeEstimateMs)
	}
	return total
}

// DayHours sums the segment hours of one day bucket.
func DayHours(bucket model.DayBucket) float64 {
	var total float64
	for _, s := range bucket.Segments {
		total += s.Hours
	}
	return total
}
