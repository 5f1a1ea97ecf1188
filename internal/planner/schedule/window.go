package schedule

import (
	"fmt"
	"time"

	"voice-sprint-planner/internal/model"
)

// Day key format. Keys are computed from local calendar fields, not UTC, so
// a sprint anchored near a timezone boundary does not drift into the wrong day.
const dayKeyFormat = "2006-01-02"

const dayLabelFormat = "Mon 2 Jan"

// DayKey returns the canonical "YYYY-MM-DD" key for t's calendar day in the
// given location.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyFormat)
}

// ParseDayKey parses a canonical day key back into local midnight of that day.
// DayKey(ParseDayKey(k)) == k for every valid key.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyFormat, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// BuildSprintDays derives the seven consecutive calendar days of a sprint
// window. The anchor is FirstMonday, falling back to StartDate; a sprint
// with neither has no displayable window and yields an empty slice.
func BuildSprintDays(sprint model.Sprint, loc *time.Location) []model.SprintDay {
	anchorMs, ok := sprint.WindowAnchor()
	if !ok {
		return nil
	}

	anchor := StartOfDay(time.UnixMilli(anchorMs), loc)

	days := make([]model.SprintDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := anchor.AddDate(0, 0, i)
		days = append(days, model.SprintDay{
			Key:   DayKey(d, loc),
			Label: d.Format(dayLabelFormat),
			Date:  d,
		})
	}
	return days
}
