package usecase

import (
	"sort"
	"time"

	"voice-sprint-planner/internal/model"
)

const sprintWindowDays = 7

// sortSprints orders sprints by window anchor, unanchored last, ties broken
// by name for a stable listing.
func sortSprints(sprints []model.Sprint) {
	sort.SliceStable(sprints, func(i, j int) bool {
		ai, okI := sprints[i].WindowAnchor()
		aj, okJ := sprints[j].WindowAnchor()
		if okI != okJ {
			return okI
		}
		if okI && ai != aj {
			return ai < aj
		}
		return sprints[i].Name < sprints[j].Name
	})
}

// sprintBounds resolves a sprint's inclusive [start, end] range in epoch ms.
// StartDate/EndDate are authoritative when present; a sprint carrying only a
// window anchor falls back to a 7-day range from that anchor.
func sprintBounds(s model.Sprint) (start, end int64, ok bool) {
	switch {
	case s.StartDate != nil:
		start = *s.StartDate
	case s.FirstMonday != nil:
		start = *s.FirstMonday
	default:
		return 0, 0, false
	}
	if s.EndDate != nil {
		end = *s.EndDate
	} else {
		end = start + int64(sprintWindowDays*24*time.Hour/time.Millisecond) - 1
	}
	return start, end, true
}

// selectInitialSprint picks the sprint whose [startDate, endDate] contains
// now, falling back to the future sprint with the earliest start, then the
// past sprint with the latest end, then the first in the sorted calendar.
func selectInitialSprint(sprints []model.Sprint, now time.Time) (model.Sprint, bool) {
	if len(sprints) == 0 {
		return model.Sprint{}, false
	}

	sorted := make([]model.Sprint, len(sprints))
	copy(sorted, sprints)
	sortSprints(sorted)

	nowMs := now.UnixMilli()

	var future, past *model.Sprint
	var futureStart, pastEnd int64
	for i := range sorted {
		start, end, ok := sprintBounds(sorted[i])
		if !ok {
			continue
		}
		if nowMs >= start && nowMs <= end {
			return sorted[i], true
		}
		if start > nowMs {
			if future == nil || start < futureStart {
				future = &sorted[i]
				futureStart = start
			}
		} else if past == nil || end > pastEnd {
			past = &sorted[i]
			pastEnd = end
		}
	}

	if future != nil {
		return *future, true
	}
	if past != nil {
		return *past, true
	}
	return sorted[0], true
}

// nextSprint finds the sprint following current: the one numbered current+1
// when sequence numbers exist, otherwise the sprint with the smallest
// window anchor after current's.
func nextSprint(calendar map[string]model.Sprint, current model.Sprint) (model.Sprint, bool) {
	if current.Number > 0 {
		for _, s := range calendar {
			if s.Number == current.Number+1 {
				return s, true
			}
		}
	}

	anchor, ok := current.WindowAnchor()
	if !ok {
		return model.Sprint{}, false
	}

	var best model.Sprint
	var found bool
	for _, s := range calendar {
		a, ok := s.WindowAnchor()
		if !ok || a <= anchor {
			continue
		}
		if !found {
			best, found = s, true
			continue
		}
		if ba, _ := best.WindowAnchor(); a < ba {
			best = s
		}
	}
	return best, found
}

// firstPerson picks the default person filter: the alphabetically first
// member by display name.
func firstPerson(directory map[string]model.TeamMember) string {
	var best model.TeamMember
	for _, m := range directory {
		if best.ID == "" || m.Name < best.Name || (m.Name == best.Name && m.ID < best.ID) {
			best = m
		}
	}
	return best.ID
}

// cloneTask deep-copies a task so a snapshot survives speculative edits.
func cloneTask(t model.PlannerTask) model.PlannerTask {
	c := t
	if t.DueDate != nil {
		v := *t.DueDate
		c.DueDate = &v
	}
	if t.StartDate != nil {
		v := *t.StartDate
		c.StartDate = &v
	}
	if t.TimeEstimateMs != nil {
		v := *t.TimeEstimateMs
		c.TimeEstimateMs = &v
	}
	c.AssigneeIDs = append([]string(nil), t.AssigneeIDs...)
	return c
}

func findTask(tasks []model.PlannerTask, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
