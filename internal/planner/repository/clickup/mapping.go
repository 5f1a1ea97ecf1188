package clickup

import (
	"strconv"
	"strings"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner"
	"voice-sprint-planner/internal/planner/repository"
	clickupAPI "voice-sprint-planner/pkg/clickup"
)

// Statuses treated as finished for the default fetch filter.
var doneStatuses = map[string]bool{
	"done":     true,
	"closed":   true,
	"complete": true,
}

func isDoneStatus(status string) bool {
	return doneStatuses[strings.ToLower(strings.TrimSpace(status))]
}

func taskInList(t clickupAPI.Task, listID string) bool {
	if t.List.ID == listID {
		return true
	}
	for _, loc := range t.Locations {
		if loc.ID == listID {
			return true
		}
	}
	return false
}

// taskToModel converts a tracking API task to the internal planner task.
func taskToModel(t clickupAPI.Task) model.PlannerTask {
	objective, criteria := planner.ParseDescription(t.Description)

	assignees := make([]string, 0, len(t.Assignees))
	for _, a := range t.Assignees {
		assignees = append(assignees, a.ID)
	}

	return model.PlannerTask{
		ID:                 t.ID,
		Name:               t.Name,
		Status:             t.Status.Status,
		DueDate:            parseEpochMs(t.DueDate),
		StartDate:          parseEpochMs(t.StartDate),
		TimeEstimateMs:     t.TimeEstimate,
		AssigneeIDs:        assignees,
		URL:                t.URL,
		Description:        t.Description,
		Objective:          objective,
		AcceptanceCriteria: criteria,
		ListID:             t.List.ID,
		ListName:           t.List.Name,
	}
}

// parseEpochMs parses the API's decimal-string timestamps.
func parseEpochMs(s *string) *int64 {
	if s == nil || *s == "" {
		return nil
	}
	v, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// buildPatch translates the abstract update field set into the tracking
// service's update vocabulary.
func buildPatch(opt repository.UpdateTaskOptions) clickupAPI.TaskPatch {
	patch := clickupAPI.TaskPatch{}

	if opt.Name != nil {
		patch["name"] = *opt.Name
	}

	if opt.Objective != nil || opt.AcceptanceCriteria != nil {
		var objective, criteria string
		name := opt.CurrentName
		if opt.Name != nil {
			name = *opt.Name
		}
		if opt.Objective != nil {
			objective = *opt.Objective
		}
		if opt.AcceptanceCriteria != nil {
			criteria = *opt.AcceptanceCriteria
		}
		patch["description"] = planner.FormatDescription(name, objective, criteria)
	}

	if opt.SetDueDate {
		patch["due_date"] = epochOrNil(opt.DueDate)
		// Single-day tasks are the common case: a due date without an
		// explicit start date sets both to the same day.
		if opt.DueDate != nil && !opt.SetStartDate {
			patch["start_date"] = *opt.DueDate
		}
	}
	if opt.SetStartDate {
		patch["start_date"] = epochOrNil(opt.StartDate)
	}

	if opt.SetAssignee {
		if opt.AssigneeID == nil {
			patch["assignees"] = []string{}
		} else {
			patch["assignees"] = []string{*opt.AssigneeID}
		}
	}

	if opt.SetTimeEstimate {
		patch["time_estimate"] = epochOrNil(opt.TimeEstimateMs)
	}

	return patch
}

// epochOrNil keeps explicit nulls in the patch for fields being cleared.
func epochOrNil(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
