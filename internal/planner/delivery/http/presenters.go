package http

import (
	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner"
	"voice-sprint-planner/internal/planner/schedule"
)

// --- Request DTOs ---

type selectSprintReq struct {
	SprintID string `json:"sprint_id" binding:"required"`
}

type selectPersonReq struct {
	PersonID string `json:"person_id"`
}

type moveTaskReq struct {
	TaskID string `json:"-"` // populated from URI param
	// Day is the target day key; null or omitted moves the task to the
	// unplanned bucket.
	Day *string `json:"day"`
}

func (r moveTaskReq) toInput() planner.MoveTaskInput {
	return planner.MoveTaskInput{
		TaskID: r.TaskID,
		Target: dayAssignment(r.Day),
	}
}

type saveTaskReq struct {
	TaskID             string   `json:"-"` // populated from URI param
	Name               *string  `json:"name"`
	Objective          *string  `json:"objective"`
	AcceptanceCriteria *string  `json:"acceptance_criteria"`
	SetAssignee        bool     `json:"set_assignee"`
	AssigneeID         *string  `json:"assignee_id"`
	SetDay             bool     `json:"set_day"`
	Day                *string  `json:"day"`
	Hours              *float64 `json:"hours"`
}

func (r saveTaskReq) toInput() planner.SaveTaskEditsInput {
	input := planner.SaveTaskEditsInput{
		TaskID:             r.TaskID,
		Name:               r.Name,
		Objective:          r.Objective,
		AcceptanceCriteria: r.AcceptanceCriteria,
		SetAssignee:        r.SetAssignee,
		AssigneeID:         r.AssigneeID,
		Hours:              r.Hours,
	}
	if r.SetDay {
		target := dayAssignment(r.Day)
		input.Target = &target
	}
	return input
}

func dayAssignment(day *string) model.DayAssignment {
	if day == nil || *day == "" {
		return model.UnplannedAssignment()
	}
	return model.ScheduledDay(*day)
}

// --- Response DTOs ---

type taskResp struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Status             string   `json:"status,omitempty"`
	URL                string   `json:"url,omitempty"`
	DueDate            *int64   `json:"due_date,omitempty"`
	StartDate          *int64   `json:"start_date,omitempty"`
	EstimateHours      float64  `json:"estimate_hours"`
	AssigneeIDs        []string `json:"assignee_ids,omitempty"`
	Objective          string   `json:"objective,omitempty"`
	AcceptanceCriteria string   `json:"acceptance_criteria,omitempty"`
}

func newTaskResp(t model.PlannerTask) taskResp {
	return taskResp{
		ID:                 t.ID,
		Name:               t.Name,
		Status:             t.Status,
		URL:                t.URL,
		DueDate:            t.DueDate,
		StartDate:          t.StartDate,
		EstimateHours:      schedule.EstimateHours(t.TimeEstimateMs),
		AssigneeIDs:        t.AssigneeIDs,
		Objective:          t.Objective,
		AcceptanceCriteria: t.AcceptanceCriteria,
	}
}

type segmentResp struct {
	Task    taskResp `json:"task"`
	Hours   float64  `json:"hours"`
	IsStart bool     `json:"is_start"`
	IsEnd   bool     `json:"is_end"`
}

type dayResp struct {
	Key      string        `json:"key"`
	Label    string        `json:"label"`
	Hours    float64       `json:"hours"`
	Load     string        `json:"load"`
	Segments []segmentResp `json:"segments"`
}

type sprintResp struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number,omitempty"`
}

func newSprintResp(s model.Sprint) sprintResp {
	return sprintResp{ID: s.ID, Name: s.Name, Number: s.Number}
}

type agendaResp struct {
	Sprint     sprintResp `json:"sprint"`
	PersonID   string     `json:"person_id,omitempty"`
	Days       []dayResp  `json:"days"`
	Unplanned  []taskResp `json:"unplanned"`
	TotalHours float64    `json:"total_hours"`
}

func (h *handler) newAgendaResp(out planner.AgendaOutput) agendaResp {
	days := make([]dayResp, len(out.Buckets))
	for i, b := range out.Buckets {
		segments := make([]segmentResp, len(b.Segments))
		for j, s := range b.Segments {
			segments[j] = segmentResp{
				Task:    newTaskResp(s.Task),
				Hours:   s.Hours,
				IsStart: s.IsStart,
				IsEnd:   s.IsEnd,
			}
		}
		load := out.DayLoads[b.Day.Key]
		days[i] = dayResp{
			Key:      b.Day.Key,
			Label:    b.Day.Label,
			Hours:    load.Hours,
			Load:     string(load.Level),
			Segments: segments,
		}
	}

	unplanned := make([]taskResp, len(out.Unplanned.Tasks))
	for i, t := range out.Unplanned.Tasks {
		unplanned[i] = newTaskResp(t)
	}

	return agendaResp{
		Sprint:     newSprintResp(out.Sprint),
		PersonID:   out.PersonID,
		Days:       days,
		Unplanned:  unplanned,
		TotalHours: out.TotalHours,
	}
}

type bootstrapResp struct {
	Sprint   sprintResp `json:"sprint"`
	PersonID string     `json:"person_id,omitempty"`
}

func (h *handler) newBootstrapResp(out planner.BootstrapOutput) bootstrapResp {
	return bootstrapResp{Sprint: newSprintResp(out.Sprint), PersonID: out.PersonID}
}

type sprintsResp struct {
	Sprints []sprintResp `json:"sprints"`
}

func (h *handler) newSprintsResp(sprints []model.Sprint) sprintsResp {
	out := make([]sprintResp, len(sprints))
	for i, s := range sprints {
		out[i] = newSprintResp(s)
	}
	return sprintsResp{Sprints: out}
}

type memberResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team string `json:"team,omitempty"`
}

type membersResp struct {
	Members []memberResp `json:"members"`
}

func (h *handler) newMembersResp(members []model.TeamMember) membersResp {
	out := make([]memberResp, len(members))
	for i, m := range members {
		out[i] = memberResp{ID: m.ID, Name: m.Name, Team: m.Team}
	}
	return membersResp{Members: out}
}
