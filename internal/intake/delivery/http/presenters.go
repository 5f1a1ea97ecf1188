package http

import (
	"voice-sprint-planner/internal/intake"
	"voice-sprint-planner/internal/planner/schedule"
)

// --- Request DTOs ---

type fromTextReq struct {
	Text         string `json:"text" binding:"required"`
	SprintListID string `json:"sprint_list_id"`
	AssigneeID   string `json:"assignee_id"`
}

func (r fromTextReq) toInput() intake.FromTextInput {
	return intake.FromTextInput{
		Text:         r.Text,
		SprintListID: r.SprintListID,
		AssigneeID:   r.AssigneeID,
	}
}

type fromAudioReq struct {
	AudioContent    string `json:"audio_content" binding:"required"`
	Encoding        string `json:"encoding"`
	SampleRateHertz int64  `json:"sample_rate_hertz"`
	LanguageCode    string `json:"language_code"`
	SprintListID    string `json:"sprint_list_id"`
	AssigneeID      string `json:"assignee_id"`
}

func (r fromAudioReq) toInput() intake.FromAudioInput {
	return intake.FromAudioInput{
		AudioContent:    r.AudioContent,
		Encoding:        r.Encoding,
		SampleRateHertz: r.SampleRateHertz,
		LanguageCode:    r.LanguageCode,
		SprintListID:    r.SprintListID,
		AssigneeID:      r.AssigneeID,
	}
}

// --- Response DTOs ---

type intakeResp struct {
	TaskID        string  `json:"task_id"`
	Name          string  `json:"name"`
	URL           string  `json:"url,omitempty"`
	EstimateHours float64 `json:"estimate_hours"`
	Transcript    string  `json:"transcript,omitempty"`
	Restructured  bool    `json:"restructured"`
}

func (h *handler) newIntakeResp(out intake.Output) intakeResp {
	return intakeResp{
		TaskID:        out.Task.ID,
		Name:          out.Task.Name,
		URL:           out.Task.URL,
		EstimateHours: schedule.EstimateHours(out.Task.TimeEstimateMs),
		Transcript:    out.Transcript,
		Restructured:  out.Restructured,
	}
}
