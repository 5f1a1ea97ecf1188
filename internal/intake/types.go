package intake

import "voice-sprint-planner/internal/model"

// FromTextInput is one typed or transcribed task description.
type FromTextInput struct {
	Text         string
	SprintListID string // optional: also add the created task to this sprint list
	AssigneeID   string // optional: assign the created task
}

// FromAudioInput is one dictation clip.
type FromAudioInput struct {
	AudioContent    string // base64-encoded audio bytes
	Encoding        string
	SampleRateHertz int64
	LanguageCode    string
	SprintListID    string
	AssigneeID      string
}

// Output reports the created task.
type Output struct {
	Task         model.PlannerTask
	Transcript   string // the recognized text, for dictation input
	Restructured bool   // false when the model output was unusable and the raw text was used as-is
}
