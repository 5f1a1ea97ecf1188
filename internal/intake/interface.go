package intake

import (
	"context"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/pkg/speech"
)

// UseCase defines the business logic interface for task intake.
type UseCase interface {
	// FromText restructures a typed or transcribed description into a task
	// and creates it in the tracking service.
	FromText(ctx context.Context, sc model.Scope, input FromTextInput) (Output, error)

	// FromAudio transcribes a dictation clip and feeds the transcript
	// through FromText.
	FromAudio(ctx context.Context, sc model.Scope, input FromAudioInput) (Output, error)
}

// Transcriber converts a dictation clip into text.
type Transcriber interface {
	Transcribe(ctx context.Context, req speech.TranscribeRequest) (string, error)
}
