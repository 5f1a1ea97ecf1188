package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voice-sprint-planner/internal/intake"
	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/pkg/speech"
)

func (uc *implUseCase) FromAudio(ctx context.Context, sc model.Scope, input intake.FromAudioInput) (intake.Output, error) {
	if strings.TrimSpace(input.AudioContent) == "" {
		return intake.Output{}, intake.ErrEmptyAudio
	}
	if uc.transcriber == nil {
		return intake.Output{}, errors.New("intake usecase: no transcriber configured")
	}

	transcript, err := uc.transcriber.Transcribe(ctx, speech.TranscribeRequest{
		AudioContent:    input.AudioContent,
		Encoding:        input.Encoding,
		SampleRateHertz: input.SampleRateHertz,
		LanguageCode:    input.LanguageCode,
	})
	if err != nil {
		return intake.Output{}, fmt.Errorf("intake usecase: transcription failed: %w", err)
	}
	if strings.TrimSpace(transcript) == "" {
		return intake.Output{}, intake.ErrEmptyText
	}

	out, err := uc.FromText(ctx, sc, intake.FromTextInput{
		Text:         transcript,
		SprintListID: input.SprintListID,
		AssigneeID:   input.AssigneeID,
	})
	if err != nil {
		return intake.Output{}, err
	}

	out.Transcript = transcript
	return out, nil
}
