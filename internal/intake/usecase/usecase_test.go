package usecase

import (
	"context"
	"errors"
	"testing"

	"voice-sprint-planner/internal/intake"
	"voice-sprint-planner/internal/intake/repository"
	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/pkg/gemini"
	"voice-sprint-planner/pkg/speech"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock Gemini client for testing
type mockGeminiClient struct {
	response *gemini.GenerateResponse
	err      error
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	return m.response, m.err
}

func (m *mockGeminiClient) Model() string { return "gemini-test" }

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

type fakeIntakeTracker struct {
	createFunc func(ctx context.Context, opt repository.CreateTaskOptions) (model.PlannerTask, error)
}

func (f *fakeIntakeTracker) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.PlannerTask, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, opt)
	}
	return model.PlannerTask{ID: "new-task", Name: opt.Name}, nil
}

type fakeQueue struct {
	items []repository.PendingIntake
	err   error
}

func (f *fakeQueue) Enqueue(ctx context.Context, item repository.PendingIntake) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, item)
	return nil
}

type fakeTranscriber struct {
	transcript string
	err        error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, req speech.TranscribeRequest) (string, error) {
	return f.transcript, f.err
}

const specJSON = `{
	"title": "Export filtered rows",
	"objective": "Export only the filtered rows.",
	"acceptance_criteria": "- Filters respected",
	"estimated_duration_minutes": 90
}`

func TestFromText(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Text Error", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGeminiClient{}, nil, &fakeIntakeTracker{}, nil)
		_, err := uc.FromText(ctx, model.Scope{}, intake.FromTextInput{Text: "   "})
		if !errors.Is(err, intake.ErrEmptyText) {
			t.Errorf("expected ErrEmptyText, got %v", err)
		}
	})

	t.Run("Restructured Task Created", func(t *testing.T) {
		var captured repository.CreateTaskOptions
		tracker := &fakeIntakeTracker{
			createFunc: func(ctx context.Context, opt repository.CreateTaskOptions) (model.PlannerTask, error) {
				captured = opt
				return model.PlannerTask{ID: "t1", Name: opt.Name}, nil
			},
		}
		queue := &fakeQueue{}
		uc := New(&mockLogger{}, &mockGeminiClient{response: textResponse(specJSON)}, nil, tracker, queue)

		out, err := uc.FromText(ctx, model.Scope{}, intake.FromTextInput{
			Text:         "make the export button export the filtered rows",
			SprintListID: "list-1",
			AssigneeID:   "u1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Restructured {
			t.Errorf("expected restructured output")
		}
		if captured.Name != "Export filtered rows" {
			t.Errorf("expected model title, got %q", captured.Name)
		}
		if captured.TimeEstimateMs == nil || *captured.TimeEstimateMs != 90*60_000 {
			t.Errorf("expected 90 minute estimate, got %v", captured.TimeEstimateMs)
		}
		if captured.AssigneeID != "u1" || captured.SprintListID != "list-1" {
			t.Errorf("expected assignee and sprint list forwarded, got %+v", captured)
		}
		if len(queue.items) != 1 || queue.items[0].TaskID != "t1" {
			t.Errorf("expected a queued review item, got %+v", queue.items)
		}
	})

	t.Run("Fenced Model Output Accepted", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGeminiClient{response: textResponse("```json\n" + specJSON + "\n```")}, nil, &fakeIntakeTracker{}, nil)
		out, err := uc.FromText(ctx, model.Scope{}, intake.FromTextInput{Text: "export stuff"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Restructured {
			t.Errorf("expected fence-wrapped JSON to be parsed")
		}
	})

	t.Run("Model Failure Falls Back To Raw Text", func(t *testing.T) {
		var captured repository.CreateTaskOptions
		tracker := &fakeIntakeTracker{
			createFunc: func(ctx context.Context, opt repository.CreateTaskOptions) (model.PlannerTask, error) {
				captured = opt
				return model.PlannerTask{ID: "t1", Name: opt.Name}, nil
			},
		}
		uc := New(&mockLogger{}, &mockGeminiClient{err: errors.New("model down")}, nil, tracker, nil)

		out, err := uc.FromText(ctx, model.Scope{}, intake.FromTextInput{Text: "fix the login page"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Restructured {
			t.Errorf("expected fallback output")
		}
		if captured.Name != "fix the login page" {
			t.Errorf("expected raw text as title, got %q", captured.Name)
		}
		if captured.TimeEstimateMs == nil || *captured.TimeEstimateMs != 60*60_000 {
			t.Errorf("expected default 60 minute estimate, got %v", captured.TimeEstimateMs)
		}
	})

	t.Run("Garbage Model Output Falls Back", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGeminiClient{response: textResponse("sure, here is the task!")}, nil, &fakeIntakeTracker{}, nil)
		out, err := uc.FromText(ctx, model.Scope{}, intake.FromTextInput{Text: "tidy the docs"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Restructured {
			t.Errorf("expected fallback for non-JSON output")
		}
	})

	t.Run("Queue Failure Does Not Lose The Task", func(t *testing.T) {
		queue := &fakeQueue{err: errors.New("store down")}
		uc := New(&mockLogger{}, &mockGeminiClient{response: textResponse(specJSON)}, nil, &fakeIntakeTracker{}, queue)
		out, err := uc.FromText(ctx, model.Scope{}, intake.FromTextInput{Text: "export stuff"})
		if err != nil {
			t.Fatalf("expected success despite queue failure, got %v", err)
		}
		if out.Task.ID == "" {
			t.Errorf("expected created task in output")
		}
	})

	t.Run("Create Failure Surfaces", func(t *testing.T) {
		tracker := &fakeIntakeTracker{
			createFunc: func(ctx context.Context, opt repository.CreateTaskOptions) (model.PlannerTask, error) {
				return model.PlannerTask{}, errors.New("tracker down")
			},
		}
		uc := New(&mockLogger{}, &mockGeminiClient{response: textResponse(specJSON)}, nil, tracker, nil)
		if _, err := uc.FromText(ctx, model.Scope{}, intake.FromTextInput{Text: "export stuff"}); err == nil {
			t.Errorf("expected create error to surface")
		}
	})
}

func TestFromAudio(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Audio Error", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGeminiClient{}, &fakeTranscriber{}, &fakeIntakeTracker{}, nil)
		_, err := uc.FromAudio(ctx, model.Scope{}, intake.FromAudioInput{})
		if !errors.Is(err, intake.ErrEmptyAudio) {
			t.Errorf("expected ErrEmptyAudio, got %v", err)
		}
	})

	t.Run("Transcript Feeds Text Intake", func(t *testing.T) {
		transcriber := &fakeTranscriber{transcript: "fix the login page"}
		uc := New(&mockLogger{}, &mockGeminiClient{response: textResponse(specJSON)}, transcriber, &fakeIntakeTracker{}, nil)

		out, err := uc.FromAudio(ctx, model.Scope{}, intake.FromAudioInput{AudioContent: "b64-audio"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transcript != "fix the login page" {
			t.Errorf("expected the transcript in the output, got %q", out.Transcript)
		}
		if !out.Restructured {
			t.Errorf("expected the transcript restructured")
		}
	})

	t.Run("Silent Clip Rejected", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGeminiClient{}, &fakeTranscriber{transcript: "  "}, &fakeIntakeTracker{}, nil)
		_, err := uc.FromAudio(ctx, model.Scope{}, intake.FromAudioInput{AudioContent: "b64-audio"})
		if !errors.Is(err, intake.ErrEmptyText) {
			t.Errorf("expected ErrEmptyText for a silent clip, got %v", err)
		}
	})

	t.Run("Transcription Failure Surfaces", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGeminiClient{}, &fakeTranscriber{err: errors.New("speech down")}, &fakeIntakeTracker{}, nil)
		if _, err := uc.FromAudio(ctx, model.Scope{}, intake.FromAudioInput{AudioContent: "b64-audio"}); err == nil {
			t.Errorf("expected transcription error to surface")
		}
	})
}
