package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"voice-sprint-planner/internal/intake"
	"voice-sprint-planner/internal/intake/repository"
	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner"
	"voice-sprint-planner/pkg/gemini"
)

const (
	minEstimateMinutes     = 15
	defaultEstimateMinutes = 60
	maxFallbackTitleLen    = 120
)

func (uc *implUseCase) FromText(ctx context.Context, sc model.Scope, input intake.FromTextInput) (intake.Output, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return intake.Output{}, intake.ErrEmptyText
	}

	spec, restructured := uc.restructure(ctx, text)

	minutes := spec.EstimatedDurationMinutes
	if minutes < minEstimateMinutes {
		minutes = defaultEstimateMinutes
	}
	estimateMs := int64(minutes) * int64(time.Minute/time.Millisecond)

	task, err := uc.tracker.CreateTask(ctx, repository.CreateTaskOptions{
		Name:           spec.Title,
		Description:    planner.FormatDescription(spec.Title, spec.Objective, spec.AcceptanceCriteria),
		TimeEstimateMs: &estimateMs,
		AssigneeID:     input.AssigneeID,
		SprintListID:   input.SprintListID,
	})
	if err != nil {
		return intake.Output{}, fmt.Errorf("intake usecase: %w", err)
	}

	// The review queue is best-effort: a queue failure never loses the
	// already-created task.
	if uc.queue != nil {
		item := repository.PendingIntake{
			TaskID:    task.ID,
			TaskName:  task.Name,
			RawText:   text,
			CreatedAt: time.Now().UTC(),
		}
		if err := uc.queue.Enqueue(ctx, item); err != nil {
			uc.l.Warnf(ctx, "intake usecase: failed to queue task %s for review: %v", task.ID, err)
		}
	}

	uc.l.Infof(ctx, "intake usecase: created task %s (restructured=%t)", task.ID, restructured)
	return intake.Output{Task: task, Restructured: restructured}, nil
}

// restructure asks the model to rewrite the raw text into a task spec. Any
// model or parse failure degrades to the raw text as the task title.
func (uc *implUseCase) restructure(ctx context.Context, text string) (gemini.RestructuredTask, bool) {
	fallback := gemini.RestructuredTask{
		Title:     fallbackTitle(text),
		Objective: text,
	}

	if uc.llm == nil {
		return fallback, false
	}

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: gemini.BuildRestructurePrompt(text)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{Temperature: 0.2},
	})
	if err != nil {
		uc.l.Warnf(ctx, "intake usecase: restructure failed, using raw text: %v", err)
		return fallback, false
	}

	raw := firstCandidateText(resp)
	var spec gemini.RestructuredTask
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &spec); err != nil || strings.TrimSpace(spec.Title) == "" {
		uc.l.Warnf(ctx, "intake usecase: unusable restructure output, using raw text: %v", err)
		return fallback, false
	}

	return spec, true
}

func firstCandidateText(resp *gemini.GenerateResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// stripCodeFence removes a markdown code fence the model sometimes wraps
// its JSON in despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func fallbackTitle(text string) string {
	if line := strings.SplitN(text, "\n", 2)[0]; len(line) <= maxFallbackTitleLen {
		return line
	}
	return strings.TrimSpace(strings.SplitN(text, "\n", 2)[0][:maxFallbackTitleLen])
}
