package clickup

import (
	"context"
	"fmt"
	"strconv"

	"voice-sprint-planner/internal/intake/repository"
	"voice-sprint-planner/internal/model"
	clickupAPI "voice-sprint-planner/pkg/clickup"
	pkgLog "voice-sprint-planner/pkg/log"
)

type implRepository struct {
	client        *clickupAPI.Client
	backlogListID string
	l             pkgLog.Logger
}

// New creates a new intake tracking-service repository.
func New(client *clickupAPI.Client, backlogListID string, l pkgLog.Logger) repository.TrackerRepository {
	return &implRepository{
		client:        client,
		backlogListID: backlogListID,
		l:             l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.PlannerTask, error) {
	req := clickupAPI.CreateTaskRequest{
		Name:         opt.Name,
		Description:  opt.Description,
		TimeEstimate: opt.TimeEstimateMs,
	}
	if opt.AssigneeID != "" {
		req.Assignees = []string{opt.AssigneeID}
	}

	created, err := r.client.CreateTask(ctx, r.backlogListID, req)
	if err != nil {
		return model.PlannerTask{}, fmt.Errorf("failed to create task: %w", err)
	}

	// Sprint membership is a secondary location; the backlog stays home.
	if opt.SprintListID != "" {
		if err := r.client.AddTaskToList(ctx, opt.SprintListID, created.ID); err != nil {
			r.l.Warnf(ctx, "intake repository: task %s created but sprint list add failed: %v", created.ID, err)
		}
	}

	return createdToModel(*created), nil
}

func createdToModel(t clickupAPI.Task) model.PlannerTask {
	assignees := make([]string, 0, len(t.Assignees))
	for _, a := range t.Assignees {
		assignees = append(assignees, a.ID)
	}

	return model.PlannerTask{
		ID:             t.ID,
		Name:           t.Name,
		Status:         t.Status.Status,
		DueDate:        parseEpochMs(t.DueDate),
		StartDate:      parseEpochMs(t.StartDate),
		TimeEstimateMs: t.TimeEstimate,
		AssigneeIDs:    assignees,
		URL:            t.URL,
		Description:    t.Description,
		ListID:         t.List.ID,
		ListName:       t.List.Name,
	}
}

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
