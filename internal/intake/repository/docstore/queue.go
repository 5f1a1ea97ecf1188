package docstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"voice-sprint-planner/internal/intake/repository"
	docstoreAPI "voice-sprint-planner/pkg/docstore"
	pkgLog "voice-sprint-planner/pkg/log"
)

const pendingPathPrefix = "intake/pending"

type implRepository struct {
	client *docstoreAPI.Client
	l      pkgLog.Logger
}

// New creates a review-queue repository backed by the document store.
func New(client *docstoreAPI.Client, l pkgLog.Logger) repository.QueueRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) Enqueue(ctx context.Context, item repository.PendingIntake) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	path := fmt.Sprintf("%s/%s", pendingPathPrefix, item.ID)
	if err := r.client.Set(ctx, path, item); err != nil {
		return fmt.Errorf("failed to enqueue pending intake: %w", err)
	}

	r.l.Debugf(ctx, "intake repository: queued pending item %s for task %s", item.ID, item.TaskID)
	return nil
}
