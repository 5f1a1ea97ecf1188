package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner/repository"
	docstoreAPI "voice-sprint-planner/pkg/docstore"
	pkgLog "voice-sprint-planner/pkg/log"
)

// Document paths in the store. The documents are maintained by an external
// sync process; this repository only reads them.
const (
	sprintCalendarPath = "planner/sprints"
	teamDirectoryPath  = "planner/team"
)

const defaultCacheTTL = 5 * time.Minute

type implRepository struct {
	client *docstoreAPI.Client
	cache  *expirable.LRU[string, any]
	l      pkgLog.Logger
}

// New creates a metadata repository backed by the document store. Documents
// are cached with a TTL so repeated agenda builds do not refetch them.
func New(client *docstoreAPI.Client, cacheTTL time.Duration, l pkgLog.Logger) repository.MetadataRepository {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &implRepository{
		client: client,
		cache:  expirable.NewLRU[string, any](8, nil, cacheTTL),
		l:      l,
	}
}

// sprintDoc is the stored shape of one sprint calendar entry, keyed by
// sprint id in the document.
type sprintDoc struct {
	Name        string `json:"name"`
	Number      int    `json:"number,omitempty"`
	StartDate   *int64 `json:"startDate,omitempty"`
	EndDate     *int64 `json:"endDate,omitempty"`
	FirstMonday *int64 `json:"firstMonday,omitempty"`
	ListID      string `json:"listId,omitempty"`
}

// memberDoc is the stored shape of one team directory entry, keyed by
// member id in the document.
type memberDoc struct {
	Name    string   `json:"name"`
	Email   string   `json:"email,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
	Team    string   `json:"team,omitempty"`
}

func (r *implRepository) SprintCalendar(ctx context.Context) (map[string]model.Sprint, error) {
	if cached, ok := r.cache.Get(sprintCalendarPath); ok {
		return cached.(map[string]model.Sprint), nil
	}

	var doc map[string]sprintDoc
	if err := r.client.Get(ctx, sprintCalendarPath, &doc); err != nil {
		return nil, fmt.Errorf("failed to load sprint calendar: %w", err)
	}

	calendar := make(map[string]model.Sprint, len(doc))
	for id, s := range doc {
		calendar[id] = model.Sprint{
			ID:          id,
			Name:        s.Name,
			Number:      s.Number,
			StartDate:   s.StartDate,
			EndDate:     s.EndDate,
			FirstMonday: s.FirstMonday,
			ListID:      s.ListID,
		}
	}

	r.cache.Add(sprintCalendarPath, calendar)
	r.l.Debugf(ctx, "metadata repository: loaded %d sprints", len(calendar))
	return calendar, nil
}

func (r *implRepository) TeamDirectory(ctx context.Context) (map[string]model.TeamMember, error) {
	if cached, ok := r.cache.Get(teamDirectoryPath); ok {
		return cached.(map[string]model.TeamMember), nil
	}

	var doc map[string]memberDoc
	if err := r.client.Get(ctx, teamDirectoryPath, &doc); err != nil {
		return nil, fmt.Errorf("failed to load team directory: %w", err)
	}

	directory := make(map[string]model.TeamMember, len(doc))
	for id, m := range doc {
		aliases := m.Aliases
		if len(aliases) == 0 && m.Name != "" {
			aliases = []string{m.Name}
		}
		directory[id] = model.TeamMember{
			ID:      id,
			Name:    m.Name,
			Email:   m.Email,
			Aliases: aliases,
			Team:    m.Team,
		}
	}

	r.cache.Add(teamDirectoryPath, directory)
	r.l.Debugf(ctx, "metadata repository: loaded %d members", len(directory))
	return directory, nil
}
