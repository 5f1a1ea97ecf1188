package model

// PlannerTask is a task owned by the external tracking service, as seen by
// the planner. Local copies are mutated optimistically and reconciled with
// server responses; the tracker remains authoritative.
type PlannerTask struct {
	ID                 string
	Name               string
	Status             string   // tracker status label, e.g. "to do", "complete"
	DueDate            *int64   // epoch ms, nil when unscheduled
	StartDate          *int64   // epoch ms, nil when not set
	TimeEstimateMs     *int64   // estimated duration in ms, nil when not set
	AssigneeIDs        []string // tracker member ids
	URL                string   // deep link to the task in the tracker UI
	Description        string   // raw description text
	Objective          string   // parsed from Description
	AcceptanceCriteria string   // parsed from Description
	ListID             string   // primary (home) list id
	ListName           string
}

// HasAssignee reports whether the task is assigned to the given member id.
func (t PlannerTask) HasAssignee(id string) bool {
	for _, a := range t.AssigneeIDs {
		if a == id {
			return true
		}
	}
	return false
}

// Sprint is read-only sprint calendar metadata maintained by an external
// sync process.
type Sprint struct {
	ID          string
	Name        string
	Number      int    // optional sequence number, 0 when absent
	StartDate   *int64 // epoch ms
	EndDate     *int64 // epoch ms
	FirstMonday *int64 // epoch ms anchor of the 7-day window; StartDate is the fallback anchor
	ListID      string // the sprint's own list in the tracking service
}

// WindowAnchor returns the epoch-ms anchor of the sprint's 7-day window,
// or false when neither FirstMonday nor StartDate is set.
func (s Sprint) WindowAnchor() (int64, bool) {
	if s.FirstMonday != nil {
		return *s.FirstMonday, true
	}
	if s.StartDate != nil {
		return *s.StartDate, true
	}
	return 0, false
}

// TeamMember is a read-only entry from the team directory.
type TeamMember struct {
	ID      string
	Name    string
	Email   string
	Aliases []string // ordered address aliases, non-empty
	Team    string
}
