package clickup

// Task is the tracking service's task object.
type Task struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Status       TaskStatus `json:"status"`
	Description  string     `json:"description"`
	URL          string     `json:"url"`
	DueDate      *string    `json:"due_date"`      // epoch ms as a decimal string, null when unset
	StartDate    *string    `json:"start_date"`    // epoch ms as a decimal string, null when unset
	TimeEstimate *int64     `json:"time_estimate"` // ms, null when unset
	Assignees    []Assignee `json:"assignees"`
	List         ListRef    `json:"list"`      // primary (home) list
	Locations    []ListRef  `json:"locations"` // secondary list memberships
}

// TaskStatus is the nested status object on a task.
type TaskStatus struct {
	Status string `json:"status"`
}

// Assignee is a task assignee reference.
type Assignee struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ListRef is a list reference on a task.
type ListRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListTasksOptions controls a paginated list-tasks query.
type ListTasksOptions struct {
	IncludeClosed bool
	Subtasks      bool
}

// TaskPatch is the body of a partial task update. Keys present in the map
// are sent; a nil value is serialized as an explicit null, which clears the
// field on the server. An empty patch is rejected client-side.
type TaskPatch map[string]any

// CreateTaskRequest is the body for creating a task in a list.
type CreateTaskRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	DueDate      *int64   `json:"due_date,omitempty"`
	StartDate    *int64   `json:"start_date,omitempty"`
	TimeEstimate *int64   `json:"time_estimate,omitempty"`
	Assignees    []string `json:"assignees,omitempty"`
}

type listTasksResponse struct {
	Tasks    []Task `json:"tasks"`
	LastPage bool   `json:"last_page"`
}
