package clickup_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"voice-sprint-planner/pkg/clickup"
)

func TestClient(t *testing.T) {
	mux := http.NewServeMux()

	// Two pages of tasks: 100 on page 0, 1 on page 1.
	mux.HandleFunc("/api/v2/list/list-1/task", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var req clickup.CreateTaskRequest
			json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(clickup.Task{ID: "created", Name: req.Name})
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		var tasks []clickup.Task
		switch page {
		case 0:
			for i := 0; i < 100; i++ {
				tasks = append(tasks, clickup.Task{ID: "p0-" + strconv.Itoa(i)})
			}
		case 1:
			tasks = []clickup.Task{{ID: "p1-0"}}
		}
		json.NewEncoder(w).Encode(map[string]any{"tasks": tasks, "last_page": page == 1})
	})

	mux.HandleFunc("/api/v2/task/task-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			var patch map[string]any
			json.NewDecoder(r.Body).Decode(&patch)
			name, _ := patch["name"].(string)
			json.NewEncoder(w).Encode(clickup.Task{ID: "task-1", Name: name})
			return
		}
		json.NewEncoder(w).Encode(clickup.Task{ID: "task-1", Name: "existing"})
	})

	mux.HandleFunc("/api/v2/task/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"err":"nope"}`, http.StatusBadRequest)
	})

	mux.HandleFunc("/api/v2/list/list-2/task/task-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := clickup.NewClient(ts.URL, "test-token")
	ctx := context.Background()

	t.Run("List Tasks Follows Pagination", func(t *testing.T) {
		tasks, err := client.ListTasks(ctx, "list-1", clickup.ListTasksOptions{Subtasks: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 101 {
			t.Errorf("expected 101 tasks over two pages, got %d", len(tasks))
		}
	})

	t.Run("Update Task Round Trip", func(t *testing.T) {
		updated, err := client.UpdateTask(ctx, "task-1", clickup.TaskPatch{"name": "renamed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "renamed" {
			t.Errorf("expected server-updated name, got %q", updated.Name)
		}
	})

	t.Run("Empty Patch Rejected Without Network Call", func(t *testing.T) {
		if _, err := client.UpdateTask(ctx, "task-1", clickup.TaskPatch{}); err == nil {
			t.Errorf("expected error for empty patch")
		}
	})

	t.Run("Non Success Status Surfaces Body", func(t *testing.T) {
		_, err := client.GetTask(ctx, "broken")
		if err == nil {
			t.Fatalf("expected error from 400 response")
		}
	})

	t.Run("List Membership Calls", func(t *testing.T) {
		if err := client.AddTaskToList(ctx, "list-2", "task-1"); err != nil {
			t.Errorf("add membership: %v", err)
		}
		if err := client.RemoveTaskFromList(ctx, "list-2", "task-1"); err != nil {
			t.Errorf("remove membership: %v", err)
		}
	})

	t.Run("Create Task", func(t *testing.T) {
		created, err := client.CreateTask(ctx, "list-1", clickup.CreateTaskRequest{Name: "from intake"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "created" || created.Name != "from intake" {
			t.Errorf("unexpected created task: %+v", created)
		}
	})
}
