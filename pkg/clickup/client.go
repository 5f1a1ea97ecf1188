package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client is the HTTP wrapper for the task-tracking REST API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new tracking-service HTTP client.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiToken:   apiToken,
		httpClient: &http.Client{},
	}
}

const pageSize = 100

// ListTasks fetches every task in a list, following server-side pagination
// until the last page.
func (c *Client) ListTasks(ctx context.Context, listID string, opt ListTasksOptions) ([]Task, error) {
	var all []Task

	for page := 0; ; page++ {
		q := url.Values{}
		q.Set("page", fmt.Sprintf("%d", page))
		if opt.IncludeClosed {
			q.Set("include_closed", "true")
		}
		if opt.Subtasks {
			q.Set("subtasks", "true")
		}

		endpoint := fmt.Sprintf("%s/api/v2/list/%s/task?%s", c.baseURL, listID, q.Encode())

		var resp listTasksResponse
		if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
			return nil, fmt.Errorf("failed to list tasks for list %s: %w", listID, err)
		}

		all = append(all, resp.Tasks...)

		if resp.LastPage || len(resp.Tasks) < pageSize {
			break
		}
	}

	return all, nil
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	endpoint := fmt.Sprintf("%s/api/v2/task/%s", c.baseURL, taskID)

	var task Task
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &task); err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}
	return &task, nil
}

// UpdateTask applies a partial update and returns the server's updated task.
func (c *Client) UpdateTask(ctx context.Context, taskID string, patch TaskPatch) (*Task, error) {
	if len(patch) == 0 {
		return nil, fmt.Errorf("empty patch for task %s", taskID)
	}

	endpoint := fmt.Sprintf("%s/api/v2/task/%s", c.baseURL, taskID)

	var task Task
	if err := c.do(ctx, http.MethodPut, endpoint, patch, &task); err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	return &task, nil
}

// CreateTask creates a task in the given list.
func (c *Client) CreateTask(ctx context.Context, listID string, req CreateTaskRequest) (*Task, error) {
	endpoint := fmt.Sprintf("%s/api/v2/list/%s/task", c.baseURL, listID)

	var task Task
	if err := c.do(ctx, http.MethodPost, endpoint, req, &task); err != nil {
		return nil, fmt.Errorf("failed to create task in list %s: %w", listID, err)
	}
	return &task, nil
}

// AddTaskToList adds a secondary list membership to a task.
func (c *Client) AddTaskToList(ctx context.Context, listID, taskID string) error {
	endpoint := fmt.Sprintf("%s/api/v2/list/%s/task/%s", c.baseURL, listID, taskID)

	if err := c.do(ctx, http.MethodPost, endpoint, nil, nil); err != nil {
		return fmt.Errorf("failed to add task %s to list %s: %w", taskID, listID, err)
	}
	return nil
}

// RemoveTaskFromList removes a list membership from a task. The server
// rejects removing a task's primary list; callers re-home the task first.
func (c *Client) RemoveTaskFromList(ctx context.Context, listID, taskID string) error {
	endpoint := fmt.Sprintf("%s/api/v2/list/%s/task/%s", c.baseURL, listID, taskID)

	if err := c.do(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return fmt.Errorf("failed to remove task %s from list %s: %w", taskID, listID, err)
	}
	return nil
}

// do executes one request with auth headers and decodes the JSON response
// into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call tracking API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("tracking API error %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode tracking API response: %w", err)
	}
	return nil
}
