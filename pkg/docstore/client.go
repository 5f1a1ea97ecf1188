package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is an HTTP wrapper for a path-addressed JSON document store.
// A document lives at "{base}/{path}.json" and holds one JSON value.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new document store client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// Get reads the document at path into out. A missing document decodes the
// JSON null the store returns, leaving out at its zero value.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.documentURL(path), nil)
	if err != nil {
		return fmt.Errorf("failed to build docstore get request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call docstore: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("docstore get %s error %d: %s", path, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode docstore document %s: %w", path, err)
	}
	return nil
}

// Set writes value as the document at path, replacing any existing value.
func (c *Client) Set(ctx context.Context, path string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal docstore document %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.documentURL(path), bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("failed to build docstore set request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call docstore: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("docstore set %s error %d: %s", path, resp.StatusCode, string(body))
	}
	return nil
}

// Delete removes the document at path. Deleting a missing document is not
// an error in the store.
func (c *Client) Delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.documentURL(path), nil)
	if err != nil {
		return fmt.Errorf("failed to build docstore delete request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call docstore: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("docstore delete %s error %d: %s", path, resp.StatusCode, string(body))
	}
	return nil
}

func (c *Client) documentURL(path string) string {
	u := fmt.Sprintf("%s/%s.json", c.baseURL, strings.Trim(path, "/"))
	if c.accessToken != "" {
		u += "?auth=" + c.accessToken
	}
	return u
}
