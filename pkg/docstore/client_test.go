package docstore_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"voice-sprint-planner/pkg/docstore"
)

func TestClient(t *testing.T) {
	var mu sync.Mutex
	store := map[string]json.RawMessage{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			doc, ok := store[r.URL.Path]
			if !ok {
				w.Write([]byte("null"))
				return
			}
			w.Write(doc)
		case http.MethodPut:
			var raw json.RawMessage
			json.NewDecoder(r.Body).Decode(&raw)
			store[r.URL.Path] = raw
			w.Write(raw)
		case http.MethodDelete:
			delete(store, r.URL.Path)
			w.Write([]byte("null"))
		}
	}))
	defer ts.Close()

	client := docstore.NewClient(ts.URL, "")
	ctx := context.Background()

	t.Run("Set Then Get", func(t *testing.T) {
		in := map[string]string{"name": "Sprint 12"}
		if err := client.Set(ctx, "sprints/s12", in); err != nil {
			t.Fatalf("set: %v", err)
		}

		var out map[string]string
		if err := client.Get(ctx, "sprints/s12", &out); err != nil {
			t.Fatalf("get: %v", err)
		}
		if out["name"] != "Sprint 12" {
			t.Errorf("expected stored value back, got %v", out)
		}
	})

	t.Run("Missing Document Decodes To Zero Value", func(t *testing.T) {
		var out map[string]string
		if err := client.Get(ctx, "sprints/nope", &out); err != nil {
			t.Fatalf("get: %v", err)
		}
		if out != nil {
			t.Errorf("expected nil map for missing document, got %v", out)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		client.Set(ctx, "queue/x", "pending")
		if err := client.Delete(ctx, "queue/x"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		var out *string
		client.Get(ctx, "queue/x", &out)
		if out != nil {
			t.Errorf("expected deleted document to read as null")
		}
	})
}
