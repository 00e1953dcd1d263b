package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/conductorhq/conductor/internal/domain"
)

func TestJira_CreateTicket(t *testing.T) {
	t.Parallel()

	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/rest/api/3/issue" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"key": "OPS-42", "id": "10042", "self": "https://example.atlassian.net/rest/api/3/issue/10042",
		})
	}))
	t.Cleanup(srv.Close)

	a := NewJira(newTestClient(t, "jira", srv.URL), slog.New(slog.DiscardHandler))
	got, err := a.Invoke(context.Background(), "create_jira_ticket", map[string]any{
		"project_key": "OPS",
		"summary":     "prod is down",
		"description": "urgent outage reported in #ops",
	}, "jira-token")
	if err != nil {
		t.Fatalf("Invoke() error = %v, want nil", err)
	}

	fields, _ := payload["fields"].(map[string]any)
	project, _ := fields["project"].(map[string]any)
	if project["key"] != "OPS" || fields["summary"] != "prod is down" {
		t.Errorf("fields = %v", fields)
	}
	issueType, _ := fields["issuetype"].(map[string]any)
	priority, _ := fields["priority"].(map[string]any)
	if issueType["name"] != "Task" || priority["name"] != "Medium" {
		t.Errorf("defaults not applied: issuetype=%v priority=%v", issueType, priority)
	}
	description, _ := fields["description"].(map[string]any)
	if description["type"] != "doc" {
		t.Errorf("description = %v, want ADF document", description)
	}

	if got["key"] != "OPS-42" || got["project_key"] != "OPS" {
		t.Errorf("result = %v", got)
	}
}

func TestJira_DeleteTicket(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/rest/api/3/issue/OPS-42" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	a := NewJira(newTestClient(t, "jira", srv.URL), slog.New(slog.DiscardHandler))
	got, err := a.InvokeCompensation(context.Background(), "delete_jira_ticket",
		map[string]any{"ticket_key": "OPS-42"}, "jira-token")
	if err != nil {
		t.Fatalf("InvokeCompensation() error = %v, want nil", err)
	}
	if got["deleted"] != true || got["ticket_key"] != "OPS-42" {
		t.Errorf("result = %v", got)
	}
}

func TestJira_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errorMessages": ["project OPS does not exist"]}`))
	}))
	t.Cleanup(srv.Close)

	a := NewJira(newTestClient(t, "jira", srv.URL), slog.New(slog.DiscardHandler))
	_, err := a.Invoke(context.Background(), "create_jira_ticket", map[string]any{
		"project_key": "OPS", "summary": "x", "description": "y",
	}, "jira-token")

	var aerr *domain.AdapterError
	if !errors.As(err, &aerr) {
		t.Fatalf("Invoke() error = %v, want *domain.AdapterError", err)
	}
	if aerr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", aerr.Status)
	}
}

func TestJira_MissingRequiredArgs(t *testing.T) {
	t.Parallel()

	a := NewJira(newTestClient(t, "jira", "http://unused"), slog.New(slog.DiscardHandler))
	if _, err := a.Invoke(context.Background(), "create_jira_ticket",
		map[string]any{"summary": "no project"}, "tok"); !errors.Is(err, domain.ErrService) {
		t.Fatalf("Invoke() error = %v, want ErrService", err)
	}
}
