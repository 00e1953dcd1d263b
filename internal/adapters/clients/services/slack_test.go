package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/conductorhq/conductor/internal/domain"
)

func channelList(channels ...map[string]any) map[string]any {
	return map[string]any{"ok": true, "channels": channels}
}

func TestSlack_SendMessage(t *testing.T) {
	t.Parallel()

	var posted map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer xoxb-1" {
			t.Errorf("Authorization = %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/conversations.list":
			_ = json.NewEncoder(w).Encode(channelList(
				map[string]any{"id": "C042", "name": "general"},
			))
		case "/chat.postMessage":
			_ = json.NewDecoder(r.Body).Decode(&posted)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok": true, "channel": "C042", "ts": "1714.001",
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)

	a := NewSlack(newTestClient(t, "slack", srv.URL), slog.New(slog.DiscardHandler))
	got, err := a.Invoke(context.Background(), "send_slack_message",
		map[string]any{"channel_name": "#general", "text": "deploy done"}, "xoxb-1")
	if err != nil {
		t.Fatalf("Invoke() error = %v, want nil", err)
	}

	if posted["channel"] != "C042" || posted["text"] != "deploy done" {
		t.Errorf("posted payload = %v", posted)
	}
	if got["channel"] != "C042" || got["ts"] != "1714.001" {
		t.Errorf("result = %v, want deletion handle (channel id + ts)", got)
	}
}

func TestSlack_GetMessages(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/conversations.list":
			_ = json.NewEncoder(w).Encode(channelList(
				map[string]any{"id": "C1", "name": "ops"},
			))
		case "/conversations.history":
			if got := r.URL.Query().Get("channel"); got != "C1" {
				t.Errorf("history channel = %q", got)
			}
			if got := r.URL.Query().Get("limit"); got != "50" {
				t.Errorf("history limit = %q, want the default", got)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok": true,
				"messages": []any{
					map[string]any{"ts": "100.1", "text": "old"},
					map[string]any{"ts": "100.2", "text": "older"},
				},
				"has_more": false,
			})
		}
	}))
	t.Cleanup(srv.Close)

	a := NewSlack(newTestClient(t, "slack", srv.URL), slog.New(slog.DiscardHandler))
	got, err := a.Invoke(context.Background(), "get_slack_messages",
		map[string]any{"channel_name": "ops"}, "xoxb-1")
	if err != nil {
		t.Fatalf("Invoke() error = %v, want nil", err)
	}
	if got["channel_id"] != "C1" || got["message_count"] != 2 {
		t.Errorf("result = %v", got)
	}
}

func TestSlack_GetMessages_UnreadOnly(t *testing.T) {
	t.Parallel()

	fresh := fmt.Sprintf("%d.000100", time.Now().Unix())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/conversations.list":
			_ = json.NewEncoder(w).Encode(channelList(
				map[string]any{"id": "C1", "name": "ops"},
			))
		case "/conversations.history":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok": true,
				"messages": []any{
					map[string]any{"ts": fresh, "text": "new"},
					map[string]any{"ts": "100.2", "text": "ancient"},
				},
			})
		}
	}))
	t.Cleanup(srv.Close)

	a := NewSlack(newTestClient(t, "slack", srv.URL), slog.New(slog.DiscardHandler))
	got, err := a.Invoke(context.Background(), "get_slack_messages",
		map[string]any{"channel_name": "ops", "unread_only": true}, "xoxb-1")
	if err != nil {
		t.Fatalf("Invoke() error = %v, want nil", err)
	}
	if got["message_count"] != 1 {
		t.Errorf("message_count = %v, want only the recent message", got["message_count"])
	}
}

func TestSlack_DeleteMessage(t *testing.T) {
	t.Parallel()

	var deleted map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat.delete" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&deleted)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	t.Cleanup(srv.Close)

	a := NewSlack(newTestClient(t, "slack", srv.URL), slog.New(slog.DiscardHandler))
	got, err := a.InvokeCompensation(context.Background(), "delete_slack_message",
		map[string]any{"channel": "C042", "ts": "1714.001"}, "xoxb-1")
	if err != nil {
		t.Fatalf("InvokeCompensation() error = %v, want nil", err)
	}
	if deleted["channel"] != "C042" || deleted["ts"] != "1714.001" {
		t.Errorf("delete payload = %v", deleted)
	}
	if got["deleted"] != true {
		t.Errorf("result = %v", got)
	}
}

func TestSlack_EnvelopeError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "invalid_auth"})
	}))
	t.Cleanup(srv.Close)

	a := NewSlack(newTestClient(t, "slack", srv.URL), slog.New(slog.DiscardHandler))
	_, err := a.Invoke(context.Background(), "send_slack_message",
		map[string]any{"channel_name": "ops", "text": "hi"}, "xoxb-1")
	if !errors.Is(err, domain.ErrService) {
		t.Fatalf("Invoke() error = %v, want ErrService", err)
	}
	var aerr *domain.AdapterError
	if !errors.As(err, &aerr) || aerr.Message != "slack api error: invalid_auth" {
		t.Errorf("error = %v, want the envelope error code", err)
	}
}

func TestSlack_ChannelNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(channelList())
	}))
	t.Cleanup(srv.Close)

	a := NewSlack(newTestClient(t, "slack", srv.URL), slog.New(slog.DiscardHandler))
	_, err := a.Invoke(context.Background(), "send_slack_message",
		map[string]any{"channel_name": "ghost", "text": "hi"}, "xoxb-1")
	if !errors.Is(err, domain.ErrService) {
		t.Fatalf("Invoke() error = %v, want ErrService", err)
	}
}

func TestSlack_UnsupportedFunction(t *testing.T) {
	t.Parallel()

	a := NewSlack(newTestClient(t, "slack", "http://unused"), slog.New(slog.DiscardHandler))
	if _, err := a.Invoke(context.Background(), "launch_missiles", nil, "tok"); !errors.Is(err, domain.ErrService) {
		t.Fatalf("Invoke() error = %v, want ErrService", err)
	}
	if _, err := a.InvokeCompensation(context.Background(), "delete_jira_ticket", nil, "tok"); !errors.Is(err, domain.ErrService) {
		t.Fatalf("InvokeCompensation() error = %v, want ErrService", err)
	}
}
