package resolver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/capability"
	"github.com/conductorhq/conductor/internal/platform/config"
)

func testCatalog() []capability.Capability {
	return []capability.Capability{
		{
			Name:        "send_slack_message",
			Description: "Send a message to a Slack channel",
			Service:     domain.ServiceSlack,
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"channel_name": map[string]any{"type": "string"},
					"text":         map[string]any{"type": "string"},
				},
				"required": []string{"channel_name", "text"},
			},
		},
		{
			Name:        "create_jira_ticket",
			Description: "Create a new Jira ticket",
			Service:     domain.ServiceJira,
		},
	}
}

// newTestResolver points the client at a fake completions endpoint that
// captures the request body and returns the given response JSON.
func newTestResolver(t *testing.T, response string, captured *map[string]any) *Resolver {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("decoding request body: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return New(&config.ResolverConfig{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		Model:     "gpt-4o-mini",
		MaxTokens: 500,
	}, slog.New(slog.DiscardHandler))
}

func TestResolve_ToolCalls(t *testing.T) {
	t.Parallel()

	var captured map[string]any
	r := newTestResolver(t, `{
		"id": "chatcmpl-1",
		"choices": [{
			"index": 0,
			"finish_reason": "tool_calls",
			"message": {
				"role": "assistant",
				"content": "Sending the message, then filing the ticket.",
				"tool_calls": [
					{"id": "call_1", "type": "function", "function": {
						"name": "send_slack_message",
						"arguments": "{\"channel_name\": \"#general\", \"text\": \"hi\"}"
					}},
					{"id": "call_2", "type": "function", "function": {
						"name": "create_jira_ticket",
						"arguments": "{\"project_key\": \"OPS\"}"
					}}
				]
			}
		}]
	}`, &captured)

	intents, summary, err := r.Resolve(context.Background(), "post hi and file a ticket", testCatalog())
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if len(intents) != 2 {
		t.Fatalf("Resolve() returned %d intents, want 2", len(intents))
	}
	if intents[0].Name != "send_slack_message" || intents[1].Name != "create_jira_ticket" {
		t.Errorf("intent order = [%s %s]", intents[0].Name, intents[1].Name)
	}
	if intents[0].Args["channel_name"] != "#general" || intents[0].Args["text"] != "hi" {
		t.Errorf("intent args = %v", intents[0].Args)
	}
	if summary != "Sending the message, then filing the ticket." {
		t.Errorf("summary = %q", summary)
	}

	tools, _ := captured["tools"].([]any)
	if len(tools) != 2 {
		t.Fatalf("request carried %d tools, want the full catalog", len(tools))
	}
	first, _ := tools[0].(map[string]any)
	fn, _ := first["function"].(map[string]any)
	if fn["name"] != "send_slack_message" {
		t.Errorf("first tool = %v", fn)
	}
	msgs, _ := captured["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("request carried %d messages, want system + user", len(msgs))
	}
}

func TestResolve_PlainAnswer(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, `{
		"id": "chatcmpl-2",
		"choices": [{
			"index": 0,
			"finish_reason": "stop",
			"message": {"role": "assistant", "content": "Nothing to do here."}
		}]
	}`, nil)

	intents, summary, err := r.Resolve(context.Background(), "hello", testCatalog())
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if len(intents) != 0 {
		t.Fatalf("Resolve() returned %d intents, want 0", len(intents))
	}
	if summary != "Nothing to do here." {
		t.Errorf("summary = %q", summary)
	}
}

func TestResolve_DefaultSummary(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, `{
		"id": "chatcmpl-3",
		"choices": [{
			"index": 0,
			"finish_reason": "tool_calls",
			"message": {
				"role": "assistant",
				"tool_calls": [
					{"id": "call_1", "type": "function", "function": {
						"name": "send_slack_message", "arguments": "{}"
					}}
				]
			}
		}]
	}`, nil)

	_, summary, err := r.Resolve(context.Background(), "post something", testCatalog())
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if summary != "Functions executed successfully" {
		t.Errorf("summary = %q, want the default when the model emits none", summary)
	}
}

func TestResolve_MalformedArguments(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, `{
		"id": "chatcmpl-4",
		"choices": [{
			"index": 0,
			"finish_reason": "tool_calls",
			"message": {
				"role": "assistant",
				"tool_calls": [
					{"id": "call_1", "type": "function", "function": {
						"name": "send_slack_message", "arguments": "{not json"
					}}
				]
			}
		}]
	}`, nil)

	if _, _, err := r.Resolve(context.Background(), "post something", testCatalog()); err == nil {
		t.Fatal("Resolve() error = nil, want arguments decode failure")
	}
}

func TestAnalyze_PromptSelection(t *testing.T) {
	t.Parallel()

	var captured map[string]any
	r := newTestResolver(t, `{
		"id": "chatcmpl-5",
		"choices": [{
			"index": 0,
			"finish_reason": "stop",
			"message": {"role": "assistant", "content": "negative, 0.92"}
		}]
	}`, &captured)

	result, err := r.Analyze(context.Background(), "the deploy broke everything", "sentiment")
	if err != nil {
		t.Fatalf("Analyze() error = %v, want nil", err)
	}
	if result != "negative, 0.92" {
		t.Errorf("result = %q", result)
	}

	msgs, _ := captured["messages"].([]any)
	if len(msgs) != 1 {
		t.Fatalf("request carried %d messages, want 1", len(msgs))
	}
	first, _ := msgs[0].(map[string]any)
	content, _ := first["content"].(string)
	if !strings.Contains(content, "sentiment") || !strings.Contains(content, "the deploy broke everything") {
		t.Errorf("prompt = %q, want sentiment instructions with the text inlined", content)
	}
}

func TestAnalyze_UnknownTypeFallsBackToSummary(t *testing.T) {
	t.Parallel()

	var captured map[string]any
	r := newTestResolver(t, `{
		"id": "chatcmpl-6",
		"choices": [{
			"index": 0,
			"finish_reason": "stop",
			"message": {"role": "assistant", "content": "short version"}
		}]
	}`, &captured)

	if _, err := r.Analyze(context.Background(), "long text", "vibes"); err != nil {
		t.Fatalf("Analyze() error = %v, want nil", err)
	}
	msgs, _ := captured["messages"].([]any)
	first, _ := msgs[0].(map[string]any)
	content, _ := first["content"].(string)
	if !strings.Contains(content, "concise summary") {
		t.Errorf("prompt = %q, want summary fallback", content)
	}
}
