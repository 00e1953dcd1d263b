package services

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/platform/httpclient"
	"github.com/conductorhq/conductor/internal/ports"
)

// Compile-time interface check.
var _ ports.ServiceAdapter = (*Jira)(nil)

const jiraAPIPrefix = "/rest/api/3"

// Jira executes issue-tracking capabilities against the Jira Cloud REST API.
type Jira struct {
	req *requester
}

// NewJira creates the Jira adapter on the given client. The client's base URL
// is the site root; the v3 API prefix is added per request.
func NewJira(client *httpclient.Client, logger *slog.Logger) *Jira {
	return &Jira{req: newRequester(client, nil, logger)}
}

// Service identifies the adapter's target.
func (a *Jira) Service() domain.Service {
	return domain.ServiceJira
}

// Invoke executes one Jira capability.
func (a *Jira) Invoke(ctx context.Context, function string, args map[string]any, token string) (map[string]any, error) {
	switch function {
	case "create_jira_ticket":
		return a.createTicket(ctx, args, token)
	default:
		return nil, unsupported(domain.ServiceJira, function)
	}
}

// InvokeCompensation executes one recorded Jira compensation.
func (a *Jira) InvokeCompensation(ctx context.Context, function string, args map[string]any, token string) (map[string]any, error) {
	switch function {
	case "delete_jira_ticket":
		return a.deleteTicket(ctx, args, token)
	default:
		return nil, unsupported(domain.ServiceJira, function)
	}
}

func (a *Jira) createTicket(ctx context.Context, args map[string]any, token string) (map[string]any, error) {
	projectKey := stringArg(args, "project_key")
	summary := stringArg(args, "summary")
	description := stringArg(args, "description")
	if projectKey == "" || summary == "" {
		return nil, &domain.AdapterError{Message: "project_key and summary are required"}
	}
	issueType := stringArgDefault(args, "issue_type", "Task")
	priority := stringArgDefault(args, "priority", "Medium")

	payload := map[string]any{
		"fields": map[string]any{
			"project":     map[string]any{"key": projectKey},
			"summary":     summary,
			"description": adfParagraph(description),
			"issuetype":   map[string]any{"name": issueType},
			"priority":    map[string]any{"name": priority},
		},
	}

	data, err := a.req.doJSON(ctx, http.MethodPost, jiraAPIPrefix+"/issue", token, nil, payload)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"key":         data["key"],
		"id":          data["id"],
		"self":        data["self"],
		"summary":     summary,
		"project_key": projectKey,
		"issue_type":  issueType,
		"priority":    priority,
	}, nil
}

func (a *Jira) deleteTicket(ctx context.Context, args map[string]any, token string) (map[string]any, error) {
	ticketKey := stringArg(args, "ticket_key")
	if ticketKey == "" {
		return nil, &domain.AdapterError{Message: "ticket_key is required"}
	}

	path := jiraAPIPrefix + "/issue/" + url.PathEscape(ticketKey)
	if _, err := a.req.doJSON(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return nil, err
	}

	return map[string]any{
		"deleted":    true,
		"ticket_key": ticketKey,
	}, nil
}

// adfParagraph wraps plain text in the Atlassian Document Format shape the
// v3 issue endpoint requires.
func adfParagraph(text string) map[string]any {
	return map[string]any{
		"type":    "doc",
		"version": 1,
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": text},
				},
			},
		},
	}
}
