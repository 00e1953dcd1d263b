package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/platform/httpclient"
	"github.com/conductorhq/conductor/internal/ports"
)

// Compile-time interface check.
var _ ports.ServiceAdapter = (*GitHub)(nil)

const githubSearchPageSize = 30

// GitHub executes code-hosting capabilities against the GitHub REST API.
type GitHub struct {
	req *requester
}

// NewGitHub creates the GitHub adapter on the given client.
func NewGitHub(client *httpclient.Client, logger *slog.Logger) *GitHub {
	headers := map[string]string{"Accept": "application/vnd.github+json"}
	return &GitHub{req: newRequester(client, headers, logger)}
}

// Service identifies the adapter's target.
func (a *GitHub) Service() domain.Service {
	return domain.ServiceGitHub
}

// Invoke executes one GitHub capability.
func (a *GitHub) Invoke(ctx context.Context, function string, args map[string]any, token string) (map[string]any, error) {
	switch function {
	case "search_github_repos":
		return a.searchRepos(ctx, args, token)
	case "create_github_issue":
		return a.createIssue(ctx, args, token)
	default:
		return nil, unsupported(domain.ServiceGitHub, function)
	}
}

// InvokeCompensation executes one recorded GitHub compensation.
func (a *GitHub) InvokeCompensation(ctx context.Context, function string, args map[string]any, token string) (map[string]any, error) {
	switch function {
	case "close_github_issue":
		return a.closeIssue(ctx, args, token)
	default:
		return nil, unsupported(domain.ServiceGitHub, function)
	}
}

func (a *GitHub) searchRepos(ctx context.Context, args map[string]any, token string) (map[string]any, error) {
	q := stringArg(args, "query")
	if q == "" {
		return nil, &domain.AdapterError{Message: "query is required"}
	}

	query := url.Values{}
	query.Set("q", q)
	query.Set("sort", stringArgDefault(args, "sort", "stars"))
	query.Set("order", stringArgDefault(args, "order", "desc"))
	query.Set("per_page", fmt.Sprint(githubSearchPageSize))

	data, err := a.req.doJSON(ctx, http.MethodGet, "/search/repositories", token, query, nil)
	if err != nil {
		return nil, err
	}

	items, _ := data["items"].([]any)
	repositories := make([]any, 0, len(items))
	for _, item := range items {
		repo, _ := item.(map[string]any)
		repositories = append(repositories, map[string]any{
			"name":        repo["name"],
			"full_name":   repo["full_name"],
			"description": repo["description"],
			"stars":       repo["stargazers_count"],
			"forks":       repo["forks_count"],
			"language":    repo["language"],
			"url":         repo["html_url"],
		})
	}

	return map[string]any{
		"total_count":  data["total_count"],
		"repositories": repositories,
		"query":        q,
	}, nil
}

func (a *GitHub) createIssue(ctx context.Context, args map[string]any, token string) (map[string]any, error) {
	repo := stringArg(args, "repo")
	title := stringArg(args, "title")
	if repo == "" || title == "" {
		return nil, &domain.AdapterError{Message: "repo and title are required"}
	}

	payload := map[string]any{"title": title}
	if body := stringArg(args, "body"); body != "" {
		payload["body"] = body
	}

	data, err := a.req.doJSON(ctx, http.MethodPost, "/repos/"+repo+"/issues", token, nil, payload)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"repo":   repo,
		"number": data["number"],
		"title":  title,
		"url":    data["html_url"],
	}, nil
}

func (a *GitHub) closeIssue(ctx context.Context, args map[string]any, token string) (map[string]any, error) {
	repo := stringArg(args, "repo")
	number := intArg(args, "issue_number", 0)
	if repo == "" || number == 0 {
		return nil, &domain.AdapterError{Message: "repo and issue_number are required"}
	}

	path := fmt.Sprintf("/repos/%s/issues/%d", repo, number)
	if _, err := a.req.doJSON(ctx, http.MethodPatch, path, token, nil, map[string]any{
		"state": "closed",
	}); err != nil {
		return nil, err
	}

	return map[string]any{
		"closed":       true,
		"repo":         repo,
		"issue_number": number,
	}, nil
}
