package registry

import (
	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/capability"
)

// Default returns the registry preloaded with the built-in capability
// catalog. Compensation synthesizers derive undo arguments from the original
// arguments and the adapter response, so they run at dispatch time while both
// are at hand.
func Default() (*Registry, error) {
	r := New()
	for _, c := range builtins() {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func builtins() []capability.Capability {
	return []capability.Capability{
		{
			Name:        "get_slack_messages",
			Description: "Get messages from a Slack channel",
			Service:     domain.ServiceSlack,
			Parameters: objectSchema(map[string]any{
				"channel_name": map[string]any{
					"type":        "string",
					"description": "Name of the Slack channel (with or without #)",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Number of messages to retrieve (default: 50)",
				},
				"unread_only": map[string]any{
					"type":        "boolean",
					"description": "Only get unread messages",
				},
			}, "channel_name"),
		},
		{
			Name:        "send_slack_message",
			Description: "Send a message to a Slack channel",
			Service:     domain.ServiceSlack,
			Parameters: objectSchema(map[string]any{
				"channel_name": map[string]any{
					"type":        "string",
					"description": "Name of the Slack channel (with or without #)",
				},
				"text": map[string]any{
					"type":        "string",
					"description": "Message text to send",
				},
			}, "channel_name", "text"),
			Compensation: &capability.Compensation{
				Function: "delete_slack_message",
				Synthesize: func(args, response map[string]any) map[string]any {
					return map[string]any{
						"channel": response["channel"],
						"ts":      response["ts"],
					}
				},
			},
		},
		{
			Name:        "create_jira_ticket",
			Description: "Create a new Jira ticket/issue",
			Service:     domain.ServiceJira,
			Parameters: objectSchema(map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "Jira project key (e.g., 'PROJ')",
				},
				"summary": map[string]any{
					"type":        "string",
					"description": "Brief summary/title of the issue",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Detailed description of the issue",
				},
				"issue_type": map[string]any{
					"type":        "string",
					"description": "Type of issue (e.g., Bug, Task, Story)",
				},
				"priority": map[string]any{
					"type":        "string",
					"description": "Priority level (Highest, High, Medium, Low, Lowest)",
				},
			}, "project_key", "summary", "description"),
			Compensation: &capability.Compensation{
				Function: "delete_jira_ticket",
				Synthesize: func(args, response map[string]any) map[string]any {
					return map[string]any{"ticket_key": response["key"]}
				},
			},
		},
		{
			Name:        "upload_to_s3",
			Description: "Upload content to AWS S3",
			Service:     domain.ServiceS3,
			Parameters: objectSchema(map[string]any{
				"content": map[string]any{
					"type":        "string",
					"description": "Content to upload",
				},
				"key": map[string]any{
					"type":        "string",
					"description": "S3 object key/path",
				},
				"content_type": map[string]any{
					"type":        "string",
					"description": "MIME type of the content",
				},
			}, "content", "key"),
			Compensation: &capability.Compensation{
				Function: "delete_s3_object",
				Synthesize: func(args, response map[string]any) map[string]any {
					return map[string]any{"key": args["key"]}
				},
			},
		},
		{
			Name:        "search_github_repos",
			Description: "Search GitHub repositories",
			Service:     domain.ServiceGitHub,
			Parameters: objectSchema(map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Search query",
				},
				"sort": map[string]any{
					"type":        "string",
					"description": "Sort by: stars, forks, updated",
				},
				"order": map[string]any{
					"type":        "string",
					"description": "Sort order: asc, desc",
				},
			}, "query"),
		},
		{
			Name:        "create_github_issue",
			Description: "Create an issue in a GitHub repository",
			Service:     domain.ServiceGitHub,
			Parameters: objectSchema(map[string]any{
				"repo": map[string]any{
					"type":        "string",
					"description": "Repository in owner/name form",
				},
				"title": map[string]any{
					"type":        "string",
					"description": "Issue title",
				},
				"body": map[string]any{
					"type":        "string",
					"description": "Issue body",
				},
			}, "repo", "title"),
			Compensation: &capability.Compensation{
				Function: "close_github_issue",
				Synthesize: func(args, response map[string]any) map[string]any {
					return map[string]any{
						"repo":         args["repo"],
						"issue_number": response["number"],
					}
				},
			},
		},
		{
			Name:        "analyze_text",
			Description: "Analyze text content for sentiment, keywords, urgency, or summary",
			Service:     domain.ServiceNone,
			Parameters: objectSchema(map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "Text content to analyze",
				},
				"analysis_type": map[string]any{
					"type":        "string",
					"description": "Type of analysis: sentiment, keywords, urgency, summary",
				},
			}, "text"),
		},
	}
}

// objectSchema builds a JSON-schema object in the shape tool-calling models
// expect.
func objectSchema(properties map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
