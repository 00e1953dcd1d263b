package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/platform/httpclient"
	"github.com/conductorhq/conductor/internal/ports"
)

// Compile-time interface check.
var _ ports.ServiceAdapter = (*Slack)(nil)

const slackMaxHistoryLimit = 1000

// Slack executes messaging capabilities against the Slack Web API. Channel
// names are resolved to IDs per call; Slack's envelope ("ok": false with an
// error code) is translated to AdapterError like any HTTP failure.
type Slack struct {
	req *requester
}

// NewSlack creates the Slack adapter on the given client.
func NewSlack(client *httpclient.Client, logger *slog.Logger) *Slack {
	return &Slack{req: newRequester(client, nil, logger)}
}

// Service identifies the adapter's target.
func (a *Slack) Service() domain.Service {
	return domain.ServiceSlack
}

// Invoke executes one Slack capability.
func (a *Slack) Invoke(ctx context.Context, function string, args map[string]any, token string) (map[string]any, error) {
	switch function {
	case "get_slack_messages":
		return a.getMessages(ctx, args, token)
	case "send_slack_message":
		return a.sendMessage(ctx, args, token)
	default:
		return nil, unsupported(domain.ServiceSlack, function)
	}
}

// InvokeCompensation executes one recorded Slack compensation.
func (a *Slack) InvokeCompensation(ctx context.Context, function string, args map[string]any, token string) (map[string]any, error) {
	switch function {
	case "delete_slack_message":
		return a.deleteMessage(ctx, args, token)
	default:
		return nil, unsupported(domain.ServiceSlack, function)
	}
}

func (a *Slack) getMessages(ctx context.Context, args map[string]any, token string) (map[string]any, error) {
	name := strings.TrimPrefix(stringArg(args, "channel_name"), "#")
	if name == "" {
		return nil, &domain.AdapterError{Message: "channel_name is required"}
	}

	channelID, err := a.channelID(ctx, token, name)
	if err != nil {
		return nil, err
	}

	limit := intArg(args, "limit", 50)
	if limit > slackMaxHistoryLimit {
		limit = slackMaxHistoryLimit
	}

	query := url.Values{}
	query.Set("channel", channelID)
	query.Set("limit", strconv.Itoa(limit))
	data, err := a.call(ctx, http.MethodGet, "/conversations.history", token, query, nil)
	if err != nil {
		return nil, err
	}

	messages, _ := data["messages"].([]any)
	if boolArg(args, "unread_only") {
		messages = recentMessages(messages, time.Now().Add(-time.Hour))
	}

	return map[string]any{
		"channel":       name,
		"channel_id":    channelID,
		"message_count": len(messages),
		"messages":      messages,
		"has_more":      data["has_more"],
	}, nil
}

func (a *Slack) sendMessage(ctx context.Context, args map[string]any, token string) (map[string]any, error) {
	name := strings.TrimPrefix(stringArg(args, "channel_name"), "#")
	text := stringArg(args, "text")
	if name == "" || text == "" {
		return nil, &domain.AdapterError{Message: "channel_name and text are required"}
	}

	channelID, err := a.channelID(ctx, token, name)
	if err != nil {
		return nil, err
	}

	data, err := a.call(ctx, http.MethodPost, "/chat.postMessage", token, nil, map[string]any{
		"channel": channelID,
		"text":    text,
	})
	if err != nil {
		return nil, err
	}

	// The posted channel ID and ts are the handle for deletion, so they are
	// the normalized result.
	channel := channelID
	if c, _ := data["channel"].(string); c != "" {
		channel = c
	}
	return map[string]any{
		"channel": channel,
		"ts":      data["ts"],
		"text":    text,
	}, nil
}

func (a *Slack) deleteMessage(ctx context.Context, args map[string]any, token string) (map[string]any, error) {
	channel := stringArg(args, "channel")
	ts := stringArg(args, "ts")
	if channel == "" || ts == "" {
		return nil, &domain.AdapterError{Message: "channel and ts are required"}
	}

	if _, err := a.call(ctx, http.MethodPost, "/chat.delete", token, nil, map[string]any{
		"channel": channel,
		"ts":      ts,
	}); err != nil {
		return nil, err
	}

	return map[string]any{
		"deleted": true,
		"channel": channel,
		"ts":      ts,
	}, nil
}

// channelID resolves a channel name to its ID via conversations.list.
func (a *Slack) channelID(ctx context.Context, token, name string) (string, error) {
	query := url.Values{}
	query.Set("exclude_archived", "true")
	query.Set("types", "public_channel,private_channel")
	data, err := a.call(ctx, http.MethodGet, "/conversations.list", token, query, nil)
	if err != nil {
		return "", err
	}

	channels, _ := data["channels"].([]any)
	for _, c := range channels {
		channel, _ := c.(map[string]any)
		if channel["name"] == name {
			id, _ := channel["id"].(string)
			return id, nil
		}
	}
	return "", &domain.AdapterError{Message: fmt.Sprintf("channel %q not found", name)}
}

// call wraps doJSON with Slack's response envelope check.
func (a *Slack) call(ctx context.Context, method, path, token string, query url.Values, body any) (map[string]any, error) {
	data, err := a.req.doJSON(ctx, method, path, token, query, body)
	if err != nil {
		return nil, err
	}
	if ok, _ := data["ok"].(bool); !ok {
		msg, _ := data["error"].(string)
		if msg == "" {
			msg = "response not ok"
		}
		return nil, &domain.AdapterError{Message: "slack api error: " + msg}
	}
	return data, nil
}

// recentMessages keeps messages with a ts after the cutoff. Slack has no
// cheap per-user read marker, so "unread" approximates to the last hour.
func recentMessages(messages []any, cutoff time.Time) []any {
	threshold := float64(cutoff.Unix())
	recent := make([]any, 0, len(messages))
	for _, m := range messages {
		msg, _ := m.(map[string]any)
		raw, _ := msg["ts"].(string)
		ts, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if ts > threshold {
			recent = append(recent, m)
		}
	}
	return recent
}
