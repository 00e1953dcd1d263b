// Package resolver translates natural-language commands into ordered intents
// using an OpenAI-compatible chat completion endpoint with tool calling. The
// capability catalog is presented to the model as the tool set; whatever the
// model does not call simply does not happen.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/conductorhq/conductor/internal/domain/capability"
	"github.com/conductorhq/conductor/internal/platform/config"
	"github.com/conductorhq/conductor/internal/ports"
)

// Compile-time interface check.
var _ ports.IntentResolver = (*Resolver)(nil)

const systemPrompt = `You are an automation agent that can interact with multiple services:
- Slack: Get messages, send messages, analyze content
- Jira: Create tickets, manage issues
- AWS S3: Upload and manage files
- GitHub: Search repositories, create issues

When users ask you to do something, break it down into function calls.
For example, if asked to "summarize Slack messages and create a Jira ticket if urgent":
1. Get Slack messages from the specified channel
2. Analyze the messages for urgency/sentiment
3. If urgent content is found, create a Jira ticket

Always be specific about what you're doing and why.`

// analysisPrompts are the per-type instructions for the serviceless text
// analysis capability. Unknown types fall back to summary.
var analysisPrompts = map[string]string{
	"sentiment": "Analyze the sentiment of this text. Return positive, negative, or neutral with confidence score.",
	"keywords":  "Extract the key topics and important keywords from this text.",
	"urgency":   "Determine if this text indicates an urgent issue. Look for words like 'outage', 'critical', 'emergency', 'down', etc.",
	"summary":   "Provide a concise summary of this text, highlighting the main points.",
}

// Resolver implements [ports.IntentResolver] over the OpenAI chat completions
// API.
type Resolver struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
	logger      *slog.Logger
}

// New creates a resolver from configuration. An empty BaseURL uses the
// platform default; setting it points the client at any OpenAI-compatible
// endpoint.
func New(cfg *config.ResolverConfig, logger *slog.Logger) *Resolver {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Resolver{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   int64(cfg.MaxTokens),
		temperature: cfg.Temperature,
		logger:      logger,
	}
}

// Resolve returns the model's chosen intents for the command, in the order
// the model emitted them, plus its prose summary. Zero intents with a
// non-empty summary is a plain answer with no effects.
func (r *Resolver) Resolve(ctx context.Context, command string, available []capability.Capability) ([]ports.Intent, string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(command),
		},
		Tools: toolsFor(available),
	}
	if r.maxTokens > 0 {
		params.MaxTokens = openai.Int(r.maxTokens)
	}
	if r.temperature > 0 {
		params.Temperature = openai.Float(r.temperature)
	}

	resp, err := r.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, "", fmt.Errorf("chat completion returned no choices")
	}

	msg := resp.Choices[0].Message
	intents := make([]ports.Intent, 0, len(msg.ToolCalls))
	for _, tc := range msg.ToolCalls {
		args := make(map[string]any)
		if raw := tc.Function.Arguments; raw != "" {
			if err := json.Unmarshal([]byte(raw), &args); err != nil {
				return nil, "", fmt.Errorf("decoding arguments for %s: %w", tc.Function.Name, err)
			}
		}
		intents = append(intents, ports.Intent{Name: tc.Function.Name, Args: args})
	}

	summary := msg.Content
	if summary == "" && len(intents) > 0 {
		summary = "Functions executed successfully"
	}

	r.logger.DebugContext(ctx, "resolved command",
		slog.Int("intents", len(intents)),
		slog.String("model", r.model),
	)
	return intents, summary, nil
}

// Analyze runs one serviceless text analysis through the same model.
func (r *Resolver) Analyze(ctx context.Context, text, analysisType string) (string, error) {
	prompt, ok := analysisPrompts[analysisType]
	if !ok {
		prompt = analysisPrompts["summary"]
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt + "\n\nText to analyze: " + text),
		},
	}
	if r.maxTokens > 0 {
		params.MaxTokens = openai.Int(r.maxTokens)
	}

	resp, err := r.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// toolsFor maps the capability catalog to the tool-calling parameter shape.
func toolsFor(available []capability.Capability) []openai.ChatCompletionToolParam {
	tools := make([]openai.ChatCompletionToolParam, 0, len(available))
	for _, c := range available {
		tools = append(tools, openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        c.Name,
				Description: openai.String(c.Description),
				Parameters:  openai.FunctionParameters(c.Parameters),
			},
		})
	}
	return tools
}
