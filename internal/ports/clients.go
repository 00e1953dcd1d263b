package ports

import (
	"context"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/capability"
)

// Intent is one named, parameterized operation the resolver chose for a
// command, in execution order.
type Intent struct {
	Name string
	Args map[string]any
}

// IntentResolver translates a natural-language command into an ordered list
// of intents drawn from the available capabilities. The translation itself is
// a black box to the core; implemented by the LLM client adapter.
type IntentResolver interface {
	// Resolve returns the ordered intents for the command plus the model's
	// prose summary. Zero intents with a non-empty summary is a plain
	// answer with no effects.
	Resolve(ctx context.Context, command string, available []capability.Capability) ([]Intent, string, error)

	// Analyze runs a serviceless text analysis (sentiment, keywords,
	// urgency, summary) through the same model.
	Analyze(ctx context.Context, text, analysisType string) (string, error)
}

// ServiceAdapter executes capabilities against one external service. Any
// downstream failure is returned as a *domain.AdapterError; adapters never
// panic on bad responses.
type ServiceAdapter interface {
	// Service identifies the external service this adapter targets.
	Service() domain.Service

	// Invoke executes a capability with the given arguments and bearer
	// token and returns the normalized result map.
	Invoke(ctx context.Context, function string, args map[string]any, token string) (map[string]any, error)

	// InvokeCompensation executes a compensating operation recorded on a
	// call during dispatch.
	InvokeCompensation(ctx context.Context, function string, args map[string]any, token string) (map[string]any, error)
}
