package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/conductorhq/conductor/internal/app/registry"
	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/action"
	"github.com/conductorhq/conductor/internal/platform/telemetry"
	"github.com/conductorhq/conductor/internal/ports"
)

// Compile-time check that AutomationService implements ports.AutomationService.
var _ ports.AutomationService = (*AutomationService)(nil)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// AutomationService implements ports.AutomationService. It owns the action
// state machine: Submit drives an action from PENDING through dispatch to a
// terminal state, and Rollback replays recorded compensations in reverse.
// Every transition is written to the ledger before control returns, so the
// durable record never trails the in-memory state.
type AutomationService struct {
	ledger   ports.Ledger
	resolver ports.IntentResolver
	catalog  *registry.Registry
	tokens   ports.TokenProvider
	adapters map[domain.Service]ports.ServiceAdapter
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewAutomationService creates an AutomationService. Adapters are indexed by
// the service they report; a capability targeting a service with no adapter
// fails at dispatch time, not at construction.
func NewAutomationService(
	ledger ports.Ledger,
	resolver ports.IntentResolver,
	catalog *registry.Registry,
	tokens ports.TokenProvider,
	adapters []ports.ServiceAdapter,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *AutomationService {
	byService := make(map[domain.Service]ports.ServiceAdapter, len(adapters))
	for _, a := range adapters {
		byService[a.Service()] = a
	}

	return &AutomationService{
		ledger:   ledger,
		resolver: resolver,
		catalog:  catalog,
		tokens:   tokens,
		adapters: byService,
		metrics:  metrics,
		logger:   logger,
	}
}

// Submit executes a natural-language command: create the action, resolve it
// into intents, dispatch each in order, and finish the action. Per-intent
// failures are recorded on their calls and do not stop later intents; only a
// ledger write failure aborts, because a success that cannot be recorded must
// not be reported.
func (s *AutomationService) Submit(ctx context.Context, userID, command string) (*action.Action, error) {
	s.logger.InfoContext(ctx, "submitting command", slog.String("user_id", userID))

	a, err := action.New(userID, command)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.CreateAction(ctx, a); err != nil {
		s.logger.ErrorContext(ctx, "failed to create action",
			slog.String("operation", "Submit"),
			slog.String("action_id", a.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating action: %w", err)
	}

	if err := a.Start(); err != nil {
		return nil, err
	}
	if err := s.ledger.UpdateAction(ctx, a); err != nil {
		s.logger.ErrorContext(ctx, "failed to start action",
			slog.String("operation", "Submit"),
			slog.String("action_id", a.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("starting action: %w", err)
	}

	intents, summary, err := s.resolver.Resolve(ctx, command, s.catalog.All())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve command",
			slog.String("operation", "Submit"),
			slog.String("action_id", a.ID),
			slog.Any("error", err),
		)
		return s.failAction(ctx, a, fmt.Sprintf("resolving command: %v", err))
	}

	results := make([]map[string]any, 0, len(intents))
	canRollback := false
	for i, intent := range intents {
		call, err := s.dispatch(ctx, a, i, intent)
		if err != nil {
			// A call write failure does not imply the action row is
			// unwritable; try to leave the audit trail in a terminal state
			// before surfacing the error. failAction logs its own failure.
			_, _ = s.failAction(ctx, a, fmt.Sprintf("dispatching %s: %v", intent.Name, err))
			return nil, err
		}
		results = append(results, callResult(call))
		if call.Compensable() {
			canRollback = true
		}
	}

	output := map[string]any{
		"summary": summary,
		"results": results,
	}
	if err := a.Complete(output, canRollback); err != nil {
		return nil, err
	}
	if err := s.ledger.UpdateAction(ctx, a); err != nil {
		s.logger.ErrorContext(ctx, "failed to complete action",
			slog.String("operation", "Submit"),
			slog.String("action_id", a.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("completing action: %w", err)
	}

	s.logger.InfoContext(ctx, "command completed",
		slog.String("action_id", a.ID),
		slog.Int("calls", len(intents)),
		slog.Bool("can_rollback", canRollback),
	)
	return a, nil
}

// failAction marks the action FAILED and persists the transition. The action
// is returned with a nil error: the failure lives on the action record.
func (s *AutomationService) failAction(ctx context.Context, a *action.Action, detail string) (*action.Action, error) {
	if err := a.Fail(detail); err != nil {
		return nil, err
	}
	if err := s.ledger.UpdateAction(ctx, a); err != nil {
		s.logger.ErrorContext(ctx, "failed to record action failure",
			slog.String("operation", "Submit"),
			slog.String("action_id", a.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("recording failure: %w", err)
	}
	return a, nil
}

// GetAction returns one of the user's actions. Actions belonging to another
// user are reported as not found rather than forbidden, so action IDs cannot
// be probed for existence.
func (s *AutomationService) GetAction(ctx context.Context, userID, actionID string) (*action.Action, error) {
	a, err := s.ledger.GetAction(ctx, actionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "failed to fetch action",
			slog.String("operation", "GetAction"),
			slog.String("action_id", actionID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching action: %w", err)
	}
	if a.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// ListActions returns the user's most recent actions, newest first.
func (s *AutomationService) ListActions(ctx context.Context, userID string, limit int) ([]*action.Action, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	actions, err := s.ledger.ListActions(ctx, userID, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list actions",
			slog.String("operation", "ListActions"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing actions: %w", err)
	}
	return actions, nil
}

// callResult summarizes one call for the action's output snapshot.
func callResult(c *action.Call) map[string]any {
	r := map[string]any{
		"call_id":  c.ID,
		"function": c.Function,
		"status":   c.Status.String(),
	}
	if c.Status == action.StatusCompleted {
		r["response"] = c.Response
	} else {
		r["error_kind"] = string(c.ErrorKind)
		r["error"] = c.ErrorDetail
	}
	return r
}
