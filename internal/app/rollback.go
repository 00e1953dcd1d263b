package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/action"
	"github.com/conductorhq/conductor/internal/platform/telemetry"
	"github.com/conductorhq/conductor/internal/ports"
)

// Rollback undoes a completed action by invoking each recorded compensation
// in reverse chronological order. Compensation attempts are independent: a
// failure is recorded per call and does not stop the remaining attempts. The
// action is marked ROLLED_BACK once compensation was attempted, even if every
// attempt failed; the result's Success flag says how it went.
func (s *AutomationService) Rollback(ctx context.Context, userID, actionID, reason string) (*ports.RollbackResult, error) {
	s.logger.InfoContext(ctx, "rolling back action", slog.String("action_id", actionID))

	a, err := s.ledger.GetAction(ctx, actionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "failed to fetch action",
			slog.String("operation", "Rollback"),
			slog.String("action_id", actionID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching action: %w", err)
	}
	if a.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if !a.CanRollback {
		return nil, domain.ErrNotReversible
	}
	if a.Status == action.StatusRolledBack {
		return nil, domain.ErrAlreadyRolledBack
	}
	if a.Status != action.StatusCompleted {
		return nil, domain.ErrNotReversible
	}

	calls, err := s.ledger.ListCalls(ctx, actionID, true)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list compensable calls",
			slog.String("operation", "Rollback"),
			slog.String("action_id", actionID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing compensable calls: %w", err)
	}
	action.SortCallsForRollback(calls)

	results := make([]action.CompensationResult, 0, len(calls))
	success := true
	for _, c := range calls {
		res := action.CompensationResult{CallID: c.ID, Function: c.CompensationFunction}
		if err := s.compensate(ctx, userID, c); err != nil {
			res.Err = err.Error()
			success = false
			s.logger.ErrorContext(ctx, "compensation failed",
				slog.String("operation", "Rollback"),
				slog.String("action_id", actionID),
				slog.String("call_id", c.ID),
				slog.String("function", c.CompensationFunction),
				slog.Any("error", err),
			)
		}
		results = append(results, res)
	}

	if err := a.MarkRolledBack(reason, results); err != nil {
		return nil, err
	}
	if err := s.ledger.UpdateAction(ctx, a); err != nil {
		s.logger.ErrorContext(ctx, "failed to record rollback",
			slog.String("operation", "Rollback"),
			slog.String("action_id", actionID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("recording rollback: %w", err)
	}

	s.recordRollback(ctx, success)
	s.logger.InfoContext(ctx, "action rolled back",
		slog.String("action_id", actionID),
		slog.Int("compensations", len(results)),
		slog.Bool("success", success),
	)
	return &ports.RollbackResult{Success: success, Results: results}, nil
}

// compensate invokes one call's compensating operation with a freshly
// acquired token.
func (s *AutomationService) compensate(ctx context.Context, userID string, c *action.Call) error {
	adapter, ok := s.adapters[c.Service]
	if !ok {
		return fmt.Errorf("no adapter for service %s", c.Service)
	}

	token, err := s.tokens.GetValidToken(ctx, userID, c.Service)
	if err != nil {
		return fmt.Errorf("acquiring token: %w", err)
	}

	if _, err := adapter.InvokeCompensation(ctx, c.CompensationFunction, c.CompensationArgs, token); err != nil {
		return err
	}
	return nil
}

func (s *AutomationService) recordRollback(ctx context.Context, success bool) {
	if s.metrics == nil {
		return
	}

	result := "success"
	if !success {
		result = "partial"
	}
	s.metrics.RollbackTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrResult.String(result),
	))
}
