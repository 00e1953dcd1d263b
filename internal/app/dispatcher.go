package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/action"
	"github.com/conductorhq/conductor/internal/domain/capability"
	"github.com/conductorhq/conductor/internal/platform/telemetry"
	"github.com/conductorhq/conductor/internal/ports"
)

// dispatch executes one intent and returns its finalized call record. The
// call is created PENDING before invocation and finalized after, so a crash
// mid-invocation leaves a visible pending record rather than nothing.
//
// Intent-level failures (unknown capability, missing credential, adapter
// error) are recorded on the call and return a nil error; only a ledger
// failure is returned.
func (s *AutomationService) dispatch(ctx context.Context, a *action.Action, seq int, intent ports.Intent) (*action.Call, error) {
	cp, known := s.catalog.Get(intent.Name)

	svc := domain.ServiceNone
	if known {
		svc = cp.Service
	}

	call := action.NewCall(a.ID, seq, intent.Name, svc, intent.Args)
	if err := s.ledger.CreateCall(ctx, call); err != nil {
		s.logger.ErrorContext(ctx, "failed to create call record",
			slog.String("operation", "dispatch"),
			slog.String("action_id", a.ID),
			slog.String("function", intent.Name),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating call record: %w", err)
	}

	start := time.Now()
	switch {
	case !known:
		call.Fail(action.ErrorKindUnknownCapability, fmt.Sprintf("unknown capability %q", intent.Name))
	case cp.Service == domain.ServiceNone:
		s.invokeServiceless(ctx, call, intent.Args)
	default:
		if err := s.invokeService(ctx, a.UserID, call, cp, intent.Args); err != nil {
			return nil, err
		}
	}
	s.recordDispatch(ctx, call, time.Since(start))

	if err := s.ledger.UpdateCall(ctx, call); err != nil {
		s.logger.ErrorContext(ctx, "failed to finalize call record",
			slog.String("operation", "dispatch"),
			slog.String("action_id", a.ID),
			slog.String("call_id", call.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("finalizing call record: %w", err)
	}

	if call.Status == action.StatusFailed {
		s.logger.WarnContext(ctx, "call failed",
			slog.String("action_id", a.ID),
			slog.String("call_id", call.ID),
			slog.String("function", call.Function),
			slog.String("error_kind", string(call.ErrorKind)),
			slog.String("error", call.ErrorDetail),
		)
	}
	return call, nil
}

// invokeService runs a capability against its external service adapter.
// Compensation data is synthesized and stored on the call in the same step
// as the successful response, so the two can never diverge.
func (s *AutomationService) invokeService(ctx context.Context, userID string, call *action.Call, cp capability.Capability, args map[string]any) error {
	token, err := s.tokens.GetValidToken(ctx, userID, cp.Service)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrPersistence):
		return fmt.Errorf("acquiring token: %w", err)
	default:
		call.Fail(action.ErrorKindNoCredential, err.Error())
		return nil
	}

	adapter, ok := s.adapters[cp.Service]
	if !ok {
		call.Fail(action.ErrorKindServiceError, fmt.Sprintf("no adapter for service %s", cp.Service))
		return nil
	}

	resp, err := adapter.Invoke(ctx, call.Function, args, token)
	if err != nil {
		call.Fail(action.ErrorKindServiceError, err.Error())
		return nil
	}

	compFunction := ""
	var compArgs map[string]any
	if cp.Reversible() {
		compFunction = cp.Compensation.Function
		compArgs = cp.Compensation.Synthesize(args, resp)
	}
	call.Complete(resp, compFunction, compArgs)
	return nil
}

// invokeServiceless runs a capability with no external service target:
// text analysis goes through the same model as intent resolution.
func (s *AutomationService) invokeServiceless(ctx context.Context, call *action.Call, args map[string]any) {
	text, _ := args["text"].(string)
	analysisType, _ := args["analysis_type"].(string)
	if analysisType == "" {
		analysisType = "summary"
	}

	result, err := s.resolver.Analyze(ctx, text, analysisType)
	if err != nil {
		call.Fail(action.ErrorKindServiceError, err.Error())
		return
	}

	call.Complete(map[string]any{
		"analysis_type":        analysisType,
		"result":               result,
		"original_text_length": len(text),
	}, "", nil)
}

// recordDispatch records per-call dispatch metrics. Safe to call with nil
// metrics.
func (s *AutomationService) recordDispatch(ctx context.Context, call *action.Call, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}

	result := "success"
	if call.Status == action.StatusFailed {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrCapability.String(call.Function),
		telemetry.AttrService.String(call.Service.String()),
		telemetry.AttrResult.String(result),
		telemetry.AttrErrorKind.String(string(call.ErrorKind)),
	)
	s.metrics.DispatchCallTotal.Add(ctx, 1, attrs)
	s.metrics.DispatchCallDuration.Record(ctx, elapsed.Seconds(), attrs)
}
