// Package action models one user command's full execution record, from
// submission to terminal state, and the individual capability calls dispatched
// on its behalf. All mutation goes through transition methods that enforce the
// state machine; callers persist after every transition.
package action

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conductorhq/conductor/internal/domain"
)

// Action is one command execution. It is created at submission in
// StatusPending and mutated only by the dispatcher (to IN_PROGRESS, then
// COMPLETED or FAILED) and by the rollback engine (to ROLLED_BACK). The core
// never deletes actions.
type Action struct {
	ID      string
	UserID  string
	Command string
	Status  Status

	Input  map[string]any
	Output map[string]any

	ErrorDetail string

	CanRollback    bool
	RolledBackAt   *time.Time
	RollbackReason string
	RollbackResult []CompensationResult

	StartedAt   time.Time
	CompletedAt *time.Time
	Duration    time.Duration
}

// CompensationResult records the outcome of one compensation attempt during
// rollback. Failures are recorded per call, never swallowed.
type CompensationResult struct {
	CallID   string
	Function string
	Err      string // empty on success
}

// New creates a pending action for the given user and command, with the
// command captured in the input snapshot.
func New(userID, command string) (*Action, error) {
	fields := make(map[string]string)
	if userID == "" {
		fields["user_id"] = "required"
	}
	if command == "" {
		fields["command"] = "required"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &Action{
		ID:        uuid.NewString(),
		UserID:    userID,
		Command:   command,
		Status:    StatusPending,
		Input:     map[string]any{"command": command},
		StartedAt: time.Now().UTC(),
	}, nil
}

// Start advances the action from PENDING to IN_PROGRESS.
func (a *Action) Start() error {
	return a.transition(StatusInProgress)
}

// Complete marks the action COMPLETED, records the output snapshot and
// whether any call produced compensation data. CompletedAt is set exactly
// once, at this transition.
func (a *Action) Complete(output map[string]any, canRollback bool) error {
	if err := a.transition(StatusCompleted); err != nil {
		return err
	}
	a.Output = output
	a.CanRollback = canRollback
	a.finish()
	return nil
}

// Fail marks the action FAILED with the given error detail.
func (a *Action) Fail(detail string) error {
	if err := a.transition(StatusFailed); err != nil {
		return err
	}
	a.ErrorDetail = detail
	a.finish()
	return nil
}

// MarkRolledBack transitions a COMPLETED action to ROLLED_BACK, recording
// the reason and the per-call compensation outcomes. The action is marked
// rolled back even if every compensation failed: the rollback was attempted,
// and the results say how it went.
func (a *Action) MarkRolledBack(reason string, results []CompensationResult) error {
	if err := a.transition(StatusRolledBack); err != nil {
		return err
	}
	now := time.Now().UTC()
	a.RolledBackAt = &now
	a.RollbackReason = reason
	a.RollbackResult = results
	return nil
}

// transition enforces the state machine. A rejected transition is a
// programming error in the caller, so it carries both states for diagnosis.
func (a *Action) transition(next Status) error {
	if !a.Status.CanTransitionTo(next) {
		return fmt.Errorf("illegal action transition %s -> %s: %w", a.Status, next, domain.ErrValidation)
	}
	a.Status = next
	return nil
}

// finish stamps CompletedAt and Duration. Called only from the two terminal
// execution transitions, so CompletedAt is set exactly once.
func (a *Action) finish() {
	now := time.Now().UTC()
	a.CompletedAt = &now
	a.Duration = now.Sub(a.StartedAt)
}
