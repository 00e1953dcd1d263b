package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/action"
)

const actionColumns = `id, user_id, command, status, input, output, error_detail,
can_rollback, rolled_back_at, rollback_reason, rollback_result,
started_at, completed_at, duration_ms`

// compensationResultRow is the stored form of one compensation outcome.
type compensationResultRow struct {
	CallID   string `json:"call_id"`
	Function string `json:"function"`
	Err      string `json:"err,omitempty"`
}

// CreateAction inserts a new action record.
func (s *Store) CreateAction(ctx context.Context, a *action.Action) error {
	input, err := encodeJSON("create_action", a.Input)
	if err != nil {
		return err
	}
	output, err := encodeJSON("create_action", a.Output)
	if err != nil {
		return err
	}
	results, err := encodeResults("create_action", a.RollbackResult)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO actions (`+actionColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		a.ID, a.UserID, a.Command, string(a.Status), input, output, a.ErrorDetail,
		a.CanRollback, nullMillis(a.RolledBackAt), a.RollbackReason, results,
		toMillis(a.StartedAt), nullMillis(a.CompletedAt), a.Duration.Milliseconds(),
	)
	if err != nil {
		return perr("create_action", err)
	}
	return nil
}

// UpdateAction writes an action's current state over the stored record.
func (s *Store) UpdateAction(ctx context.Context, a *action.Action) error {
	output, err := encodeJSON("update_action", a.Output)
	if err != nil {
		return err
	}
	results, err := encodeResults("update_action", a.RollbackResult)
	if err != nil {
		return err
	}

	res, err := s.sqlDB.ExecContext(ctx, `
UPDATE actions SET
	status = ?, output = ?, error_detail = ?,
	can_rollback = ?, rolled_back_at = ?, rollback_reason = ?, rollback_result = ?,
	completed_at = ?, duration_ms = ?
WHERE id = ?
`,
		string(a.Status), output, a.ErrorDetail,
		a.CanRollback, nullMillis(a.RolledBackAt), a.RollbackReason, results,
		nullMillis(a.CompletedAt), a.Duration.Milliseconds(),
		a.ID,
	)
	if err != nil {
		return perr("update_action", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return perr("update_action", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetAction returns the action by ID.
func (s *Store) GetAction(ctx context.Context, id string) (*action.Action, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+actionColumns+` FROM actions WHERE id = ?
`, id)

	a, err := scanAction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if errors.Is(err, domain.ErrPersistence) {
			return nil, err
		}
		return nil, perr("get_action", err)
	}
	return a, nil
}

// ListActions returns a user's actions, newest first.
func (s *Store) ListActions(ctx context.Context, userID string, limit int) ([]*action.Action, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT `+actionColumns+` FROM actions
WHERE user_id = ?
ORDER BY started_at DESC, id DESC
LIMIT ?
`, userID, limit)
	if err != nil {
		return nil, perr("list_actions", err)
	}
	defer rows.Close()

	actions := make([]*action.Action, 0, limit)
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			if errors.Is(err, domain.ErrPersistence) {
				return nil, err
			}
			return nil, perr("list_actions", err)
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, perr("list_actions", err)
	}
	return actions, nil
}

func scanAction(scanner interface{ Scan(...any) error }) (*action.Action, error) {
	var (
		a            action.Action
		status       string
		input        string
		output       string
		results      string
		rolledBackAt sql.NullInt64
		startedAt    int64
		completedAt  sql.NullInt64
		durationMs   int64
	)
	if err := scanner.Scan(
		&a.ID, &a.UserID, &a.Command, &status, &input, &output, &a.ErrorDetail,
		&a.CanRollback, &rolledBackAt, &a.RollbackReason, &results,
		&startedAt, &completedAt, &durationMs,
	); err != nil {
		return nil, err
	}

	a.Status = action.Status(status)

	var err error
	if a.Input, err = decodeJSON("scan_action", input); err != nil {
		return nil, err
	}
	if a.Output, err = decodeJSON("scan_action", output); err != nil {
		return nil, err
	}
	if a.RollbackResult, err = decodeResults("scan_action", results); err != nil {
		return nil, err
	}

	a.RolledBackAt = millisPtr(rolledBackAt)
	a.StartedAt = fromMillis(startedAt)
	a.CompletedAt = millisPtr(completedAt)
	a.Duration = time.Duration(durationMs) * time.Millisecond
	return &a, nil
}

func encodeResults(op string, results []action.CompensationResult) (string, error) {
	if results == nil {
		return "", nil
	}
	rows := make([]compensationResultRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, compensationResultRow(r))
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return "", &domain.PersistenceError{Op: op, Err: fmt.Errorf("encoding rollback results: %w", err)}
	}
	return string(raw), nil
}

func decodeResults(op, raw string) ([]action.CompensationResult, error) {
	if raw == "" {
		return nil, nil
	}
	var rows []compensationResultRow
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, &domain.PersistenceError{Op: op, Err: fmt.Errorf("decoding rollback results: %w", err)}
	}
	results := make([]action.CompensationResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, action.CompensationResult(r))
	}
	return results, nil
}
