package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/action"
)

const callColumns = `id, action_id, seq, function, service, args, status, response,
error_kind, error_detail, compensation_function, compensation_args,
called_at, completed_at, duration_ms`

// CreateCall inserts a new call record.
func (s *Store) CreateCall(ctx context.Context, c *action.Call) error {
	args, err := encodeJSON("create_call", c.Args)
	if err != nil {
		return err
	}
	response, err := encodeJSON("create_call", c.Response)
	if err != nil {
		return err
	}
	compArgs, err := encodeJSON("create_call", c.CompensationArgs)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO calls (`+callColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		c.ID, c.ActionID, c.Seq, c.Function, c.Service.String(), args, string(c.Status), response,
		string(c.ErrorKind), c.ErrorDetail, c.CompensationFunction, compArgs,
		toMillis(c.CalledAt), nullMillis(c.CompletedAt), c.Duration.Milliseconds(),
	)
	if err != nil {
		return perr("create_call", err)
	}
	return nil
}

// UpdateCall writes a call's finalized state over the stored record.
func (s *Store) UpdateCall(ctx context.Context, c *action.Call) error {
	response, err := encodeJSON("update_call", c.Response)
	if err != nil {
		return err
	}
	compArgs, err := encodeJSON("update_call", c.CompensationArgs)
	if err != nil {
		return err
	}

	res, err := s.sqlDB.ExecContext(ctx, `
UPDATE calls SET
	status = ?, response = ?, error_kind = ?, error_detail = ?,
	compensation_function = ?, compensation_args = ?,
	completed_at = ?, duration_ms = ?
WHERE id = ?
`,
		string(c.Status), response, string(c.ErrorKind), c.ErrorDetail,
		c.CompensationFunction, compArgs,
		nullMillis(c.CompletedAt), c.Duration.Milliseconds(),
		c.ID,
	)
	if err != nil {
		return perr("update_call", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return perr("update_call", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListCalls returns an action's calls in insertion order. With
// onlyWithCompensation, only calls carrying compensation data are returned.
func (s *Store) ListCalls(ctx context.Context, actionID string, onlyWithCompensation bool) ([]*action.Call, error) {
	query := `
SELECT ` + callColumns + ` FROM calls
WHERE action_id = ?`
	if onlyWithCompensation {
		query += ` AND compensation_function != ''`
	}
	query += `
ORDER BY seq`

	rows, err := s.sqlDB.QueryContext(ctx, query, actionID)
	if err != nil {
		return nil, perr("list_calls", err)
	}
	defer rows.Close()

	var calls []*action.Call
	for rows.Next() {
		c, err := scanCall(rows)
		if err != nil {
			if errors.Is(err, domain.ErrPersistence) {
				return nil, err
			}
			return nil, perr("list_calls", err)
		}
		calls = append(calls, c)
	}
	if err := rows.Err(); err != nil {
		return nil, perr("list_calls", err)
	}
	return calls, nil
}

func scanCall(scanner interface{ Scan(...any) error }) (*action.Call, error) {
	var (
		c           action.Call
		service     string
		args        string
		status      string
		response    string
		errorKind   string
		compArgs    string
		calledAt    int64
		completedAt sql.NullInt64
		durationMs  int64
	)
	if err := scanner.Scan(
		&c.ID, &c.ActionID, &c.Seq, &c.Function, &service, &args, &status, &response,
		&errorKind, &c.ErrorDetail, &c.CompensationFunction, &compArgs,
		&calledAt, &completedAt, &durationMs,
	); err != nil {
		return nil, err
	}

	c.Service = domain.Service(service)
	c.Status = action.Status(status)
	c.ErrorKind = action.ErrorKind(errorKind)

	var err error
	if c.Args, err = decodeJSON("scan_call", args); err != nil {
		return nil, err
	}
	if c.Response, err = decodeJSON("scan_call", response); err != nil {
		return nil, err
	}
	if c.CompensationArgs, err = decodeJSON("scan_call", compArgs); err != nil {
		return nil, err
	}

	c.CalledAt = fromMillis(calledAt)
	c.CompletedAt = millisPtr(completedAt)
	c.Duration = time.Duration(durationMs) * time.Millisecond
	return &c, nil
}
