package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/credential"
)

const credentialColumns = `user_id, service, access_token, refresh_token, token_type,
expires_at, scope, metadata, active, created_at, updated_at`

// Get returns the active record for the (user, service) pair.
func (s *Store) Get(ctx context.Context, userID string, service domain.Service) (*credential.TokenRecord, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+credentialColumns+` FROM credentials
WHERE user_id = ? AND service = ? AND active = 1
`, userID, service.String())

	rec, err := scanTokenRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if errors.Is(err, domain.ErrPersistence) {
			return nil, err
		}
		return nil, perr("get_credential", err)
	}
	return rec, nil
}

// Upsert replaces any prior record for (user, service) with rec, reactivating
// a deactivated record if one existed.
func (s *Store) Upsert(ctx context.Context, rec *credential.TokenRecord) error {
	metadata, err := encodeMetadata("upsert_credential", rec.Metadata)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO credentials (`+credentialColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, service) DO UPDATE SET
	access_token = excluded.access_token,
	refresh_token = excluded.refresh_token,
	token_type = excluded.token_type,
	expires_at = excluded.expires_at,
	scope = excluded.scope,
	metadata = excluded.metadata,
	active = excluded.active,
	updated_at = excluded.updated_at
`,
		rec.UserID, rec.Service.String(), rec.AccessToken, rec.RefreshToken, rec.TokenType,
		nullMillis(rec.ExpiresAt), rec.Scope, metadata, rec.Active,
		toMillis(rec.CreatedAt), toMillis(rec.UpdatedAt),
	)
	if err != nil {
		return perr("upsert_credential", err)
	}
	return nil
}

// Deactivate marks the record inactive without deleting it.
func (s *Store) Deactivate(ctx context.Context, userID string, service domain.Service) error {
	res, err := s.sqlDB.ExecContext(ctx, `
UPDATE credentials SET active = 0
WHERE user_id = ? AND service = ? AND active = 1
`, userID, service.String())
	if err != nil {
		return perr("deactivate_credential", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return perr("deactivate_credential", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive returns all of a user's active records.
func (s *Store) ListActive(ctx context.Context, userID string) ([]*credential.TokenRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT `+credentialColumns+` FROM credentials
WHERE user_id = ? AND active = 1
ORDER BY service
`, userID)
	if err != nil {
		return nil, perr("list_credentials", err)
	}
	defer rows.Close()

	var recs []*credential.TokenRecord
	for rows.Next() {
		rec, err := scanTokenRecord(rows)
		if err != nil {
			if errors.Is(err, domain.ErrPersistence) {
				return nil, err
			}
			return nil, perr("list_credentials", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, perr("list_credentials", err)
	}
	return recs, nil
}

func scanTokenRecord(scanner interface{ Scan(...any) error }) (*credential.TokenRecord, error) {
	var (
		rec       credential.TokenRecord
		service   string
		expiresAt sql.NullInt64
		metadata  string
		createdAt int64
		updatedAt int64
	)
	if err := scanner.Scan(
		&rec.UserID, &service, &rec.AccessToken, &rec.RefreshToken, &rec.TokenType,
		&expiresAt, &rec.Scope, &metadata, &rec.Active,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	rec.Service = domain.Service(service)
	rec.ExpiresAt = millisPtr(expiresAt)
	rec.CreatedAt = fromMillis(createdAt)
	rec.UpdatedAt = fromMillis(updatedAt)

	if metadata != "" {
		if err := json.Unmarshal([]byte(metadata), &rec.Metadata); err != nil {
			return nil, &domain.PersistenceError{Op: "scan_credential", Err: fmt.Errorf("decoding metadata: %w", err)}
		}
	}
	return &rec, nil
}

func encodeMetadata(op string, m map[string]string) (string, error) {
	if m == nil {
		return "", nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", &domain.PersistenceError{Op: op, Err: fmt.Errorf("encoding metadata: %w", err)}
	}
	return string(raw), nil
}
