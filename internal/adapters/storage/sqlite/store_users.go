package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/user"
)

const userColumns = `id, username, email, password_hash, active, created_at, last_login_at`

// Create inserts a new user. Returns domain.ErrConflict when the username or
// email is already taken.
func (s *Store) Create(ctx context.Context, u *user.User) error {
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO users (`+userColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?)
`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Active,
		toMillis(u.CreatedAt), nullMillis(u.LastLoginAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return perr("create_user", err)
	}
	return nil
}

// GetByID returns a user by ID.
func (s *Store) GetByID(ctx context.Context, id string) (*user.User, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+userColumns+` FROM users WHERE id = ?
`, id)
	return scanUserRow("get_user", row)
}

// GetByLogin returns a user whose username or email matches login.
func (s *Store) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+userColumns+` FROM users WHERE username = ? OR email = ?
`, login, login)
	return scanUserRow("get_user_by_login", row)
}

// RecordLogin stamps the user's last-login time.
func (s *Store) RecordLogin(ctx context.Context, id string, at time.Time) error {
	res, err := s.sqlDB.ExecContext(ctx, `
UPDATE users SET last_login_at = ? WHERE id = ?
`, toMillis(at), id)
	if err != nil {
		return perr("record_login", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return perr("record_login", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUserRow(op string, row *sql.Row) (*user.User, error) {
	var (
		u           user.User
		createdAt   int64
		lastLoginAt sql.NullInt64
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Active, &createdAt, &lastLoginAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, perr(op, err)
	}
	u.CreatedAt = fromMillis(createdAt)
	u.LastLoginAt = millisPtr(lastLoginAt)
	return &u, nil
}
