package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/user"
	"github.com/conductorhq/conductor/internal/platform/cache"
	"github.com/conductorhq/conductor/internal/ports"
)

// Compile-time check that AccountService implements ports.AccountService.
var _ ports.AccountService = (*AccountService)(nil)

const sessionSweepInterval = 5 * time.Minute

// session is one live login. The expiry deadline is fixed when the session is
// created; access refreshes lastActivity but never moves the deadline.
type session struct {
	userID       string
	lastActivity time.Time
}

// AccountService implements ports.AccountService. Sessions are opaque random
// tokens held in memory, each valid for a fixed window from login; a restart
// logs everyone out, which is acceptable for session state.
type AccountService struct {
	users      ports.UserStore
	sessions   *cache.Cache[string, session]
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAccountService creates an AccountService with its own session cache.
// Close releases the cache's janitor.
func NewAccountService(users ports.UserStore, sessionTTL time.Duration, logger *slog.Logger) *AccountService {
	return &AccountService{
		users:      users,
		sessions:   cache.New[string, session](sessionSweepInterval),
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Close stops the session cache janitor.
func (s *AccountService) Close() {
	s.sessions.Close()
}

// Register creates a new user account.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*user.User, error) {
	u, err := user.New(username, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "Register"),
			slog.String("username", username),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", u.ID))
	return u, nil
}

// Login authenticates by username or email and returns a session token. All
// authentication failures collapse to ErrForbidden so responses do not reveal
// whether the account exists.
func (s *AccountService) Login(ctx context.Context, login, password string) (string, *user.User, error) {
	u, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrForbidden
		}
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return "", nil, fmt.Errorf("fetching user: %w", err)
	}

	if !u.Active || !user.VerifyPassword(password, u.PasswordHash) {
		return "", nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	if err := s.users.RecordLogin(ctx, u.ID, now); err != nil {
		// The stamp is advisory; a failed write must not block the login.
		s.logger.ErrorContext(ctx, "failed to record login time",
			slog.String("operation", "Login"),
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
	} else {
		u.LastLoginAt = &now
	}

	token, err := randomToken()
	if err != nil {
		return "", nil, err
	}
	s.sessions.Set(token, session{userID: u.ID, lastActivity: now}, s.sessionTTL)

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", u.ID))
	return token, u, nil
}

// Logout invalidates a session token. Unknown tokens are a no-op.
func (s *AccountService) Logout(_ context.Context, token string) {
	s.sessions.Delete(token)
}

// UserFromSession resolves a session token to its user and refreshes the
// session's last-activity marker. The expiry deadline is fixed at login.
// Sessions whose user has been deactivated are dropped on access.
func (s *AccountService) UserFromSession(ctx context.Context, token string) (*user.User, error) {
	sess, ok := s.sessions.Get(token)
	if !ok {
		return nil, domain.ErrForbidden
	}

	u, err := s.users.GetByID(ctx, sess.userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.sessions.Delete(token)
			return nil, domain.ErrForbidden
		}
		s.logger.ErrorContext(ctx, "failed to fetch session user",
			slog.String("operation", "UserFromSession"),
			slog.String("user_id", sess.userID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching session user: %w", err)
	}
	if !u.Active {
		s.sessions.Delete(token)
		return nil, domain.ErrForbidden
	}

	sess.lastActivity = time.Now().UTC()
	s.sessions.Update(token, sess)
	return u, nil
}

// randomToken returns a 256-bit URL-safe random token.
func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
