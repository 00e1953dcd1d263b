package ports

import (
	"context"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/action"
	"github.com/conductorhq/conductor/internal/domain/credential"
	"github.com/conductorhq/conductor/internal/domain/user"
)

// AutomationService is the service port for command execution and rollback.
// Implemented by the application layer; called by inbound adapters.
type AutomationService interface {
	// Submit executes a natural-language command: it creates the action,
	// resolves the command into intents, dispatches them in order, and
	// returns the finished action. Per-intent failures do not fail the
	// action; only a persistence failure does, and the returned error then
	// wraps domain.ErrPersistence.
	Submit(ctx context.Context, userID, command string) (*action.Action, error)

	// GetAction returns one of the user's actions.
	// Returns domain.ErrNotFound if the action does not exist or belongs to
	// another user.
	GetAction(ctx context.Context, userID, actionID string) (*action.Action, error)

	// ListActions returns the user's most recent actions, newest first.
	ListActions(ctx context.Context, userID string, limit int) ([]*action.Action, error)

	// Rollback undoes a completed action by replaying its compensating
	// operations in reverse chronological order. Returns
	// domain.ErrNotFound, domain.ErrNotReversible, or
	// domain.ErrAlreadyRolledBack when the preconditions fail, checked in
	// that order.
	Rollback(ctx context.Context, userID, actionID, reason string) (*RollbackResult, error)
}

// RollbackResult reports a rollback attempt. Success is true only when every
// individual compensation succeeded; the action is marked ROLLED_BACK either
// way once compensation was attempted.
type RollbackResult struct {
	Success bool
	Results []action.CompensationResult
}

// AccountService is the service port for user registration and sessions.
type AccountService interface {
	// Register creates a new user account.
	// Returns domain.ErrConflict if the username or email is taken.
	Register(ctx context.Context, username, email, password string) (*user.User, error)

	// Login authenticates by username (or email) and password and returns
	// an opaque session token. Returns domain.ErrForbidden on bad
	// credentials or an inactive account.
	Login(ctx context.Context, login, password string) (string, *user.User, error)

	// Logout invalidates a session token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string)

	// UserFromSession resolves a session token to its user, refreshing the
	// session's last-activity marker. Returns domain.ErrForbidden for
	// unknown or expired tokens.
	UserFromSession(ctx context.Context, token string) (*user.User, error)
}

// ConnectionService is the service port for the credential lifecycle:
// beginning and completing grants, disconnecting services, and listing what
// a user has connected.
type ConnectionService interface {
	// BeginGrant validates the service and returns the provider's
	// authorization URL with a single-use anti-forgery state embedded.
	// Returns domain.ErrUnsupportedService for unknown services.
	BeginGrant(ctx context.Context, userID string, service domain.Service, redirectURI string) (string, error)

	// CompleteGrant consumes the handshake state and exchanges the code for
	// tokens, upserting the token record for (user, service). Returns
	// domain.ErrInvalidState, domain.ErrExpiredState, or
	// domain.ErrServiceMismatch when the handshake fails.
	CompleteGrant(ctx context.Context, service domain.Service, code, state, redirectURI string) (*credential.TokenRecord, error)

	// Disconnect revokes the provider token best-effort and deactivates the
	// local record. Returns domain.ErrNotFound if nothing is connected.
	Disconnect(ctx context.Context, userID string, service domain.Service) error

	// Connections lists the user's active token records, secrets omitted.
	Connections(ctx context.Context, userID string) ([]*credential.TokenRecord, error)
}

// TokenProvider serves valid access tokens on demand. Implemented by the
// credential lifecycle manager; called by the dispatcher and rollback engine.
type TokenProvider interface {
	// GetValidToken returns a non-expired access token for (user, service),
	// transparently refreshing and persisting first when the current one is
	// expired but refreshable. Returns domain.ErrNoCredential when no
	// usable token exists.
	GetValidToken(ctx context.Context, userID string, service domain.Service) (string, error)
}
