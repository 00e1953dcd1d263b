package ports

import (
	"context"
	"time"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/action"
	"github.com/conductorhq/conductor/internal/domain/credential"
	"github.com/conductorhq/conductor/internal/domain/user"
)

// Ledger is the durable record of actions and their calls. Implementations
// distinguish not-found (domain.ErrNotFound) from persistence failure
// (*domain.PersistenceError); the core treats only the latter as fatal.
//
// Every state-machine transition is written through this port before control
// returns to the invoker, so no transition can be lost between the in-memory
// change and the durable write.
type Ledger interface {
	CreateAction(ctx context.Context, a *action.Action) error
	UpdateAction(ctx context.Context, a *action.Action) error

	// GetAction returns the action by ID. Returns domain.ErrNotFound when
	// it does not exist.
	GetAction(ctx context.Context, id string) (*action.Action, error)

	// ListActions returns a user's actions, newest first.
	ListActions(ctx context.Context, userID string, limit int) ([]*action.Action, error)

	CreateCall(ctx context.Context, c *action.Call) error
	UpdateCall(ctx context.Context, c *action.Call) error

	// ListCalls returns an action's calls in insertion order. With
	// onlyWithCompensation, only calls carrying compensation data are
	// returned.
	ListCalls(ctx context.Context, actionID string, onlyWithCompensation bool) ([]*action.Call, error)
}

// CredentialStore is the durable mapping of (user, service) to token record.
type CredentialStore interface {
	// Get returns the active record for the pair. Returns
	// domain.ErrNotFound when none exists.
	Get(ctx context.Context, userID string, service domain.Service) (*credential.TokenRecord, error)

	// Upsert replaces any prior record for (user, service) with rec,
	// reactivating it if a deactivated record existed.
	Upsert(ctx context.Context, rec *credential.TokenRecord) error

	// Deactivate marks the record inactive without deleting it. Returns
	// domain.ErrNotFound when no active record exists.
	Deactivate(ctx context.Context, userID string, service domain.Service) error

	// ListActive returns all of a user's active records.
	ListActive(ctx context.Context, userID string) ([]*credential.TokenRecord, error)
}

// UserStore is the durable account store.
type UserStore interface {
	// Create inserts a new user. Returns domain.ErrConflict when the
	// username or email is already taken.
	Create(ctx context.Context, u *user.User) error

	// GetByID returns a user by ID. Returns domain.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*user.User, error)

	// GetByLogin returns a user whose username or email matches login.
	// Returns domain.ErrNotFound when absent.
	GetByLogin(ctx context.Context, login string) (*user.User, error)

	// RecordLogin stamps the user's last-login time.
	RecordLogin(ctx context.Context, id string, at time.Time) error
}
