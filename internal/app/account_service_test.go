package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/user"
	"github.com/conductorhq/conductor/mocks"
)

func newAccountService(t *testing.T) (*AccountService, *mocks.MockUserStore) {
	t.Helper()

	users := mocks.NewMockUserStore(t)
	svc := NewAccountService(users, 24*time.Hour, discardLogger())
	t.Cleanup(svc.Close)
	return svc, users
}

func storedUser(t *testing.T, password string) *user.User {
	t.Helper()

	u, err := user.New("alice", "alice@example.com", password)
	if err != nil {
		t.Fatalf("user.New() error = %v", err)
	}
	return u
}

func TestRegister(t *testing.T) {
	t.Parallel()

	svc, users := newAccountService(t)
	users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Register() error = %v, want nil", err)
	}
	if u.ID == "" || !u.Active {
		t.Errorf("Register() returned %+v, want active user with ID", u)
	}
}

func TestRegister_Conflict(t *testing.T) {
	t.Parallel()

	svc, users := newAccountService(t)
	users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "hunter2hunter2")
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Register() error = %v, want ErrConflict", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountService(t)

	_, err := svc.Register(context.Background(), "", "not-an-email", "short")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Register() error = %v, want ErrValidation", err)
	}
}

func TestLogin_SessionRoundTrip(t *testing.T) {
	t.Parallel()

	svc, users := newAccountService(t)
	stored := storedUser(t, "hunter2hunter2")

	users.EXPECT().GetByLogin(mock.Anything, "alice").Return(stored, nil)
	users.EXPECT().RecordLogin(mock.Anything, stored.ID, mock.Anything).Return(nil)
	users.EXPECT().GetByID(mock.Anything, stored.ID).Return(stored, nil)

	token, u, err := svc.Login(context.Background(), "alice", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v, want nil", err)
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}
	if u.LastLoginAt == nil {
		t.Error("LastLoginAt not stamped")
	}

	got, err := svc.UserFromSession(context.Background(), token)
	if err != nil {
		t.Fatalf("UserFromSession() error = %v, want nil", err)
	}
	if got.ID != stored.ID {
		t.Errorf("UserFromSession() user = %s, want %s", got.ID, stored.ID)
	}

	svc.Logout(context.Background(), token)
	if _, err := svc.UserFromSession(context.Background(), token); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("UserFromSession() after logout error = %v, want ErrForbidden", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, users := newAccountService(t)
		users.EXPECT().GetByLogin(mock.Anything, "alice").Return(storedUser(t, "hunter2hunter2"), nil)

		_, _, err := svc.Login(context.Background(), "alice", "wrong-password")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("Login() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("unknown account collapses to forbidden", func(t *testing.T) {
		t.Parallel()
		svc, users := newAccountService(t)
		users.EXPECT().GetByLogin(mock.Anything, "nobody").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(context.Background(), "nobody", "whatever-password")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("Login() error = %v, want ErrForbidden (no account enumeration)", err)
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		t.Parallel()
		svc, users := newAccountService(t)
		stored := storedUser(t, "hunter2hunter2")
		stored.Active = false
		users.EXPECT().GetByLogin(mock.Anything, "alice").Return(stored, nil)

		_, _, err := svc.Login(context.Background(), "alice", "hunter2hunter2")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("Login() error = %v, want ErrForbidden", err)
		}
	})
}

func TestLogin_RecordLoginFailureDoesNotBlock(t *testing.T) {
	t.Parallel()

	svc, users := newAccountService(t)
	stored := storedUser(t, "hunter2hunter2")
	users.EXPECT().GetByLogin(mock.Anything, "alice").Return(stored, nil)
	users.EXPECT().RecordLogin(mock.Anything, stored.ID, mock.Anything).
		Return(&domain.PersistenceError{Op: "record_login", Err: errors.New("locked")})

	token, _, err := svc.Login(context.Background(), "alice", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v, want nil (stamp is advisory)", err)
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}
}

func TestUserFromSession_ExpiryFixedAtLogin(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore(t)
	svc := NewAccountService(users, 300*time.Millisecond, discardLogger())
	t.Cleanup(svc.Close)

	stored := storedUser(t, "hunter2hunter2")
	users.EXPECT().GetByLogin(mock.Anything, "alice").Return(stored, nil)
	users.EXPECT().RecordLogin(mock.Anything, stored.ID, mock.Anything).Return(nil)
	users.EXPECT().GetByID(mock.Anything, stored.ID).Return(stored, nil)

	token, _, err := svc.Login(context.Background(), "alice", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	// Keep the session active up to its deadline. Each access refreshes the
	// activity marker; none of them may move the expiry.
	for i := 0; i < 2; i++ {
		time.Sleep(100 * time.Millisecond)
		if _, err := svc.UserFromSession(context.Background(), token); err != nil {
			t.Fatalf("UserFromSession() before the deadline error = %v", err)
		}
	}

	time.Sleep(200 * time.Millisecond)
	if _, err := svc.UserFromSession(context.Background(), token); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("UserFromSession() past the login deadline error = %v, want ErrForbidden", err)
	}
}

func TestUserFromSession_UnknownToken(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountService(t)

	_, err := svc.UserFromSession(context.Background(), "bogus")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("UserFromSession() error = %v, want ErrForbidden", err)
	}
}

func TestUserFromSession_DeactivatedUserDropsSession(t *testing.T) {
	t.Parallel()

	svc, users := newAccountService(t)
	stored := storedUser(t, "hunter2hunter2")

	users.EXPECT().GetByLogin(mock.Anything, "alice").Return(stored, nil)
	users.EXPECT().RecordLogin(mock.Anything, stored.ID, mock.Anything).Return(nil)

	token, _, err := svc.Login(context.Background(), "alice", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	stored.Active = false
	users.EXPECT().GetByID(mock.Anything, stored.ID).Return(stored, nil).Once()

	if _, err := svc.UserFromSession(context.Background(), token); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("UserFromSession() error = %v, want ErrForbidden", err)
	}
	// The session was dropped; the store is not consulted again.
	if _, err := svc.UserFromSession(context.Background(), token); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("UserFromSession() second call error = %v, want ErrForbidden", err)
	}
}
