package user

import (
	"errors"
	"strings"
	"testing"

	"github.com/conductorhq/conductor/internal/domain"
)

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("error = nil, want validation error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	u, err := New("casey", "casey@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}

	if u.ID == "" {
		t.Error("ID is empty")
	}
	if u.Username != "casey" || u.Email != "casey@example.com" {
		t.Errorf("user = %q <%s>", u.Username, u.Email)
	}
	if !u.Active {
		t.Error("Active = false, want true")
	}
	if strings.Contains(u.PasswordHash, "correct horse battery") {
		t.Error("PasswordHash contains the plaintext password")
	}
	if u.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestNew_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	u, err := New("  casey  ", " casey@example.com ", "correct horse battery")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if u.Username != "casey" {
		t.Errorf("Username = %q, want trimmed", u.Username)
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		field    string
	}{
		{
			name:     "empty username",
			email:    "casey@example.com",
			password: "correct horse battery",
			field:    "username",
		},
		{
			name:     "invalid email",
			username: "casey",
			email:    "not-an-address",
			password: "correct horse battery",
			field:    "email",
		},
		{
			name:     "short password",
			username: "casey",
			email:    "casey@example.com",
			password: "short",
			field:    "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.username, tt.email, tt.password)
			requireValidationField(t, err, tt.field)
		})
	}
}

func TestPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !VerifyPassword("correct horse battery", hash) {
		t.Error("VerifyPassword rejects the original password")
	}
	if VerifyPassword("wrong password", hash) {
		t.Error("VerifyPassword accepts a wrong password")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	b, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical, salt is not random")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "no separator", stored: "deadbeef"},
		{name: "bad salt hex", stored: "zzzz:deadbeef"},
		{name: "bad key hex", stored: "deadbeef:zzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if VerifyPassword("anything", tt.stored) {
				t.Errorf("VerifyPassword(%q) = true, want false", tt.stored)
			}
		})
	}
}
