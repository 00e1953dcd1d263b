package credential

import (
	"errors"
	"testing"
	"time"

	"github.com/conductorhq/conductor/internal/domain"
)

func validRecord() *TokenRecord {
	return &TokenRecord{
		UserID:      "user-1",
		Service:     domain.ServiceSlack,
		AccessToken: "xoxb-1",
		TokenType:   "Bearer",
		Scope:       "chat:write",
		Active:      true,
	}
}

func TestTokenRecord_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 12, 15, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{name: "no expiry never expires", expiresAt: nil, want: false},
		{name: "past expiry", expiresAt: &past, want: true},
		{name: "exactly at expiry", expiresAt: &now, want: true},
		{name: "future expiry", expiresAt: &future, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := validRecord()
			rec.ExpiresAt = tt.expiresAt
			if got := rec.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenRecord_Refreshable(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	if rec.Refreshable() {
		t.Error("Refreshable() = true without a refresh token")
	}

	rec.RefreshToken = "refresh-1"
	if !rec.Refreshable() {
		t.Error("Refreshable() = false with a refresh token")
	}
}

func TestTokenRecord_Validate(t *testing.T) {
	t.Parallel()

	if err := validRecord().Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*TokenRecord)
		field  string
	}{
		{
			name:   "missing user",
			mutate: func(r *TokenRecord) { r.UserID = "" },
			field:  "user_id",
		},
		{
			name:   "unknown service",
			mutate: func(r *TokenRecord) { r.Service = domain.Service("ftp") },
			field:  "service",
		},
		{
			name:   "missing access token",
			mutate: func(r *TokenRecord) { r.AccessToken = "" },
			field:  "access_token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := validRecord()
			tt.mutate(rec)

			err := rec.Validate()
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Validate() error = %v, want ErrValidation", err)
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("Fields missing %q, got %v", tt.field, verr.Fields)
			}
		})
	}
}
