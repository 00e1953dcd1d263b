// Package credential models durable token material for one (user, service)
// pair. The domain model carries plaintext token strings; the logging layer
// is responsible for keeping them out of logs, and the store persists them
// as given.
package credential

import (
	"time"

	"github.com/conductorhq/conductor/internal/domain"
)

// TokenRecord is the active credential for one (user, service) pair. At most
// one active record exists per pair; a new grant supersedes the prior record
// rather than duplicating it.
type TokenRecord struct {
	UserID  string
	Service domain.Service

	AccessToken  string
	RefreshToken string // empty when the provider issued none
	TokenType    string

	// ExpiresAt is nil for non-expiring tokens.
	ExpiresAt *time.Time

	Scope string

	// Metadata holds provider-specific extras surfaced by the grant exchange
	// (team id, resource URL, bot user id).
	Metadata map[string]string

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the access token is past its expiry at the given
// instant. Records without an expiry never expire.
func (t *TokenRecord) Expired(now time.Time) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return !now.Before(*t.ExpiresAt)
}

// Refreshable reports whether an expired record can be transparently
// refreshed.
func (t *TokenRecord) Refreshable() bool {
	return t.RefreshToken != ""
}

// Validate checks the record is persistable.
func (t *TokenRecord) Validate() error {
	fields := make(map[string]string)

	if t.UserID == "" {
		fields["user_id"] = "required"
	}
	if !t.Service.IsValid() {
		fields["service"] = "unknown service " + t.Service.String()
	}
	if t.AccessToken == "" {
		fields["access_token"] = "required"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
