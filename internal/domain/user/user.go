// Package user models accounts and password verification. Password hashing
// uses PBKDF2-HMAC-SHA256 with a per-user random salt, stored as
// "salt:hash" in hex.
package user

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/pbkdf2"

	"github.com/google/uuid"

	"github.com/conductorhq/conductor/internal/domain"
)

const (
	pbkdf2Iterations = 100_000
	saltBytes        = 16
	keyBytes         = 32
)

// User is an account that owns sessions, credentials, and actions.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// New creates an active user with a hashed password.
func New(username, email, password string) (*User, error) {
	fields := make(map[string]string)

	username = strings.TrimSpace(username)
	if username == "" {
		fields["username"] = "required"
	}
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "invalid address"
	}
	if len(password) < 8 {
		fields["password"] = "must be at least 8 characters"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// HashPassword derives a PBKDF2 hash with a fresh random salt.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keyBytes, sha256.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword reports whether password matches the stored hash. Malformed
// hashes verify as false rather than erroring; the caller only cares whether
// access is granted.
func VerifyPassword(password, stored string) bool {
	saltHex, keyHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, len(want), sha256.New)
	return hmac.Equal(got, want)
}
