package dto

import (
	"strings"

	"github.com/conductorhq/conductor/internal/domain"
)

const msgRequired = "is required"

// RegisterRequest represents the JSON body for creating a new account.
// Password strength and email shape are enforced by the domain layer; this
// validation only rejects bodies with fields missing outright.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *RegisterRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = msgRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// LoginRequest represents the JSON body for opening a session. Login accepts
// either the username or the email address.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *LoginRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Login) == "" {
		fields["login"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CommandRequest represents the JSON body for submitting a natural-language
// automation command.
type CommandRequest struct {
	Command string `json:"command"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CommandRequest) Validate() error {
	if strings.TrimSpace(r.Command) == "" {
		return &domain.ValidationError{Fields: map[string]string{"command": msgRequired}}
	}
	return nil
}

// RollbackRequest represents the JSON body for rolling back an action. The
// reason is recorded on the action's audit trail; it is optional and an empty
// body is accepted.
type RollbackRequest struct {
	Reason string `json:"reason"`
}
