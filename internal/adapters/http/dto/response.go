// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/conductorhq/conductor/internal/domain/action"
	"github.com/conductorhq/conductor/internal/domain/credential"
	"github.com/conductorhq/conductor/internal/domain/user"
	"github.com/conductorhq/conductor/internal/ports"
)

// UserResponse represents an account in HTTP responses. The password hash
// never leaves the domain layer.
type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	CreatedAt   string `json:"created_at"`
	LastLoginAt string `json:"last_login_at,omitempty"`
}

// ToUserResponse converts a domain User entity to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLoginAt != nil {
		resp.LastLoginAt = u.LastLoginAt.Format(time.RFC3339)
	}
	return resp
}

// SessionResponse represents a successful login: the opaque session token and
// the account it belongs to.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ActionResponse represents one command execution in HTTP responses.
type ActionResponse struct {
	ID          string         `json:"id"`
	Command     string         `json:"command"`
	Status      string         `json:"status"`
	Output      map[string]any `json:"output,omitempty"`
	ErrorDetail string         `json:"error_detail,omitempty"`

	CanRollback    bool                         `json:"can_rollback"`
	RolledBackAt   string                       `json:"rolled_back_at,omitempty"`
	RollbackReason string                       `json:"rollback_reason,omitempty"`
	RollbackResult []CompensationResultResponse `json:"rollback_result,omitempty"`

	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at,omitempty"`
	DurationMS  int64  `json:"duration_ms"`
}

// ActionListResponse represents a page of a user's actions, newest first.
type ActionListResponse struct {
	Actions []ActionResponse `json:"actions"`
	Count   int              `json:"count"`
}

// CompensationResultResponse represents the outcome of one compensation
// attempt within a rollback.
type CompensationResultResponse struct {
	CallID   string `json:"call_id"`
	Function string `json:"function"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// ToActionResponse converts a domain Action entity to an HTTP response DTO.
func ToActionResponse(a *action.Action) ActionResponse {
	resp := ActionResponse{
		ID:             a.ID,
		Command:        a.Command,
		Status:         a.Status.String(),
		Output:         a.Output,
		ErrorDetail:    a.ErrorDetail,
		CanRollback:    a.CanRollback,
		RollbackReason: a.RollbackReason,
		StartedAt:      a.StartedAt.Format(time.RFC3339),
		DurationMS:     a.Duration.Milliseconds(),
	}
	if a.CompletedAt != nil {
		resp.CompletedAt = a.CompletedAt.Format(time.RFC3339)
	}
	if a.RolledBackAt != nil {
		resp.RolledBackAt = a.RolledBackAt.Format(time.RFC3339)
	}
	if len(a.RollbackResult) > 0 {
		resp.RollbackResult = toCompensationResults(a.RollbackResult)
	}
	return resp
}

// ToActionListResponse converts a slice of domain Action entities to an HTTP
// list response DTO.
func ToActionListResponse(actions []*action.Action) ActionListResponse {
	items := make([]ActionResponse, len(actions))
	for i, a := range actions {
		items[i] = ToActionResponse(a)
	}
	return ActionListResponse{
		Actions: items,
		Count:   len(items),
	}
}

// SubmitResponse represents the outcome of a submitted command. Success means
// the action reached COMPLETED; the full action record is included for
// inspection either way.
type SubmitResponse struct {
	Success     bool           `json:"success"`
	ActionID    string         `json:"action_id"`
	Message     string         `json:"message"`
	CanRollback bool           `json:"can_rollback"`
	Action      ActionResponse `json:"action"`
}

// ToSubmitResponse converts a finished action to a submission response. The
// message is the resolver's summary for completed actions and the recorded
// error detail for failed ones.
func ToSubmitResponse(a *action.Action) SubmitResponse {
	resp := SubmitResponse{
		Success:     a.Status == action.StatusCompleted,
		ActionID:    a.ID,
		CanRollback: a.CanRollback,
		Action:      ToActionResponse(a),
	}
	if summary, ok := a.Output["summary"].(string); ok {
		resp.Message = summary
	}
	if !resp.Success {
		resp.Message = a.ErrorDetail
	}
	return resp
}

// RollbackResponse represents the outcome of a rollback attempt. Success is
// true only when every compensation succeeded.
type RollbackResponse struct {
	Success  bool                         `json:"success"`
	ActionID string                       `json:"action_id"`
	Results  []CompensationResultResponse `json:"results"`
}

// ToRollbackResponse converts a ports.RollbackResult to an HTTP response DTO.
func ToRollbackResponse(actionID string, result *ports.RollbackResult) RollbackResponse {
	return RollbackResponse{
		Success:  result.Success,
		ActionID: actionID,
		Results:  toCompensationResults(result.Results),
	}
}

func toCompensationResults(results []action.CompensationResult) []CompensationResultResponse {
	items := make([]CompensationResultResponse, len(results))
	for i, r := range results {
		items[i] = CompensationResultResponse{
			CallID:   r.CallID,
			Function: r.Function,
			Success:  r.Err == "",
			Error:    r.Err,
		}
	}
	return items
}

// GrantResponse carries the provider authorization URL that starts an OAuth
// handshake. The client redirects the user's browser to it.
type GrantResponse struct {
	AuthorizationURL string `json:"authorization_url"`
}

// ConnectionResponse represents one connected service in HTTP responses.
// Token material is never included.
type ConnectionResponse struct {
	Service     string `json:"service"`
	Scope       string `json:"scope,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
	ConnectedAt string `json:"connected_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ConnectionListResponse represents a user's connected services.
type ConnectionListResponse struct {
	Connections []ConnectionResponse `json:"connections"`
	Count       int                  `json:"count"`
}

// ToConnectionResponse converts a domain TokenRecord to an HTTP response DTO.
func ToConnectionResponse(t *credential.TokenRecord) ConnectionResponse {
	resp := ConnectionResponse{
		Service:     t.Service.String(),
		Scope:       t.Scope,
		ConnectedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.ExpiresAt != nil {
		resp.ExpiresAt = t.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}

// ToConnectionListResponse converts a slice of TokenRecords to an HTTP list
// response DTO.
func ToConnectionListResponse(records []*credential.TokenRecord) ConnectionListResponse {
	items := make([]ConnectionResponse, len(records))
	for i, t := range records {
		items[i] = ToConnectionResponse(t)
	}
	return ConnectionListResponse{
		Connections: items,
		Count:       len(items),
	}
}
