package dto_test

import (
	"testing"
	"time"

	"github.com/conductorhq/conductor/internal/adapters/http/dto"
	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/action"
	"github.com/conductorhq/conductor/internal/domain/credential"
	"github.com/conductorhq/conductor/internal/domain/user"
	"github.com/conductorhq/conductor/internal/ports"
)

var testTime = time.Date(2026, 8, 12, 15, 4, 5, 0, time.UTC)

func completedAction() *action.Action {
	done := testTime.Add(2 * time.Second)
	return &action.Action{
		ID:          "act-1",
		UserID:      "user-1",
		Command:     "post hello to #general",
		Status:      action.StatusCompleted,
		Output:      map[string]any{"summary": "Message sent to #general"},
		CanRollback: true,
		StartedAt:   testTime,
		CompletedAt: &done,
		Duration:    2 * time.Second,
	}
}

func TestToUserResponse(t *testing.T) {
	t.Parallel()

	login := testTime.Add(time.Hour)
	u := &user.User{
		ID:           "user-1",
		Username:     "casey",
		Email:        "casey@example.com",
		PasswordHash: "aa:bb",
		CreatedAt:    testTime,
		LastLoginAt:  &login,
	}

	got := dto.ToUserResponse(u)

	if got.ID != "user-1" || got.Username != "casey" || got.Email != "casey@example.com" {
		t.Errorf("ToUserResponse() = %+v", got)
	}
	if got.CreatedAt != "2026-08-12T15:04:05Z" {
		t.Errorf("CreatedAt = %q", got.CreatedAt)
	}
	if got.LastLoginAt != "2026-08-12T16:04:05Z" {
		t.Errorf("LastLoginAt = %q", got.LastLoginAt)
	}
}

func TestToActionResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToActionResponse(completedAction())

	if got.ID != "act-1" || got.Status != "completed" {
		t.Errorf("response = %+v", got)
	}
	if !got.CanRollback {
		t.Error("CanRollback = false")
	}
	if got.StartedAt != "2026-08-12T15:04:05Z" || got.CompletedAt != "2026-08-12T15:04:07Z" {
		t.Errorf("timestamps = %q / %q", got.StartedAt, got.CompletedAt)
	}
	if got.DurationMS != 2000 {
		t.Errorf("DurationMS = %d, want 2000", got.DurationMS)
	}
	if got.RolledBackAt != "" || len(got.RollbackResult) != 0 {
		t.Errorf("rollback fields set on a non-rolled-back action: %+v", got)
	}
}

func TestToActionResponse_RolledBack(t *testing.T) {
	t.Parallel()

	a := completedAction()
	rolledBack := testTime.Add(time.Hour)
	a.Status = action.StatusRolledBack
	a.RolledBackAt = &rolledBack
	a.RollbackReason = "wrong channel"
	a.RollbackResult = []action.CompensationResult{
		{CallID: "call-1", Function: "delete_slack_message"},
		{CallID: "call-2", Function: "delete_jira_ticket", Err: "HTTP 404"},
	}

	got := dto.ToActionResponse(a)

	if got.Status != "rolled_back" || got.RollbackReason != "wrong channel" {
		t.Errorf("response = %+v", got)
	}
	if len(got.RollbackResult) != 2 {
		t.Fatalf("len(RollbackResult) = %d, want 2", len(got.RollbackResult))
	}
	if !got.RollbackResult[0].Success {
		t.Error("RollbackResult[0].Success = false, want true")
	}
	if got.RollbackResult[1].Success || got.RollbackResult[1].Error != "HTTP 404" {
		t.Errorf("RollbackResult[1] = %+v", got.RollbackResult[1])
	}
}

func TestToSubmitResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToSubmitResponse(completedAction())

	if !got.Success {
		t.Error("Success = false for a completed action")
	}
	if got.ActionID != "act-1" || !got.CanRollback {
		t.Errorf("response = %+v", got)
	}
	if got.Message != "Message sent to #general" {
		t.Errorf("Message = %q, want the output summary", got.Message)
	}
}

func TestToSubmitResponse_Failed(t *testing.T) {
	t.Parallel()

	a := completedAction()
	a.Status = action.StatusFailed
	a.CanRollback = false
	a.Output = nil
	a.ErrorDetail = "no usable credential for slack"

	got := dto.ToSubmitResponse(a)

	if got.Success {
		t.Error("Success = true for a failed action")
	}
	if got.Message != "no usable credential for slack" {
		t.Errorf("Message = %q, want the error detail", got.Message)
	}
}

func TestToRollbackResponse(t *testing.T) {
	t.Parallel()

	result := &ports.RollbackResult{
		Success: false,
		Results: []action.CompensationResult{
			{CallID: "call-2", Function: "delete_slack_message"},
			{CallID: "call-1", Function: "delete_jira_ticket", Err: "HTTP 404"},
		},
	}

	got := dto.ToRollbackResponse("act-1", result)

	if got.Success || got.ActionID != "act-1" {
		t.Errorf("response = %+v", got)
	}
	if len(got.Results) != 2 || got.Results[1].Error != "HTTP 404" {
		t.Errorf("Results = %+v", got.Results)
	}
}

func TestToConnectionResponse(t *testing.T) {
	t.Parallel()

	expires := testTime.Add(12 * time.Hour)
	rec := &credential.TokenRecord{
		UserID:      "user-1",
		Service:     domain.ServiceSlack,
		AccessToken: "xoxb-secret",
		Scope:       "chat:write",
		ExpiresAt:   &expires,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}

	got := dto.ToConnectionResponse(rec)

	if got.Service != "slack" || got.Scope != "chat:write" {
		t.Errorf("response = %+v", got)
	}
	if got.ExpiresAt != "2026-08-13T03:04:05Z" {
		t.Errorf("ExpiresAt = %q", got.ExpiresAt)
	}
}

func TestToConnectionListResponse(t *testing.T) {
	t.Parallel()

	records := []*credential.TokenRecord{
		{Service: domain.ServiceSlack, CreatedAt: testTime, UpdatedAt: testTime},
		{Service: domain.ServiceJira, CreatedAt: testTime, UpdatedAt: testTime},
	}

	got := dto.ToConnectionListResponse(records)

	if got.Count != 2 || len(got.Connections) != 2 {
		t.Fatalf("Count = %d, len = %d", got.Count, len(got.Connections))
	}
	if got.Connections[1].Service != "jira" {
		t.Errorf("Connections[1].Service = %q", got.Connections[1].Service)
	}
}
