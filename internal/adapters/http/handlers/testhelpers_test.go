package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/conductorhq/conductor/internal/adapters/http/middleware"
	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/action"
	"github.com/conductorhq/conductor/internal/domain/credential"
	"github.com/conductorhq/conductor/internal/domain/user"
)

const testUserID = "user-1"

var testTime = time.Date(2026, 8, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asUser simulates the session middleware by storing the test user on the
// request context.
func asUser(r *http.Request) *http.Request {
	ctx := middleware.WithUser(r.Context(), validUser())
	ctx = middleware.WithSessionToken(ctx, "session-token-1")
	return r.WithContext(ctx)
}

func validUser() *user.User {
	return &user.User{
		ID:        testUserID,
		Username:  "casey",
		Email:     "casey@example.com",
		Active:    true,
		CreatedAt: testTime,
	}
}

func completedAction() *action.Action {
	completed := testTime.Add(2 * time.Second)
	return &action.Action{
		ID:      "act-1",
		UserID:  testUserID,
		Command: "send good morning to #general",
		Status:  action.StatusCompleted,
		Input:   map[string]any{"command": "send good morning to #general"},
		Output: map[string]any{
			"summary": "Message sent to #general",
			"results": []any{},
		},
		CanRollback: true,
		StartedAt:   testTime,
		CompletedAt: &completed,
		Duration:    2 * time.Second,
	}
}

func validConnection() *credential.TokenRecord {
	return &credential.TokenRecord{
		UserID:      testUserID,
		Service:     domain.ServiceSlack,
		AccessToken: "xoxb-1",
		TokenType:   "Bearer",
		Scope:       "chat:write",
		Active:      true,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
