package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/conductorhq/conductor/internal/adapters/http/dto"
	"github.com/conductorhq/conductor/internal/adapters/http/handlers"
	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/mocks"
)

func newAccountHandler(t *testing.T) (*handlers.AccountHandler, *mocks.MockAccountService) {
	t.Helper()
	svc := mocks.NewMockAccountService(t)
	return handlers.NewAccountHandler(svc), svc
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	h, svc := newAccountHandler(t)

	svc.EXPECT().Register(mock.Anything, "casey", "casey@example.com", "hunter2hunter2").
		Return(validUser(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		jsonBody(t, dto.RegisterRequest{
			Username: "casey",
			Email:    "casey@example.com",
			Password: "hunter2hunter2",
		}))
	h.Register(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.ID != testUserID || resp.Username != "casey" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()
	h, _ := newAccountHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		jsonBody(t, dto.RegisterRequest{Username: "casey"}))
	h.Register(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 2 {
		t.Errorf("Errors = %+v, want email and password entries", resp.Errors)
	}
}

func TestRegister_Conflict(t *testing.T) {
	t.Parallel()
	h, svc := newAccountHandler(t)

	svc.EXPECT().Register(mock.Anything, "casey", "casey@example.com", "hunter2hunter2").
		Return(nil, domain.ErrConflict)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		jsonBody(t, dto.RegisterRequest{
			Username: "casey",
			Email:    "casey@example.com",
			Password: "hunter2hunter2",
		}))
	h.Register(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	h, svc := newAccountHandler(t)

	svc.EXPECT().Login(mock.Anything, "casey", "hunter2hunter2").
		Return("session-token-1", validUser(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		jsonBody(t, dto.LoginRequest{Login: "casey", Password: "hunter2hunter2"}))
	h.Login(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SessionResponse](t, rec)
	if resp.Token != "session-token-1" || resp.User.Username != "casey" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()
	h, svc := newAccountHandler(t)

	svc.EXPECT().Login(mock.Anything, "casey", "wrong").
		Return("", nil, domain.ErrForbidden)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		jsonBody(t, dto.LoginRequest{Login: "casey", Password: "wrong"}))
	h.Login(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestLogin_MissingPassword(t *testing.T) {
	t.Parallel()
	h, _ := newAccountHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		jsonBody(t, dto.LoginRequest{Login: "casey"}))
	h.Login(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Logout ---

func TestLogout_InvalidatesSession(t *testing.T) {
	t.Parallel()
	h, svc := newAccountHandler(t)

	svc.EXPECT().Logout(mock.Anything, "session-token-1").Return()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	h.Logout(rec, asUser(req))

	requireStatus(t, rec, http.StatusNoContent)
}
