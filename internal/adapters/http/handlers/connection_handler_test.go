package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/conductorhq/conductor/internal/adapters/http/dto"
	"github.com/conductorhq/conductor/internal/adapters/http/handlers"
	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/credential"
	"github.com/conductorhq/conductor/mocks"
)

func newConnectionHandler(t *testing.T) (*handlers.ConnectionHandler, *mocks.MockConnectionService) {
	t.Helper()
	svc := mocks.NewMockConnectionService(t)
	return handlers.NewConnectionHandler(svc), svc
}

// --- BeginGrant ---

func TestBeginGrant_Success(t *testing.T) {
	t.Parallel()
	h, svc := newConnectionHandler(t)

	svc.EXPECT().BeginGrant(mock.Anything, testUserID, domain.ServiceSlack, "https://app.example.com/done").
		Return("https://slack.com/oauth/v2/authorize?state=abc", nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/connect/slack?redirect_uri=https%3A%2F%2Fapp.example.com%2Fdone", nil)
	req = withChiParams(req, map[string]string{"service": "slack"})
	h.BeginGrant(rec, asUser(req))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.GrantResponse](t, rec)
	if resp.AuthorizationURL != "https://slack.com/oauth/v2/authorize?state=abc" {
		t.Errorf("AuthorizationURL = %q", resp.AuthorizationURL)
	}
}

func TestBeginGrant_UnsupportedService(t *testing.T) {
	t.Parallel()
	h, svc := newConnectionHandler(t)

	svc.EXPECT().BeginGrant(mock.Anything, testUserID, domain.Service("ftp"), "").
		Return("", domain.ErrUnsupportedService)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/connect/ftp", nil)
	req = withChiParams(req, map[string]string{"service": "ftp"})
	h.BeginGrant(rec, asUser(req))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Callback ---

func TestCallback_Success(t *testing.T) {
	t.Parallel()
	h, svc := newConnectionHandler(t)

	svc.EXPECT().CompleteGrant(mock.Anything, domain.ServiceSlack, "code-1", "state-1", "").
		Return(validConnection(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/connect/slack/callback?code=code-1&state=state-1", nil)
	req = withChiParams(req, map[string]string{"service": "slack"})
	h.Callback(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ConnectionResponse](t, rec)
	if resp.Service != "slack" || resp.Scope != "chat:write" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCallback_MissingParams(t *testing.T) {
	t.Parallel()
	h, _ := newConnectionHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/connect/slack/callback?code=code-1", nil)
	req = withChiParams(req, map[string]string{"service": "slack"})
	h.Callback(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCallback_InvalidState(t *testing.T) {
	t.Parallel()
	h, svc := newConnectionHandler(t)

	svc.EXPECT().CompleteGrant(mock.Anything, domain.ServiceSlack, "code-1", "replayed", "").
		Return(nil, domain.ErrInvalidState)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/connect/slack/callback?code=code-1&state=replayed", nil)
	req = withChiParams(req, map[string]string{"service": "slack"})
	h.Callback(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Disconnect ---

func TestDisconnect_Success(t *testing.T) {
	t.Parallel()
	h, svc := newConnectionHandler(t)

	svc.EXPECT().Disconnect(mock.Anything, testUserID, domain.ServiceSlack).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/connect/slack", nil)
	req = withChiParams(req, map[string]string{"service": "slack"})
	h.Disconnect(rec, asUser(req))

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDisconnect_NothingConnected(t *testing.T) {
	t.Parallel()
	h, svc := newConnectionHandler(t)

	svc.EXPECT().Disconnect(mock.Anything, testUserID, domain.ServiceSlack).
		Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/connect/slack", nil)
	req = withChiParams(req, map[string]string{"service": "slack"})
	h.Disconnect(rec, asUser(req))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- ListConnections ---

func TestListConnections_Success(t *testing.T) {
	t.Parallel()
	h, svc := newConnectionHandler(t)

	svc.EXPECT().Connections(mock.Anything, testUserID).
		Return([]*credential.TokenRecord{validConnection()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/connections", nil)
	h.ListConnections(rec, asUser(req))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ConnectionListResponse](t, rec)
	if resp.Count != 1 || resp.Connections[0].Service != "slack" {
		t.Errorf("resp = %+v", resp)
	}
}
