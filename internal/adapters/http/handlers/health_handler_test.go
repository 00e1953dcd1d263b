package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/conductorhq/conductor/internal/adapters/http/handlers"
	"github.com/conductorhq/conductor/internal/platform/health"
	"github.com/conductorhq/conductor/mocks"
)

func TestLiveness(t *testing.T) {
	t.Parallel()
	h := handlers.NewHealthHandler(health.New())

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	requireStatus(t, rec, http.StatusOK)
}

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("sqlite")
	checker.EXPECT().HealthCheck(mock.Anything).Return(nil)

	registry := health.New()
	registry.Register(checker)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "ready" {
		t.Errorf("status = %v, want ready", resp["status"])
	}
}

func TestReadiness_FailingCheck(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("slack")
	checker.EXPECT().HealthCheck(mock.Anything).Return(errors.New("circuit open"))

	registry := health.New()
	registry.Register(checker)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	requireStatus(t, rec, http.StatusServiceUnavailable)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "not_ready" {
		t.Errorf("status = %v, want not_ready", resp["status"])
	}
}
