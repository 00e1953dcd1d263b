package services

import (
	"log/slog"
	"testing"
	"time"

	"github.com/conductorhq/conductor/internal/platform/config"
	"github.com/conductorhq/conductor/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test
// server, tuned for fast test execution.
func newTestClient(t *testing.T, serviceName, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, serviceName, baseURL, nil, slog.New(slog.DiscardHandler))
}
