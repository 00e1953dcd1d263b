package ports

import "context"

// HealthChecker reports the health of a single component (the durable store,
// a downstream service client). Implementations should be fast and must not
// panic.
type HealthChecker interface {
	// Name identifies the component in readiness output.
	Name() string

	// HealthCheck returns nil when healthy, a descriptive error otherwise.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects health checkers for the readiness endpoint.
type HealthRegistry interface {
	// Register adds a checker. Safe for concurrent use.
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns results keyed by
	// checker name; nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
