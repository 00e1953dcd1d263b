package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 20

	defaultResolverModel     = "gpt-4o"
	defaultResolverMaxTokens = 1024
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "30s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"store.path":         "conductor.db",
		"store.busy_timeout": "5s",

		"auth.session_ttl":   "24h",
		"auth.handshake_ttl": "5m",

		"resolver.model":       defaultResolverModel,
		"resolver.max_tokens":  defaultResolverMaxTokens,
		"resolver.temperature": 0.0,

		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"services.slack.base_url":  "https://slack.com/api",
		"services.jira.base_url":   "https://your-site.atlassian.net",
		"services.s3.base_url":     "https://conductor-artifacts.s3.us-east-1.amazonaws.com",
		"services.s3.region":       "us-east-1",
		"services.s3.bucket":       "conductor-artifacts",
		"services.github.base_url": "https://api.github.com",

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
