// Package services contains the outbound adapters that execute capabilities
// against external services: Slack messaging, Jira issue tracking, S3 object
// storage, and GitHub code hosting. Each adapter translates capability
// arguments to the downstream API, normalizes the response to a flat result
// map, and surfaces every downstream failure as a *domain.AdapterError.
// Compensating operations go through the same adapters via
// InvokeCompensation.
package services
