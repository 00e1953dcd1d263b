// Package sqlite provides SQLite-backed implementations of the durable store
// ports: the action/call ledger, the credential store, and the user store.
// Times are persisted as UTC unix milliseconds; map-valued fields as JSON
// text. Every store failure is surfaced as a *domain.PersistenceError so the
// core can tell a lost audit trail apart from expected conditions like
// domain.ErrNotFound.
package sqlite
