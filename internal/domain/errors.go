package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking. Expected failure modes travel as
// values attached to Call records or returned from services; only
// ErrPersistence aborts an operation as a whole, because losing the audit
// trail breaks the reversibility guarantee.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")

	// Credential lifecycle.
	ErrUnsupportedService = errors.New("unsupported service")
	ErrInvalidState       = errors.New("invalid handshake state")
	ErrExpiredState       = errors.New("expired handshake state")
	ErrServiceMismatch    = errors.New("handshake service mismatch")
	ErrNoCredential       = errors.New("no usable credential")

	// Dispatch.
	ErrUnknownCapability = errors.New("unknown capability")
	ErrService           = errors.New("service error")

	// Rollback.
	ErrNotReversible     = errors.New("action not reversible")
	ErrAlreadyRolledBack = errors.New("action already rolled back")

	// ErrPersistence is the only fatal kind: the durable store is the single
	// source of truth, and a success that cannot be recorded must not be
	// reported.
	ErrPersistence = errors.New("persistence error")
)

// AdapterError is the uniform failure shape raised by service adapters for
// any downstream problem (network, 4xx/5xx, malformed response). It wraps
// ErrService so callers can match the kind without inspecting the struct.
type AdapterError struct {
	Status  int // HTTP status when known, 0 for transport-level failures
	Message string
}

func (e *AdapterError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("service error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("service error: %s", e.Message)
}

func (e *AdapterError) Unwrap() error {
	return ErrService
}

// PersistenceError marks a durable-store failure as fatal. It carries the
// failed operation name and wraps both the cause and ErrPersistence.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

// ValidationError provides programmatic access to field-level validation
// failures. Use errors.Is(err, ErrValidation) for simple checks, or
// errors.As(err, &verr) to access verr.Fields for per-field details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msg := ErrValidation.Error()
	for field, detail := range e.Fields {
		msg += "; " + field + ": " + detail
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
