package action

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/conductorhq/conductor/internal/domain"
)

// ErrorKind classifies a call failure. Kinds are recorded on the Call so a
// failed dispatch is inspectable after the fact.
type ErrorKind string

const (
	ErrorKindNone              ErrorKind = ""
	ErrorKindUnknownCapability ErrorKind = "unknown_capability"
	ErrorKindNoCredential      ErrorKind = "no_credential"
	ErrorKindServiceError      ErrorKind = "service_error"
)

// Call is one dispatched capability invocation within an action. The
// dispatcher creates it in StatusPending immediately before invocation and
// finalizes it immediately after; it is read-only thereafter.
//
// Invariants: a failed call never carries compensation data, and compensation
// data, when present, is captured atomically with the successful result.
type Call struct {
	ID       string
	ActionID string
	// Seq is the insertion sequence within the action. Rollback orders by
	// call time descending with Seq as the deterministic tie-break.
	Seq      int
	Function string
	Service  domain.Service
	Args     map[string]any

	Status      Status
	Response    map[string]any
	ErrorKind   ErrorKind
	ErrorDetail string

	CompensationFunction string
	CompensationArgs     map[string]any

	CalledAt    time.Time
	CompletedAt *time.Time
	Duration    time.Duration
}

// NewCall creates a pending call record for one intent.
func NewCall(actionID string, seq int, function string, service domain.Service, args map[string]any) *Call {
	return &Call{
		ID:       uuid.NewString(),
		ActionID: actionID,
		Seq:      seq,
		Function: function,
		Service:  service,
		Args:     args,
		Status:   StatusPending,
		CalledAt: time.Now().UTC(),
	}
}

// Complete finalizes the call as successful. Compensation data, if the
// capability declares any, is stored in the same step as the result so the
// two can never diverge. Pass empty compFunction for non-reversible calls.
func (c *Call) Complete(response map[string]any, compFunction string, compArgs map[string]any) {
	c.Status = StatusCompleted
	c.Response = response
	c.CompensationFunction = compFunction
	if compFunction != "" {
		c.CompensationArgs = compArgs
	}
	c.finish()
}

// Fail finalizes the call as failed with the given kind and detail. Any
// compensation data is cleared: there is no effect to undo.
func (c *Call) Fail(kind ErrorKind, detail string) {
	c.Status = StatusFailed
	c.ErrorKind = kind
	c.ErrorDetail = detail
	c.CompensationFunction = ""
	c.CompensationArgs = nil
	c.finish()
}

// Compensable reports whether the call carries data to undo its effect.
func (c *Call) Compensable() bool {
	return c.Status == StatusCompleted && c.CompensationFunction != ""
}

func (c *Call) finish() {
	now := time.Now().UTC()
	c.CompletedAt = &now
	c.Duration = now.Sub(c.CalledAt)
}

// SortCallsForRollback orders calls for compensation: strictly reverse
// chronological, with the insertion sequence as tie-break when two calls
// share a timestamp. Later effects are undone first so dependent effects are
// removed before the effects they depended on.
func SortCallsForRollback(calls []*Call) {
	sort.Slice(calls, func(i, j int) bool {
		if !calls[i].CalledAt.Equal(calls[j].CalledAt) {
			return calls[i].CalledAt.After(calls[j].CalledAt)
		}
		return calls[i].Seq > calls[j].Seq
	})
}
