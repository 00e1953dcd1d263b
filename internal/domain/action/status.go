package action

// Status tracks an action through its execution state machine:
//
//	PENDING → IN_PROGRESS → {COMPLETED, FAILED}
//	COMPLETED → ROLLED_BACK
//
// Transitions are monotonic; only COMPLETED may transition further, and only
// to ROLLED_BACK.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusRolledBack Status = "rolled_back"
)

// IsValid reports whether s is a known status value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed, StatusRolledBack:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether s ends forward execution. ROLLED_BACK is
// terminal absolutely; COMPLETED is terminal for execution but may still
// transition to ROLLED_BACK.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusRolledBack:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the state machine permits moving from s
// to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusCompleted || next == StatusFailed
	case StatusCompleted:
		return next == StatusRolledBack
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}
