package race

import "time"

// LockState gates captain/reserve changes ahead of a session. Trades are
// never gated by it; only the lineup is.
type LockState string

const (
	LockUnconfigured LockState = "unconfigured"
	LockOpen         LockState = "open"
	LockClosingSoon  LockState = "closing_soon"
	LockLocked       LockState = "locked"
)

const (
	// LineupLockLead is how long before the session start the lineup
	// freezes.
	LineupLockLead = 5 * time.Minute

	closingSoonWindow = 30 * time.Minute
)

// LineupLockState derives the lock state from wall-clock time. The lock
// boundary is inclusive: at exactly lock time the state is already locked.
// States only move forward over time unless an admin edits the session
// timestamp.
func LineupLockState(r Race, now time.Time) LockState {
	sessionStart := r.LockSessionStart()
	if sessionStart.IsZero() {
		return LockUnconfigured
	}

	lockAt := sessionStart.Add(-LineupLockLead)
	switch {
	case !now.Before(lockAt):
		return LockLocked
	case lockAt.Sub(now) <= closingSoonWindow:
		return LockClosingSoon
	default:
		return LockOpen
	}
}
