package entities

import "time"

// StateSnapshot is a timestamped copy of the budget recorded after every
// accepted session change.
type StateSnapshot struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Budget      Budget    `json:"budget"`
}

// StateChange is one entry in a session's rolling change log.
type StateChange struct {
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// SessionState is the exclusive, time-boxed working context a seller holds
// over one budget.
//
// Invariant: at most one active session per budget id. A closed session is
// terminal; a fresh session must be created to keep working the budget.
type SessionState struct {
	ID           string          `json:"id"`
	BudgetID     string          `json:"budget_id"`
	SellerID     string          `json:"seller_id"`
	StartTime    time.Time       `json:"start_time"`
	LastActivity time.Time       `json:"last_activity"`
	IsActive     bool            `json:"is_active"`
	Budget       Budget          `json:"budget"`
	Snapshots    []StateSnapshot `json:"snapshots"`
	Changes      []StateChange   `json:"changes"`
}

// Clone returns a deep copy safe to hand to callers outside the session
// manager's lock.
func (s SessionState) Clone() SessionState {
	out := s
	out.Budget = s.Budget.Clone()
	out.Snapshots = make([]StateSnapshot, len(s.Snapshots))
	for i, snap := range s.Snapshots {
		snap.Budget = snap.Budget.Clone()
		out.Snapshots[i] = snap
	}
	out.Changes = make([]StateChange, len(s.Changes))
	copy(out.Changes, s.Changes)
	return out
}
