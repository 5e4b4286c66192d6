package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tripbudget/internal/domain/entities"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionNotActive    = errors.New("session is not active")
	ErrSessionOwnedByOther = errors.New("budget already has an active session owned by another seller")
	ErrSnapshotNotFound    = errors.New("snapshot not found")
	ErrInvalidSessionInput = errors.New("invalid session input")
)

// ISessionStateManager owns the mutable sale session of each budget.
type ISessionStateManager interface {
	Create(budget entities.Budget, sellerID string) (entities.SessionState, error)
	Get(sessionID string) (entities.SessionState, error)
	GetActiveByBudgetID(budgetID string) (entities.SessionState, bool)
	Update(sessionID string, candidate entities.Budget, description string) (bool, error)
	RestoreSnapshot(sessionID, snapshotID string) (entities.SessionState, error)
	Close(sessionID string) error
}

// sessionEntry pairs a session with its own mutex. The mutex serializes
// mutations only; it is never held across a call into an external
// collaborator.
type sessionEntry struct {
	mu    sync.Mutex
	state entities.SessionState
}

// SessionStateManager keeps sessions in memory, one lock per session so
// updates to different sessions proceed fully independently.
//
// Expiry is lazy: every read checks last activity against the timeout. There
// is no background sweep, so there is no race between a timer firing and an
// in-flight update.
type SessionStateManager struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry // session id -> entry
	byBudget map[string]string        // budget id -> active session id
	cfg      Config
	log      zerolog.Logger
	now      func() time.Time
}

var _ ISessionStateManager = (*SessionStateManager)(nil)

func NewSessionStateManager(cfg Config, log zerolog.Logger) *SessionStateManager {
	return &SessionStateManager{
		sessions: make(map[string]*sessionEntry),
		byBudget: make(map[string]string),
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create opens a session owning the budget. If the same seller already holds
// the active session it is returned as-is; a different seller is rejected.
func (m *SessionStateManager) Create(budget entities.Budget, sellerID string) (entities.SessionState, error) {
	if budget.ID == "" || sellerID == "" {
		return entities.SessionState{}, ErrInvalidSessionInput
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if sid, ok := m.byBudget[budget.ID]; ok {
		entry := m.sessions[sid]
		entry.mu.Lock()
		active := m.refreshLocked(entry)
		owner := entry.state.SellerID
		existing := entry.state.Clone()
		entry.mu.Unlock()

		if active {
			if owner != sellerID {
				return entities.SessionState{}, ErrSessionOwnedByOther
			}
			return existing, nil
		}
		delete(m.byBudget, budget.ID)
	}

	now := m.now()
	state := entities.SessionState{
		ID:           uuid.NewString(),
		BudgetID:     budget.ID,
		SellerID:     sellerID,
		StartTime:    now,
		LastActivity: now,
		IsActive:     true,
		Budget:       budget.Clone(),
		Snapshots:    []entities.StateSnapshot{},
		Changes:      []entities.StateChange{},
	}
	entry := &sessionEntry{state: state}
	m.appendSnapshotLocked(entry, "session opened")

	m.sessions[state.ID] = entry
	m.byBudget[budget.ID] = state.ID

	m.log.Info().Str("session_id", state.ID).Str("budget_id", budget.ID).
		Str("seller_id", sellerID).Msg("session opened")
	return entry.state.Clone(), nil
}

// Get returns the session, lazily expiring it when the inactivity window has
// elapsed. An expired session reads as not found.
func (m *SessionStateManager) Get(sessionID string) (entities.SessionState, error) {
	entry, err := m.entry(sessionID)
	if err != nil {
		return entities.SessionState{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if !m.refreshLocked(entry) {
		return entities.SessionState{}, ErrSessionNotFound
	}
	return entry.state.Clone(), nil
}

// GetActiveByBudgetID resolves the live session owning a budget, if any.
func (m *SessionStateManager) GetActiveByBudgetID(budgetID string) (entities.SessionState, bool) {
	m.mu.RLock()
	sid, ok := m.byBudget[budgetID]
	m.mu.RUnlock()
	if !ok {
		return entities.SessionState{}, false
	}
	state, err := m.Get(sid)
	if err != nil {
		return entities.SessionState{}, false
	}
	return state, true
}

// Update commits a new budget value to the session if the change is stable
// enough against the last committed state. Returns false with no mutation
// when the change is rejected.
//
// Concurrent updates on the same session serialize on the session lock; the
// second caller observes the first caller's committed baseline.
func (m *SessionStateManager) Update(sessionID string, candidate entities.Budget, description string) (bool, error) {
	entry, err := m.entry(sessionID)
	if err != nil {
		return false, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if !m.refreshLocked(entry) {
		return false, ErrSessionNotActive
	}

	metrics := ComputeStabilityMetrics(entry.state.Budget, candidate, m.cfg)
	if metrics.StabilityScore < m.cfg.UpdateStability {
		m.log.Info().Str("session_id", sessionID).Float64("score", metrics.StabilityScore).
			Msg("session update rejected for instability")
		return false, nil
	}

	entry.state.Budget = candidate.Clone()
	entry.state.LastActivity = m.now()
	entry.state.Changes = append(entry.state.Changes, entities.StateChange{
		Timestamp:   entry.state.LastActivity,
		Description: description,
	})
	m.appendSnapshotLocked(entry, description)
	return true, nil
}

// RestoreSnapshot rolls the session's budget back to a recorded snapshot and
// logs the rollback as a new change.
func (m *SessionStateManager) RestoreSnapshot(sessionID, snapshotID string) (entities.SessionState, error) {
	entry, err := m.entry(sessionID)
	if err != nil {
		return entities.SessionState{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if !m.refreshLocked(entry) {
		return entities.SessionState{}, ErrSessionNotActive
	}

	var restored *entities.StateSnapshot
	for i := range entry.state.Snapshots {
		if entry.state.Snapshots[i].ID == snapshotID {
			restored = &entry.state.Snapshots[i]
			break
		}
	}
	if restored == nil {
		return entities.SessionState{}, ErrSnapshotNotFound
	}

	entry.state.Budget = restored.Budget.Clone()
	entry.state.LastActivity = m.now()
	entry.state.Changes = append(entry.state.Changes, entities.StateChange{
		Timestamp:   entry.state.LastActivity,
		Description: "restored snapshot " + snapshotID,
	})
	m.appendSnapshotLocked(entry, "restored snapshot "+snapshotID)
	return entry.state.Clone(), nil
}

// Close takes a final snapshot and marks the session inactive. Irreversible:
// a closed session cannot be resumed.
func (m *SessionStateManager) Close(sessionID string) error {
	entry, err := m.entry(sessionID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	if !entry.state.IsActive {
		entry.mu.Unlock()
		return ErrSessionNotActive
	}

	m.appendSnapshotLocked(entry, "session closed")
	entry.state.IsActive = false
	entry.state.LastActivity = m.now()
	budgetID := entry.state.BudgetID
	entry.mu.Unlock()

	// Lock order is always manager lock before entry lock, so the budget
	// index is cleaned up after releasing the entry.
	m.mu.Lock()
	if m.byBudget[budgetID] == sessionID {
		delete(m.byBudget, budgetID)
	}
	m.mu.Unlock()

	m.log.Info().Str("session_id", sessionID).Str("budget_id", budgetID).
		Msg("session closed")
	return nil
}

func (m *SessionStateManager) entry(sessionID string) (*sessionEntry, error) {
	m.mu.RLock()
	entry, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

// refreshLocked applies lazy expiry. Caller holds the entry lock.
func (m *SessionStateManager) refreshLocked(entry *sessionEntry) bool {
	if !entry.state.IsActive {
		return false
	}
	if m.now().Sub(entry.state.LastActivity) > m.cfg.SessionTimeout {
		entry.state.IsActive = false
		m.log.Info().Str("session_id", entry.state.ID).Msg("session expired by inactivity")
		return false
	}
	return true
}

// appendSnapshotLocked records the current budget, evicting the oldest
// snapshot past the cap. Caller holds the entry lock.
func (m *SessionStateManager) appendSnapshotLocked(entry *sessionEntry, description string) {
	snap := entities.StateSnapshot{
		ID:          uuid.NewString(),
		Timestamp:   m.now(),
		Description: description,
		Budget:      entry.state.Budget.Clone(),
	}
	entry.state.Snapshots = append(entry.state.Snapshots, snap)
	if max := m.cfg.MaxSnapshots; max > 0 && len(entry.state.Snapshots) > max {
		entry.state.Snapshots = entry.state.Snapshots[len(entry.state.Snapshots)-max:]
	}
}
