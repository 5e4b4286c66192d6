package response

import (
	"time"

	"tripbudget/internal/domain/entities"
)

// SnapshotResponse is a snapshot summary. The full budget copy stays
// server-side; restore works by snapshot id.
type SnapshotResponse struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	TotalAmount float64   `json:"total_amount"`
}

type StateChangeResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

type SessionResponse struct {
	ID           string                `json:"id"`
	BudgetID     string                `json:"budget_id"`
	SellerID     string                `json:"seller_id"`
	StartTime    time.Time             `json:"start_time"`
	LastActivity time.Time             `json:"last_activity"`
	IsActive     bool                  `json:"is_active"`
	Budget       BudgetResponse        `json:"budget"`
	Snapshots    []SnapshotResponse    `json:"snapshots"`
	Changes      []StateChangeResponse `json:"changes"`
}

func FromSession(s entities.SessionState) SessionResponse {
	snapshots := make([]SnapshotResponse, 0, len(s.Snapshots))
	for _, snap := range s.Snapshots {
		snapshots = append(snapshots, SnapshotResponse{
			ID:          snap.ID,
			Timestamp:   snap.Timestamp,
			Description: snap.Description,
			TotalAmount: snap.Budget.TotalAmount(),
		})
	}
	changes := make([]StateChangeResponse, 0, len(s.Changes))
	for _, ch := range s.Changes {
		changes = append(changes, StateChangeResponse{Timestamp: ch.Timestamp, Description: ch.Description})
	}
	return SessionResponse{
		ID:           s.ID,
		BudgetID:     s.BudgetID,
		SellerID:     s.SellerID,
		StartTime:    s.StartTime,
		LastActivity: s.LastActivity,
		IsActive:     s.IsActive,
		Budget:       FromBudget(s.Budget),
		Snapshots:    snapshots,
		Changes:      changes,
	}
}

type ChangeImpactResponse struct {
	IsSafe         bool     `json:"is_safe"`
	StabilityScore float64  `json:"stability_score"`
	Violations     []string `json:"violations"`
	Committed      bool     `json:"committed"`
}

func FromChangeImpact(impact entities.ChangeImpact, committed bool) ChangeImpactResponse {
	return ChangeImpactResponse{
		IsSafe:         impact.IsSafe,
		StabilityScore: impact.StabilityScore,
		Violations:     impact.Violations,
		Committed:      committed,
	}
}

type StabilityMetricsResponse struct {
	PriceChanges   []float64 `json:"price_changes"`
	MarginChanges  []float64 `json:"margin_changes"`
	StabilityScore float64   `json:"stability_score"`
}

func FromStabilityMetrics(m entities.StabilityMetrics) StabilityMetricsResponse {
	return StabilityMetricsResponse{
		PriceChanges:   m.PriceChanges,
		MarginChanges:  m.MarginChanges,
		StabilityScore: m.StabilityScore,
	}
}
