package entities

import "time"

// StrategyName identifies one of the reconstruction algorithms.
type StrategyName string

const (
	StrategyPreserveMargin     StrategyName = "preserve_margin"
	StrategyPreservePrice      StrategyName = "preserve_price"
	StrategyAdjustProportional StrategyName = "adjust_proportional"
	StrategyBestAlternative    StrategyName = "best_alternative"
)

// Well-known failure reasons carried in ReconstructionResult.Error.
const (
	ReconstructionErrChangesTooDisruptive = "changes_too_disruptive"
	ReconstructionErrInvalid              = "invalid_reconstruction"
)

// ItemChange records the old/new values applied to one item during
// reconstruction.
type ItemChange struct {
	ItemID        string  `json:"item_id"`
	OldPrice      float64 `json:"old_price"`
	NewPrice      float64 `json:"new_price"`
	OldCost       float64 `json:"old_cost"`
	NewCost       float64 `json:"new_cost"`
	Replaced      bool    `json:"replaced"`
	ReplacementID string  `json:"replacement_id,omitempty"`
	Note          string  `json:"note,omitempty"`
}

// ReconstructionResult is the immutable outcome of one reconstruction
// attempt. Appended to a per-budget history list, never mutated in place.
type ReconstructionResult struct {
	ID             string       `json:"id"`
	BudgetID       string       `json:"budget_id"`
	Success        bool         `json:"success"`
	StrategyUsed   StrategyName `json:"strategy_used"`
	ChangesApplied []ItemChange `json:"changes_applied"`
	StabilityScore float64      `json:"stability_score"`
	Error          string       `json:"error,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	Budget         *Budget      `json:"budget,omitempty"` // accepted candidate, nil on failure
}

// StabilityMetrics quantifies how disruptive a candidate budget is relative
// to a baseline. Score is in [0,1]; 1 is maximally stable.
type StabilityMetrics struct {
	PriceChanges   []float64 `json:"price_changes"`
	MarginChanges  []float64 `json:"margin_changes"`
	StabilityScore float64   `json:"stability_score"`
}

// Stability violation codes reported by the guard.
const (
	ViolationLowStabilityScore     = "low_stability_score"
	ViolationExcessivePriceChange  = "excessive_price_change"
	ViolationExcessiveMarginChange = "excessive_margin_change"
	ViolationInvalidSession        = "invalid_session"
)

// ChangeImpact is the guard's verdict on a proposed budget change.
type ChangeImpact struct {
	IsSafe         bool     `json:"is_safe"`
	StabilityScore float64  `json:"stability_score"`
	Violations     []string `json:"violations"`
}
