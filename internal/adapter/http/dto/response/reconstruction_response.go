package response

import (
	"time"

	"tripbudget/internal/domain/entities"
)

type ItemChangeResponse struct {
	ItemID        string  `json:"item_id"`
	OldPrice      float64 `json:"old_price"`
	NewPrice      float64 `json:"new_price"`
	OldCost       float64 `json:"old_cost"`
	NewCost       float64 `json:"new_cost"`
	Replaced      bool    `json:"replaced"`
	ReplacementID string  `json:"replacement_id,omitempty"`
	Note          string  `json:"note,omitempty"`
}

type ReconstructionResponse struct {
	ID             string               `json:"id"`
	BudgetID       string               `json:"budget_id"`
	Success        bool                 `json:"success"`
	StrategyUsed   string               `json:"strategy_used"`
	ChangesApplied []ItemChangeResponse `json:"changes_applied"`
	StabilityScore float64              `json:"stability_score"`
	Error          string               `json:"error,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	Budget         *BudgetResponse      `json:"budget,omitempty"`
}

func FromReconstructionResult(r entities.ReconstructionResult) ReconstructionResponse {
	changes := make([]ItemChangeResponse, 0, len(r.ChangesApplied))
	for _, ch := range r.ChangesApplied {
		changes = append(changes, ItemChangeResponse{
			ItemID:        ch.ItemID,
			OldPrice:      ch.OldPrice,
			NewPrice:      ch.NewPrice,
			OldCost:       ch.OldCost,
			NewCost:       ch.NewCost,
			Replaced:      ch.Replaced,
			ReplacementID: ch.ReplacementID,
			Note:          ch.Note,
		})
	}
	out := ReconstructionResponse{
		ID:             r.ID,
		BudgetID:       r.BudgetID,
		Success:        r.Success,
		StrategyUsed:   string(r.StrategyUsed),
		ChangesApplied: changes,
		StabilityScore: r.StabilityScore,
		Error:          r.Error,
		CreatedAt:      r.CreatedAt,
	}
	if r.Budget != nil {
		budget := FromBudget(*r.Budget)
		out.Budget = &budget
	}
	return out
}

func FromReconstructionResults(results []entities.ReconstructionResult) []ReconstructionResponse {
	out := make([]ReconstructionResponse, 0, len(results))
	for _, r := range results {
		out = append(out, FromReconstructionResult(r))
	}
	return out
}
