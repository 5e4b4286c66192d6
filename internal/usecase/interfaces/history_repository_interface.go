package interfaces

import (
	"context"

	"tripbudget/internal/domain/entities"
)

// IReconstructionHistoryRepository stores the append-only per-budget list of
// reconstruction attempts. Entries are immutable once written.
type IReconstructionHistoryRepository interface {
	Append(ctx context.Context, r entities.ReconstructionResult) error
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.ReconstructionResult, error)
}

// IApprovalHistoryRepository stores the append-only approval audit trail of
// a budget.
type IApprovalHistoryRepository interface {
	Append(ctx context.Context, h entities.ApprovalHistory) error
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.ApprovalHistory, error)
}
