package interfaces

import (
	"context"

	"tripbudget/internal/domain/entities"
)

// IBudgetValidator runs the business-rule validation consumed by the
// approval workflow. Issues carry a level; only error-level issues block a
// transition.
type IBudgetValidator interface {
	ValidateBudget(ctx context.Context, b entities.Budget, actorID string) []entities.ValidationIssue
}
