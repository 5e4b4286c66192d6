package interfaces

import (
	"context"

	"tripbudget/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Zero-value returns with a nil error mean "not found"; callers translate
// that into their own sentinel errors.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]entities.Budget, error)
	Save(ctx context.Context, b entities.Budget) (entities.Budget, error)
	UpdateApprovalState(ctx context.Context, id string, state entities.ApprovalState) (entities.Budget, error)
}
