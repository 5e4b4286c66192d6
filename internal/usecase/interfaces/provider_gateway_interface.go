package interfaces

import (
	"context"

	"tripbudget/internal/domain/entities"
)

// IProviderGateway abstracts the external travel-provider system used by the
// BEST_ALTERNATIVE strategy.
//
// Callers bound the call with a context deadline. An empty slice with a nil
// error means "nothing qualifies" and is not a failure.
type IProviderGateway interface {
	SearchAlternatives(ctx context.Context, item entities.BudgetItem, criteria map[string]string) ([]entities.BudgetItem, error)
}
