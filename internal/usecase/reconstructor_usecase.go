package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"
)

// IBudgetReconstructor rebuilds a budget in response to confirmed provider
// changes.
//
// Reconstruct never returns a Go error: every failure mode (bad input,
// disruptive change, strategy failure, collaborator timeout) is reported as
// a ReconstructionResult with Success=false, so orchestrated callers always
// branch on a result object.
type IBudgetReconstructor interface {
	Reconstruct(ctx context.Context, budget entities.Budget, changes entities.ChangeSet, session *entities.SessionState, strategy entities.StrategyName) entities.ReconstructionResult
}

type BudgetReconstructor struct {
	provider interfaces.IProviderGateway
	cfg      Config
	log      zerolog.Logger
}

var _ IBudgetReconstructor = (*BudgetReconstructor)(nil)

func NewBudgetReconstructor(provider interfaces.IProviderGateway, cfg Config, log zerolog.Logger) *BudgetReconstructor {
	return &BudgetReconstructor{provider: provider, cfg: cfg, log: log}
}

// Reconstruct applies a strategy (picking one when none is supplied),
// validates the candidate, and gates it against the active session's
// baseline stability.
//
// Acceptance pipeline:
//  1. input validation (non-empty budget, non-empty changes, items priced)
//  2. strategy selection: unavailable items -> BEST_ALTERNATIVE; else the
//     largest relative cost change above the threshold -> ADJUST_PROPORTIONAL,
//     otherwise PRESERVE_MARGIN
//  3. strategy execution on a copy of the budget
//  4. post-strategy validation: every item price > cost and margin >= minimum
//  5. if the session is active, stability score of the candidate vs the
//     input must reach the acceptance threshold
func (r *BudgetReconstructor) Reconstruct(ctx context.Context, budget entities.Budget, changes entities.ChangeSet, session *entities.SessionState, strategy entities.StrategyName) entities.ReconstructionResult {
	if err := validateReconstructionInput(budget, changes); err != nil {
		return r.failure(budget.ID, strategy, err.Error())
	}

	if strategy == "" {
		strategy = r.selectStrategy(budget, changes)
	}
	impl, err := r.strategyByName(strategy)
	if err != nil {
		return r.failure(budget.ID, strategy, err.Error())
	}

	candidate, applied, err := impl.Apply(ctx, budget, changes)
	if err != nil {
		r.log.Warn().Err(err).Str("budget_id", budget.ID).Str("strategy", string(strategy)).
			Msg("reconstruction strategy failed")
		return r.failure(budget.ID, strategy, fmt.Sprintf("strategy execution failed: %v", err))
	}
	if len(candidate.Items) == 0 {
		// A strategy can shrink prices, never the item list. Treat as an
		// unreachable invariant violation.
		panic(ErrEmptyReconstructed)
	}

	if issues := r.validateCandidate(candidate); issues != "" {
		return r.failure(budget.ID, strategy, entities.ReconstructionErrInvalid+": "+issues)
	}

	metrics := ComputeStabilityMetrics(budget, candidate, r.cfg)
	if session != nil && session.IsActive && metrics.StabilityScore < r.cfg.UpdateStability {
		r.log.Info().Str("budget_id", budget.ID).Float64("score", metrics.StabilityScore).
			Msg("reconstruction rejected as too disruptive for active session")
		res := r.failure(budget.ID, strategy, entities.ReconstructionErrChangesTooDisruptive)
		res.StabilityScore = metrics.StabilityScore
		return res
	}

	candidate.UpdatedAt = time.Now().UTC()
	return entities.ReconstructionResult{
		ID:             uuid.NewString(),
		BudgetID:       budget.ID,
		Success:        true,
		StrategyUsed:   strategy,
		ChangesApplied: applied,
		StabilityScore: metrics.StabilityScore,
		CreatedAt:      time.Now().UTC(),
		Budget:         &candidate,
	}
}

func (r *BudgetReconstructor) strategyByName(name entities.StrategyName) (reconstructionStrategy, error) {
	switch name {
	case entities.StrategyPreserveMargin:
		return preserveMarginStrategy{}, nil
	case entities.StrategyPreservePrice:
		return preservePriceStrategy{}, nil
	case entities.StrategyAdjustProportional:
		return adjustProportionalStrategy{}, nil
	case entities.StrategyBestAlternative:
		// The router wires a nil provider when no provider API is configured;
		// that must surface as a failed result, never a nil dereference.
		if r.provider == nil {
			return nil, ErrProviderNotConfigured
		}
		return bestAlternativeStrategy{provider: r.provider, cfg: r.cfg}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

func (r *BudgetReconstructor) selectStrategy(budget entities.Budget, changes entities.ChangeSet) entities.StrategyName {
	if len(changes.UnavailableItems) > 0 {
		return entities.StrategyBestAlternative
	}

	maxRelChange := 0.0
	for itemID, newCost := range changes.CostChanges {
		item, ok := budget.Item(itemID)
		if !ok || item.Cost <= 0 {
			continue
		}
		rel := abs(newCost-item.Cost) / item.Cost
		if rel > maxRelChange {
			maxRelChange = rel
		}
	}
	if maxRelChange > r.cfg.MaxPriceChange {
		return entities.StrategyAdjustProportional
	}
	return entities.StrategyPreserveMargin
}

// validateCandidate enforces the post-strategy invariants regardless of who
// chose the strategy. A violation fails the whole operation; no partial
// state survives.
func (r *BudgetReconstructor) validateCandidate(candidate entities.Budget) string {
	for _, item := range candidate.Items {
		if item.Price <= item.Cost {
			return fmt.Sprintf("item %s: price %.2f not above cost %.2f", item.ID, item.Price, item.Cost)
		}
		if item.Margin() < r.cfg.MarginMinimum {
			return fmt.Sprintf("item %s: margin %.4f below minimum %.4f", item.ID, item.Margin(), r.cfg.MarginMinimum)
		}
	}
	return ""
}

func (r *BudgetReconstructor) failure(budgetID string, strategy entities.StrategyName, msg string) entities.ReconstructionResult {
	return entities.ReconstructionResult{
		ID:             uuid.NewString(),
		BudgetID:       budgetID,
		Success:        false,
		StrategyUsed:   strategy,
		ChangesApplied: []entities.ItemChange{},
		CreatedAt:      time.Now().UTC(),
		Error:          msg,
	}
}

func validateReconstructionInput(budget entities.Budget, changes entities.ChangeSet) error {
	if budget.ID == "" {
		return fmt.Errorf("budget id is required")
	}
	if len(budget.Items) == 0 {
		return fmt.Errorf("budget has no items")
	}
	for _, item := range budget.Items {
		if item.Price <= 0 {
			return fmt.Errorf("item %s has a non-positive price", item.ID)
		}
		if item.Cost < 0 {
			return fmt.Errorf("item %s has a negative cost", item.ID)
		}
	}
	if changes.IsEmpty() {
		return fmt.Errorf("change set is empty")
	}
	for itemID, newCost := range changes.CostChanges {
		if newCost < 0 {
			return fmt.Errorf("cost change for item %s is negative", itemID)
		}
	}
	return nil
}
