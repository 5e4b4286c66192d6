package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrInvalidBudgetID     = errors.New("invalid budget id")
	ErrInvalidStrategyName = errors.New("invalid strategy name")
)

// IReconstructionManager is the orchestration surface external callers use
// (editor UI, notification system, event bus). It is the only component that
// knows both the reconstructor and the session manager; it holds no
// reconstruction algorithms of its own.
type IReconstructionManager interface {
	ApplyReconstruction(ctx context.Context, budgetID string, changes entities.ChangeSet, strategyName string) (entities.ReconstructionResult, error)
	GetReconstructionHistory(ctx context.Context, budgetID string) ([]entities.ReconstructionResult, error)
}

type ReconstructionManager struct {
	budgets       interfaces.IBudgetRepository
	history       interfaces.IReconstructionHistoryRepository
	reconstructor IBudgetReconstructor
	sessions      ISessionStateManager
	events        interfaces.IEventPublisher
	log           zerolog.Logger
}

var _ IReconstructionManager = (*ReconstructionManager)(nil)

func NewReconstructionManager(
	budgets interfaces.IBudgetRepository,
	history interfaces.IReconstructionHistoryRepository,
	reconstructor IBudgetReconstructor,
	sessions ISessionStateManager,
	events interfaces.IEventPublisher,
	log zerolog.Logger,
) *ReconstructionManager {
	return &ReconstructionManager{
		budgets:       budgets,
		history:       history,
		reconstructor: reconstructor,
		sessions:      sessions,
		events:        events,
		log:           log,
	}
}

// ApplyReconstruction loads the budget and its active session (if any),
// delegates to the reconstructor, commits the accepted candidate, and
// appends the attempt to the per-budget history.
//
// The error return covers load/persist failures; reconstruction failures
// come back inside the result per the core contract.
func (m *ReconstructionManager) ApplyReconstruction(ctx context.Context, budgetID string, changes entities.ChangeSet, strategyName string) (entities.ReconstructionResult, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.ReconstructionResult{}, ErrInvalidBudgetID
	}

	strategy, err := parseStrategyName(strategyName)
	if err != nil {
		return entities.ReconstructionResult{}, err
	}

	budget, err := m.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return entities.ReconstructionResult{}, err
	}
	if budget.ID == "" {
		return entities.ReconstructionResult{}, ErrBudgetNotFound
	}

	var sessionRef *entities.SessionState
	session, hasSession := m.sessions.GetActiveByBudgetID(budgetID)
	if hasSession {
		sessionRef = &session
		// Reconstruct against what the seller is looking at, not the stale
		// persisted copy.
		budget = session.Budget
	}

	m.events.Publish(ctx, interfaces.EventReconstructionNeeded, map[string]interface{}{
		"budget_id": budgetID,
		"strategy":  string(strategy),
	})

	result := m.reconstructor.Reconstruct(ctx, budget, changes, sessionRef, strategy)

	if result.Success && result.Budget != nil {
		if hasSession {
			accepted, err := m.sessions.Update(session.ID, *result.Budget, "reconstruction "+string(result.StrategyUsed))
			if err == nil && !accepted {
				// The session's committed baseline moved under us; report the
				// attempt as rejected rather than bypassing session control.
				result.Success = false
				result.Error = entities.ReconstructionErrChangesTooDisruptive
				result.Budget = nil
			} else if err != nil {
				return entities.ReconstructionResult{}, err
			}
		}
		if result.Success {
			if _, err := m.budgets.Save(ctx, *result.Budget); err != nil {
				return entities.ReconstructionResult{}, err
			}
		}
	}

	if err := m.history.Append(ctx, result); err != nil {
		return entities.ReconstructionResult{}, err
	}

	if replaced := replacedItemIDs(result); len(replaced) > 0 {
		m.events.Publish(ctx, interfaces.EventAlternativesFound, map[string]interface{}{
			"budget_id": budgetID,
			"item_ids":  replaced,
		})
	}

	m.events.Publish(ctx, interfaces.EventReconstructionComplete, map[string]interface{}{
		"budget_id":       budgetID,
		"success":         result.Success,
		"strategy":        string(result.StrategyUsed),
		"stability_score": result.StabilityScore,
		"error":           result.Error,
	})
	m.log.Info().Str("budget_id", budgetID).Bool("success", result.Success).
		Str("strategy", string(result.StrategyUsed)).Float64("score", result.StabilityScore).
		Msg("reconstruction applied")

	return result, nil
}

// GetReconstructionHistory returns the append-only attempt history.
func (m *ReconstructionManager) GetReconstructionHistory(ctx context.Context, budgetID string) ([]entities.ReconstructionResult, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidBudgetID
	}
	return m.history.ListByBudgetID(ctx, budgetID)
}

func replacedItemIDs(result entities.ReconstructionResult) []string {
	var ids []string
	for _, ch := range result.ChangesApplied {
		if ch.Replaced {
			ids = append(ids, ch.ItemID)
		}
	}
	return ids
}

// parseStrategyName maps an external strategy name to the enum. Empty means
// "let the reconstructor choose".
func parseStrategyName(name string) (entities.StrategyName, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return "", nil
	case string(entities.StrategyPreserveMargin):
		return entities.StrategyPreserveMargin, nil
	case string(entities.StrategyPreservePrice):
		return entities.StrategyPreservePrice, nil
	case string(entities.StrategyAdjustProportional):
		return entities.StrategyAdjustProportional, nil
	case string(entities.StrategyBestAlternative):
		return entities.StrategyBestAlternative, nil
	default:
		return "", ErrInvalidStrategyName
	}
}
