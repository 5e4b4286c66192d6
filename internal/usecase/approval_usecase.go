package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"
)

var ErrApprovalBudgetNotFound = errors.New("approval: budget not found")

// IApprovalWorkflow is the role-gated state machine that must approve a
// budget before it becomes binding.
type IApprovalWorkflow interface {
	Transition(ctx context.Context, budgetID string, from, to entities.ApprovalState, role entities.ApprovalRole, userID, comment string) ([]entities.ValidationIssue, error)
	History(ctx context.Context, budgetID string) ([]entities.ApprovalHistory, error)
}

// ApprovalWorkflow drives transitions off an explicit table. States and
// history are never mutated retroactively; history entries are append-only.
type ApprovalWorkflow struct {
	budgets   interfaces.IBudgetRepository
	history   interfaces.IApprovalHistoryRepository
	validator interfaces.IBudgetValidator
	events    interfaces.IEventPublisher
	log       zerolog.Logger

	transitions map[entities.ApprovalState][]entities.ApprovalTransition
}

var _ IApprovalWorkflow = (*ApprovalWorkflow)(nil)

func NewApprovalWorkflow(
	budgets interfaces.IBudgetRepository,
	history interfaces.IApprovalHistoryRepository,
	validator interfaces.IBudgetValidator,
	events interfaces.IEventPublisher,
	log zerolog.Logger,
) *ApprovalWorkflow {
	return &ApprovalWorkflow{
		budgets:     budgets,
		history:     history,
		validator:   validator,
		events:      events,
		log:         log,
		transitions: canonicalTransitions(),
	}
}

// canonicalTransitions declares the full transition table:
// (from, allowed roles, requires comment, requires validation) -> to.
func canonicalTransitions() map[entities.ApprovalState][]entities.ApprovalTransition {
	sellers := []entities.ApprovalRole{entities.RoleSeller}
	supervisors := []entities.ApprovalRole{entities.RoleSupervisor}
	managers := []entities.ApprovalRole{entities.RoleManager}

	return map[entities.ApprovalState][]entities.ApprovalTransition{
		entities.ApprovalStateDraft: {
			{FromState: entities.ApprovalStateDraft, ToState: entities.ApprovalStatePendingReview, AllowedRoles: sellers, RequiresValidation: true},
			{FromState: entities.ApprovalStateDraft, ToState: entities.ApprovalStateCancelled, AllowedRoles: sellers, RequiresComment: true},
		},
		entities.ApprovalStatePendingReview: {
			{FromState: entities.ApprovalStatePendingReview, ToState: entities.ApprovalStateInReview, AllowedRoles: supervisors},
		},
		entities.ApprovalStateInReview: {
			{FromState: entities.ApprovalStateInReview, ToState: entities.ApprovalStateChangesRequested, AllowedRoles: supervisors, RequiresComment: true},
			{FromState: entities.ApprovalStateInReview, ToState: entities.ApprovalStatePendingApproval, AllowedRoles: supervisors},
		},
		entities.ApprovalStateChangesRequested: {
			{FromState: entities.ApprovalStateChangesRequested, ToState: entities.ApprovalStateDraft, AllowedRoles: sellers},
		},
		entities.ApprovalStatePendingApproval: {
			{FromState: entities.ApprovalStatePendingApproval, ToState: entities.ApprovalStateApproved, AllowedRoles: managers, RequiresValidation: true},
			{FromState: entities.ApprovalStatePendingApproval, ToState: entities.ApprovalStateRejected, AllowedRoles: managers, RequiresComment: true},
		},
	}
}

func (w *ApprovalWorkflow) lookup(from, to entities.ApprovalState) (entities.ApprovalTransition, bool) {
	for _, t := range w.transitions[from] {
		if t.ToState == to {
			return t, true
		}
	}
	return entities.ApprovalTransition{}, false
}

// Transition attempts a state move. Returned issues describe why the move
// was refused; an empty slice means the transition committed. Warning and
// info issues from validation come back alongside a committed transition.
//
// The error return covers collaborator failures only (budget load, history
// append); the state machine itself never errors.
func (w *ApprovalWorkflow) Transition(ctx context.Context, budgetID string, from, to entities.ApprovalState, role entities.ApprovalRole, userID, comment string) ([]entities.ValidationIssue, error) {
	budget, err := w.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.ID == "" {
		return nil, ErrApprovalBudgetNotFound
	}

	if budget.ApprovalState != "" && budget.ApprovalState != from {
		return []entities.ValidationIssue{{
			Rule:    "STATE_MISMATCH",
			Level:   entities.ValidationError,
			Message: fmt.Sprintf("budget is in state %s, not %s", budget.ApprovalState, from),
			Context: map[string]string{
				"current_state": string(budget.ApprovalState),
				"from_state":    string(from),
			},
		}}, nil
	}

	transition, ok := w.lookup(from, to)
	if !ok || !transition.Allows(role) {
		return []entities.ValidationIssue{{
			Rule:    "ILLEGAL_TRANSITION",
			Level:   entities.ValidationError,
			Message: fmt.Sprintf("transition %s -> %s not allowed for role %s", from, to, role),
			Context: map[string]string{
				"from_state": string(from),
				"to_state":   string(to),
				"role":       string(role),
			},
		}}, nil
	}

	if transition.RequiresComment && comment == "" {
		return []entities.ValidationIssue{{
			Rule:    "COMMENT_REQUIRED",
			Level:   entities.ValidationError,
			Message: fmt.Sprintf("transition %s -> %s requires a comment", from, to),
			Context: map[string]string{
				"from_state": string(from),
				"to_state":   string(to),
			},
		}}, nil
	}

	issues := []entities.ValidationIssue{}
	if transition.RequiresValidation {
		issues = w.validator.ValidateBudget(ctx, budget, userID)
		for _, issue := range issues {
			if issue.Blocking() {
				w.log.Info().Str("budget_id", budgetID).Str("from", string(from)).
					Str("to", string(to)).Msg("approval transition blocked by validation")
				return issues, nil
			}
		}
	}

	if _, err := w.budgets.UpdateApprovalState(ctx, budgetID, to); err != nil {
		return nil, err
	}

	record := entities.ApprovalHistory{
		TransitionID: uuid.NewString(),
		BudgetID:     budgetID,
		FromState:    from,
		ToState:      to,
		Role:         role,
		UserID:       userID,
		Comment:      comment,
		Issues:       issues,
		Timestamp:    time.Now().UTC(),
	}
	if err := w.history.Append(ctx, record); err != nil {
		return nil, err
	}

	w.events.Publish(ctx, interfaces.EventApprovalTransition, map[string]interface{}{
		"budget_id":  budgetID,
		"from_state": string(from),
		"to_state":   string(to),
		"role":       string(role),
		"user_id":    userID,
	})
	w.log.Info().Str("budget_id", budgetID).Str("from", string(from)).Str("to", string(to)).
		Str("role", string(role)).Msg("approval transition committed")

	// Non-blocking warnings/infos travel back with the success.
	return issues, nil
}

// History returns the append-only audit trail for a budget.
func (w *ApprovalWorkflow) History(ctx context.Context, budgetID string) ([]entities.ApprovalHistory, error) {
	return w.history.ListByBudgetID(ctx, budgetID)
}
