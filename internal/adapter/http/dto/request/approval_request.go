package request

import (
	"strings"

	"tripbudget/internal/domain/entities"
)

type ApprovalTransitionRequest struct {
	FromState string `json:"from_state" binding:"required"`
	ToState   string `json:"to_state" binding:"required"`
	Role      string `json:"role" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
	Comment   string `json:"comment"`
}

func (r ApprovalTransitionRequest) ResolveFromState() entities.ApprovalState {
	return entities.ApprovalState(strings.TrimSpace(r.FromState))
}

func (r ApprovalTransitionRequest) ResolveToState() entities.ApprovalState {
	return entities.ApprovalState(strings.TrimSpace(r.ToState))
}

func (r ApprovalTransitionRequest) ResolveRole() entities.ApprovalRole {
	return entities.ApprovalRole(strings.TrimSpace(r.Role))
}
