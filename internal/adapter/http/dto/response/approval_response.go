package response

import (
	"time"

	"tripbudget/internal/domain/entities"
)

type ValidationIssueResponse struct {
	Rule          string            `json:"rule"`
	Level         string            `json:"level"`
	Message       string            `json:"message"`
	AffectedItems []string          `json:"affected_items,omitempty"`
	Context       map[string]string `json:"context,omitempty"`
}

func FromValidationIssues(issues []entities.ValidationIssue) []ValidationIssueResponse {
	out := make([]ValidationIssueResponse, 0, len(issues))
	for _, issue := range issues {
		out = append(out, ValidationIssueResponse{
			Rule:          issue.Rule,
			Level:         string(issue.Level),
			Message:       issue.Message,
			AffectedItems: issue.AffectedItems,
			Context:       issue.Context,
		})
	}
	return out
}

// ApprovalTransitionResponse reports a transition attempt. Committed is false
// when blocking issues kept the budget in its previous state.
type ApprovalTransitionResponse struct {
	BudgetID  string                    `json:"budget_id"`
	FromState string                    `json:"from_state"`
	ToState   string                    `json:"to_state"`
	Committed bool                      `json:"committed"`
	Issues    []ValidationIssueResponse `json:"issues"`
}

type ApprovalHistoryResponse struct {
	TransitionID string                    `json:"transition_id"`
	BudgetID     string                    `json:"budget_id"`
	FromState    string                    `json:"from_state"`
	ToState      string                    `json:"to_state"`
	Role         string                    `json:"role"`
	UserID       string                    `json:"user_id"`
	Comment      string                    `json:"comment,omitempty"`
	Issues       []ValidationIssueResponse `json:"issues,omitempty"`
	Timestamp    time.Time                 `json:"timestamp"`
}

func FromApprovalHistory(entries []entities.ApprovalHistory) []ApprovalHistoryResponse {
	out := make([]ApprovalHistoryResponse, 0, len(entries))
	for _, e := range entries {
		item := ApprovalHistoryResponse{
			TransitionID: e.TransitionID,
			BudgetID:     e.BudgetID,
			FromState:    string(e.FromState),
			ToState:      string(e.ToState),
			Role:         string(e.Role),
			UserID:       e.UserID,
			Comment:      e.Comment,
			Timestamp:    e.Timestamp,
		}
		if len(e.Issues) > 0 {
			item.Issues = FromValidationIssues(e.Issues)
		}
		out = append(out, item)
	}
	return out
}
