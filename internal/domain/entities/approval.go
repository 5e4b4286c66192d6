package entities

import "time"

// ApprovalState is the approval workflow position of a budget.
type ApprovalState string

const (
	ApprovalStateDraft            ApprovalState = "draft"
	ApprovalStatePendingReview    ApprovalState = "pending_review"
	ApprovalStateInReview         ApprovalState = "in_review"
	ApprovalStateChangesRequested ApprovalState = "changes_requested"
	ApprovalStatePendingApproval  ApprovalState = "pending_approval"
	ApprovalStateApproved         ApprovalState = "approved"
	ApprovalStateRejected         ApprovalState = "rejected"
	ApprovalStateCancelled        ApprovalState = "cancelled"
)

// ApprovalRole is the acting role in an approval transition.
type ApprovalRole string

const (
	RoleSeller     ApprovalRole = "seller"
	RoleSupervisor ApprovalRole = "supervisor"
	RoleManager    ApprovalRole = "manager"
	RoleSystem     ApprovalRole = "system"
)

// ApprovalTransition is one row of the workflow's explicit transition table.
type ApprovalTransition struct {
	FromState          ApprovalState
	ToState            ApprovalState
	AllowedRoles       []ApprovalRole
	RequiresComment    bool
	RequiresValidation bool
}

// Allows reports whether the role may take this transition.
func (t ApprovalTransition) Allows(role ApprovalRole) bool {
	for _, r := range t.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ValidationLevel grades a validation issue. Only ERROR blocks a transition.
type ValidationLevel string

const (
	ValidationError   ValidationLevel = "error"
	ValidationWarning ValidationLevel = "warning"
	ValidationInfo    ValidationLevel = "info"
)

// ValidationIssue is one problem raised by transition checks or the budget
// validator.
type ValidationIssue struct {
	Rule          string            `json:"rule"`
	Level         ValidationLevel   `json:"level"`
	Message       string            `json:"message"`
	AffectedItems []string          `json:"affected_items,omitempty"`
	Context       map[string]string `json:"context,omitempty"`
}

// Blocking reports whether the issue prevents the transition from
// committing.
func (i ValidationIssue) Blocking() bool {
	return i.Level == ValidationError
}

// ApprovalHistory is one append-only record of a committed state transition.
type ApprovalHistory struct {
	TransitionID string            `json:"transition_id"`
	BudgetID     string            `json:"budget_id"`
	FromState    ApprovalState     `json:"from_state"`
	ToState      ApprovalState     `json:"to_state"`
	Role         ApprovalRole      `json:"role"`
	UserID       string            `json:"user_id"`
	Comment      string            `json:"comment,omitempty"`
	Issues       []ValidationIssue `json:"issues,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}
