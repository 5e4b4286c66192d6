package handlers

import (
	"errors"
	"net/http"

	request "tripbudget/internal/adapter/http/dto/request"
	response "tripbudget/internal/adapter/http/dto/response"
	"tripbudget/internal/usecase"
	"tripbudget/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidApprovalPayload = pkg.NewDomainErrorSimple("INVALID_APPROVAL_INPUT", "Invalid approval payload", http.StatusBadRequest)
)

// ApprovalHandler handles HTTP requests for the approval workflow.

type ApprovalHandler struct {
	usecase usecase.IApprovalWorkflow
}

func NewApprovalHandler(uc usecase.IApprovalWorkflow) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// Transition attempts one workflow transition. A refused transition is
// 422 with the blocking issues; the budget keeps its previous state.
func (h *ApprovalHandler) Transition(c *gin.Context) {
	budgetID := c.Param("budget_id")

	var payload request.ApprovalTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}

	issues, err := h.usecase.Transition(
		c.Request.Context(),
		budgetID,
		payload.ResolveFromState(),
		payload.ResolveToState(),
		payload.ResolveRole(),
		payload.UserID,
		payload.Comment,
	)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	committed := true
	for _, issue := range issues {
		if issue.Blocking() {
			committed = false
			break
		}
	}

	status := http.StatusOK
	if !committed {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, response.ApprovalTransitionResponse{
		BudgetID:  budgetID,
		FromState: payload.FromState,
		ToState:   payload.ToState,
		Committed: committed,
		Issues:    response.FromValidationIssues(issues),
	})
}

func (h *ApprovalHandler) GetApprovalHistory(c *gin.Context) {
	budgetID := c.Param("budget_id")

	entries, err := h.usecase.History(c.Request.Context(), budgetID)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalHistory(entries))
}

func mapApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrApprovalBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
