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
	errInvalidReconstructionPayload = pkg.NewDomainErrorSimple("INVALID_RECONSTRUCTION_INPUT", "Invalid reconstruction payload", http.StatusBadRequest)
)

// ReconstructionHandler handles HTTP requests for budget reconstruction.

type ReconstructionHandler struct {
	usecase usecase.IReconstructionManager
}

func NewReconstructionHandler(uc usecase.IReconstructionManager) *ReconstructionHandler {
	return &ReconstructionHandler{usecase: uc}
}

// ApplyReconstruction runs one reconstruction attempt against the budget in
// the path. A rejected attempt is still a 200: the result carries the
// failure reason and is recorded in the budget's history.
func (h *ReconstructionHandler) ApplyReconstruction(c *gin.Context) {
	budgetID := c.Param("budget_id")

	var payload request.ReconstructionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReconstructionPayload.HTTPStatus, errInvalidReconstructionPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ApplyReconstruction(c.Request.Context(), budgetID, payload.ToChangeSet(), payload.ResolveStrategy())
	if err != nil {
		appErr := mapReconstructionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReconstructionResult(result))
}

func (h *ReconstructionHandler) GetReconstructionHistory(c *gin.Context) {
	budgetID := c.Param("budget_id")

	results, err := h.usecase.GetReconstructionHistory(c.Request.Context(), budgetID)
	if err != nil {
		appErr := mapReconstructionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReconstructionResults(results))
}

func mapReconstructionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidStrategyName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
