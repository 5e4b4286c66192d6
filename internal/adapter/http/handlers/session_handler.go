package handlers

import (
	"errors"
	"net/http"

	request "tripbudget/internal/adapter/http/dto/request"
	response "tripbudget/internal/adapter/http/dto/response"
	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase"
	"tripbudget/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
)

// SessionHandler handles HTTP requests for sale sessions and the stability
// guard routes scoped to them.

type SessionHandler struct {
	budgets  usecase.IBudgetUseCase
	sessions usecase.ISessionStateManager
	guard    usecase.IStabilityGuard
}

func NewSessionHandler(budgets usecase.IBudgetUseCase, sessions usecase.ISessionStateManager, guard usecase.IStabilityGuard) *SessionHandler {
	return &SessionHandler{budgets: budgets, sessions: sessions, guard: guard}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	var payload request.CreateSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	budget, err := h.budgets.GetByID(c.Request.Context(), payload.BudgetID)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	session, err := h.sessions.Create(budget, payload.SellerID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session))
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) CloseSession(c *gin.Context) {
	if err := h.sessions.Close(c.Param("session_id")); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) RestoreSnapshot(c *gin.Context) {
	var payload request.RestoreSnapshotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	session, err := h.sessions.RestoreSnapshot(c.Param("session_id"), payload.SnapshotID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// ValidateChange scores a proposed item list against the session baseline
// without committing anything.
func (h *SessionHandler) ValidateChange(c *gin.Context) {
	sessionID := c.Param("session_id")

	candidate, appErr := h.resolveCandidate(c, sessionID)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	impact := h.guard.Validate(c.Request.Context(), sessionID, candidate)
	h.guard.Monitor(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, response.FromChangeImpact(impact, false))
}

// ApplyChange scores the proposed item list, then commits it to the session
// when the stability gate passes. A rejected change is 422 with the impact.
func (h *SessionHandler) ApplyChange(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.ProposedChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	candidate, appErr := h.candidateFromItems(sessionID, payload.Items)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	impact := h.guard.Validate(c.Request.Context(), sessionID, candidate)
	committed, err := h.sessions.Update(sessionID, candidate, payload.Description)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.guard.Monitor(c.Request.Context(), sessionID)

	status := http.StatusOK
	if !committed {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, response.FromChangeImpact(impact, committed))
}

func (h *SessionHandler) GetMetrics(c *gin.Context) {
	metrics, ok := h.guard.Metrics(c.Param("session_id"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("METRICS_NOT_FOUND", "No stability metrics recorded for this session", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStabilityMetrics(metrics))
}

func (h *SessionHandler) resolveCandidate(c *gin.Context, sessionID string) (entities.Budget, *pkg.AppError) {
	var payload request.ProposedChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		return entities.Budget{}, errInvalidSessionPayload
	}
	return h.candidateFromItems(sessionID, payload.Items)
}

// candidateFromItems grafts the proposed item list onto the session's
// committed budget so identity fields survive the swap.
func (h *SessionHandler) candidateFromItems(sessionID string, items []request.BudgetItemRequest) (entities.Budget, *pkg.AppError) {
	session, err := h.sessions.Get(sessionID)
	if err != nil {
		return entities.Budget{}, mapSessionError(err)
	}

	candidate := session.Budget.Clone()
	candidate.Items = make([]entities.BudgetItem, 0, len(items))
	for _, it := range items {
		candidate.Items = append(candidate.Items, it.ToEntity())
	}
	return candidate, nil
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSnapshotNotFound):
		return pkg.NewDomainErrorSimple("SNAPSHOT_NOT_FOUND", "Snapshot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotActive):
		return pkg.NewDomainErrorSimple("SESSION_NOT_ACTIVE", "Session is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionOwnedByOther):
		return pkg.NewDomainErrorSimple("SESSION_CONFLICT", "Budget already has an active session owned by another seller", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
