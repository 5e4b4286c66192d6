package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripbudget/internal/adapter/http/handlers/mocks"
	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReconstructionHandler_ApplyReconstruction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *ReconstructionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/budgets/:budget_id/reconstructions", h.ApplyReconstruction)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconstructionManager(ctrl)
		r := newRouter(NewReconstructionHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/budget-1/reconstructions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconstructionManager(ctrl)
		uc.EXPECT().ApplyReconstruction(gomock.Any(), "budget-1", gomock.Any(), "nonsense").
			Return(entities.ReconstructionResult{}, usecase.ErrInvalidStrategyName)
		r := newRouter(NewReconstructionHandler(uc))

		body := `{"cost_changes":{"item-1":88},"strategy":"nonsense"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/budget-1/reconstructions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("budget not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconstructionManager(ctrl)
		uc.EXPECT().ApplyReconstruction(gomock.Any(), "missing", gomock.Any(), "").
			Return(entities.ReconstructionResult{}, usecase.ErrBudgetNotFound)
		r := newRouter(NewReconstructionHandler(uc))

		body := `{"cost_changes":{"item-1":88}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/missing/reconstructions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("successful attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconstructionManager(ctrl)
		uc.EXPECT().ApplyReconstruction(gomock.Any(), "budget-1", gomock.Any(), "preserve_margin").DoAndReturn(
			func(_ any, budgetID string, changes entities.ChangeSet, _ string) (entities.ReconstructionResult, error) {
				if changes.CostChanges["item-1"] != 88 {
					t.Fatalf("expected cost change 88, got %v", changes.CostChanges)
				}
				return entities.ReconstructionResult{
					ID:             "rec-1",
					BudgetID:       budgetID,
					Success:        true,
					StrategyUsed:   entities.StrategyPreserveMargin,
					StabilityScore: 0.9,
				}, nil
			})
		r := newRouter(NewReconstructionHandler(uc))

		body := `{"cost_changes":{"item-1":88},"strategy":"preserve_margin"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/budget-1/reconstructions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp["success"] != true || resp["strategy_used"] != "preserve_margin" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("rejected attempt is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconstructionManager(ctrl)
		uc.EXPECT().ApplyReconstruction(gomock.Any(), "budget-1", gomock.Any(), "").
			Return(entities.ReconstructionResult{
				BudgetID: "budget-1",
				Success:  false,
				Error:    entities.ReconstructionErrChangesTooDisruptive,
			}, nil)
		r := newRouter(NewReconstructionHandler(uc))

		body := `{"unavailable_items":["item-1"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/budget-1/reconstructions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp["success"] != false || resp["error"] != entities.ReconstructionErrChangesTooDisruptive {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestReconstructionHandler_GetReconstructionHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconstructionManager(ctrl)
		uc.EXPECT().GetReconstructionHistory(gomock.Any(), "budget-1").Return([]entities.ReconstructionResult{
			{ID: "rec-1", BudgetID: "budget-1", Success: true},
			{ID: "rec-2", BudgetID: "budget-1", Success: false},
		}, nil)
		h := NewReconstructionHandler(uc)

		r := gin.New()
		r.GET("/v1/budgets/:budget_id/reconstructions", h.GetReconstructionHistory)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/budget-1/reconstructions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(resp))
		}
	})

	t.Run("invalid budget id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconstructionManager(ctrl)
		uc.EXPECT().GetReconstructionHistory(gomock.Any(), "   ").Return(nil, usecase.ErrInvalidBudgetID)
		h := NewReconstructionHandler(uc)

		r := gin.New()
		r.GET("/v1/budgets/:budget_id/reconstructions", h.GetReconstructionHistory)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/%20%20%20/reconstructions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
