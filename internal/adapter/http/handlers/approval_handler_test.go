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

func TestApprovalHandler_Transition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *ApprovalHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/budgets/:budget_id/approval/transitions", h.Transition)
		return r
	}

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalWorkflow(ctrl)
		r := newRouter(NewApprovalHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/budget-1/approval/transitions", bytes.NewBufferString(`{"from_state":"draft"}`))
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
		uc := mocks.NewMockIApprovalWorkflow(ctrl)
		uc.EXPECT().Transition(gomock.Any(), "missing", entities.ApprovalStateDraft, entities.ApprovalStatePendingReview, entities.RoleSeller, "user-1", "").
			Return(nil, usecase.ErrApprovalBudgetNotFound)
		r := newRouter(NewApprovalHandler(uc))

		body := `{"from_state":"draft","to_state":"pending_review","role":"seller","user_id":"user-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/missing/approval/transitions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("blocked transition is 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalWorkflow(ctrl)
		uc.EXPECT().Transition(gomock.Any(), "budget-1", entities.ApprovalStateDraft, entities.ApprovalStateApproved, entities.RoleSeller, "user-1", "").
			Return([]entities.ValidationIssue{
				{Rule: "ILLEGAL_TRANSITION", Level: entities.ValidationError, Message: "transition not allowed"},
			}, nil)
		r := newRouter(NewApprovalHandler(uc))

		body := `{"from_state":"draft","to_state":"approved","role":"seller","user_id":"user-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/budget-1/approval/transitions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp["committed"] != false {
			t.Fatalf("expected committed=false, got %v", resp["committed"])
		}
	})

	t.Run("committed transition with advisory issue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalWorkflow(ctrl)
		uc.EXPECT().Transition(gomock.Any(), "budget-1", entities.ApprovalStateDraft, entities.ApprovalStatePendingReview, entities.RoleSeller, "user-1", "ready").
			Return([]entities.ValidationIssue{
				{Rule: "COMPLETE_PACKAGE", Level: entities.ValidationInfo, Message: "activities only"},
			}, nil)
		r := newRouter(NewApprovalHandler(uc))

		body := `{"from_state":"draft","to_state":"pending_review","role":"seller","user_id":"user-1","comment":"ready"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/budget-1/approval/transitions", bytes.NewBufferString(body))
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
		if resp["committed"] != true {
			t.Fatalf("expected committed=true, got %v", resp["committed"])
		}
		issues, ok := resp["issues"].([]any)
		if !ok || len(issues) != 1 {
			t.Fatalf("expected one advisory issue, got %v", resp["issues"])
		}
	})
}

func TestApprovalHandler_GetApprovalHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalWorkflow(ctrl)
		uc.EXPECT().History(gomock.Any(), "budget-1").Return([]entities.ApprovalHistory{
			{TransitionID: "tr-1", BudgetID: "budget-1", FromState: entities.ApprovalStateDraft, ToState: entities.ApprovalStatePendingReview},
		}, nil)
		h := NewApprovalHandler(uc)

		r := gin.New()
		r.GET("/v1/budgets/:budget_id/approval/history", h.GetApprovalHistory)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/budget-1/approval/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(resp) != 1 || resp[0]["transition_id"] != "tr-1" {
			t.Fatalf("unexpected history: %v", resp)
		}
	})
}
