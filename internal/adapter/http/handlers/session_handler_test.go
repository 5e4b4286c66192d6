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

type sessionHandlerMocks struct {
	budgets  *mocks.MockIBudgetUseCase
	sessions *mocks.MockISessionStateManager
	guard    *mocks.MockIStabilityGuard
}

func newSessionHandlerForTest(ctrl *gomock.Controller) (*SessionHandler, sessionHandlerMocks) {
	m := sessionHandlerMocks{
		budgets:  mocks.NewMockIBudgetUseCase(ctrl),
		sessions: mocks.NewMockISessionStateManager(ctrl),
		guard:    mocks.NewMockIStabilityGuard(ctrl),
	}
	return NewSessionHandler(m.budgets, m.sessions, m.guard), m
}

func sessionFixture() entities.SessionState {
	return entities.SessionState{
		ID:       "session-1",
		BudgetID: "budget-1",
		SellerID: "seller-1",
		IsActive: true,
		Budget: entities.Budget{
			ID:       "budget-1",
			SellerID: "seller-1",
			Items:    []entities.BudgetItem{{ID: "item-1", Price: 100, Cost: 80}},
		},
	}
}

func TestSessionHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *SessionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/sessions", h.CreateSession)
		return r
	}

	t.Run("missing seller id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newSessionHandlerForTest(ctrl)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"budget_id":"budget-1"}`))
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
		h, m := newSessionHandlerForTest(ctrl)
		m.budgets.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Budget{}, usecase.ErrBudgetNotFound)
		r := newRouter(h)

		body := `{"budget_id":"missing","seller_id":"seller-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("budget owned by another seller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.budgets.EXPECT().GetByID(gomock.Any(), "budget-1").Return(sessionFixture().Budget, nil)
		m.sessions.EXPECT().Create(gomock.Any(), "seller-2").Return(entities.SessionState{}, usecase.ErrSessionOwnedByOther)
		r := newRouter(h)

		body := `{"budget_id":"budget-1","seller_id":"seller-2"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		fixture := sessionFixture()
		m.budgets.EXPECT().GetByID(gomock.Any(), "budget-1").Return(fixture.Budget, nil)
		m.sessions.EXPECT().Create(gomock.Any(), "seller-1").Return(fixture, nil)
		r := newRouter(h)

		body := `{"budget_id":"budget-1","seller_id":"seller-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp["id"] != "session-1" || resp["is_active"] != true {
			t.Fatalf("unexpected session: %v", resp)
		}
	})
}

func TestSessionHandler_GetAndClose(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.sessions.EXPECT().Get("missing").Return(entities.SessionState{}, usecase.ErrSessionNotFound)

		r := gin.New()
		r.GET("/v1/sessions/:session_id", h.GetSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.sessions.EXPECT().Get("session-1").Return(sessionFixture(), nil)

		r := gin.New()
		r.GET("/v1/sessions/:session_id", h.GetSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/session-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("close success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.sessions.EXPECT().Close("session-1").Return(nil)

		r := gin.New()
		r.POST("/v1/sessions/:session_id/close", h.CloseSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/session-1/close", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("close twice conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.sessions.EXPECT().Close("session-1").Return(usecase.ErrSessionNotActive)

		r := gin.New()
		r.POST("/v1/sessions/:session_id/close", h.CloseSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/session-1/close", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSessionHandler_RestoreSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *SessionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/sessions/:session_id/restore", h.RestoreSnapshot)
		return r
	}

	t.Run("missing snapshot id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newSessionHandlerForTest(ctrl)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/session-1/restore", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("snapshot not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.sessions.EXPECT().RestoreSnapshot("session-1", "missing").Return(entities.SessionState{}, usecase.ErrSnapshotNotFound)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/session-1/restore", bytes.NewBufferString(`{"snapshot_id":"missing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.sessions.EXPECT().RestoreSnapshot("session-1", "snap-1").Return(sessionFixture(), nil)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/session-1/restore", bytes.NewBufferString(`{"snapshot_id":"snap-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSessionHandler_ValidateChange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *SessionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/sessions/:session_id/validate", h.ValidateChange)
		return r
	}

	t.Run("session not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.sessions.EXPECT().Get("missing").Return(entities.SessionState{}, usecase.ErrSessionNotFound)
		r := newRouter(h)

		body := `{"items":[{"type":"flight","price":100,"cost":80}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/missing/validate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("reports impact without committing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.sessions.EXPECT().Get("session-1").Return(sessionFixture(), nil)
		m.guard.EXPECT().Validate(gomock.Any(), "session-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, proposed entities.Budget) entities.ChangeImpact {
				if proposed.ID != "budget-1" {
					t.Fatalf("expected candidate to keep budget identity, got %q", proposed.ID)
				}
				if len(proposed.Items) != 1 || proposed.Items[0].Price != 110 {
					t.Fatalf("unexpected candidate items: %+v", proposed.Items)
				}
				return entities.ChangeImpact{IsSafe: false, StabilityScore: 0.33, Violations: []string{entities.ViolationLowStabilityScore}}
			})
		m.guard.EXPECT().Monitor(gomock.Any(), "session-1")
		r := newRouter(h)

		body := `{"items":[{"id":"item-1","type":"flight","price":110,"cost":80}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/session-1/validate", bytes.NewBufferString(body))
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
		if resp["is_safe"] != false || resp["committed"] != false {
			t.Fatalf("unexpected impact: %v", resp)
		}
	})
}

func TestSessionHandler_ApplyChange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *SessionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/sessions/:session_id/changes", h.ApplyChange)
		return r
	}

	t.Run("rejected change is 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.sessions.EXPECT().Get("session-1").Return(sessionFixture(), nil)
		m.guard.EXPECT().Validate(gomock.Any(), "session-1", gomock.Any()).
			Return(entities.ChangeImpact{IsSafe: false, StabilityScore: 0.33, Violations: []string{entities.ViolationExcessivePriceChange}})
		m.sessions.EXPECT().Update("session-1", gomock.Any(), "raise flight price").Return(false, nil)
		m.guard.EXPECT().Monitor(gomock.Any(), "session-1")
		r := newRouter(h)

		body := `{"items":[{"id":"item-1","type":"flight","price":150,"cost":80}],"description":"raise flight price"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/session-1/changes", bytes.NewBufferString(body))
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

	t.Run("accepted change is committed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.sessions.EXPECT().Get("session-1").Return(sessionFixture(), nil)
		m.guard.EXPECT().Validate(gomock.Any(), "session-1", gomock.Any()).
			Return(entities.ChangeImpact{IsSafe: true, StabilityScore: 0.95, Violations: []string{}})
		m.sessions.EXPECT().Update("session-1", gomock.Any(), "small price touch").Return(true, nil)
		m.guard.EXPECT().Monitor(gomock.Any(), "session-1")
		r := newRouter(h)

		body := `{"items":[{"id":"item-1","type":"flight","price":101,"cost":80}],"description":"small price touch"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/session-1/changes", bytes.NewBufferString(body))
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
		if resp["committed"] != true || resp["is_safe"] != true {
			t.Fatalf("unexpected impact: %v", resp)
		}
	})

	t.Run("expired session conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.sessions.EXPECT().Get("session-1").Return(sessionFixture(), nil)
		m.guard.EXPECT().Validate(gomock.Any(), "session-1", gomock.Any()).
			Return(entities.ChangeImpact{IsSafe: true, StabilityScore: 1})
		m.sessions.EXPECT().Update("session-1", gomock.Any(), "").Return(false, usecase.ErrSessionNotActive)
		r := newRouter(h)

		body := `{"items":[{"id":"item-1","type":"flight","price":100,"cost":80}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/session-1/changes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSessionHandler_GetMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no metrics recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.guard.EXPECT().Metrics("session-1").Return(entities.StabilityMetrics{}, false)

		r := gin.New()
		r.GET("/v1/sessions/:session_id/metrics", h.GetMetrics)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/session-1/metrics", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newSessionHandlerForTest(ctrl)
		m.guard.EXPECT().Metrics("session-1").Return(entities.StabilityMetrics{
			PriceChanges:   []float64{0.1},
			MarginChanges:  []float64{0},
			StabilityScore: 0.33,
		}, true)

		r := gin.New()
		r.GET("/v1/sessions/:session_id/metrics", h.GetMetrics)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/session-1/metrics", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp["stability_score"] != 0.33 {
			t.Fatalf("expected score 0.33, got %v", resp["stability_score"])
		}
	})
}
