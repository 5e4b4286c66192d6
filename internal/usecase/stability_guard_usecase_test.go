package usecase

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"
	mock_interfaces "tripbudget/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStabilityGuard_Validate(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("unknown session is unsafe", func(t *testing.T) {
		sessions, _ := newTestSessionManager(cfg)
		guard := NewStabilityGuard(sessions, nil, cfg, zerolog.Nop())

		impact := guard.Validate(context.Background(), "nope", testBudget())
		if impact.IsSafe || impact.StabilityScore != 0 {
			t.Fatalf("unexpected impact: %+v", impact)
		}
		if len(impact.Violations) != 1 || impact.Violations[0] != entities.ViolationInvalidSession {
			t.Fatalf("expected invalid_session, got %v", impact.Violations)
		}
	})

	t.Run("identical proposal is safe", func(t *testing.T) {
		sessions, _ := newTestSessionManager(cfg)
		s, _ := sessions.Create(testBudget(), "seller-1")
		guard := NewStabilityGuard(sessions, nil, cfg, zerolog.Nop())

		impact := guard.Validate(context.Background(), s.ID, testBudget())
		if !impact.IsSafe || !almostEqual(impact.StabilityScore, 1.0) {
			t.Fatalf("unexpected impact: %+v", impact)
		}
		if len(impact.Violations) != 0 {
			t.Fatalf("expected no violations, got %v", impact.Violations)
		}
	})

	t.Run("30 percent price move violates the price policy", func(t *testing.T) {
		sessions, _ := newTestSessionManager(cfg)
		s, _ := sessions.Create(testBudget(), "seller-1")
		guard := NewStabilityGuard(sessions, nil, cfg, zerolog.Nop())

		proposed := testBudget()
		proposed.Items[0].Price = 130
		proposed.Items[0].Cost = 104 // margin held at 0.20

		impact := guard.Validate(context.Background(), s.ID, proposed)
		if impact.IsSafe {
			t.Fatalf("expected unsafe impact")
		}
		if !containsViolation(impact.Violations, entities.ViolationExcessivePriceChange) {
			t.Fatalf("expected excessive_price_change, got %v", impact.Violations)
		}
		if !containsViolation(impact.Violations, entities.ViolationLowStabilityScore) {
			t.Fatalf("expected low_stability_score, got %v", impact.Violations)
		}
	})

	t.Run("margin squeeze violates the margin policy", func(t *testing.T) {
		sessions, _ := newTestSessionManager(cfg)
		s, _ := sessions.Create(testBudget(), "seller-1")
		guard := NewStabilityGuard(sessions, nil, cfg, zerolog.Nop())

		proposed := testBudget()
		proposed.Items[0].Cost = 92 // margin 0.20 -> 0.08

		impact := guard.Validate(context.Background(), s.ID, proposed)
		if impact.IsSafe {
			t.Fatalf("expected unsafe impact")
		}
		if !containsViolation(impact.Violations, entities.ViolationExcessiveMarginChange) {
			t.Fatalf("expected excessive_margin_change, got %v", impact.Violations)
		}
	})

	t.Run("validate never mutates the session", func(t *testing.T) {
		sessions, _ := newTestSessionManager(cfg)
		s, _ := sessions.Create(testBudget(), "seller-1")
		guard := NewStabilityGuard(sessions, nil, cfg, zerolog.Nop())

		proposed := testBudget()
		proposed.Items[0].Price = 130
		guard.Validate(context.Background(), s.ID, proposed)

		got, _ := sessions.Get(s.ID)
		if !almostEqual(got.Budget.Items[0].Price, 100) {
			t.Fatalf("session mutated: %f", got.Budget.Items[0].Price)
		}
	})
}

func TestStabilityGuard_Monitor(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("alerts below the critical threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mock_interfaces.NewMockIEventPublisher(ctrl)

		sessions, _ := newTestSessionManager(cfg)
		s, _ := sessions.Create(testBudget(), "seller-1")
		guard := NewStabilityGuard(sessions, events, cfg, zerolog.Nop())

		proposed := testBudget()
		proposed.Items[0].Price = 130 // score clamps to 0, below critical 0.50
		guard.Validate(context.Background(), s.ID, proposed)

		events.EXPECT().Publish(gomock.Any(), interfaces.EventStabilityCritical, gomock.Any())
		guard.Monitor(context.Background(), s.ID)
	})

	t.Run("silent when stable or unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mock_interfaces.NewMockIEventPublisher(ctrl)

		sessions, _ := newTestSessionManager(cfg)
		s, _ := sessions.Create(testBudget(), "seller-1")
		guard := NewStabilityGuard(sessions, events, cfg, zerolog.Nop())

		guard.Validate(context.Background(), s.ID, testBudget()) // score 1.0
		guard.Monitor(context.Background(), s.ID)
		guard.Monitor(context.Background(), "never-validated")
	})
}

func TestStabilityGuard_Metrics(t *testing.T) {
	cfg := DefaultConfig()
	sessions, _ := newTestSessionManager(cfg)
	s, _ := sessions.Create(testBudget(), "seller-1")
	guard := NewStabilityGuard(sessions, nil, cfg, zerolog.Nop())

	if _, ok := guard.Metrics(s.ID); ok {
		t.Fatalf("expected no metrics before validate")
	}

	guard.Validate(context.Background(), s.ID, testBudget())
	m, ok := guard.Metrics(s.ID)
	if !ok || !almostEqual(m.StabilityScore, 1.0) {
		t.Fatalf("unexpected metrics: ok=%v %+v", ok, m)
	}
}

func containsViolation(violations []string, want string) bool {
	for _, v := range violations {
		if v == want {
			return true
		}
	}
	return false
}
