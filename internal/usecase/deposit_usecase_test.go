package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"tripbudget/internal/domain/entities"
	mock_interfaces "tripbudget/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedBudget() entities.Budget {
	b := testBudget()
	b.ApprovalState = entities.ApprovalStateApproved
	return b
}

func TestDepositUseCase_CreateDeposit(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix"}`)

	t.Run("invalid budget id", func(t *testing.T) {
		uc := NewDepositUseCase(nil, nil, nil, zerolog.Nop())
		if _, err := uc.CreateDeposit(context.Background(), " ", payload); !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewDepositUseCase(nil, nil, nil, zerolog.Nop())
		if _, err := uc.CreateDeposit(context.Background(), "budget-1", json.RawMessage(`{broken`)); !errors.Is(err, ErrInvalidDepositPayload) {
			t.Fatalf("expected ErrInvalidDepositPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewDepositUseCase(nil, nil, nil, zerolog.Nop())
		if _, err := uc.CreateDeposit(context.Background(), "budget-1", payload); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("budget not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositUseCase(nil, budgets, gateway, zerolog.Nop())

		budgets.EXPECT().GetByID(gomock.Any(), "budget-1").Return(testBudget(), nil) // draft

		if _, err := uc.CreateDeposit(context.Background(), "budget-1", payload); !errors.Is(err, ErrBudgetNotApproved) {
			t.Fatalf("expected ErrBudgetNotApproved, got %v", err)
		}
	})

	t.Run("approved payment persists with reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositUseCase(repo, budgets, gateway, zerolog.Nop())

		budgets.EXPECT().GetByID(gomock.Any(), "budget-1").Return(approvedBudget(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sent json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]interface{}
				if err := json.Unmarshal(sent, &m); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if m["external_reference"] != "budget-1" {
					t.Fatalf("expected external_reference budget-1, got %v", m["external_reference"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Deposit{})).DoAndReturn(
			func(_ context.Context, d entities.Deposit) (entities.Deposit, error) {
				if d.ID == "" || d.BudgetID != "budget-1" {
					t.Fatalf("unexpected deposit: %+v", d)
				}
				if d.Status != entities.DepositStatusApproved || d.GatewayPaymentID != "mp-123" {
					t.Fatalf("unexpected gateway outcome: %+v", d)
				}
				if !almostEqual(d.Amount, 300) { // 100 + 200
					t.Fatalf("expected amount 300, got %f", d.Amount)
				}
				return d, nil
			},
		)

		created, err := uc.CreateDeposit(context.Background(), "budget-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected persisted deposit back")
		}
	})

	t.Run("rejected payment maps to denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositUseCase(repo, budgets, gateway, zerolog.Nop())

		budgets.EXPECT().GetByID(gomock.Any(), "budget-1").Return(approvedBudget(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-124", "rejected", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Deposit) (entities.Deposit, error) {
				if d.Status != entities.DepositStatusDenied {
					t.Fatalf("expected denied, got %s", d.Status)
				}
				return d, nil
			},
		)

		if _, err := uc.CreateDeposit(context.Background(), "budget-1", payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositUseCase(nil, budgets, gateway, zerolog.Nop())

		budgets.EXPECT().GetByID(gomock.Any(), "budget-1").Return(approvedBudget(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("gateway down"))

		if _, err := uc.CreateDeposit(context.Background(), "budget-1", payload); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestDepositUseCase_ListByBudgetID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDepositUseCase(nil, nil, nil, zerolog.Nop())
		if _, err := uc.ListByBudgetID(context.Background(), ""); !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("lists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositRepository(ctrl)
		uc := NewDepositUseCase(repo, nil, nil, zerolog.Nop())

		repo.EXPECT().ListByBudgetID(gomock.Any(), "budget-1").Return([]entities.Deposit{{ID: "d-1"}}, nil)

		out, err := uc.ListByBudgetID(context.Background(), "budget-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != "d-1" {
			t.Fatalf("unexpected deposits: %+v", out)
		}
	})
}
