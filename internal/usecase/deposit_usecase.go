package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"
)

var (
	ErrDepositNotFound       = errors.New("deposit not found")
	ErrInvalidDepositPayload = errors.New("invalid deposit payload")
	ErrBudgetNotApproved     = errors.New("budget not approved")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
)

// IDepositUseCase takes a deposit on an approved budget through the payment
// gateway and persists the provider outcome.
type IDepositUseCase interface {
	CreateDeposit(ctx context.Context, budgetID string, payload json.RawMessage) (entities.Deposit, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Deposit, error)
}

type DepositUseCase struct {
	repo    interfaces.IDepositRepository
	budgets interfaces.IBudgetRepository
	gateway interfaces.IPaymentGateway
	log     zerolog.Logger
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, budgets interfaces.IBudgetRepository, gateway interfaces.IPaymentGateway, log zerolog.Logger) *DepositUseCase {
	return &DepositUseCase{repo: repo, budgets: budgets, gateway: gateway, log: log}
}

func (u *DepositUseCase) CreateDeposit(ctx context.Context, budgetID string, payload json.RawMessage) (entities.Deposit, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Deposit{}, ErrInvalidBudgetID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return entities.Deposit{}, ErrInvalidDepositPayload
	}
	if u.gateway == nil {
		return entities.Deposit{}, ErrGatewayNotConfigured
	}

	budget, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return entities.Deposit{}, err
	}
	if budget.ID == "" {
		return entities.Deposit{}, ErrBudgetNotFound
	}
	if budget.ApprovalState != entities.ApprovalStateApproved {
		u.log.Info().Str("budget_id", budgetID).Str("state", string(budget.ApprovalState)).
			Msg("deposit refused: budget not approved")
		return entities.Deposit{}, ErrBudgetNotApproved
	}

	// Link the payment to the budget for provider-side reconciliation.
	var reqMap map[string]interface{}
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = budgetID
			if enriched, err := json.Marshal(reqMap); err == nil {
				payload = enriched
			}
		}
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Warn().Err(err).Str("budget_id", budgetID).Msg("deposit gateway call failed")
		return entities.Deposit{}, err
	}

	status := entities.DepositStatusPending
	switch providerStatus {
	case "approved":
		status = entities.DepositStatusApproved
	case "rejected", "cancelled":
		status = entities.DepositStatusDenied
	}

	deposit := entities.Deposit{
		ID:                uuid.NewString(),
		BudgetID:          budgetID,
		Amount:            budget.TotalAmount(),
		Currency:          budget.Currency,
		Date:              time.Now().UTC(),
		Status:            status,
		GatewayPaymentID:  providerID,
		GatewayPayloadRaw: payload,
		GatewayResponse:   providerResp,
	}
	return u.repo.Create(ctx, deposit)
}

func (u *DepositUseCase) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Deposit, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidBudgetID
	}
	return u.repo.ListByBudgetID(ctx, budgetID)
}
