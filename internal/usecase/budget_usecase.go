package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"
)

var (
	ErrInvalidSellerID = errors.New("invalid seller id")
	ErrInvalidBudget   = errors.New("invalid budget")
)

// IBudgetUseCase exposes budget management operations to the HTTP adapter.
type IBudgetUseCase interface {
	CreateBudget(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	repo   interfaces.IBudgetRepository
	events interfaces.IEventPublisher
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, events interfaces.IEventPublisher) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, events: events}
}

func (u *BudgetUseCase) CreateBudget(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	b.SellerID = strings.TrimSpace(b.SellerID)
	if b.SellerID == "" {
		return entities.Budget{}, ErrInvalidSellerID
	}
	if len(b.Items) == 0 {
		return entities.Budget{}, ErrInvalidBudget
	}
	for i := range b.Items {
		item := &b.Items[i]
		if item.Price <= 0 || item.Cost < 0 {
			return entities.Budget{}, ErrInvalidBudget
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.Status = entities.BudgetStatusActive
	b.ApprovalState = entities.ApprovalStateDraft
	b.CreatedAt = now
	b.UpdatedAt = now

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}

	u.events.Publish(ctx, interfaces.EventBudgetCreated, map[string]interface{}{
		"budget_id":    created.ID,
		"seller_id":    created.SellerID,
		"total_amount": created.TotalAmount(),
	})
	return created, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListBySellerID(ctx context.Context, sellerID string) ([]entities.Budget, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return nil, ErrInvalidSellerID
	}
	return u.repo.ListBySellerID(ctx, sellerID)
}
