package response

import (
	"time"

	"tripbudget/internal/domain/entities"
)

type BudgetItemResponse struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	Description  string            `json:"description"`
	ProviderID   string            `json:"provider_id"`
	Price        float64           `json:"price"`
	Cost         float64           `json:"cost"`
	Quantity     int               `json:"quantity"`
	Currency     string            `json:"currency"`
	Rating       float64           `json:"rating"`
	Availability float64           `json:"availability"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	Attributes   map[string]string `json:"attributes,omitempty"`
}

type BudgetResponse struct {
	ID             string               `json:"id"`
	SellerID       string               `json:"seller_id"`
	Items          []BudgetItemResponse `json:"items"`
	SearchCriteria map[string]string    `json:"search_criteria,omitempty"`
	Currency       string               `json:"currency"`
	Status         string               `json:"status"`
	ApprovalState  string               `json:"approval_state"`
	TotalAmount    float64              `json:"total_amount"`
	ValidFrom      time.Time            `json:"valid_from"`
	ValidUntil     time.Time            `json:"valid_until"`
	Metadata       map[string]string    `json:"metadata,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func FromBudgetItem(it entities.BudgetItem) BudgetItemResponse {
	return BudgetItemResponse{
		ID:           it.ID,
		Type:         string(it.Type),
		Description:  it.Description,
		ProviderID:   it.ProviderID,
		Price:        it.Price,
		Cost:         it.Cost,
		Quantity:     it.Quantity,
		Currency:     it.Currency,
		Rating:       it.Rating,
		Availability: it.Availability,
		StartDate:    it.StartDate,
		EndDate:      it.EndDate,
		Attributes:   it.Attributes,
	}
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, FromBudgetItem(it))
	}
	return BudgetResponse{
		ID:             b.ID,
		SellerID:       b.SellerID,
		Items:          items,
		SearchCriteria: b.SearchCriteria,
		Currency:       b.Currency,
		Status:         string(b.Status),
		ApprovalState:  string(b.ApprovalState),
		TotalAmount:    b.TotalAmount(),
		ValidFrom:      b.ValidFrom,
		ValidUntil:     b.ValidUntil,
		Metadata:       b.Metadata,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
