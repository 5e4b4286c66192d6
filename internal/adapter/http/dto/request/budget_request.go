package request

import (
	"strings"
	"time"

	"tripbudget/internal/domain/entities"
)

type BudgetItemRequest struct {
	ID           string            `json:"id"`
	Type         string            `json:"type" binding:"required"`
	Description  string            `json:"description"`
	ProviderID   string            `json:"provider_id"`
	Price        float64           `json:"price" binding:"required"`
	Cost         float64           `json:"cost"`
	Quantity     int               `json:"quantity"`
	Currency     string            `json:"currency"`
	Rating       float64           `json:"rating"`
	Availability float64           `json:"availability"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	Attributes   map[string]string `json:"attributes"`
}

func (r BudgetItemRequest) ToEntity() entities.BudgetItem {
	availability := r.Availability
	if availability == 0 {
		availability = 1.0
	}
	return entities.BudgetItem{
		ID:           strings.TrimSpace(r.ID),
		Type:         entities.ItemType(strings.TrimSpace(r.Type)),
		Description:  r.Description,
		ProviderID:   strings.TrimSpace(r.ProviderID),
		Price:        r.Price,
		Cost:         r.Cost,
		Quantity:     r.Quantity,
		Currency:     strings.ToUpper(strings.TrimSpace(r.Currency)),
		Rating:       r.Rating,
		Availability: availability,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Attributes:   r.Attributes,
	}
}

type CreateBudgetRequest struct {
	SellerID       string              `json:"seller_id" binding:"required"`
	Currency       string              `json:"currency"`
	Items          []BudgetItemRequest `json:"items" binding:"required"`
	SearchCriteria map[string]string   `json:"search_criteria"`
	ValidFrom      time.Time           `json:"valid_from"`
	ValidUntil     time.Time           `json:"valid_until"`
	Metadata       map[string]string   `json:"metadata"`
}

func (r CreateBudgetRequest) ToEntity() entities.Budget {
	items := make([]entities.BudgetItem, 0, len(r.Items))
	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	for _, it := range r.Items {
		item := it.ToEntity()
		if item.Currency == "" {
			item.Currency = currency
		}
		items = append(items, item)
	}
	return entities.Budget{
		SellerID:       strings.TrimSpace(r.SellerID),
		Items:          items,
		SearchCriteria: r.SearchCriteria,
		Currency:       currency,
		ValidFrom:      r.ValidFrom,
		ValidUntil:     r.ValidUntil,
		Metadata:       r.Metadata,
	}
}
