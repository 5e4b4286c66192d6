package entities

import "time"

// BudgetStatus is the coarse lifecycle flag of a budget. Approval progress is
// tracked separately by ApprovalState.
type BudgetStatus string

const (
	BudgetStatusActive BudgetStatus = "active"
	BudgetStatusLocked BudgetStatus = "locked"
)

// ItemType tags the kind of travel component a BudgetItem prices.
type ItemType string

const (
	ItemTypeFlight    ItemType = "flight"
	ItemTypeHotel     ItemType = "hotel"
	ItemTypeActivity  ItemType = "activity"
	ItemTypeInsurance ItemType = "insurance"
)

// BudgetItem is one priced component of a budget.
//
// Invariants:
//   - Price > 0, Cost >= 0
//   - (Price-Cost)/Price must stay inside the configured margin band after
//     any reconstruction.
type BudgetItem struct {
	ID           string            `json:"id"`
	Type         ItemType          `json:"type"`
	Description  string            `json:"description"`
	ProviderID   string            `json:"provider_id"`
	Price        float64           `json:"price"`
	Cost         float64           `json:"cost"`
	Quantity     int               `json:"quantity"`
	Currency     string            `json:"currency"`
	Rating       float64           `json:"rating"`       // 0..5
	Availability float64           `json:"availability"` // 0..1
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	Attributes   map[string]string `json:"attributes,omitempty"`
}

// Margin returns the relative margin (price-cost)/price, or 0 for a
// non-positive price.
func (i BudgetItem) Margin() float64 {
	if i.Price <= 0 {
		return 0
	}
	return (i.Price - i.Cost) / i.Price
}

// Budget is a multi-item travel quote (presupuesto).
//
// Storage model (DynamoDB):
//   - PK: id
//
// While a sale is in progress the budget is owned by exactly one active
// session; the persistence layer owns it otherwise.
type Budget struct {
	ID             string            `json:"id"`
	SellerID       string            `json:"seller_id"`
	Items          []BudgetItem      `json:"items"`
	SearchCriteria map[string]string `json:"search_criteria,omitempty"`
	Currency       string            `json:"currency"`
	Status         BudgetStatus      `json:"status"`
	ApprovalState  ApprovalState     `json:"approval_state"`
	ValidFrom      time.Time         `json:"valid_from"`
	ValidUntil     time.Time         `json:"valid_until"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// TotalAmount is the derived sum of item price times quantity. Items with a
// zero quantity count once; the quantity field is optional on input.
func (b Budget) TotalAmount() float64 {
	total := 0.0
	for _, it := range b.Items {
		q := it.Quantity
		if q <= 0 {
			q = 1
		}
		total += it.Price * float64(q)
	}
	return total
}

// Clone returns a deep copy. Strategies and the session manager operate on
// copies so a rejected candidate never leaks into committed state.
func (b Budget) Clone() Budget {
	out := b
	out.Items = make([]BudgetItem, len(b.Items))
	copy(out.Items, b.Items)
	for i := range out.Items {
		out.Items[i].Attributes = cloneStringMap(b.Items[i].Attributes)
	}
	out.SearchCriteria = cloneStringMap(b.SearchCriteria)
	out.Metadata = cloneStringMap(b.Metadata)
	return out
}

// Item returns the item with the given id, if present.
func (b Budget) Item(itemID string) (BudgetItem, bool) {
	for _, it := range b.Items {
		if it.ID == itemID {
			return it, true
		}
	}
	return BudgetItem{}, false
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ChangeSet is a typed provider delta applied during reconstruction.
// Keys are budget item ids.
type ChangeSet struct {
	CostChanges         map[string]float64 `json:"cost_changes,omitempty"`         // new absolute cost per item
	UnavailableItems    []string           `json:"unavailable_items,omitempty"`    // items no longer bookable
	AvailabilityChanges map[string]float64 `json:"availability_changes,omitempty"` // new availability fraction
}

// IsEmpty reports whether the change set carries no deltas at all.
func (c ChangeSet) IsEmpty() bool {
	return len(c.CostChanges) == 0 && len(c.UnavailableItems) == 0 && len(c.AvailabilityChanges) == 0
}

// MarksUnavailable reports whether the item is flagged unavailable.
func (c ChangeSet) MarksUnavailable(itemID string) bool {
	for _, id := range c.UnavailableItems {
		if id == itemID {
			return true
		}
	}
	return false
}
