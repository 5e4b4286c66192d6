package request

import (
	"strings"

	"tripbudget/internal/domain/entities"
)

// ReconstructionRequest carries a provider change set plus an optional
// strategy override. An empty strategy lets the engine pick one.
type ReconstructionRequest struct {
	CostChanges         map[string]float64 `json:"cost_changes"`
	UnavailableItems    []string           `json:"unavailable_items"`
	AvailabilityChanges map[string]float64 `json:"availability_changes"`
	Strategy            string             `json:"strategy"`
}

func (r ReconstructionRequest) ToChangeSet() entities.ChangeSet {
	return entities.ChangeSet{
		CostChanges:         r.CostChanges,
		UnavailableItems:    r.UnavailableItems,
		AvailabilityChanges: r.AvailabilityChanges,
	}
}

func (r ReconstructionRequest) ResolveStrategy() string {
	return strings.TrimSpace(r.Strategy)
}
