package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"
)

var (
	ErrUnknownStrategy       = errors.New("unknown reconstruction strategy")
	ErrMarginDegenerate      = errors.New("cannot preserve a 100% margin")
	ErrEmptyReconstructed    = errors.New("strategy produced an empty item list")
	ErrProviderNotConfigured = errors.New("provider gateway not configured")
)

// reconstructionStrategy transforms a budget given a set of provider
// changes. Implementations operate on a copy and return a full candidate
// budget; the input is never mutated, so the caller can reject the result
// without side effects.
type reconstructionStrategy interface {
	Name() entities.StrategyName
	Apply(ctx context.Context, budget entities.Budget, changes entities.ChangeSet) (entities.Budget, []entities.ItemChange, error)
}

// preserveMarginStrategy keeps the seller's percentage margin unchanged:
// for every item whose cost changed, new_price = new_cost / (1 - margin).
type preserveMarginStrategy struct{}

func (preserveMarginStrategy) Name() entities.StrategyName { return entities.StrategyPreserveMargin }

func (preserveMarginStrategy) Apply(_ context.Context, budget entities.Budget, changes entities.ChangeSet) (entities.Budget, []entities.ItemChange, error) {
	out := budget.Clone()
	applied := make([]entities.ItemChange, 0, len(changes.CostChanges))

	for i := range out.Items {
		item := &out.Items[i]
		applyAvailability(item, changes)

		newCost, ok := changes.CostChanges[item.ID]
		if !ok {
			continue
		}
		change, err := repriceKeepingMargin(item, newCost)
		if err != nil {
			return entities.Budget{}, nil, err
		}
		applied = append(applied, change)
	}
	return out, applied, nil
}

// preservePriceStrategy holds the quoted price fixed and absorbs cost
// changes entirely into the margin. Used once the price has been
// communicated to the customer.
type preservePriceStrategy struct{}

func (preservePriceStrategy) Name() entities.StrategyName { return entities.StrategyPreservePrice }

func (preservePriceStrategy) Apply(_ context.Context, budget entities.Budget, changes entities.ChangeSet) (entities.Budget, []entities.ItemChange, error) {
	out := budget.Clone()
	applied := make([]entities.ItemChange, 0, len(changes.CostChanges))

	for i := range out.Items {
		item := &out.Items[i]
		applyAvailability(item, changes)

		newCost, ok := changes.CostChanges[item.ID]
		if !ok {
			continue
		}
		applied = append(applied, entities.ItemChange{
			ItemID:   item.ID,
			OldPrice: item.Price,
			NewPrice: item.Price,
			OldCost:  item.Cost,
			NewCost:  newCost,
		})
		item.Cost = newCost
	}
	return out, applied, nil
}

// adjustProportionalStrategy splits the cost delta 50/50 between price and
// margin. The middle-ground default when no strict preservation rule
// applies.
type adjustProportionalStrategy struct{}

func (adjustProportionalStrategy) Name() entities.StrategyName {
	return entities.StrategyAdjustProportional
}

func (adjustProportionalStrategy) Apply(_ context.Context, budget entities.Budget, changes entities.ChangeSet) (entities.Budget, []entities.ItemChange, error) {
	out := budget.Clone()
	applied := make([]entities.ItemChange, 0, len(changes.CostChanges))

	for i := range out.Items {
		item := &out.Items[i]
		applyAvailability(item, changes)

		newCost, ok := changes.CostChanges[item.ID]
		if !ok {
			continue
		}
		delta := newCost - item.Cost
		newPrice := item.Price + 0.5*delta
		applied = append(applied, entities.ItemChange{
			ItemID:   item.ID,
			OldPrice: item.Price,
			NewPrice: newPrice,
			OldCost:  item.Cost,
			NewCost:  newCost,
		})
		item.Cost = newCost
		item.Price = newPrice
	}
	return out, applied, nil
}

// bestAlternativeStrategy replaces items that became unavailable, or whose
// cost moved beyond the price-change threshold, with the best substitute the
// provider system offers. Items with milder cost changes keep their margin.
type bestAlternativeStrategy struct {
	provider interfaces.IProviderGateway
	cfg      Config
}

func (bestAlternativeStrategy) Name() entities.StrategyName {
	return entities.StrategyBestAlternative
}

func (s bestAlternativeStrategy) Apply(ctx context.Context, budget entities.Budget, changes entities.ChangeSet) (entities.Budget, []entities.ItemChange, error) {
	out := budget.Clone()
	applied := make([]entities.ItemChange, 0, len(out.Items))

	for i := range out.Items {
		item := &out.Items[i]
		applyAvailability(item, changes)

		newCost, hasCostChange := changes.CostChanges[item.ID]
		needsReplacement := changes.MarksUnavailable(item.ID)
		if !needsReplacement && hasCostChange && item.Cost > 0 {
			needsReplacement = abs(newCost-item.Cost)/item.Cost > s.cfg.MaxPriceChange
		}

		if !needsReplacement {
			if hasCostChange {
				change, err := repriceKeepingMargin(item, newCost)
				if err != nil {
					return entities.Budget{}, nil, err
				}
				applied = append(applied, change)
			}
			continue
		}

		alternative, found, err := s.findBestAlternative(ctx, *item, budget.SearchCriteria)
		if err != nil {
			return entities.Budget{}, nil, fmt.Errorf("alternative search for item %s: %w", item.ID, err)
		}
		if !found {
			applied = append(applied, entities.ItemChange{
				ItemID:   item.ID,
				OldPrice: item.Price,
				NewPrice: item.Price,
				OldCost:  item.Cost,
				NewCost:  item.Cost,
				Note:     "no_alternative_found",
			})
			continue
		}

		applied = append(applied, entities.ItemChange{
			ItemID:        item.ID,
			OldPrice:      item.Price,
			NewPrice:      alternative.Price,
			OldCost:       item.Cost,
			NewCost:       alternative.Cost,
			Replaced:      true,
			ReplacementID: alternative.ID,
		})
		out.Items[i] = alternative
	}
	return out, applied, nil
}

// findBestAlternative queries the provider collaborator under the configured
// timeout and ranks candidates with a composite score where price dominates
// but a noticeably higher rating can outrank a cheaper option. Ties break by
// higher availability, then lexicographic id.
func (s bestAlternativeStrategy) findBestAlternative(ctx context.Context, item entities.BudgetItem, criteria map[string]string) (entities.BudgetItem, bool, error) {
	searchCtx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout)
	defer cancel()

	candidates, err := s.provider.SearchAlternatives(searchCtx, item, criteria)
	if err != nil {
		return entities.BudgetItem{}, false, err
	}

	valid := candidates[:0]
	for _, c := range candidates {
		if c.Price > 0 && c.Cost >= 0 && c.Availability > 0 {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return entities.BudgetItem{}, false, nil
	}
	// MaxAlternatives is a pre-ranking cap: it bounds the scoring work to the
	// first N candidates in the provider's discovery order, not the top N by
	// score.
	if len(valid) > s.cfg.MaxAlternatives {
		valid = valid[:s.cfg.MaxAlternatives]
	}

	cheapest := valid[0].Price
	for _, c := range valid[1:] {
		if c.Price < cheapest {
			cheapest = c.Price
		}
	}

	score := func(c entities.BudgetItem) float64 {
		// Price weight 0.6 (relative to cheapest candidate), rating 0.4.
		return 0.6*(cheapest/c.Price) + 0.4*(c.Rating/5.0)
	}

	sort.SliceStable(valid, func(a, b int) bool {
		sa, sb := score(valid[a]), score(valid[b])
		if sa != sb {
			return sa > sb
		}
		if valid[a].Availability != valid[b].Availability {
			return valid[a].Availability > valid[b].Availability
		}
		return valid[a].ID < valid[b].ID
	})
	return valid[0], true, nil
}

func applyAvailability(item *entities.BudgetItem, changes entities.ChangeSet) {
	if v, ok := changes.AvailabilityChanges[item.ID]; ok {
		item.Availability = v
	}
	if changes.MarksUnavailable(item.ID) {
		item.Availability = 0
	}
}

// repriceKeepingMargin rewrites the item's cost and moves the price so the
// relative margin stays where it was.
func repriceKeepingMargin(item *entities.BudgetItem, newCost float64) (entities.ItemChange, error) {
	margin := item.Margin()
	if margin >= 1 {
		return entities.ItemChange{}, fmt.Errorf("item %s: %w", item.ID, ErrMarginDegenerate)
	}
	newPrice := newCost / (1 - margin)
	change := entities.ItemChange{
		ItemID:   item.ID,
		OldPrice: item.Price,
		NewPrice: newPrice,
		OldCost:  item.Cost,
		NewCost:  newCost,
	}
	item.Cost = newCost
	item.Price = newPrice
	return change, nil
}
