package usecase

import (
	"context"
	"fmt"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"
)

// Validation rule codes.
const (
	RuleValidAmounts    = "VALID_AMOUNTS"
	RuleValidDates      = "VALID_DATES"
	RuleValidCurrency   = "VALID_CURRENCY"
	RuleMarginLimits    = "MARGIN_LIMITS"
	RuleCompletePackage = "COMPLETE_PACKAGE"
)

// BudgetValidator runs the business-rule checks the approval workflow asks
// for on validated transitions. Error-level issues block; warnings and infos
// are surfaced but do not.
type BudgetValidator struct {
	cfg Config
}

var _ interfaces.IBudgetValidator = (*BudgetValidator)(nil)

func NewBudgetValidator(cfg Config) *BudgetValidator {
	return &BudgetValidator{cfg: cfg}
}

func (v *BudgetValidator) ValidateBudget(_ context.Context, b entities.Budget, _ string) []entities.ValidationIssue {
	issues := []entities.ValidationIssue{}

	if len(b.Items) == 0 {
		issues = append(issues, entities.ValidationIssue{
			Rule:    RuleCompletePackage,
			Level:   entities.ValidationError,
			Message: "budget has no items",
		})
		return issues
	}

	for _, item := range b.Items {
		if item.Price <= 0 || item.Cost < 0 {
			issues = append(issues, entities.ValidationIssue{
				Rule:          RuleValidAmounts,
				Level:         entities.ValidationError,
				Message:       fmt.Sprintf("item %s has invalid amounts (price=%.2f cost=%.2f)", item.ID, item.Price, item.Cost),
				AffectedItems: []string{item.ID},
			})
			continue
		}

		if margin := item.Margin(); margin < v.cfg.MarginMinimum || margin > v.cfg.MarginMaximum {
			issues = append(issues, entities.ValidationIssue{
				Rule:          RuleMarginLimits,
				Level:         entities.ValidationError,
				Message:       fmt.Sprintf("item %s margin %.4f outside [%.2f, %.2f]", item.ID, margin, v.cfg.MarginMinimum, v.cfg.MarginMaximum),
				AffectedItems: []string{item.ID},
			})
		}

		if item.Currency != "" && b.Currency != "" && item.Currency != b.Currency {
			issues = append(issues, entities.ValidationIssue{
				Rule:          RuleValidCurrency,
				Level:         entities.ValidationWarning,
				Message:       fmt.Sprintf("item %s currency %s differs from budget currency %s", item.ID, item.Currency, b.Currency),
				AffectedItems: []string{item.ID},
			})
		}

		if !item.StartDate.IsZero() && !item.EndDate.IsZero() && item.EndDate.Before(item.StartDate) {
			issues = append(issues, entities.ValidationIssue{
				Rule:          RuleValidDates,
				Level:         entities.ValidationError,
				Message:       fmt.Sprintf("item %s date range is inverted", item.ID),
				AffectedItems: []string{item.ID},
			})
		}
	}

	if !b.ValidFrom.IsZero() && !b.ValidUntil.IsZero() && b.ValidUntil.Before(b.ValidFrom) {
		issues = append(issues, entities.ValidationIssue{
			Rule:    RuleValidDates,
			Level:   entities.ValidationError,
			Message: "budget validity window is inverted",
		})
	}

	hasFlightOrHotel := false
	for _, item := range b.Items {
		if item.Type == entities.ItemTypeFlight || item.Type == entities.ItemTypeHotel {
			hasFlightOrHotel = true
			break
		}
	}
	if !hasFlightOrHotel {
		issues = append(issues, entities.ValidationIssue{
			Rule:    RuleCompletePackage,
			Level:   entities.ValidationInfo,
			Message: "budget carries neither flight nor hotel components",
		})
	}

	return issues
}
