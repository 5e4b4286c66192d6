package usecase

import (
	"testing"

	"tripbudget/internal/domain/entities"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < floatTolerance
}

func testBudget() entities.Budget {
	return entities.Budget{
		ID:       "budget-1",
		SellerID: "seller-1",
		Currency: "EUR",
		Status:   entities.BudgetStatusActive,
		Items: []entities.BudgetItem{
			{ID: "item-1", Type: entities.ItemTypeFlight, Price: 100, Cost: 80, Quantity: 1, Currency: "EUR", Rating: 4.0, Availability: 1.0},
			{ID: "item-2", Type: entities.ItemTypeHotel, Price: 200, Cost: 150, Quantity: 1, Currency: "EUR", Rating: 4.5, Availability: 1.0},
		},
	}
}

func TestComputeStabilityMetrics(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("identical budgets score 1", func(t *testing.T) {
		b := testBudget()
		m := ComputeStabilityMetrics(b, b.Clone(), cfg)
		if !almostEqual(m.StabilityScore, 1.0) {
			t.Fatalf("expected score 1.0, got %f", m.StabilityScore)
		}
		for _, c := range m.PriceChanges {
			if c != 0 {
				t.Fatalf("expected zero price changes, got %v", m.PriceChanges)
			}
		}
	})

	t.Run("empty budgets score 1", func(t *testing.T) {
		m := ComputeStabilityMetrics(entities.Budget{}, entities.Budget{}, cfg)
		if !almostEqual(m.StabilityScore, 1.0) {
			t.Fatalf("expected score 1.0, got %f", m.StabilityScore)
		}
	})

	t.Run("price change degrades score linearly", func(t *testing.T) {
		base := testBudget()
		candidate := base.Clone()
		// 10% price move on item-1 with the margin held: cost scales along.
		candidate.Items[0].Price = 110
		candidate.Items[0].Cost = 88

		m := ComputeStabilityMetrics(base, candidate, cfg)
		if len(m.PriceChanges) != 2 {
			t.Fatalf("expected 2 price changes, got %d", len(m.PriceChanges))
		}
		if !almostEqual(m.PriceChanges[0], 0.10) {
			t.Fatalf("expected price change 0.10, got %f", m.PriceChanges[0])
		}
		// 1 - 0.10/0.15
		want := 1 - 0.10/cfg.MaxPriceChange
		if !almostEqual(m.StabilityScore, want) {
			t.Fatalf("expected score %f, got %f", want, m.StabilityScore)
		}
	})

	t.Run("margin change dominates when larger", func(t *testing.T) {
		base := testBudget()
		candidate := base.Clone()
		// Price fixed, cost absorbed into the margin: 0.20 -> 0.12.
		candidate.Items[0].Cost = 88

		m := ComputeStabilityMetrics(base, candidate, cfg)
		if !almostEqual(m.MarginChanges[0], 0.08) {
			t.Fatalf("expected margin change 0.08, got %f", m.MarginChanges[0])
		}
		want := 1 - 0.08/cfg.MaxMarginChange
		if !almostEqual(m.StabilityScore, want) {
			t.Fatalf("expected score %f, got %f", want, m.StabilityScore)
		}
	})

	t.Run("score clamps at zero for extreme changes", func(t *testing.T) {
		base := testBudget()
		candidate := base.Clone()
		candidate.Items[0].Price = 300

		m := ComputeStabilityMetrics(base, candidate, cfg)
		if m.StabilityScore != 0 {
			t.Fatalf("expected score 0, got %f", m.StabilityScore)
		}
	})

	t.Run("worst item drives the score", func(t *testing.T) {
		base := testBudget()
		candidate := base.Clone()
		candidate.Items[0].Price = 101 // 1% change
		candidate.Items[0].Cost = 80.8
		candidate.Items[1].Price = 220 // 10% change
		candidate.Items[1].Cost = 165

		m := ComputeStabilityMetrics(base, candidate, cfg)
		want := 1 - 0.10/cfg.MaxPriceChange
		if !almostEqual(m.StabilityScore, want) {
			t.Fatalf("expected score %f, got %f", want, m.StabilityScore)
		}
	})
}
