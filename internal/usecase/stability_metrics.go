package usecase

import "tripbudget/internal/domain/entities"

// ComputeStabilityMetrics compares a candidate budget against a baseline and
// quantifies how disruptive the change is.
//
// Items are matched positionally; budgets produced by the strategies keep
// the baseline's item ordering. For every matched pair it records the
// normalized price-change ratio |Δprice|/price_old and the margin-change
// magnitude |margin_new - margin_old|. The score is
//
//	min(1 - max(priceChanges)/maxPriceChange, 1 - max(marginChanges)/maxMarginChange)
//
// clamped to [0,1]. With no comparable pairs the score is 1.0 (maximally
// stable).
//
// Pure function: no I/O, no session state.
func ComputeStabilityMetrics(baseline, candidate entities.Budget, cfg Config) entities.StabilityMetrics {
	m := entities.StabilityMetrics{
		PriceChanges:   []float64{},
		MarginChanges:  []float64{},
		StabilityScore: 1.0,
	}

	n := len(baseline.Items)
	if len(candidate.Items) < n {
		n = len(candidate.Items)
	}
	for i := 0; i < n; i++ {
		old := baseline.Items[i]
		new_ := candidate.Items[i]

		if old.Price > 0 {
			m.PriceChanges = append(m.PriceChanges, abs(new_.Price-old.Price)/old.Price)
		}
		if old.Price > 0 && new_.Price > 0 {
			m.MarginChanges = append(m.MarginChanges, abs(new_.Margin()-old.Margin()))
		}
	}

	priceFactor := 1.0
	if len(m.PriceChanges) > 0 && cfg.MaxPriceChange > 0 {
		priceFactor = 1 - maxOf(m.PriceChanges)/cfg.MaxPriceChange
	}
	marginFactor := 1.0
	if len(m.MarginChanges) > 0 && cfg.MaxMarginChange > 0 {
		marginFactor = 1 - maxOf(m.MarginChanges)/cfg.MaxMarginChange
	}

	m.StabilityScore = clamp01(min(priceFactor, marginFactor))
	return m
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxOf(vs []float64) float64 {
	out := vs[0]
	for _, v := range vs[1:] {
		if v > out {
			out = v
		}
	}
	return out
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
