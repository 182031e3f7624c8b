package scenario

import "math"

// Weights maps scenario IDs to weight percentages. Missing IDs weigh 0.
type Weights map[string]float64

// weightTolerance absorbs float drift when checking that weights total 100.
const weightTolerance = 1e-9

// Hybrid is a weighted blend of catalog scenarios.
//
// Blend does not normalize: weights totalling 140 inflate every figure by
// 1.4 and weights totalling 60 deflate them. Callers gate on Balanced before
// treating the hybrid as a valid operating plan.
type Hybrid struct {
	EfficiencyPercent int     `json:"efficiency_pct"`
	MonthlyCost       int     `json:"monthly_cost"`
	SatisfactionScore float64 `json:"satisfaction"`
	CoveragePercent   int     `json:"coverage_pct"`
	DailyPassengers   int     `json:"daily_passengers"`

	TotalWeight float64 `json:"total_weight"`
	Balanced    bool    `json:"balanced"`
	Normalized  bool    `json:"normalized"`
}

// Total sums the weights of the catalog entries. Weights for IDs that are
// not in the catalog do not count.
func (w Weights) Total(catalog []Definition) float64 {
	total := 0.0
	for _, d := range catalog {
		total += w[d.ID]
	}
	return total
}

// Blend accumulates each characteristic as value * weight/100 across the
// catalog. Integer figures round half up; satisfaction keeps one decimal.
func Blend(catalog []Definition, w Weights) Hybrid {
	total := w.Total(catalog)
	h := blend(catalog, w, 1)
	h.TotalWeight = total
	h.Balanced = math.Abs(total-100) <= weightTolerance
	return h
}

// BlendNormalized rescales the weights to total 100 before blending.
// A zero or negative total yields a zero hybrid.
func BlendNormalized(catalog []Definition, w Weights) Hybrid {
	total := w.Total(catalog)
	h := Hybrid{}
	if total > 0 {
		h = blend(catalog, w, 100/total)
	}
	h.TotalWeight = total
	h.Balanced = math.Abs(total-100) <= weightTolerance
	h.Normalized = true
	return h
}

func blend(catalog []Definition, w Weights, scale float64) Hybrid {
	var efficiency, cost, satisfaction, coverage, passengers float64
	for _, d := range catalog {
		share := w[d.ID] * scale / 100
		c := d.Characteristics
		efficiency += c.EfficiencyPercent * share
		cost += c.MonthlyCost * share
		satisfaction += c.SatisfactionScore * share
		coverage += c.CoveragePercent * share
		passengers += d.Metrics.DailyPassengers * share
	}

	return Hybrid{
		EfficiencyPercent: roundInt(efficiency),
		MonthlyCost:       roundInt(cost),
		SatisfactionScore: math.Floor(satisfaction*10+0.5) / 10,
		CoveragePercent:   roundInt(coverage),
		DailyPassengers:   roundInt(passengers),
	}
}

func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}

// DefaultWeights returns the builder's starting mix.
func DefaultWeights() Weights {
	return Weights{
		Commute: 40,
		Tourism: 30,
		Elderly: 20,
		Mixed:   10,
	}
}

// EvenWeights splits 100 equally across the catalog.
func EvenWeights(catalog []Definition) Weights {
	w := make(Weights, len(catalog))
	if len(catalog) == 0 {
		return w
	}
	share := 100 / float64(len(catalog))
	for _, d := range catalog {
		w[d.ID] = share
	}
	return w
}
