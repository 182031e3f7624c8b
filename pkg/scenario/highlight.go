package scenario

// Extreme names the scenario holding the best value of one figure.
type Extreme struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Highlights summarizes a comparison set.
type Highlights struct {
	Empty               bool    `json:"empty"`
	HighestEfficiency   Extreme `json:"highest_efficiency"`
	LowestCost          Extreme `json:"lowest_cost"`
	HighestSatisfaction Extreme `json:"highest_satisfaction"`
	WidestCoverage      Extreme `json:"widest_coverage"`
}

// Highlight picks the extremes of a comparison set. On ties the earliest
// scenario in the slice wins.
func Highlight(selected []Definition) Highlights {
	if len(selected) == 0 {
		return Highlights{Empty: true}
	}

	first := selected[0]
	h := Highlights{
		HighestEfficiency:   extremeOf(first, first.Characteristics.EfficiencyPercent),
		LowestCost:          extremeOf(first, first.Characteristics.MonthlyCost),
		HighestSatisfaction: extremeOf(first, first.Characteristics.SatisfactionScore),
		WidestCoverage:      extremeOf(first, first.Characteristics.CoveragePercent),
	}

	for _, d := range selected[1:] {
		c := d.Characteristics
		if c.EfficiencyPercent > h.HighestEfficiency.Value {
			h.HighestEfficiency = extremeOf(d, c.EfficiencyPercent)
		}
		if c.MonthlyCost < h.LowestCost.Value {
			h.LowestCost = extremeOf(d, c.MonthlyCost)
		}
		if c.SatisfactionScore > h.HighestSatisfaction.Value {
			h.HighestSatisfaction = extremeOf(d, c.SatisfactionScore)
		}
		if c.CoveragePercent > h.WidestCoverage.Value {
			h.WidestCoverage = extremeOf(d, c.CoveragePercent)
		}
	}
	return h
}

func extremeOf(d Definition, v float64) Extreme {
	return Extreme{ID: d.ID, Name: d.Name, Value: v}
}
