package analytics

import (
	"fmt"

	"github.com/pak3430/DDF-Dashboard-sample/pkg/spec"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/validation"
)

// validateAnalytical records findings about the computed figures.
func validateAnalytical(p *spec.Project, res *Resolved, report *validation.Report) {
	validateBreakEven(res, report)
	validateFeasibility(res, report)
	validateEfficiency(res, report)
	validateFleetSize(p, report)
	validateHybridBalance(p, res, report)
}

func validateBreakEven(res *Resolved, report *validation.Report) {
	b := res.Budget
	if b.BreakEvenMonths > 0 {
		report.AddInfo(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("investment breaks even after %d months (ROI %.1f%%)", b.BreakEvenMonths, b.ROIPercent),
			Path:        "parameters",
			ActualValue: b.BreakEvenMonths,
		})
		return
	}

	report.AddWarning(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("break-even not reached: monthly revenue %.0f does not exceed monthly cost %.0f", b.MonthlyRevenue, b.MonthlyCost),
		Path:        "parameters",
		ActualValue: b.ROIPercent,
		Expected:    "ROI > 0%",
		Suggestions: []string{
			"Reduce fleet size or operating hours",
			"Check constants.fare_to_cost_unit so fare and costs share a currency unit",
		},
	})
}

func validateEfficiency(res *Resolved, report *validation.Report) {
	if res.Budget.ExpectedMonthlyRiders == 0 {
		report.AddWarning(validation.Result{
			Level:    validation.LevelAnalytical,
			Message:  "expected monthly ridership is 0; cost per rider is undefined",
			Path:     "parameters",
			Expected: "> 0 riders",
		})
		return
	}

	report.AddInfo(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("cost per rider %.2f rates as %s", res.Budget.CostPerRider, res.Operating.EfficiencyRating),
		Path:        "parameters",
		ActualValue: res.Budget.CostPerRider,
	})
}

func validateFleetSize(p *spec.Project, report *validation.Report) {
	rec := FleetRecommendation(p.Parameters.VehicleCount)
	result := validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("fleet of %d vehicles: %s", p.Parameters.VehicleCount, rec),
		Path:        "parameters.vehicle_count",
		ActualValue: p.Parameters.VehicleCount,
		Expected:    fmt.Sprintf("%d-%d", smallFleet, largeFleet),
	}
	switch rec {
	case FleetExpand:
		result.Suggestions = []string{fmt.Sprintf("Consider at least %d vehicles to widen coverage", smallFleet)}
	case FleetOptimize:
		result.Suggestions = []string{"Review utilization before adding vehicles"}
	}
	report.AddInfo(result)
}

func validateHybridBalance(p *spec.Project, res *Resolved, report *validation.Report) {
	h := res.Hybrid
	if h.Normalized || h.Balanced {
		return
	}
	report.AddWarning(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("hybrid figures are scaled by a weight total of %.1f%%, not 100%%", h.TotalWeight),
		Path:        "scenarios.weights",
		ActualValue: h.TotalWeight,
		Expected:    fmt.Sprintf("%.0f", p.Scenarios.Limits.TargetWeight),
		Suggestions: []string{"Set scenarios.normalize to blend proportionally"},
	})
}
