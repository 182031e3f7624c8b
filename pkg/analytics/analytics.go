package analytics

import (
	"math"

	"github.com/pak3430/DDF-Dashboard-sample/pkg/cost"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/scenario"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/spec"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/validation"
)

// ProjectionYears is the length of the ROI outlook.
const ProjectionYears = 5

// Resolved holds everything computed for one project.
type Resolved struct {
	Budget    cost.Result       `json:"budget"`
	Operating OperatingFigures  `json:"operating"`
	Monthly   []cost.MonthPoint `json:"monthly_projection"`
	Yearly    []cost.YearPoint  `json:"yearly_projection"`
	Benefits  cost.Benefits     `json:"social_benefits"`
	Variants  *cost.Comparison  `json:"variants,omitempty"`

	Feasibility Feasibility `json:"feasibility"`

	Selected    []scenario.Definition `json:"selected"`
	Highlights  scenario.Highlights   `json:"highlights"`
	Hybrid      scenario.Hybrid       `json:"hybrid"`
	HybridFleet HybridFigures         `json:"hybrid_fleet"`
}

// Resolve runs the budget model and the scenario blender for a project and
// derives the figures the dashboard shows next to them.
// Returns resolved figures and a report of analytical findings. Schema
// problems are not checked here; see validation.ValidateProject.
func Resolve(p *spec.Project) (*Resolved, *validation.Report) {
	report := validation.NewReport()

	// 1. Budget
	budget := cost.Compute(p.Parameters, p.Constants)

	// 2. Projections and benefits
	monthly := cost.MonthlyProjection(budget, p.Constants)
	yearly := cost.YearlyProjection(budget, p.Constants, ProjectionYears)
	benefits := cost.SocialBenefits(p.Parameters, budget, p.Constants)

	// 3. Saved variants
	var variants *cost.Comparison
	if len(p.Variants) > 0 {
		c := cost.CompareVariants(p.Variants, p.Constants)
		variants = &c
	}

	// 4. Scenario comparison
	catalog := p.Scenarios.Catalog
	selected := scenario.Select(catalog, p.Scenarios.Selected)
	highlights := scenario.Highlight(selected)

	// 5. Hybrid
	var hybrid scenario.Hybrid
	if p.Scenarios.Normalize {
		hybrid = scenario.BlendNormalized(catalog, p.Scenarios.Weights)
	} else {
		hybrid = scenario.Blend(catalog, p.Scenarios.Weights)
	}

	res := &Resolved{
		Budget:      budget,
		Operating:   Operating(p.Parameters, budget),
		Monthly:     monthly,
		Yearly:      yearly,
		Benefits:    benefits,
		Variants:    variants,
		Feasibility: Assess(p.Parameters, budget, yearly),
		Selected:    selected,
		Highlights:  highlights,
		Hybrid:      hybrid,
		HybridFleet: HybridFleet(p.Scenarios.Fleet, hybrid),
	}

	// 6. Analytical findings
	validateAnalytical(p, res, report)

	return res, report
}

// Operating derives the per-vehicle figures for a budget result.
func Operating(p cost.Parameters, r cost.Result) OperatingFigures {
	f := OperatingFigures{
		EfficiencyRating:    EfficiencyRating(r.CostPerRider),
		FleetRecommendation: FleetRecommendation(p.VehicleCount),
	}
	if p.VehicleCount <= 0 {
		return f
	}

	vehicles := float64(p.VehicleCount)
	perVehicle := float64(r.ExpectedMonthlyRiders) / vehicles

	f.MonthlyRidersPerVehicle = int(roundHalfUp(perVehicle))
	f.MonthlyCostPerVehicle = int(roundHalfUp(r.MonthlyCost / vehicles))
	if p.OperatingDaysPerMonth > 0 {
		f.DailyRidersPerVehicle = roundTenth(perVehicle / float64(p.OperatingDaysPerMonth))
	}
	if p.OperatingHoursPerDay > 0 {
		f.HourlyRidersPerVehicle = roundTenth(perVehicle / p.OperatingHoursPerDay)
	}
	return f
}

// HybridFleet relates a hybrid plan to the fleet that would run it.
func HybridFleet(fleet spec.Fleet, h scenario.Hybrid) HybridFigures {
	f := HybridFigures{
		VehicleCount:         fleet.VehicleCount,
		OperatingHoursPerDay: fleet.OperatingHoursPerDay,
	}
	if fleet.VehicleCount > 0 {
		f.DailyPassengersPerVehicle = int(roundHalfUp(float64(h.DailyPassengers) / float64(fleet.VehicleCount)))
	}
	return f
}

// EfficiencyRating buckets a monthly cost per rider.
func EfficiencyRating(costPerRider float64) string {
	switch {
	case costPerRider < veryEfficientCostPerRider:
		return RatingVeryEfficient
	case costPerRider < efficientCostPerRider:
		return RatingEfficient
	default:
		return RatingNeedsImprovement
	}
}

// FleetRecommendation suggests a direction for the fleet size.
func FleetRecommendation(vehicles int) string {
	switch {
	case vehicles < smallFleet:
		return FleetExpand
	case vehicles > largeFleet:
		return FleetOptimize
	default:
		return FleetAdequate
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
