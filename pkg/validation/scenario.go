package validation

import (
	"fmt"
	"math"
	"sort"

	"github.com/pak3430/DDF-Dashboard-sample/pkg/scenario"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/spec"
)

const balanceTolerance = 1e-9

// ValidateWeights checks a hybrid weight assignment against the catalog.
// Out-of-range weights are errors; unknown IDs and an unbalanced total are
// warnings, since the blender ignores the former and accepts the latter.
func ValidateWeights(catalog []scenario.Definition, w scenario.Weights, limits scenario.Limits) *Report {
	r := NewReport()

	ids := make([]string, 0, len(w))
	for id := range w {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		v := w[id]
		path := "scenarios.weights." + id

		if scenario.ByID(catalog, id) == nil {
			r.AddWarning(Result{
				Level:       LevelScenario,
				Message:     fmt.Sprintf("weight for unknown scenario %q is ignored", id),
				Path:        path,
				ActualValue: v,
				Suggestions: []string{"Remove the weight or add the scenario to the catalog"},
			})
			continue
		}

		if v < 0 || v > limits.MaxWeight {
			r.AddError(Result{
				Level:       LevelScenario,
				Message:     fmt.Sprintf("weight %.1f for %s is outside valid range (0-%.0f)", v, id, limits.MaxWeight),
				Path:        path,
				ActualValue: v,
				Expected:    fmt.Sprintf("0-%.0f", limits.MaxWeight),
			})
		}
	}

	total := w.Total(catalog)
	if math.Abs(total-limits.TargetWeight) > balanceTolerance {
		r.AddWarning(Result{
			Level:       LevelScenario,
			Message:     fmt.Sprintf("hybrid is not balanced: weights total %.1f%%", total),
			Path:        "scenarios.weights",
			ActualValue: total,
			Expected:    fmt.Sprintf("%.0f", limits.TargetWeight),
			Suggestions: []string{
				"Adjust weights so they total 100",
				"Set scenarios.normalize to blend proportionally",
			},
		})
	}

	return r
}

// ValidateSelection checks a comparison selection against the catalog.
func ValidateSelection(catalog []scenario.Definition, ids []string, limits scenario.Limits) *Report {
	r := NewReport()

	for i, id := range ids {
		if scenario.ByID(catalog, id) == nil {
			r.AddWarning(Result{
				Level:       LevelScenario,
				Message:     fmt.Sprintf("selected scenario %q is not in the catalog", id),
				Path:        fmt.Sprintf("scenarios.selected[%d]", i),
				ActualValue: id,
			})
		}
	}

	if limits.MaxSelection > 0 && len(ids) > limits.MaxSelection {
		r.AddWarning(Result{
			Level:       LevelScenario,
			Message:     fmt.Sprintf("%d scenarios selected; comparison shows at most %d", len(ids), limits.MaxSelection),
			Path:        "scenarios.selected",
			ActualValue: len(ids),
			Expected:    fmt.Sprintf("<= %d", limits.MaxSelection),
		})
	}

	if len(ids) == 0 {
		r.AddInfo(Result{
			Level:   LevelScenario,
			Message: "no scenarios selected for comparison",
			Path:    "scenarios.selected",
		})
	}

	return r
}

// ValidateProject runs every schema and scenario check on a loaded project.
func ValidateProject(p *spec.Project) *Report {
	r := NewReport()

	r.Merge(ValidateParameters(p.Parameters))
	r.Merge(ValidateConstants(p.Constants))
	for i, v := range p.Variants {
		r.Merge(validateParametersAt(v.Parameters, fmt.Sprintf("variants[%d].parameters", i)))
	}

	r.Merge(ValidateCatalog(p.Scenarios.Catalog))
	r.Merge(ValidateSelection(p.Scenarios.Catalog, p.Scenarios.Selected, p.Scenarios.Limits))
	r.Merge(ValidateWeights(p.Scenarios.Catalog, p.Scenarios.Weights, p.Scenarios.Limits))

	if p.Scenarios.Fleet.VehicleCount <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "fleet vehicle_count must be greater than 0",
			Path:        "scenarios.fleet.vehicle_count",
			ActualValue: p.Scenarios.Fleet.VehicleCount,
			Expected:    "> 0",
		})
	}

	return r
}
