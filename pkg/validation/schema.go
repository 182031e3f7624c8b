package validation

import (
	"fmt"

	"github.com/pak3430/DDF-Dashboard-sample/pkg/cost"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/scenario"
)

// Operating ranges offered by the budget simulator's inputs.
const (
	minOperatingHours = 8
	maxOperatingHours = 24
	minOperatingDays  = 20
	maxOperatingDays  = 31
	maxSatisfaction   = 5
)

// ValidateParameters performs schema validation on a budget parameter set.
// The cost model accepts any input; this check is what rejects it.
func ValidateParameters(p cost.Parameters) *Report {
	return validateParametersAt(p, "parameters")
}

func validateParametersAt(p cost.Parameters, prefix string) *Report {
	r := NewReport()

	if p.VehicleCount <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "vehicle_count must be greater than 0",
			Path:        prefix + ".vehicle_count",
			ActualValue: p.VehicleCount,
			Expected:    "> 0",
		})
	}

	if p.OperatingHoursPerDay < minOperatingHours || p.OperatingHoursPerDay > maxOperatingHours {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("operating_hours_per_day %.1f is outside valid range (%d-%dh)", p.OperatingHoursPerDay, minOperatingHours, maxOperatingHours),
			Path:        prefix + ".operating_hours_per_day",
			ActualValue: p.OperatingHoursPerDay,
			Expected:    fmt.Sprintf("%d-%d", minOperatingHours, maxOperatingHours),
		})
	}

	if p.OperatingDaysPerMonth < minOperatingDays || p.OperatingDaysPerMonth > maxOperatingDays {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("operating_days_per_month %d is outside valid range (%d-%d)", p.OperatingDaysPerMonth, minOperatingDays, maxOperatingDays),
			Path:        prefix + ".operating_days_per_month",
			ActualValue: p.OperatingDaysPerMonth,
			Expected:    fmt.Sprintf("%d-%d", minOperatingDays, maxOperatingDays),
		})
	}

	if p.ServiceAreaKm2 <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "service_area_km2 must be greater than 0",
			Path:        prefix + ".service_area_km2",
			ActualValue: p.ServiceAreaKm2,
			Expected:    "> 0",
		})
	}

	costs := []struct {
		name  string
		value float64
	}{
		{"driver_daily_wage", p.DriverDailyWage},
		{"daily_fuel_cost_per_vehicle", p.DailyFuelCostPerVehicle},
		{"monthly_maintenance_cost_per_vehicle", p.MonthlyMaintenanceCostPerVehicle},
	}
	for _, c := range costs {
		if c.value < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s must be non-negative", c.name),
				Path:        prefix + "." + c.name,
				ActualValue: c.value,
				Expected:    ">= 0",
			})
		}
	}

	return r
}

// ValidateConstants checks the model constants a project may override.
func ValidateConstants(c cost.Constants) *Report {
	r := NewReport()

	positives := []struct {
		name  string
		value float64
	}{
		{"riders_per_vehicle_hour", c.RidersPerVehicleHour},
		{"area_unit_km2", c.AreaUnitKm2},
		{"fare_to_cost_unit", c.FareToCostUnit},
	}
	for _, pc := range positives {
		if pc.value <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s must be greater than 0", pc.name),
				Path:        "constants." + pc.name,
				ActualValue: pc.value,
				Expected:    "> 0",
			})
		}
	}

	if c.AverageFare < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "average_fare must be non-negative",
			Path:        "constants.average_fare",
			ActualValue: c.AverageFare,
			Expected:    ">= 0",
		})
	}

	if c.MonthsPerYear <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "months_per_year must be greater than 0",
			Path:        "constants.months_per_year",
			ActualValue: c.MonthsPerYear,
			Expected:    "> 0",
		})
	}

	return r
}

// ValidateCatalog checks scenario definitions for structural problems.
func ValidateCatalog(catalog []scenario.Definition) *Report {
	r := NewReport()

	if len(catalog) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "scenario catalog must contain at least one scenario",
			Path:     "scenarios.catalog",
			Expected: "at least 1 scenario",
		})
		return r
	}

	seen := make(map[string]int, len(catalog))
	for i, d := range catalog {
		path := fmt.Sprintf("scenarios.catalog[%d]", i)

		if d.ID == "" {
			r.AddError(Result{
				Level:   LevelSchema,
				Message: fmt.Sprintf("%s: id must not be empty", path),
				Path:    path + ".id",
			})
		} else if first, dup := seen[d.ID]; dup {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("duplicate scenario id %q (first defined at scenarios.catalog[%d])", d.ID, first),
				Path:        path + ".id",
				ActualValue: d.ID,
			})
		} else {
			seen[d.ID] = i
		}

		ch := d.Characteristics
		if ch.SatisfactionScore < 0 || ch.SatisfactionScore > maxSatisfaction {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): satisfaction %.1f is outside valid range (0-%d)", path, d.ID, ch.SatisfactionScore, maxSatisfaction),
				Path:        path + ".characteristics.satisfaction",
				ActualValue: ch.SatisfactionScore,
				Expected:    fmt.Sprintf("0-%d", maxSatisfaction),
			})
		}

		numbers := []struct {
			name  string
			value float64
		}{
			{"characteristics.efficiency_pct", ch.EfficiencyPercent},
			{"characteristics.monthly_cost", ch.MonthlyCost},
			{"characteristics.coverage_pct", ch.CoveragePercent},
			{"metrics.daily_passengers", d.Metrics.DailyPassengers},
		}
		for _, n := range numbers {
			if n.value < 0 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("%s (%s): %s must be non-negative", path, d.ID, n.name),
					Path:        path + "." + n.name,
					ActualValue: n.value,
					Expected:    ">= 0",
				})
			}
		}
	}

	return r
}
