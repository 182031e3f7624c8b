package cost

import "math"

// Parameters are the fleet and operating inputs of the budget simulator.
type Parameters struct {
	VehicleCount                     int     `yaml:"vehicle_count" json:"vehicle_count"`
	OperatingHoursPerDay             float64 `yaml:"operating_hours_per_day" json:"operating_hours_per_day"`
	DriverDailyWage                  float64 `yaml:"driver_daily_wage" json:"driver_daily_wage"`
	DailyFuelCostPerVehicle          float64 `yaml:"daily_fuel_cost_per_vehicle" json:"daily_fuel_cost_per_vehicle"`
	MonthlyMaintenanceCostPerVehicle float64 `yaml:"monthly_maintenance_cost_per_vehicle" json:"monthly_maintenance_cost_per_vehicle"`
	OperatingDaysPerMonth            int     `yaml:"operating_days_per_month" json:"operating_days_per_month"`
	ServiceAreaKm2                   float64 `yaml:"service_area_km2" json:"service_area_km2"`
}

// DefaultParameters returns the simulator's starting fleet: ten vehicles on
// sixteen-hour days over a 5 km² zone.
func DefaultParameters() Parameters {
	return Parameters{
		VehicleCount:                     10,
		OperatingHoursPerDay:             16,
		DriverDailyWage:                  250,
		DailyFuelCostPerVehicle:          150,
		MonthlyMaintenanceCostPerVehicle: 80,
		OperatingDaysPerMonth:            25,
		ServiceAreaKm2:                   5,
	}
}

// Breakdown itemizes monthly cost by category.
// Shares are integer percentages of Total, 0 when Total is 0.
type Breakdown struct {
	Driver           float64 `json:"driver"`
	Fuel             float64 `json:"fuel"`
	Maintenance      float64 `json:"maintenance"`
	Total            float64 `json:"total"`
	DriverShare      int     `json:"driver_share_pct"`
	FuelShare        int     `json:"fuel_share_pct"`
	MaintenanceShare int     `json:"maintenance_share_pct"`
}

// Result is the budget simulator output.
type Result struct {
	MonthlyCost           float64   `json:"monthly_cost"`
	AnnualCost            float64   `json:"annual_cost"`
	ExpectedMonthlyRiders int       `json:"expected_monthly_riders"`
	CostPerRider          float64   `json:"cost_per_rider"`
	MonthlyRevenue        float64   `json:"monthly_revenue"`
	ROIPercent            float64   `json:"roi_percent"`
	BreakEvenMonths       int       `json:"break_even_months"`
	Breakdown             Breakdown `json:"breakdown"`
}

// Compute runs the budget model for one parameter set.
// It never fails: zero riders or zero cost yield zero ratios, and a
// non-positive ROI yields BreakEvenMonths == 0 ("not reached").
func Compute(p Parameters, c Constants) Result {
	vehicles := float64(p.VehicleCount)
	days := float64(p.OperatingDaysPerMonth)

	driver := vehicles * p.DriverDailyWage * days
	fuel := vehicles * p.DailyFuelCostPerVehicle * days
	maintenance := vehicles * p.MonthlyMaintenanceCostPerVehicle
	monthly := driver + fuel + maintenance

	riders := expectedRiders(p, c)

	costPerRider := 0.0
	if riders > 0 {
		costPerRider = monthly / float64(riders)
	}

	revenue := float64(riders) * c.AverageFare * c.FareToCostUnit

	roi := 0.0
	if monthly > 0 {
		roi = (revenue - monthly) / monthly * 100
	}

	breakEven := 0
	if roi > 0 {
		breakEven = int(math.Ceil(monthly / (revenue - monthly)))
	}

	return Result{
		MonthlyCost:           monthly,
		AnnualCost:            monthly * float64(c.MonthsPerYear),
		ExpectedMonthlyRiders: riders,
		CostPerRider:          costPerRider,
		MonthlyRevenue:        revenue,
		ROIPercent:            roi,
		BreakEvenMonths:       breakEven,
		Breakdown:             makeBreakdown(driver, fuel, maintenance),
	}
}

// expectedRiders estimates monthly ridership from fleet hours and service area.
func expectedRiders(p Parameters, c Constants) int {
	areaUnits := 0.0
	if c.AreaUnitKm2 != 0 {
		areaUnits = p.ServiceAreaKm2 / c.AreaUnitKm2
	}
	raw := float64(p.VehicleCount) * p.OperatingHoursPerDay * c.RidersPerVehicleHour *
		float64(p.OperatingDaysPerMonth) * areaUnits
	return int(roundHalfUp(raw))
}

func makeBreakdown(driver, fuel, maintenance float64) Breakdown {
	total := driver + fuel + maintenance
	b := Breakdown{
		Driver:      driver,
		Fuel:        fuel,
		Maintenance: maintenance,
		Total:       total,
	}
	if total > 0 {
		b.DriverShare = int(roundHalfUp(driver / total * 100))
		b.FuelShare = int(roundHalfUp(fuel / total * 100))
		b.MaintenanceShare = int(roundHalfUp(maintenance / total * 100))
	}
	return b
}

// roundHalfUp rounds ties toward +Inf, matching dashboard rounding for
// negative halves as well.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
