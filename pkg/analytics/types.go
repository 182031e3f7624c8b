package analytics

// Rating buckets for cost per rider.
const (
	RatingVeryEfficient    = "very efficient"
	RatingEfficient        = "efficient"
	RatingNeedsImprovement = "needs improvement"
)

// Fleet-size recommendations.
const (
	FleetExpand   = "expand service"
	FleetOptimize = "optimize operations"
	FleetAdequate = "adequate"
)

const (
	veryEfficientCostPerRider = 3000
	efficientCostPerRider     = 5000
	smallFleet                = 15
	largeFleet                = 30
)

// OperatingFigures are per-vehicle figures derived from a budget result.
// Each is 0 when its divisor is 0.
type OperatingFigures struct {
	MonthlyRidersPerVehicle int     `json:"monthly_riders_per_vehicle"`
	MonthlyCostPerVehicle   int     `json:"monthly_cost_per_vehicle"`
	DailyRidersPerVehicle   float64 `json:"daily_riders_per_vehicle"`
	HourlyRidersPerVehicle  float64 `json:"hourly_riders_per_vehicle"`
	EfficiencyRating        string  `json:"efficiency_rating"`
	FleetRecommendation     string  `json:"fleet_recommendation"`
}

// HybridFigures relate a blended plan to the fleet that would run it.
type HybridFigures struct {
	VehicleCount              int     `json:"vehicle_count"`
	OperatingHoursPerDay      float64 `json:"operating_hours_per_day"`
	DailyPassengersPerVehicle int     `json:"daily_passengers_per_vehicle"`
}
