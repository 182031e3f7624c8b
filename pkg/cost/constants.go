package cost

// Baseline values for the budget simulator.
// Costs are expressed in man-won (10,000 KRW) unless noted.
const (
	DefaultRidersPerVehicleHour = 3.2    // riders per vehicle-hour per area unit
	DefaultAreaUnitKm2          = 10.0   // km² of service area per area unit
	DefaultAverageFare          = 2500.0 // KRW per ride
	DefaultFareToCostUnit       = 1.0    // reference behavior: fare revenue is not rescaled
	DefaultMonthsPerYear        = 12

	DefaultGrowthRate          = 0.05 // annual ridership growth, linear
	DefaultInflationRate       = 0.03 // annual cost inflation, linear
	DefaultProjectionStartYear = 2024

	DefaultCommuteSavingPerRider  = 1.2   // per monthly rider, annualized
	DefaultTimeSavingPerRider     = 0.8   // per monthly rider, annualized
	DefaultEmissionSavingPerRider = 0.5   // per monthly rider, annualized
	DefaultJobsBenefitPerVehicle  = 300.0 // man-won per vehicle

	// WonToManWon converts a KRW fare into the man-won cost unit.
	WonToManWon = 0.0001
)

// Constants are the tunable inputs of the cost model. The zero value is not
// useful; start from DefaultConstants and override fields.
type Constants struct {
	RidersPerVehicleHour float64 `yaml:"riders_per_vehicle_hour" json:"riders_per_vehicle_hour"`
	AreaUnitKm2          float64 `yaml:"area_unit_km2" json:"area_unit_km2"`
	AverageFare          float64 `yaml:"average_fare" json:"average_fare"`
	FareToCostUnit       float64 `yaml:"fare_to_cost_unit" json:"fare_to_cost_unit"`
	MonthsPerYear        int     `yaml:"months_per_year" json:"months_per_year"`

	GrowthRate          float64 `yaml:"growth_rate" json:"growth_rate"`
	InflationRate       float64 `yaml:"inflation_rate" json:"inflation_rate"`
	ProjectionStartYear int     `yaml:"projection_start_year" json:"projection_start_year"`

	CommuteSavingPerRider  float64 `yaml:"commute_saving_per_rider" json:"commute_saving_per_rider"`
	TimeSavingPerRider     float64 `yaml:"time_saving_per_rider" json:"time_saving_per_rider"`
	EmissionSavingPerRider float64 `yaml:"emission_saving_per_rider" json:"emission_saving_per_rider"`
	JobsBenefitPerVehicle  float64 `yaml:"jobs_benefit_per_vehicle" json:"jobs_benefit_per_vehicle"`
}

// DefaultConstants returns the reference constants.
func DefaultConstants() Constants {
	return Constants{
		RidersPerVehicleHour: DefaultRidersPerVehicleHour,
		AreaUnitKm2:          DefaultAreaUnitKm2,
		AverageFare:          DefaultAverageFare,
		FareToCostUnit:       DefaultFareToCostUnit,
		MonthsPerYear:        DefaultMonthsPerYear,

		GrowthRate:          DefaultGrowthRate,
		InflationRate:       DefaultInflationRate,
		ProjectionStartYear: DefaultProjectionStartYear,

		CommuteSavingPerRider:  DefaultCommuteSavingPerRider,
		TimeSavingPerRider:     DefaultTimeSavingPerRider,
		EmissionSavingPerRider: DefaultEmissionSavingPerRider,
		JobsBenefitPerVehicle:  DefaultJobsBenefitPerVehicle,
	}
}
