package scenario

// Characteristics are the blendable performance figures of a scenario.
// MonthlyCost is in man-won; SatisfactionScore is on a 0-5 scale.
type Characteristics struct {
	PeakHours      string `yaml:"peak_hours" json:"peak_hours"`
	TargetUsers    string `yaml:"target_users" json:"target_users"`
	ServicePattern string `yaml:"service_pattern" json:"service_pattern"`

	EfficiencyPercent float64 `yaml:"efficiency_pct" json:"efficiency_pct"`
	MonthlyCost       float64 `yaml:"monthly_cost" json:"monthly_cost"`
	SatisfactionScore float64 `yaml:"satisfaction" json:"satisfaction"`
	CoveragePercent   float64 `yaml:"coverage_pct" json:"coverage_pct"`
}

// Metrics are observed operating figures of a scenario.
type Metrics struct {
	DailyPassengers           float64 `yaml:"daily_passengers" json:"daily_passengers"`
	PeakUtilizationPercent    float64 `yaml:"peak_utilization_pct" json:"peak_utilization_pct"`
	OffPeakUtilizationPercent float64 `yaml:"off_peak_utilization_pct" json:"off_peak_utilization_pct"`
	AverageDistanceKm         float64 `yaml:"average_distance_km" json:"average_distance_km"`
	AverageWaitTimeMinutes    float64 `yaml:"average_wait_time_min" json:"average_wait_time_min"`
}

// Definition is one operating-pattern archetype in the catalog.
type Definition struct {
	ID              string          `yaml:"id" json:"id"`
	Name            string          `yaml:"name" json:"name"`
	Description     string          `yaml:"description" json:"description"`
	Characteristics Characteristics `yaml:"characteristics" json:"characteristics"`
	Metrics         Metrics         `yaml:"metrics" json:"metrics"`
}

// Reference scenario IDs.
const (
	Commute = "commute"
	Tourism = "tourism"
	Elderly = "elderly"
	Mixed   = "mixed"
)

// Limits are the presentation-layer caps applied by validation.
// Select and Blend never enforce them.
type Limits struct {
	MaxSelection int     `yaml:"max_selection" json:"max_selection"`
	MaxWeight    float64 `yaml:"max_weight" json:"max_weight"`
	TargetWeight float64 `yaml:"target_weight" json:"target_weight"`
}

// DefaultLimits returns the dashboard caps: four scenarios side by side,
// weights from 0 to 100 that should total 100.
func DefaultLimits() Limits {
	return Limits{
		MaxSelection: 4,
		MaxWeight:    100,
		TargetWeight: 100,
	}
}

// DefaultCatalog returns the four reference scenarios.
func DefaultCatalog() []Definition {
	return []Definition{
		{
			ID:          Commute,
			Name:        "Commute",
			Description: "Concentrated service during commuter peaks",
			Characteristics: Characteristics{
				PeakHours:         "07-09, 18-20",
				TargetUsers:       "workers, students",
				ServicePattern:    "high frequency, short trips",
				EfficiencyPercent: 85,
				MonthlyCost:       3200,
				SatisfactionScore: 4.2,
				CoveragePercent:   78,
			},
			Metrics: Metrics{
				DailyPassengers:           1250,
				PeakUtilizationPercent:    95,
				OffPeakUtilizationPercent: 35,
				AverageDistanceKm:         3.2,
				AverageWaitTimeMinutes:    6.5,
			},
		},
		{
			ID:          Tourism,
			Name:        "Tourism",
			Description: "Links to attractions and leisure activity",
			Characteristics: Characteristics{
				PeakHours:         "10-16, weekends",
				TargetUsers:       "tourists, leisure riders",
				ServicePattern:    "medium frequency, medium trips",
				EfficiencyPercent: 72,
				MonthlyCost:       2800,
				SatisfactionScore: 4.5,
				CoveragePercent:   85,
			},
			Metrics: Metrics{
				DailyPassengers:           980,
				PeakUtilizationPercent:    88,
				OffPeakUtilizationPercent: 45,
				AverageDistanceKm:         5.8,
				AverageWaitTimeMinutes:    8.2,
			},
		},
		{
			ID:          Elderly,
			Name:        "Mobility-impaired",
			Description: "Tailored service for seniors and riders with reduced mobility",
			Characteristics: Characteristics{
				PeakHours:         "09-11, 14-16",
				TargetUsers:       "seniors, riders with disabilities",
				ServicePattern:    "low frequency, high service",
				EfficiencyPercent: 68,
				MonthlyCost:       3800,
				SatisfactionScore: 4.7,
				CoveragePercent:   92,
			},
			Metrics: Metrics{
				DailyPassengers:           650,
				PeakUtilizationPercent:    75,
				OffPeakUtilizationPercent: 55,
				AverageDistanceKm:         4.1,
				AverageWaitTimeMinutes:    5.8,
			},
		},
		{
			ID:          Mixed,
			Name:        "Mixed",
			Description: "Balanced operation across demand patterns",
			Characteristics: Characteristics{
				PeakHours:         "multiple peaks",
				TargetUsers:       "all ages",
				ServicePattern:    "adaptive",
				EfficiencyPercent: 78,
				MonthlyCost:       3400,
				SatisfactionScore: 4.3,
				CoveragePercent:   88,
			},
			Metrics: Metrics{
				DailyPassengers:           1100,
				PeakUtilizationPercent:    82,
				OffPeakUtilizationPercent: 48,
				AverageDistanceKm:         4.2,
				AverageWaitTimeMinutes:    7.1,
			},
		},
	}
}

// ByID returns the catalog entry with the given ID, or nil if not found.
func ByID(catalog []Definition, id string) *Definition {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// Select returns the catalog entries whose ID is in ids, in catalog order.
// Unknown IDs are ignored and nothing is truncated.
func Select(catalog []Definition, ids []string) []Definition {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	selected := make([]Definition, 0, len(ids))
	for _, d := range catalog {
		if want[d.ID] {
			selected = append(selected, d)
		}
	}
	return selected
}
