package cost

import "fmt"

// MonthPoint is one month of the annual outlook.
type MonthPoint struct {
	Month   int     `json:"month"`
	Cost    float64 `json:"cost"`
	Riders  int     `json:"riders"`
	Revenue float64 `json:"revenue"`
}

// YearPoint is one year of the multi-year ROI projection.
type YearPoint struct {
	Year       int     `json:"year"`
	Investment float64 `json:"investment"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
	ROIPercent float64 `json:"roi_percent"`
}

// Benefits estimates the annual social value of the service.
type Benefits struct {
	CommuteSavings  float64 `json:"commute_savings"`
	TimeSavings     float64 `json:"time_savings"`
	EmissionSavings float64 `json:"emission_savings"`
	JobCreation     float64 `json:"job_creation"`
	Total           float64 `json:"total"`
}

// MonthlyProjection holds cost, ridership and revenue constant over a year.
// A non-positive MonthsPerYear yields no points.
func MonthlyProjection(r Result, c Constants) []MonthPoint {
	if c.MonthsPerYear <= 0 {
		return nil
	}
	months := make([]MonthPoint, 0, c.MonthsPerYear)
	for m := 1; m <= c.MonthsPerYear; m++ {
		months = append(months, MonthPoint{
			Month:   m,
			Cost:    r.MonthlyCost,
			Riders:  r.ExpectedMonthlyRiders,
			Revenue: r.MonthlyRevenue,
		})
	}
	return months
}

// YearlyProjection projects revenue growth against cost inflation.
// Both rates compound linearly: year i scales by 1 + i*rate.
func YearlyProjection(r Result, c Constants, years int) []YearPoint {
	if years <= 0 {
		return nil
	}
	annualRevenue := r.MonthlyRevenue * float64(c.MonthsPerYear)

	points := make([]YearPoint, 0, years)
	for i := 0; i < years; i++ {
		growth := 1 + float64(i)*c.GrowthRate
		inflation := 1 + float64(i)*c.InflationRate

		investment := r.AnnualCost * inflation
		revenue := annualRevenue * growth
		profit := revenue - investment

		roi := 0.0
		if investment > 0 {
			roi = profit / investment * 100
		}

		points = append(points, YearPoint{
			Year:       c.ProjectionStartYear + i,
			Investment: investment,
			Revenue:    revenue,
			Profit:     profit,
			ROIPercent: roi,
		})
	}
	return points
}

// SocialBenefits estimates the annual non-fare value of the service.
func SocialBenefits(p Parameters, r Result, c Constants) Benefits {
	annualRiders := float64(r.ExpectedMonthlyRiders) * float64(c.MonthsPerYear)

	b := Benefits{
		CommuteSavings:  annualRiders * c.CommuteSavingPerRider,
		TimeSavings:     annualRiders * c.TimeSavingPerRider,
		EmissionSavings: annualRiders * c.EmissionSavingPerRider,
		JobCreation:     float64(p.VehicleCount) * c.JobsBenefitPerVehicle,
	}
	b.Total = b.CommuteSavings + b.TimeSavings + b.EmissionSavings + b.JobCreation
	return b
}

// Variant is a named parameter set compared side by side.
type Variant struct {
	Name       string     `yaml:"name" json:"name"`
	Parameters Parameters `yaml:"parameters" json:"parameters"`
}

// VariantResult pairs a variant with its computed budget.
type VariantResult struct {
	Name         string     `json:"name"`
	Parameters   Parameters `json:"parameters"`
	Result       Result     `json:"result"`
	RidersPerCar float64    `json:"riders_per_vehicle"`
}

// Comparison ranks budget variants.
type Comparison struct {
	Variants   []VariantResult `json:"variants"`
	BestROI    string          `json:"best_roi"`
	MostRiders string          `json:"most_riders"`
}

// CompareVariants computes every variant and picks the best ROI and the
// highest ridership. The first variant wins ties.
func CompareVariants(vs []Variant, c Constants) Comparison {
	cmp := Comparison{Variants: make([]VariantResult, 0, len(vs))}
	if len(vs) == 0 {
		return cmp
	}

	bestROI, mostRiders := 0, 0
	for i, v := range vs {
		name := v.Name
		if name == "" {
			name = fmt.Sprintf("variant %d", i+1)
		}
		res := Compute(v.Parameters, c)

		perCar := 0.0
		if v.Parameters.VehicleCount > 0 {
			perCar = float64(res.ExpectedMonthlyRiders) / float64(v.Parameters.VehicleCount)
		}

		cmp.Variants = append(cmp.Variants, VariantResult{
			Name:         name,
			Parameters:   v.Parameters,
			Result:       res,
			RidersPerCar: perCar,
		})

		if res.ROIPercent > cmp.Variants[bestROI].Result.ROIPercent {
			bestROI = i
		}
		if res.ExpectedMonthlyRiders > cmp.Variants[mostRiders].Result.ExpectedMonthlyRiders {
			mostRiders = i
		}
	}

	cmp.BestROI = cmp.Variants[bestROI].Name
	cmp.MostRiders = cmp.Variants[mostRiders].Name
	return cmp
}
