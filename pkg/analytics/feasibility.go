package analytics

import (
	"fmt"

	"github.com/pak3430/DDF-Dashboard-sample/pkg/cost"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/validation"
)

// Feasibility ratings.
const (
	ReturnGood = "good"
	ReturnFair = "fair"

	PaybackShort = "short-term"
	PaybackLong  = "long-term"

	BurdenModerate = "moderate"
	BurdenHigh     = "high"

	VerdictProceed    = "proceed now"
	VerdictPlan       = "plan in detail before proceeding"
	VerdictReconsider = "reconsider investment terms"
)

const (
	goodReturnROIPercent = 10
	shortPaybackMonths   = 24
	moderateAnnualCost   = 50000
	jobsPerVehicle       = 2

	proceedROIPercent    = 15
	proceedPaybackMonths = 18
	planROIPercent       = 5
	planPaybackMonths    = 36
)

// Feasibility is the investment assessment shown alongside the ROI outlook.
type Feasibility struct {
	NPVPositive  bool   `json:"npv_positive"`
	ReturnRating string `json:"return_rating"`
	Payback      string `json:"payback"`
	FiscalBurden string `json:"fiscal_burden"`
	JobsCreated  int    `json:"jobs_created"`
	Verdict      string `json:"verdict"`
}

// Assess rates a budget for investment feasibility. NPV is judged on the
// profit of the last projected year; no projection counts as not positive.
func Assess(p cost.Parameters, r cost.Result, yearly []cost.YearPoint) Feasibility {
	f := Feasibility{
		ReturnRating: ReturnRating(r.ROIPercent),
		Payback:      PaybackRating(r.BreakEvenMonths),
		FiscalBurden: FiscalBurden(r.AnnualCost),
		JobsCreated:  p.VehicleCount * jobsPerVehicle,
		Verdict:      Verdict(r.ROIPercent, r.BreakEvenMonths),
	}
	if n := len(yearly); n > 0 {
		f.NPVPositive = yearly[n-1].Profit > 0
	}
	return f
}

// ReturnRating rates the ROI percent.
func ReturnRating(roi float64) string {
	if roi > goodReturnROIPercent {
		return ReturnGood
	}
	return ReturnFair
}

// PaybackRating rates the break-even horizon. Zero means break-even is never
// reached, which is long-term.
func PaybackRating(breakEvenMonths int) string {
	if breakEvenMonths > 0 && breakEvenMonths < shortPaybackMonths {
		return PaybackShort
	}
	return PaybackLong
}

// FiscalBurden rates the annual operating cost.
func FiscalBurden(annualCost float64) string {
	if annualCost < moderateAnnualCost {
		return BurdenModerate
	}
	return BurdenHigh
}

// Verdict combines ROI and break-even into an overall recommendation.
func Verdict(roi float64, breakEvenMonths int) string {
	if breakEvenMonths <= 0 {
		return VerdictReconsider
	}
	switch {
	case roi > proceedROIPercent && breakEvenMonths < proceedPaybackMonths:
		return VerdictProceed
	case roi > planROIPercent && breakEvenMonths < planPaybackMonths:
		return VerdictPlan
	default:
		return VerdictReconsider
	}
}

func validateFeasibility(res *Resolved, report *validation.Report) {
	f := res.Feasibility
	result := validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("investment feasibility: %s (return %s, payback %s, fiscal burden %s)", f.Verdict, f.ReturnRating, f.Payback, f.FiscalBurden),
		Path:        "parameters",
		ActualValue: res.Budget.ROIPercent,
		Expected:    fmt.Sprintf("ROI > %d%% and break-even < %d months", planROIPercent, planPaybackMonths),
	}
	if f.Verdict != VerdictReconsider {
		report.AddInfo(result)
		return
	}
	result.Suggestions = []string{"Improve operating efficiency or revisit fares before committing funds"}
	report.AddWarning(result)
}
