package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/pak3430/DDF-Dashboard-sample/pkg/analytics"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/cost"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/scenario"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/spec"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e, true)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, wr := range r.Warnings {
			printResult(w, wr, true)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			printResult(w, i, false)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, res validation.Result, detail bool) {
	fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
	if !detail {
		return
	}
	if res.Path != "" {
		fmt.Fprintf(w, "    -> %s = %v\n", res.Path, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printBudget(w io.Writer, p *spec.Project, res *analytics.Resolved) {
	b := res.Budget

	fmt.Fprintf(w, "Operating Budget: %s\n", p.Name)
	fmt.Fprintln(w, "=================")
	fmt.Fprintln(w)

	printBreakdownTable(w, b.Breakdown)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, "-------")
	fmt.Fprintf(w, "  Monthly cost:           %s\n", formatAmount(b.MonthlyCost))
	fmt.Fprintf(w, "  Annual cost:            %s\n", formatAmount(b.AnnualCost))
	fmt.Fprintf(w, "  Expected riders/month:  %s\n", formatCount(b.ExpectedMonthlyRiders))
	fmt.Fprintf(w, "  Cost per rider:         %.2f\n", b.CostPerRider)
	fmt.Fprintf(w, "  Monthly revenue:        %s\n", formatAmount(b.MonthlyRevenue))
	fmt.Fprintf(w, "  ROI:                    %.1f%%\n", b.ROIPercent)
	if b.BreakEvenMonths > 0 {
		fmt.Fprintf(w, "  Break-even:             %d months\n", b.BreakEvenMonths)
	} else {
		fmt.Fprintln(w, "  Break-even:             not reached")
	}

	op := res.Operating
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Per Vehicle")
	fmt.Fprintln(w, "-----------")
	fmt.Fprintf(w, "  Riders/month:           %d\n", op.MonthlyRidersPerVehicle)
	fmt.Fprintf(w, "  Cost/month:             %s\n", formatCount(op.MonthlyCostPerVehicle))
	fmt.Fprintf(w, "  Riders/day:             %.1f\n", op.DailyRidersPerVehicle)
	fmt.Fprintf(w, "  Riders/operating hour:  %.1f\n", op.HourlyRidersPerVehicle)
	fmt.Fprintf(w, "  Efficiency:             %s\n", op.EfficiencyRating)
	fmt.Fprintf(w, "  Fleet size:             %s\n", op.FleetRecommendation)

	fmt.Fprintln(w)
	printYearlyTable(w, res.Yearly)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Annual Social Benefits")
	fmt.Fprintln(w, "----------------------")
	fmt.Fprintf(w, "  Commute savings:        %s\n", formatAmount(res.Benefits.CommuteSavings))
	fmt.Fprintf(w, "  Time savings:           %s\n", formatAmount(res.Benefits.TimeSavings))
	fmt.Fprintf(w, "  Emission savings:       %s\n", formatAmount(res.Benefits.EmissionSavings))
	fmt.Fprintf(w, "  Job creation:           %s\n", formatAmount(res.Benefits.JobCreation))
	fmt.Fprintf(w, "  Total:                  %s\n", formatAmount(res.Benefits.Total))

	fmt.Fprintln(w)
	printFeasibility(w, res.Feasibility)
}

func printFeasibility(w io.Writer, f analytics.Feasibility) {
	npv := "negative"
	if f.NPVPositive {
		npv = "positive"
	}

	fmt.Fprintln(w, "Investment Feasibility")
	fmt.Fprintln(w, "----------------------")
	fmt.Fprintf(w, "  NPV:                    %s\n", npv)
	fmt.Fprintf(w, "  Return:                 %s\n", f.ReturnRating)
	fmt.Fprintf(w, "  Payback:                %s\n", f.Payback)
	fmt.Fprintf(w, "  Fiscal burden:          %s\n", f.FiscalBurden)
	fmt.Fprintf(w, "  Jobs created:           %d\n", f.JobsCreated)
	fmt.Fprintf(w, "  Verdict:                %s\n", f.Verdict)
}

func printBreakdownTable(w io.Writer, b cost.Breakdown) {
	fmt.Fprintf(w, "%-14s %14s %7s\n", "Category", "Monthly", "Share")
	fmt.Fprintf(w, "%-14s %14s %7s\n", "--------------", "--------------", "-------")

	rows := []struct {
		label  string
		amount float64
		share  int
	}{
		{"Drivers", b.Driver, b.DriverShare},
		{"Fuel", b.Fuel, b.FuelShare},
		{"Maintenance", b.Maintenance, b.MaintenanceShare},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-14s %14s %6d%%\n", row.label, formatAmount(row.amount), row.share)
	}
	fmt.Fprintf(w, "%-14s %14s\n", "TOTAL", formatAmount(b.Total))
}

func printYearlyTable(w io.Writer, years []cost.YearPoint) {
	fmt.Fprintf(w, "%-6s %14s %14s %14s %8s\n", "Year", "Investment", "Revenue", "Profit", "ROI")
	fmt.Fprintf(w, "%-6s %14s %14s %14s %8s\n", "------", "--------------", "--------------", "--------------", "--------")
	for _, y := range years {
		fmt.Fprintf(w, "%-6d %14s %14s %14s %7.1f%%\n",
			y.Year, formatAmount(y.Investment), formatAmount(y.Revenue), formatAmount(y.Profit), y.ROIPercent)
	}
}

func printVariants(w io.Writer, c *cost.Comparison) {
	if c == nil || len(c.Variants) == 0 {
		fmt.Fprintln(w, "No variants to compare.")
		return
	}

	fmt.Fprintf(w, "%-16s %8s %14s %10s %8s %10s\n", "Variant", "Vehicles", "Monthly cost", "Riders", "ROI", "Per car")
	fmt.Fprintf(w, "%-16s %8s %14s %10s %8s %10s\n", "----------------", "--------", "--------------", "----------", "--------", "----------")
	for _, v := range c.Variants {
		fmt.Fprintf(w, "%-16s %8d %14s %10s %7.1f%% %10.0f\n",
			v.Name, v.Parameters.VehicleCount, formatAmount(v.Result.MonthlyCost),
			formatCount(v.Result.ExpectedMonthlyRiders), v.Result.ROIPercent, v.RidersPerCar)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best ROI:      %s\n", c.BestROI)
	fmt.Fprintf(w, "Most riders:   %s\n", c.MostRiders)
}

func printScenarios(w io.Writer, selected []scenario.Definition, h scenario.Highlights) {
	if h.Empty {
		fmt.Fprintln(w, "No scenarios selected.")
		return
	}

	fmt.Fprintf(w, "%-10s %10s %12s %12s %10s %10s\n", "Scenario", "Efficiency", "Monthly cost", "Satisfaction", "Coverage", "Daily pax")
	fmt.Fprintf(w, "%-10s %10s %12s %12s %10s %10s\n", "----------", "----------", "------------", "------------", "----------", "----------")
	for _, d := range selected {
		c := d.Characteristics
		fmt.Fprintf(w, "%-10s %9.0f%% %12s %12.1f %9.0f%% %10.0f\n",
			d.ID, c.EfficiencyPercent, formatAmount(c.MonthlyCost), c.SatisfactionScore, c.CoveragePercent, d.Metrics.DailyPassengers)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Highest efficiency:    %s (%.0f%%)\n", h.HighestEfficiency.Name, h.HighestEfficiency.Value)
	fmt.Fprintf(w, "Lowest cost:           %s (%s)\n", h.LowestCost.Name, formatAmount(h.LowestCost.Value))
	fmt.Fprintf(w, "Highest satisfaction:  %s (%.1f)\n", h.HighestSatisfaction.Name, h.HighestSatisfaction.Value)
	fmt.Fprintf(w, "Widest coverage:       %s (%.0f%%)\n", h.WidestCoverage.Name, h.WidestCoverage.Value)
}

func printHybrid(w io.Writer, catalog []scenario.Definition, weights scenario.Weights, h scenario.Hybrid, fleet analytics.HybridFigures) {
	ids := make([]string, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintln(w, "Weights")
	fmt.Fprintln(w, "-------")
	for _, id := range ids {
		marker := ""
		if scenario.ByID(catalog, id) == nil {
			marker = " (unknown, ignored)"
		}
		fmt.Fprintf(w, "  %-10s %6.1f%%%s\n", id, weights[id], marker)
	}
	fmt.Fprintf(w, "  %-10s %6.1f%%\n", "total", h.TotalWeight)

	fmt.Fprintln(w)
	title := "Hybrid Plan"
	if h.Normalized {
		title += " (normalized)"
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "-----------")
	fmt.Fprintf(w, "  Efficiency:             %d%%\n", h.EfficiencyPercent)
	fmt.Fprintf(w, "  Monthly cost:           %s\n", formatCount(h.MonthlyCost))
	fmt.Fprintf(w, "  Satisfaction:           %.1f/5.0\n", h.SatisfactionScore)
	fmt.Fprintf(w, "  Coverage:               %d%%\n", h.CoveragePercent)
	fmt.Fprintf(w, "  Daily passengers:       %s\n", formatCount(h.DailyPassengers))
	fmt.Fprintf(w, "  Per vehicle (%d cars):  %d\n", fleet.VehicleCount, fleet.DailyPassengersPerVehicle)

	if !h.Balanced && !h.Normalized {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Warning: weights total %.1f%%, not 100%%; figures are scaled accordingly.\n", h.TotalWeight)
	}
}

func formatAmount(v float64) string {
	if v >= 1_000_000_000 || v <= -1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 || v <= -1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 10_000 || v <= -10_000 {
		return fmt.Sprintf("%.1fK", v/1_000)
	}
	return fmt.Sprintf("%.0f", v)
}

func formatCount(n int) string {
	return formatAmount(float64(n))
}
