package validation

import "testing"

func TestNewReport(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("empty report should be valid")
	}
	if r.Summary != "0 errors, 0 warnings, 0 info" {
		t.Errorf("summary = %q, want %q", r.Summary, "0 errors, 0 warnings, 0 info")
	}
}

func TestFleetErrorInvalidatesReport(t *testing.T) {
	r := NewReport()
	r.AddError(Result{
		Level:       LevelSchema,
		Message:     "vehicle_count must be greater than 0",
		Path:        "parameters.vehicle_count",
		ActualValue: 0,
	})

	if r.Valid {
		t.Error("report with a fleet error should be invalid")
	}
	if len(r.Errors) != 1 || r.Errors[0].Severity != SeverityError {
		t.Fatalf("errors = %v, want one error-severity finding", r.Errors)
	}
	if r.Summary != "1 error, 0 warnings, 0 info" {
		t.Errorf("summary = %q, want %q", r.Summary, "1 error, 0 warnings, 0 info")
	}
}

func TestUnbalancedWeightsWarnOnly(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelScenario, Message: "hybrid is not balanced", Path: "scenarios.weights", ActualValue: 140.0})
	r.AddInfo(Result{Level: LevelAnalytical, Message: "fleet of 10 vehicles: expand service", Path: "parameters.vehicle_count"})

	if !r.Valid {
		t.Error("warnings and info should leave the report valid")
	}
	if r.Warnings[0].Severity != SeverityWarning {
		t.Errorf("warning severity = %q, want %q", r.Warnings[0].Severity, SeverityWarning)
	}
	if r.Info[0].Severity != SeverityInfo {
		t.Errorf("info severity = %q, want %q", r.Info[0].Severity, SeverityInfo)
	}
}

func TestMergeSchemaAndAnalytical(t *testing.T) {
	schema := NewReport()
	schema.AddError(Result{Level: LevelSchema, Message: "months_per_year must be greater than 0", Path: "constants.months_per_year"})
	schema.AddWarning(Result{Level: LevelScenario, Message: "unknown scenario \"night\"", Path: "scenarios.selected"})

	found := NewReport()
	found.AddWarning(Result{Level: LevelAnalytical, Message: "break-even not reached", Path: "parameters"})
	found.AddInfo(Result{Level: LevelAnalytical, Message: "cost per rider 15.75 rates as very efficient", Path: "parameters"})

	schema.Merge(found)

	if schema.Valid {
		t.Error("merged report should stay invalid")
	}
	if len(schema.Errors) != 1 || len(schema.Warnings) != 2 || len(schema.Info) != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/2/1", len(schema.Errors), len(schema.Warnings), len(schema.Info))
	}
	if schema.Summary != "1 error, 2 warnings, 1 info" {
		t.Errorf("summary = %q, want %q", schema.Summary, "1 error, 2 warnings, 1 info")
	}
}

func TestMergeKeepsValidity(t *testing.T) {
	r := NewReport()
	other := NewReport()
	other.AddInfo(Result{Level: LevelAnalytical, Message: "investment breaks even after 1 months", Path: "parameters"})

	r.Merge(other)
	r.Merge(nil)

	if !r.Valid {
		t.Error("merging valid reports should stay valid")
	}
	if len(r.Info) != 1 {
		t.Errorf("info = %d, want 1", len(r.Info))
	}
}

func TestMergeInvalidIntoValid(t *testing.T) {
	r := NewReport()
	other := NewReport()
	other.AddError(Result{Level: LevelSchema, Message: "weight for commute exceeds 100", Path: "scenarios.weights.commute"})

	r.Merge(other)
	if r.Valid {
		t.Error("merging an invalid report should invalidate the target")
	}
}
