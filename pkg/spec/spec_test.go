package spec

import (
	"testing"

	"github.com/pak3430/DDF-Dashboard-sample/pkg/cost"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/scenario"
)

func TestLoadProject(t *testing.T) {
	p, err := LoadProject("../../examples/default-drt")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if p.SpecVersion != "0.1.0" {
		t.Errorf("spec_version = %q, want %q", p.SpecVersion, "0.1.0")
	}
	if p.Name != "default-drt" {
		t.Errorf("name = %q, want %q", p.Name, "default-drt")
	}
	if p.Parameters != cost.DefaultParameters() {
		t.Errorf("parameters = %+v, want reference fleet", p.Parameters)
	}
	if p.Constants.RidersPerVehicleHour != 3.2 {
		t.Errorf("riders_per_vehicle_hour = %v, want 3.2", p.Constants.RidersPerVehicleHour)
	}
	// Not in the file: keeps the default.
	if p.Constants.MonthsPerYear != 12 {
		t.Errorf("months_per_year = %d, want 12", p.Constants.MonthsPerYear)
	}

	// Variants
	if len(p.Variants) != 3 {
		t.Fatalf("variants = %d, want 3", len(p.Variants))
	}
	small := p.Variants[0]
	if small.Name != "small" || small.Parameters.VehicleCount != 5 {
		t.Errorf("variants[0] = %+v, want small with 5 vehicles", small)
	}
	if small.Parameters.DriverDailyWage != 250 {
		t.Errorf("variant should inherit driver_daily_wage, got %v", small.Parameters.DriverDailyWage)
	}
	eff := p.Variants[2]
	if eff.Parameters.VehicleCount != 12 || eff.Parameters.OperatingHoursPerDay != 18 {
		t.Errorf("variants[2] = %+v, want 12 vehicles at 18h", eff.Parameters)
	}

	// Scenarios
	if len(p.Scenarios.Catalog) != 4 {
		t.Errorf("catalog = %d entries, want default 4", len(p.Scenarios.Catalog))
	}
	if len(p.Scenarios.Selected) != 2 {
		t.Errorf("selected = %v, want 2 ids", p.Scenarios.Selected)
	}
	if p.Scenarios.Weights[scenario.Commute] != 40 {
		t.Errorf("commute weight = %v, want 40", p.Scenarios.Weights[scenario.Commute])
	}
	if p.Scenarios.Limits.MaxSelection != 4 {
		t.Errorf("max_selection = %d, want 4", p.Scenarios.Limits.MaxSelection)
	}
	if p.Scenarios.Fleet.VehicleCount != 12 {
		t.Errorf("fleet vehicle_count = %d, want 12", p.Scenarios.Fleet.VehicleCount)
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := LoadProject("/nonexistent/path")
	if err == nil {
		t.Error("expected error for missing project directory")
	}
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	p, err := Parse([]byte("name: bare\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Parameters != cost.DefaultParameters() {
		t.Errorf("parameters = %+v, want defaults", p.Parameters)
	}
	if p.Constants != cost.DefaultConstants() {
		t.Errorf("constants = %+v, want defaults", p.Constants)
	}
	if len(p.Scenarios.Weights) != 4 || p.Scenarios.Weights[scenario.Mixed] != 10 {
		t.Errorf("weights = %v, want default mix", p.Scenarios.Weights)
	}
	if p.Scenarios.Fleet != DefaultFleet() {
		t.Errorf("fleet = %+v, want default", p.Scenarios.Fleet)
	}
	if len(p.Variants) != 0 {
		t.Errorf("variants = %v, want none", p.Variants)
	}
}

func TestParseWeightsReplaceDefaults(t *testing.T) {
	p, err := Parse([]byte("scenarios:\n  weights:\n    elderly: 100\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(p.Scenarios.Weights) != 1 || p.Scenarios.Weights[scenario.Elderly] != 100 {
		t.Errorf("weights = %v, want only elderly=100", p.Scenarios.Weights)
	}
}

func TestParseCustomCatalog(t *testing.T) {
	doc := `
scenarios:
  catalog:
    - id: night
      name: Night owl
      characteristics:
        efficiency_pct: 60
        monthly_cost: 2000
        satisfaction: 3.9
        coverage_pct: 50
      metrics:
        daily_passengers: 300
`
	p, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(p.Scenarios.Catalog) != 1 || p.Scenarios.Catalog[0].ID != "night" {
		t.Fatalf("catalog = %+v, want single night entry", p.Scenarios.Catalog)
	}
	if p.Scenarios.Catalog[0].Metrics.DailyPassengers != 300 {
		t.Errorf("daily_passengers = %v, want 300", p.Scenarios.Catalog[0].Metrics.DailyPassengers)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("parameters: [1, 2")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestParseInvalidVariant(t *testing.T) {
	doc := `
variants:
  - name: broken
    parameters:
      vehicle_count: many
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("expected error for non-numeric variant override")
	}
}
