package spec

import (
	"github.com/pak3430/DDF-Dashboard-sample/pkg/cost"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/scenario"
	"gopkg.in/yaml.v3"
)

// Project is the top-level planning document for one DRT service area.
type Project struct {
	SpecVersion string          `yaml:"spec_version" json:"spec_version"`
	Name        string          `yaml:"name" json:"name"`
	Parameters  cost.Parameters `yaml:"parameters" json:"parameters"`
	Constants   cost.Constants  `yaml:"constants" json:"constants"`
	Scenarios   ScenarioSet     `yaml:"scenarios" json:"scenarios"`

	RawVariants []VariantDef   `yaml:"variants" json:"-"`
	Variants    []cost.Variant `yaml:"-" json:"variants"`
}

// VariantDef is a named set of overrides on top of Project.Parameters.
type VariantDef struct {
	Name      string    `yaml:"name"`
	Overrides yaml.Node `yaml:"parameters"`
}

// ScenarioSet configures scenario comparison and hybrid blending.
type ScenarioSet struct {
	Catalog   []scenario.Definition `yaml:"catalog" json:"catalog"`
	Selected  []string              `yaml:"selected" json:"selected"`
	Weights   scenario.Weights      `yaml:"weights" json:"weights"`
	Normalize bool                  `yaml:"normalize" json:"normalize"`
	Limits    scenario.Limits       `yaml:"limits" json:"limits"`
	Fleet     Fleet                 `yaml:"fleet" json:"fleet"`
}

// Fleet is the operating fleet the hybrid plan is evaluated against.
type Fleet struct {
	VehicleCount         int     `yaml:"vehicle_count" json:"vehicle_count"`
	OperatingHoursPerDay float64 `yaml:"operating_hours_per_day" json:"operating_hours_per_day"`
}

// DefaultFleet matches the hybrid builder's starting fleet.
func DefaultFleet() Fleet {
	return Fleet{VehicleCount: 12, OperatingHoursPerDay: 16}
}

// DefaultSelection is the comparison set shown before the user picks one.
func DefaultSelection() []string {
	return []string{scenario.Commute, scenario.Tourism}
}
