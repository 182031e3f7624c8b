package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pak3430/DDF-Dashboard-sample/pkg/cost"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/scenario"
	"gopkg.in/yaml.v3"
)

// ProjectFile is the file name LoadProject looks for.
const ProjectFile = "drt.yaml"

// Load reads a DRT project from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return Parse(data)
}

// LoadProject loads a DRT project from a project directory.
// It looks for drt.yaml in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}

// Parse decodes a project document. Sections left out of the document take
// their reference values.
func Parse(data []byte) (*Project, error) {
	p := &Project{
		Parameters: cost.DefaultParameters(),
		Constants:  cost.DefaultConstants(),
		Scenarios: ScenarioSet{
			Limits: scenario.DefaultLimits(),
			Fleet:  DefaultFleet(),
		},
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}

	if len(p.Scenarios.Catalog) == 0 {
		p.Scenarios.Catalog = scenario.DefaultCatalog()
	}
	if p.Scenarios.Selected == nil {
		p.Scenarios.Selected = DefaultSelection()
	}
	if p.Scenarios.Weights == nil {
		p.Scenarios.Weights = scenario.DefaultWeights()
	}

	variants, err := resolveVariants(p.Parameters, p.RawVariants)
	if err != nil {
		return nil, err
	}
	p.Variants = variants

	return p, nil
}

// resolveVariants applies each variant's overrides to a copy of base.
func resolveVariants(base cost.Parameters, defs []VariantDef) ([]cost.Variant, error) {
	variants := make([]cost.Variant, 0, len(defs))
	for i, def := range defs {
		params := base
		if !def.Overrides.IsZero() {
			if err := def.Overrides.Decode(&params); err != nil {
				return nil, fmt.Errorf("parsing variants[%d] (%s) parameters: %w", i, def.Name, err)
			}
		}
		variants = append(variants, cost.Variant{Name: def.Name, Parameters: params})
	}
	return variants, nil
}
