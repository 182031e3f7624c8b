package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pak3430/DDF-Dashboard-sample/internal/config"
	"github.com/pak3430/DDF-Dashboard-sample/internal/logging"
	"github.com/pak3430/DDF-Dashboard-sample/internal/server"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/analytics"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/scenario"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/spec"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/validation"
)

// loadAndValidate loads the project and runs schema validation.
func loadAndValidate(projectPath string) (*spec.Project, *validation.Report, error) {
	project, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	return project, validation.ValidateProject(project), nil
}

// loadValid loads the project and refuses to continue when it has errors.
func loadValid(projectPath string) (*spec.Project, error) {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return nil, err
	}
	if !report.Valid {
		printValidationReport(os.Stdout, report)
		return nil, fmt.Errorf("project has validation errors; fix before computing figures")
	}
	return project, nil
}

func runValidate(projectPath string) error {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	_, analyticsReport := analytics.Resolve(project)
	report.Merge(analyticsReport)

	printValidationReport(os.Stdout, report)

	if !report.Valid {
		return fmt.Errorf("project is invalid")
	}
	return nil
}

func runBudget(projectPath string, asJSON bool) error {
	project, err := loadValid(projectPath)
	if err != nil {
		return err
	}

	res, report := analytics.Resolve(project)
	if asJSON {
		return writeJSON(os.Stdout, map[string]any{
			"parameters":         project.Parameters,
			"budget":             res.Budget,
			"operating":          res.Operating,
			"monthly_projection": res.Monthly,
			"yearly_projection":  res.Yearly,
			"social_benefits":    res.Benefits,
			"feasibility":        res.Feasibility,
			"validation":         report,
		})
	}

	printBudget(os.Stdout, project, res)

	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(os.Stdout, report)
	}
	return nil
}

func runCompare(projectPath string) error {
	project, err := loadValid(projectPath)
	if err != nil {
		return err
	}
	if len(project.Variants) == 0 {
		fmt.Println("No variants defined in project.")
		return nil
	}

	res, _ := analytics.Resolve(project)
	printVariants(os.Stdout, res.Variants)
	return nil
}

func runScenarios(projectPath string) error {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	selected := scenario.Select(project.Scenarios.Catalog, project.Scenarios.Selected)
	printScenarios(os.Stdout, selected, scenario.Highlight(selected))

	if len(report.Warnings) > 0 || !report.Valid {
		fmt.Println()
		printValidationReport(os.Stdout, report)
	}
	return nil
}

// runBlend blends the project's weights. normalizeSet reports whether the
// --normalize flag was given; otherwise the project's setting applies.
func runBlend(projectPath string, normalize, normalizeSet, asJSON bool) error {
	project, err := loadValid(projectPath)
	if err != nil {
		return err
	}
	if normalizeSet {
		project.Scenarios.Normalize = normalize
	}

	res, report := analytics.Resolve(project)
	if asJSON {
		return writeJSON(os.Stdout, map[string]any{
			"weights":    project.Scenarios.Weights,
			"hybrid":     res.Hybrid,
			"fleet":      res.HybridFleet,
			"validation": report,
		})
	}

	printHybrid(os.Stdout, project.Scenarios.Catalog, project.Scenarios.Weights, res.Hybrid, res.HybridFleet)
	return nil
}

func runServe(ctx context.Context, projectPath, configDir string, portOverride int) error {
	if configDir == "" {
		configDir = projectPath
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	if portOverride != 0 {
		cfg.Server.Port = portOverride
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	srv, err := server.New(filepath.Join(projectPath, cfg.Project.File), server.Options{
		Port:  cfg.Server.Port,
		Watch: cfg.Server.Watch,
	}, log)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	return srv.Start(ctx)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
