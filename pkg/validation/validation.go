package validation

import "fmt"

// Level names the check that produced a finding.
type Level string

const (
	LevelSchema     Level = "schema"     // project file values
	LevelScenario   Level = "scenario"   // selection and weights
	LevelAnalytical Level = "analytical" // computed figures
)

// Severity grades a finding. Only errors make a report invalid.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is one finding about a project. Path is the dotted key in the
// project file the finding refers to, such as "parameters.vehicle_count".
type Result struct {
	Level       Level    `json:"level"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Path        string   `json:"path"`
	ActualValue any      `json:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report collects findings grouped by severity.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport returns a report with no findings.
func NewReport() *Report {
	r := &Report{
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.refresh()
	return r
}

// AddError records a finding that blocks computing figures.
func (r *Report) AddError(result Result) { r.add(SeverityError, result) }

// AddWarning records a finding that leaves the figures usable but suspect.
func (r *Report) AddWarning(result Result) { r.add(SeverityWarning, result) }

// AddInfo records a note about the figures.
func (r *Report) AddInfo(result Result) { r.add(SeverityInfo, result) }

func (r *Report) add(sev Severity, result Result) {
	result.Severity = sev
	switch sev {
	case SeverityError:
		r.Errors = append(r.Errors, result)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, result)
	default:
		r.Info = append(r.Info, result)
	}
	r.refresh()
}

// Merge appends the findings of other. A nil report is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	r.refresh()
}

func (r *Report) refresh() {
	r.Valid = len(r.Errors) == 0
	r.Summary = fmt.Sprintf("%s, %s, %d info",
		plural(len(r.Errors), "error"), plural(len(r.Warnings), "warning"), len(r.Info))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
