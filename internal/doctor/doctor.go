package doctor

import (
	"runtime"
	"time"
)

// Check is one diagnostic.
type Check interface {
	// Name identifies the check in reports.
	Name() string

	// Category groups checks, e.g. "toolchain" or "project".
	Category() string

	// Run performs the check.
	Run() *CheckResult
}

// Runner runs registered checks in registration order.
type Runner struct {
	checks []Check
}

// NewRunner returns a runner with no checks.
func NewRunner() *Runner {
	return &Runner{}
}

// AddCheck registers c.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes every check and returns the report.
func (r *Runner) Run() *DoctorReport {
	start := time.Now()
	report := &DoctorReport{
		Timestamp: start.UTC(),
		Host:      runtime.GOOS + "/" + runtime.GOARCH,
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := check.Run()
		report.Results = append(report.Results, result)
		report.Summary.record(result.Status)
	}

	report.Duration = time.Since(start)
	return report
}

// Fix applies the fixes of every check that reports something to fix.
// Call it after Run so checks have inspected the current state.
func (r *Runner) Fix() []FixResult {
	var results []FixResult
	for _, check := range r.checks {
		if fixer, ok := check.(Fixer); ok && fixer.CanFix() {
			results = append(results, fixer.Fix()...)
		}
	}
	return results
}

// DoctorReport is the outcome of one Runner.Run.
type DoctorReport struct {
	Timestamp time.Time `json:"timestamp"`

	// Host is the GOOS/GOARCH pair the checks ran on. Platform results
	// depend on it.
	Host string `json:"host"`

	Duration time.Duration  `json:"duration_ns"`
	Results  []*CheckResult `json:"results"`
	Summary  Summary        `json:"summary"`
}

// HasErrors returns true if any check failed.
func (r *DoctorReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if any check warned.
func (r *DoctorReport) HasWarnings() bool {
	return r.Summary.Warnings > 0
}
