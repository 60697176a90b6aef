package validator

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/mpm/internal/errors"
)

// Severity represents the impact of a finding.
type Severity int

const (
	// SeverityError marks a finding that makes the project unusable.
	SeverityError Severity = iota
	// SeverityWarning marks a declaration that is ignored or overridden.
	SeverityWarning
	// SeverityInfo marks a descriptive note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return errors.Newf("unknown severity %q", text)
	}
	return nil
}

// Issue is a single finding, usually tied to one project file element.
type Issue struct {
	Severity Severity `json:"severity"`
	// Element names the XML element concerned, if any.
	Element string `json:"element,omitempty"`
	Message string `json:"message"`
	// Value is the offending value, if any.
	Value string `json:"value,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Element != "" {
		fmt.Fprintf(&sb, "<%s> ", i.Element)
	}
	sb.WriteString(i.Message)
	if i.Value != "" {
		fmt.Fprintf(&sb, " (got %q)", i.Value)
	}
	return sb.String()
}

// Result aggregates the findings for one project file.
type Result struct {
	Path   string  `json:"path"`
	Issues []Issue `json:"issues"`
}

// NewResult returns an empty result for the file at path.
func NewResult(path string) *Result {
	return &Result{Path: path, Issues: []Issue{}}
}

func (r *Result) add(sev Severity, element, message, value string) {
	r.Issues = append(r.Issues, Issue{
		Severity: sev,
		Element:  element,
		Message:  message,
		Value:    value,
	})
}

// AddError records an error finding.
func (r *Result) AddError(element, message, value string) {
	r.add(SeverityError, element, message, value)
}

// AddWarning records a warning finding.
func (r *Result) AddWarning(element, message, value string) {
	r.add(SeverityWarning, element, message, value)
}

// AddInfo records an informational finding.
func (r *Result) AddInfo(element, message, value string) {
	r.add(SeverityInfo, element, message, value)
}

// Filter returns the findings of severity sev in the order they were added.
func (r *Result) Filter(sev Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == sev {
			res = append(res, i)
		}
	}
	return res
}

// HasErrors returns true if any finding is an error.
func (r *Result) HasErrors() bool {
	return len(r.Filter(SeverityError)) > 0
}

// HasWarnings returns true if any finding is a warning.
func (r *Result) HasWarnings() bool {
	return len(r.Filter(SeverityWarning)) > 0
}

// Err returns the first error finding, or nil.
func (r *Result) Err() error {
	if errs := r.Filter(SeverityError); len(errs) > 0 {
		return errs[0]
	}
	return nil
}
