package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/mpm/internal/errors"
)

// Format specifies the output format for reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter writes results in one format.
type Reporter struct {
	out    io.Writer
	format Format
	color  bool
}

// NewReporter creates a Reporter. Colors are used only when useColor is set.
func NewReporter(out io.Writer, format Format, useColor bool) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
		color:  useColor,
	}
}

// Report writes result.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	if r.format == FormatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(result), "encoding JSON report")
	}

	r.reportText(result)
	return nil
}

func (r *Reporter) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if !r.color {
		c.DisableColor()
	}
	return c
}

func (r *Reporter) reportText(result *Result) {
	errs := result.Filter(SeverityError)
	warns := result.Filter(SeverityWarning)
	notes := result.Filter(SeverityInfo)

	if len(errs) == 0 && len(warns) == 0 {
		r.paint(color.FgGreen).Fprintf(r.out, "✓ %s is a valid MAUI application project\n", result.Path)
	} else {
		fmt.Fprintf(r.out, "%s: %s, %s\n", result.Path,
			r.paint(color.FgRed).Sprintf("%d error(s)", len(errs)),
			r.paint(color.FgYellow).Sprintf("%d warning(s)", len(warns)))
	}

	r.section("Errors", errs, color.FgRed)
	r.section("Warnings", warns, color.FgYellow)
	r.section("Notes", notes, color.FgCyan)
}

func (r *Reporter) section(title string, issues []Issue, attr color.Attribute) {
	if len(issues) == 0 {
		return
	}

	fmt.Fprintf(r.out, "\n%s:\n", title)
	label := r.paint(attr)
	dim := r.paint(color.FgHiBlack)
	for _, i := range issues {
		fmt.Fprint(r.out, "  • ")
		if i.Element != "" {
			label.Fprintf(r.out, "%s: ", i.Element)
		}
		fmt.Fprint(r.out, i.Message)
		if i.Value != "" {
			value := i.Value
			// Long framework lists are cut to keep one finding per line.
			if len(value) > 50 {
				value = value[:47] + "..."
			}
			dim.Fprintf(r.out, " [%s]", value)
		}
		fmt.Fprintln(r.out)
	}
}
